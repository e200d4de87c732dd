// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the model API credential at startup.
//
// The key is taken from the GEMINI_API_KEY environment variable when set,
// otherwise from a plain-text key file in the secrets directory (the filename
// is the key name, the trimmed file contents are the value). A missing
// credential is a fatal configuration error: the pipeline must not reach any
// network call without it.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// geminiKeyEnv and geminiKeyFile name the two credential sources.
const (
	geminiKeyEnv  = "GEMINI_API_KEY"
	geminiKeyFile = "gemini-api-key"
)

// GeminiKey returns the Gemini API key from the environment or from
// dir/gemini-api-key. It returns an error when neither source yields a
// non-empty value.
func GeminiKey(dir string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(geminiKeyEnv)); v != "" {
		return v, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, geminiKeyFile))
	if err == nil {
		if v := strings.TrimSpace(string(data)); v != "" {
			return v, nil
		}
	}

	return "", fmt.Errorf("missing credential: set %s or create %s", geminiKeyEnv, filepath.Join(dir, geminiKeyFile))
}

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load returns
// an empty map. Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
