package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// APIKeyName is the credential looked up in the secret store and the environment.
const APIKeyName = "OPENROUTER_API_KEY"

// CredentialSource records which layer supplied the API key.
type CredentialSource string

const (
	SourceNone        CredentialSource = "none"
	SourceSecretStore CredentialSource = "secrets"
	SourceEnv         CredentialSource = "env"
)

// ResolveAPIKey returns the API key from the TOML secret store at secretsPath,
// falling back to the environment. An empty key with SourceNone means the
// credential is not configured; that is reported by the caller, not here.
// A secret store that exists but cannot be parsed is an error.
func ResolveAPIKey(secretsPath string) (string, CredentialSource, error) {
	if secretsPath != "" {
		key, err := readSecret(secretsPath, APIKeyName)
		if err != nil {
			return "", SourceNone, err
		}
		if key != "" {
			return key, SourceSecretStore, nil
		}
	}

	if key := os.Getenv(APIKeyName); key != "" {
		return key, SourceEnv, nil
	}
	return "", SourceNone, nil
}

func readSecret(path, name string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read secret store: %w", err)
	}

	var secrets map[string]any
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return "", fmt.Errorf("failed to parse secret store %s: %w", path, err)
	}
	v, ok := secrets[name].(string)
	if !ok {
		return "", nil
	}
	return v, nil
}
