// Package config resolves the runtime configuration for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gnomegl/whoxy/internal/whoxy"
)

// EnvAPIKey is the environment variable consulted when no --key flag is given.
const EnvAPIKey = "WHOXY_API_KEY"

// Settings holds everything resolved once at startup. It is built in cmd and
// passed down explicitly; the builder and formatter never read the
// environment themselves.
type Settings struct {
	APIKey  string
	Timeout time.Duration
	RawJSON bool
	Quiet   bool
}

// KeyFilePath returns the fixed fallback location for the API key,
// ~/.config/whoxy/key.
func KeyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "whoxy", "key")
}

// ResolveAPIKey returns the API key from, in priority order: the explicit
// flag value, the WHOXY_API_KEY environment variable, and the fixed config
// file path. Absence everywhere is a configuration error.
func ResolveAPIKey(flagValue string) (string, error) {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	path := KeyFilePath()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if key := strings.TrimSpace(string(data)); key != "" {
				return key, nil
			}
		} else if !os.IsNotExist(err) {
			log.Warn().Str("file", path).Err(err).Msg("could not read API key file")
		}
	}

	return "", &whoxy.ConfigError{
		Reason: fmt.Sprintf("no API key found: pass --key, set %s, or write the key to %s", EnvAPIKey, path),
	}
}
