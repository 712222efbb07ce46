package config

import (
	"os"
	"path/filepath"

	"github.com/nielsgl/dspy-profiles/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	profilesFileName = "profiles.toml"
)

// Dir returns the path to the dspy config directory (~/.dspy/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the tool config file (~/.dspy/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if the config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// ProfilesPath returns the location of the profiles store. Precedence:
// the DSPY_PROFILES_PATH environment variable, the profiles_path key in
// the tool config, then ~/.dspy/profiles.toml.
func ProfilesPath() string {
	if p := os.Getenv(branding.EnvVar("PROFILES_PATH")); p != "" {
		return p
	}
	if p := viper.GetString("profiles_path"); p != "" {
		return p
	}
	return filepath.Join(Dir(), profilesFileName)
}

// CacheRoot returns the directory under which per-profile cache
// directories are synthesized. Precedence mirrors ProfilesPath.
func CacheRoot() string {
	if p := os.Getenv(branding.EnvVar("CACHE_ROOT")); p != "" {
		return p
	}
	if p := viper.GetString("cache_root"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "cache")
}
