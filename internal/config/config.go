package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crosslink-dev/crosslink/internal/branding"
	"github.com/crosslink-dev/crosslink/internal/peers"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyNPM         = "npm"
	KeyGlobals     = "globals"
	KeyPeerPolicy  = "peer_policy"
	KeyManifest    = "manifest"
	KeyConcurrency = "concurrency"
	KeySaveExact   = "save_exact"
)

const (
	defaultNPM         = "npm"
	defaultManifest    = "package.json"
	defaultConcurrency = 8
)

// Settings is the resolved configuration for one invocation.
type Settings struct {
	NPM         string
	Globals     []string
	PeerPolicy  peers.Policy
	Manifest    string
	Concurrency int
	SaveExact   bool
}

// Dir returns the path to the config directory (~/.crosslink/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.crosslink/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyNPM, defaultNPM)
	viper.SetDefault(KeyPeerPolicy, string(peers.Strict))
	viper.SetDefault(KeyManifest, defaultManifest)
	viper.SetDefault(KeyConcurrency, defaultConcurrency)
	viper.SetDefault(KeySaveExact, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Resolve reads the loaded configuration into a Settings value.
// Load must have been called first.
func Resolve() (*Settings, error) {
	policy, err := peers.ParsePolicy(viper.GetString(KeyPeerPolicy))
	if err != nil {
		return nil, fmt.Errorf("config key %s: %w", KeyPeerPolicy, err)
	}

	s := &Settings{
		NPM:         strings.TrimSpace(viper.GetString(KeyNPM)),
		Globals:     SplitList(viper.GetStringSlice(KeyGlobals)),
		PeerPolicy:  policy,
		Manifest:    strings.TrimSpace(viper.GetString(KeyManifest)),
		Concurrency: viper.GetInt(KeyConcurrency),
		SaveExact:   viper.GetBool(KeySaveExact),
	}

	if s.NPM == "" {
		s.NPM = defaultNPM
	}
	if s.Manifest == "" {
		s.Manifest = defaultManifest
	}
	if s.Concurrency <= 0 {
		s.Concurrency = defaultConcurrency
	}

	return s, nil
}

// SplitList flattens comma separated entries and drops blanks and repeats,
// keeping first-seen order.
func SplitList(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			out = append(out, part)
		}
	}
	return out
}
