package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"

	dataDirKey       = "data.dir"
	notifyEnabledKey = "notify.enabled"
	watchIntervalKey = "watch.interval_ms"

	appDirName     = "tally"
	configFileMode = 0o600
	configDirMode  = 0o700

	defaultWatchIntervalMs = 50
	minWatchIntervalMs     = 16
)

type Config struct {
	DataDir         string
	NotifyEnabled   bool
	WatchIntervalMs int
}

type fileSchema struct {
	Data   dataSchema   `toml:"data"`
	Notify notifySchema `toml:"notify"`
	Watch  watchSchema  `toml:"watch"`
}

type dataSchema struct {
	Dir string `toml:"dir"`
}

type notifySchema struct {
	Enabled bool `toml:"enabled"`
}

type watchSchema struct {
	IntervalMs int `toml:"interval_ms"`
}

// Load resolves configuration from config.toml in the user config directory,
// overridable through TALLY_* environment variables. A missing file is
// created with the defaults; an unreadable one falls open to them.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := configDirPath(homeDir)
	defaults := defaultConfig(homeDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetEnvPrefix("TALLY")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(dataDirKey, defaults.DataDir)
	cfg.SetDefault(notifyEnabledKey, defaults.NotifyEnabled)
	cfg.SetDefault(watchIntervalKey, defaults.WatchIntervalMs)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Best effort; the defaults work without a file on disk.
			_ = writeDefault(configDir, defaults)
		} else {
			return defaults, nil
		}
	}

	loaded := Config{
		DataDir:         cfg.GetString(dataDirKey),
		NotifyEnabled:   cfg.GetBool(notifyEnabledKey),
		WatchIntervalMs: cfg.GetInt(watchIntervalKey),
	}
	if loaded.DataDir == "" {
		loaded.DataDir = defaults.DataDir
	}
	if loaded.WatchIntervalMs < minWatchIntervalMs {
		loaded.WatchIntervalMs = minWatchIntervalMs
	}

	return loaded, nil
}

func defaultConfig(homeDir string) Config {
	return Config{
		DataDir:         filepath.Join(homeDir, ".local", "share", appDirName),
		NotifyEnabled:   false,
		WatchIntervalMs: defaultWatchIntervalMs,
	}
}

func configDirPath(homeDir string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	return filepath.Join(homeDir, ".config", appDirName)
}

func writeDefault(configDir string, defaults Config) error {
	if err := os.MkdirAll(configDir, configDirMode); err != nil {
		return err
	}

	data, err := toml.Marshal(fileSchema{
		Data:   dataSchema{Dir: defaults.DataDir},
		Notify: notifySchema{Enabled: defaults.NotifyEnabled},
		Watch:  watchSchema{IntervalMs: defaults.WatchIntervalMs},
	})
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, configName+"."+configType), data, configFileMode)
}
