package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the data directory.
const FileName = "themeplane.config"

const envPrefix = "THEMEPLANE"

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	DataDir    string        `json:"data_dir" mapstructure:"data_dir"`
	ListenAddr string        `json:"listen_addr" mapstructure:"listen_addr"`
	AppName    string        `json:"app_name" mapstructure:"app_name"`
	Storage    StorageConfig `json:"storage" mapstructure:"storage"`
	Log        LogConfig     `json:"log" mapstructure:"log"`
}

type StorageConfig struct {
	Backend string `json:"backend" mapstructure:"backend"`
	// Path of the SQLite database, relative to DataDir unless absolute.
	Path string `json:"path,omitempty" mapstructure:"path"`
}

type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format,omitempty" mapstructure:"format"`
}

func Default() Config {
	return Config{
		DataDir:    ".",
		ListenAddr: ":8080",
		AppName:    "themeplane",
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    "themeplane.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads themeplane.config from dataDir. Missing keys keep their
// defaults and THEMEPLANE_* environment variables override the file
// (THEMEPLANE_STORAGE_BACKEND for storage.backend).
func Load(dataDir string) (Config, error) {
	def := Default()
	def.DataDir = dataDir

	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v, def)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfgPath := filepath.Join(dataDir, FileName)
	data, err := os.ReadFile(cfgPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read %s: %w", cfgPath, err)
	case len(bytes.TrimSpace(data)) > 0:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cfg.AppName == "" {
		cfg.AppName = def.AppName
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("app_name", def.AppName)
	v.SetDefault("storage.backend", def.Storage.Backend)
	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend %q: want %q or %q", c.Storage.Backend, BackendFile, BackendSQLite)
	}
	if strings.ContainsAny(c.AppName, `/\ `) {
		return fmt.Errorf("app_name %q must not contain spaces or path separators", c.AppName)
	}
	return nil
}

// DatabasePath resolves the SQLite path against DataDir.
func (c Config) DatabasePath() string {
	if filepath.IsAbs(c.Storage.Path) {
		return c.Storage.Path
	}
	return filepath.Join(c.DataDir, c.Storage.Path)
}

func Save(cfg Config) error {
	cfgPath := filepath.Join(cfg.DataDir, FileName)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	tmp := cfgPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, cfgPath)
}
