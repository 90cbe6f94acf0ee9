// Package config loads track settings from an optional YAML file, TRACK_*
// environment variables, and built-in defaults, in that order of precedence
// (environment first).
package config

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/manav03panchal/track/internal/errors"
	"github.com/manav03panchal/track/internal/naming"
	"github.com/manav03panchal/track/internal/parser"
	"github.com/manav03panchal/track/internal/storage"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// EnvPrefix prefixes every environment variable read by track.
const EnvPrefix = "TRACK"

// Config is the effective configuration for one invocation.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" json:"storage"`
	Report  ReportConfig  `mapstructure:"report" json:"report"`
	Naming  NamingConfig  `mapstructure:"naming" json:"naming"`
	Log     LogConfig     `mapstructure:"log" json:"log"`

	// Path is the config file that was read, empty if none.
	Path string `mapstructure:"-" json:"config_file,omitempty"`
}

// StorageConfig selects and locates the ledger backend.
type StorageConfig struct {
	Backend        string `mapstructure:"backend" json:"backend" validate:"required|in:file,badger"`
	DataFile       string `mapstructure:"data_file" json:"data_file" validate:"required"`
	BadgerDir      string `mapstructure:"badger_dir" json:"badger_dir"`
	BackupOnRepair bool   `mapstructure:"backup_on_repair" json:"backup_on_repair"`
}

// ReportConfig controls duration rounding.
type ReportConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes" json:"interval_minutes" validate:"required|min:1|max:1440"`
}

// NamingConfig tunes typo protection for project and tag names.
type NamingConfig struct {
	SimilarityCutoff float64 `mapstructure:"similarity_cutoff" json:"similarity_cutoff"`
	SuggestTags      bool    `mapstructure:"suggest_tags" json:"suggest_tags"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level" json:"level" validate:"required|in:debug,info,warn,error"`
	JSON  bool   `mapstructure:"json" json:"json"`
}

// envBindings maps config keys to their short environment variable names.
var envBindings = map[string]string{
	"storage.data_file":       "TRACK_DATA_FILE",
	"storage.backend":         "TRACK_BACKEND",
	"storage.badger_dir":      "TRACK_BADGER_DIR",
	"report.interval_minutes": "TRACK_INTERVAL_MINUTES",
	"log.level":               "TRACK_LOG_LEVEL",
}

// DefaultPath returns $XDG_CONFIG_HOME/track/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, storage.AppName, "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.data_file", storage.DefaultDataFile())
	v.SetDefault("storage.badger_dir", storage.DefaultBadgerPath())
	v.SetDefault("storage.backup_on_repair", true)
	v.SetDefault("report.interval_minutes", parser.DefaultIntervalMinutes)
	v.SetDefault("naming.similarity_cutoff", naming.DefaultCutoff)
	v.SetDefault("naming.suggest_tags", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		// The short name wins over TRACK_<SECTION>_<KEY>.
		v.BindEnv(key, env, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	}
}

// Default returns the configuration with no file and no environment applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// Load builds the configuration. path names a YAML file; when empty the XDG
// default is tried and silently skipped if missing. An explicitly named file
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	cfgPath := path
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := stderrors.Is(err, fs.ErrNotExist) || stderrors.As(err, &notFound)
		if explicit || !missing {
			return nil, errors.NewSystemErrorWithOp("load config", "failed to read config file "+path, err)
		}
		cfgPath = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewSystemErrorWithOp("load config", "unable to decode config", err)
	}
	cfg.Path = cfgPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DataDir returns the directory holding the ledger file, lock, and backups.
func (c *Config) DataDir() string {
	return filepath.Dir(c.Storage.DataFile)
}

// BackupPath returns the directory holding ledger backups: next to the data
// file, or next to the badger directory.
func (c *Config) BackupPath() string {
	if c.Storage.Backend == BackendBadger {
		return storage.BackupDir(filepath.Dir(c.Storage.BadgerDir))
	}
	return storage.BackupDir(c.DataDir())
}

// BackupDir returns where pre-repair backups go, or "" when disabled.
func (c *Config) BackupDir() string {
	if !c.Storage.BackupOnRepair {
		return ""
	}
	return c.BackupPath()
}
