package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// logRetention is how long rotated log files are kept on disk
const logRetention = 7 * 24 * time.Hour

type Config struct {
	v      *viper.Viper
	Logger *log.Logger
}

// NewConfig loads the configuration from various sources using viper
func NewConfig() (*Config, error) {
	// A missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	// Try to read config file (don't error if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		l := log.New(os.Stderr)
		l.Warnf("error reading config file: %v\nContinuing with envs...", err)
	}

	if err := bindEnvs(v); err != nil {
		return nil, fmt.Errorf("error binding environment variables: %w", err)
	}

	logFile, err := newLogFile(v.GetString("log_dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	if err := pruneOldLogFiles(v.GetString("log_dir")); err != nil {
		return nil, fmt.Errorf("failed to prune old log files: %w", err)
	}

	// Log both to a file and to stderr
	w := io.MultiWriter(os.Stderr, logFile)

	cfg := &Config{
		v:      v,
		Logger: log.NewWithOptions(w, log.Options{ReportTimestamp: true}),
	}

	if err := cfg.SetLogLevel(cfg.GetLogLevel()); err != nil {
		cfg.Logger.Warnf("%v, falling back to info", err)
	}

	return cfg, nil
}

// newLogFile generates a new log file
func newLogFile(dir string) (*os.File, error) {
	if dir == "" {
		return nil, fmt.Errorf("log directory is not set")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("slashbot_%s.log", time.Now().Format("20060102_150405"))
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	return file, nil
}

// PruneOldLogFiles removes log files older than the retention window from the log directory
func (c *Config) PruneOldLogFiles() error {
	return pruneOldLogFiles(c.GetLogDir())
}

func pruneOldLogFiles(dir string) error {
	logFiles, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	for _, file := range logFiles {
		if file.IsDir() {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) > logRetention {
			if err := os.Remove(filepath.Join(dir, file.Name())); err != nil {
				return fmt.Errorf("failed to remove old log file %s: %w", file.Name(), err)
			}
		}
	}

	return nil
}

// NewMockConfig creates a mock configuration for testing
func NewMockConfig(kv map[string]interface{}) *Config {
	v := viper.New()
	setDefaults(v)
	for k, val := range kv {
		v.Set(k, val)
	}
	return &Config{
		v:      v,
		Logger: log.New(os.Stderr),
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_dir", "./logs")
	v.SetDefault("log_level", "info")
	v.SetDefault("unregister_commands", false)
}

// bindEnvs binds environment variables to viper keys
func bindEnvs(v *viper.Viper) error {
	bindings := []struct {
		key string
		env string
	}{
		{"bot_token", "SLASHBOT_BOT_TOKEN"},
		{"guild_id", "SLASHBOT_GUILD_ID"},
		{"log_dir", "SLASHBOT_LOG_DIR"},
		{"log_level", "SLASHBOT_LOG_LEVEL"},
		{"log_channel_id", "SLASHBOT_LOG_CHANNEL_ID"},
		{"metrics_addr", "SLASHBOT_METRICS_ADDR"},
		{"unregister_commands", "SLASHBOT_UNREGISTER_COMMANDS"},
	}

	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return fmt.Errorf("error binding %s environment variable: %w", binding.key, err)
		}
	}
	return nil
}

// Validate checks that everything needed to connect to Discord is present.
// Listing commands offline does not need it, so it is not part of NewConfig.
func (c *Config) Validate() error {
	if c.GetBotToken() == "" {
		return errors.New(heredoc.Doc(`
			bot_token is required
			set SLASHBOT_BOT_TOKEN in the environment or .env, or bot_token in config.yaml`))
	}

	if c.GetMetricsAddr() == "" {
		c.Logger.Info("metrics_addr is not set, metrics endpoint disabled (set SLASHBOT_METRICS_ADDR)")
	}

	if c.GetLogChannelID() == "" {
		c.Logger.Info("log_channel_id is not set, delivery failures are only logged locally")
	}

	return nil
}

// SetLogLevel parses level and applies it to the logger
func (c *Config) SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	c.Logger.SetLevel(lvl)
	return nil
}
