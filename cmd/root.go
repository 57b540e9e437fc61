package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	source   string
	redisURL string
	logLevel string
	logDir   string
	theme    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "openday",
	Short: "Terminal browser for open day event programs",
	Long: `openday fetches an open day event document (JSON) and lets you browse
its programs in the terminal: sort by start time, filter by location and
program type, and page through the results.

The document is read from a local file or an http(s) URL:
  openday browse --source https://example.org/OpenDay.json
  openday list --source ./OpenDay.json --location "Hall A" --sort latest`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.openday.yaml)")
	rootCmd.PersistentFlags().StringVar(&source, "source", "OpenDay.json", "Event document path or http(s) URL")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis", "", "Redis URL for caching the event document (disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "logs", "Directory for log files in TUI mode")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "dark", "Color theme (dark, light, high-contrast)")

	// Bind flags to viper
	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("cache.redis", rootCmd.PersistentFlags().Lookup("redis"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("ui.theme", rootCmd.PersistentFlags().Lookup("theme"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".openday" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".openday")
	}

	viper.SetEnvPrefix("OPENDAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// Set defaults
	viper.SetDefault("source", "OpenDay.json")
	viper.SetDefault("http.timeout", 15*time.Second)
	viper.SetDefault("cache.redis", "")
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.dir", "logs")
	viper.SetDefault("ui.theme", "dark")
}

// GetConfig returns the current configuration values
func GetConfig() Config {
	return Config{
		Source: viper.GetString("source"),
		HTTP: HTTPConfig{
			Timeout: viper.GetDuration("http.timeout"),
		},
		Cache: CacheConfig{
			Redis: viper.GetString("cache.redis"),
			TTL:   viper.GetDuration("cache.ttl"),
		},
		Log: LogConfig{
			Level: viper.GetString("log.level"),
			Dir:   viper.GetString("log.dir"),
		},
		UI: UIConfig{
			Theme: viper.GetString("ui.theme"),
		},
	}
}

// Config represents the application configuration
type Config struct {
	Source string      `mapstructure:"source"`
	HTTP   HTTPConfig  `mapstructure:"http"`
	Cache  CacheConfig `mapstructure:"cache"`
	Log    LogConfig   `mapstructure:"log"`
	UI     UIConfig    `mapstructure:"ui"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Redis string        `mapstructure:"redis"`
	TTL   time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

type UIConfig struct {
	Theme string `mapstructure:"theme"`
}
