package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// AppDirName is the per-user directory holding config, cache and logs.
const AppDirName = ".memowidget"

// Config holds all widget configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Checklist widget specifics
	Memos  MemosConfig
	Widget WidgetConfig
	Cache  CacheConfig

	// Webhooks
	Webhook WebhookConfig

	v *viper.Viper
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         string // used by the terminal widget so logs stay off screen
}

type MemosConfig struct {
	URL         string
	AccessToken string
	MemoID      string
	Timeout     time.Duration
}

// WidgetConfig holds the display policy read by the checklist core.
type WidgetConfig struct {
	HideCompletedPanel      bool
	HideCompletedPopup      bool
	RotationIntervalSeconds int
	FetchIntervalMinutes    int
	AllHiddenMessage        string
}

type CacheConfig struct {
	Enabled bool
	Dir     string
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.{yaml,json}, searched in ./config, . and ~/.memowidget.
// A non-empty path is used as-is.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		if dir, err := AppDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}
	cfg.v = v
	return cfg, nil
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.File = expandHome(v.GetString("logger.file"))

	// Memos
	cfg.Memos.URL = v.GetString("memos.url")
	cfg.Memos.AccessToken = v.GetString("memos.access_token")
	cfg.Memos.MemoID = v.GetString("memos.memo_id")
	cfg.Memos.Timeout = v.GetDuration("memos.timeout")
	if memosURL := v.GetString("memos_url"); memosURL != "" {
		cfg.Memos.URL = memosURL
	}
	if memosToken := v.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}
	if memoID := v.GetString("memos_memo_id"); memoID != "" {
		cfg.Memos.MemoID = memoID
	}
	if cfg.Memos.MemoID == "" {
		return nil, fmt.Errorf("memos.memo_id is required")
	}

	// Widget
	cfg.Widget.HideCompletedPanel = v.GetBool("widget.hide_completed_in_panel")
	cfg.Widget.HideCompletedPopup = v.GetBool("widget.hide_completed_in_popup")
	cfg.Widget.RotationIntervalSeconds = v.GetInt("widget.rotation_interval_seconds")
	cfg.Widget.FetchIntervalMinutes = v.GetInt("widget.fetch_interval_minutes")
	cfg.Widget.AllHiddenMessage = v.GetString("widget.all_hidden_text")
	if cfg.Widget.RotationIntervalSeconds <= 0 {
		cfg.Widget.RotationIntervalSeconds = defaultRotationSeconds
	}
	if cfg.Widget.FetchIntervalMinutes <= 0 {
		cfg.Widget.FetchIntervalMinutes = defaultFetchMinutes
	}

	// Cache
	cfg.Cache.Enabled = v.GetBool("cache.enabled")
	cfg.Cache.Dir = expandHome(v.GetString("cache.dir"))

	// Webhooks
	cfg.Webhook.Enabled = v.GetBool("webhook.enabled")
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	if webhookSecret := v.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := v.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	return cfg, nil
}

// Watch re-reads the config file on change and hands the widget section to
// onChange. Other sections need a restart.
func (c *Config) Watch(onChange func(WidgetConfig)) {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return
	}
	c.v.OnConfigChange(func(_ fsnotify.Event) {
		next, err := fromViper(c.v)
		if err != nil {
			return
		}
		onChange(next.Widget)
	})
	c.v.WatchConfig()
}

// WriteDefaults writes a config file with every default to path. It refuses to
// overwrite an existing file.
func WriteDefaults(path string) error {
	v := viper.New()
	setDefaults(v)
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// AppDir is ~/.memowidget.
func AppDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, AppDirName), nil
}

func expandHome(p string) string {
	if p == "" {
		return p
	}
	expanded, err := homedir.Expand(p)
	if err != nil {
		return p
	}
	return expanded
}

const (
	defaultRotationSeconds = 5
	defaultFetchMinutes    = 10
	DefaultAllHiddenText   = "All tasks completed!"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "127.0.0.1")
	v.SetDefault("http_server.port", 8765)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.file", "~/"+AppDirName+"/widget.log")

	v.SetDefault("memos.url", "https://demo.usememos.com/")
	v.SetDefault("memos.access_token", "")
	v.SetDefault("memos.memo_id", "1")
	v.SetDefault("memos.timeout", "10s")

	v.SetDefault("widget.hide_completed_in_panel", false)
	v.SetDefault("widget.hide_completed_in_popup", false)
	v.SetDefault("widget.rotation_interval_seconds", defaultRotationSeconds)
	v.SetDefault("widget.fetch_interval_minutes", defaultFetchMinutes)
	v.SetDefault("widget.all_hidden_text", DefaultAllHiddenText)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.dir", "~/"+AppDirName+"/cache")

	v.SetDefault("webhook.enabled", false)
	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.allowed_ips", "")
	v.SetDefault("webhook.rate_limit_per_min", 60)
}
