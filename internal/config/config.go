package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	InventoryService InventoryServiceConfig `toml:"inventory_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто или "stdout" - вывод в stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// InventoryServiceConfig настройки клиента внешнего сервиса инвентаря и цен
type InventoryServiceConfig struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"`   // секунды
	APIToken string `toml:"api_token"` // пусто - анонимный доступ
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			File:  "stdout",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "booking-gateway",
		},
		InventoryService: InventoryServiceConfig{
			Timeout: 10,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}

	if c.InventoryService.URL == "" {
		return fmt.Errorf("config: inventory_service.url is required")
	}

	if c.InventoryService.Timeout <= 0 {
		return fmt.Errorf("config: inventory_service.timeout must be positive")
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}

	return nil
}
