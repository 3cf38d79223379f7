package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Google   GoogleConfig   `toml:"google"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// GoogleConfig доступ к Google Calendar API
type GoogleConfig struct {
	CalendarID   string `toml:"calendar_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`
	Timeout      int    `toml:"timeout"`      // секунды, на один вызов API
	ReadRetries  int    `toml:"read_retries"` // дополнительные попытки для читающих вызовов
}

// RequestTimeout возвращает таймаут одного вызова API
func (g GoogleConfig) RequestTimeout() time.Duration {
	if g.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(g.Timeout) * time.Second
}

// DayWindow рабочее окно одного дня недели; отсутствие секции = выходной
type DayWindow struct {
	Open  string `toml:"open"`  // "09:00"
	Close string `toml:"close"` // "17:00"
}

// BusinessHours расписание клиники по дням недели
type BusinessHours struct {
	Monday    *DayWindow `toml:"monday"`
	Tuesday   *DayWindow `toml:"tuesday"`
	Wednesday *DayWindow `toml:"wednesday"`
	Thursday  *DayWindow `toml:"thursday"`
	Friday    *DayWindow `toml:"friday"`
	Saturday  *DayWindow `toml:"saturday"`
	Sunday    *DayWindow `toml:"sunday"`
}

// ForWeekday возвращает окно для дня недели (nil = закрыто)
func (b BusinessHours) ForWeekday(wd time.Weekday) *DayWindow {
	switch wd {
	case time.Monday:
		return b.Monday
	case time.Tuesday:
		return b.Tuesday
	case time.Wednesday:
		return b.Wednesday
	case time.Thursday:
		return b.Thursday
	case time.Friday:
		return b.Friday
	case time.Saturday:
		return b.Saturday
	case time.Sunday:
		return b.Sunday
	default:
		return nil
	}
}

// ScheduleConfig параметры планирования
type ScheduleConfig struct {
	Timezone               string        `toml:"timezone"`
	DefaultDurationMinutes int           `toml:"default_duration_minutes"`
	FindNextDays           int           `toml:"find_next_days"`
	BusinessHours          BusinessHours `toml:"business_hours"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "UTC"
	}
	if cfg.Google.CalendarID == "" {
		cfg.Google.CalendarID = "primary"
	}

	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" || cfg.Google.RefreshToken == "" {
		return nil, fmt.Errorf("google oauth credentials are not configured")
	}
	if _, err := time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		return nil, fmt.Errorf("invalid schedule timezone %q: %w", cfg.Schedule.Timezone, err)
	}

	return &cfg, nil
}
