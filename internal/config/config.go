package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Auth            AuthConfig            `toml:"auth"`
	Calendar        CalendarConfig        `toml:"calendar"`
	ScheduleService ScheduleServiceConfig `toml:"schedule_service"`
	Refresh         RefreshConfig         `toml:"refresh"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки доступа к административным маршрутам
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// CalendarConfig институтские календарные константы.
// Вынесены в конфигурацию, а не зашиты в код: другой кампус подставляет
// свой календарь, тесты - свои подменные значения.
type CalendarConfig struct {
	Timezone           string   `toml:"timezone"`
	OperatingStartHour float64  `toml:"operating_start_hour"`
	OperatingEndHour   float64  `toml:"operating_end_hour"`
	Holidays           []string `toml:"holidays"`
	BufferMinutes      int      `toml:"buffer_minutes"`

	// DefaultWindowMinutes явная политика окна по умолчанию: длительность
	// окна, когда запрос пришел без start/end. 0 - мгновенная проверка
	// "прямо сейчас".
	DefaultWindowMinutes int `toml:"default_window_minutes"`
}

// HolidayDates парсит праздники в календарные даты
func (c CalendarConfig) HolidayDates() ([]types.CivilDate, error) {
	dates := make([]types.CivilDate, 0, len(c.Holidays))
	for _, raw := range c.Holidays {
		d, err := types.ParseCivilDate(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid holiday %q: %w", raw, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// ScheduleServiceConfig настройки клиента фида доступности
type ScheduleServiceConfig struct {
	URL        string `toml:"url"`
	Timeout    int    `toml:"timeout"`
	PageSize   int    `toml:"page_size"`
	MaxWorkers int    `toml:"max_workers"`
}

// RefreshConfig настройки фонового обновления датасета
type RefreshConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalMinutes int  `toml:"interval_minutes"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Calendar.Timezone == "" {
		c.Calendar.Timezone = domain.DefaultTimezone
	}
	if c.Calendar.OperatingStartHour == 0 && c.Calendar.OperatingEndHour == 0 {
		c.Calendar.OperatingStartHour = domain.DefaultOperatingStartHour
		c.Calendar.OperatingEndHour = domain.DefaultOperatingEndHour
	}
	if len(c.Calendar.Holidays) == 0 {
		c.Calendar.Holidays = domain.DefaultHolidays
	}
	if c.ScheduleService.PageSize == 0 {
		c.ScheduleService.PageSize = 100
	}
	if c.ScheduleService.MaxWorkers == 0 {
		c.ScheduleService.MaxWorkers = 10
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Calendar.OperatingStartHour >= c.Calendar.OperatingEndHour {
		return fmt.Errorf("config: calendar operating window %v-%v is empty",
			c.Calendar.OperatingStartHour, c.Calendar.OperatingEndHour)
	}
	if c.Calendar.BufferMinutes < 0 {
		return fmt.Errorf("config: calendar.buffer_minutes must not be negative")
	}
	if c.Calendar.DefaultWindowMinutes < 0 {
		return fmt.Errorf("config: calendar.default_window_minutes must not be negative")
	}

	// Падаем на старте, а не на первом запросе
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("config: unknown calendar.timezone %q: %w", c.Calendar.Timezone, err)
	}
	if _, err := c.Calendar.HolidayDates(); err != nil {
		return err
	}

	return nil
}
