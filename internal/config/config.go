package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Slots    SlotsConfig    `toml:"slots"`
	Cache    CacheConfig    `toml:"cache"`
	Backend  BackendConfig  `toml:"backend"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	AdminKey        string `toml:"admin_key"`        // ключ для защищённых маршрутов
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig недельное расписание барбершопа
type ScheduleConfig struct {
	OpenTime       string            `toml:"open_time"`       // "09:00"
	CloseTime      string            `toml:"close_time"`      // "19:00"
	ClosedWeekdays []string          `toml:"closed_weekdays"` // ["Sunday", "Monday"]
	CloseOverrides map[string]string `toml:"close_overrides"` // {"Saturday" = "17:40"}
	Breaks         []BreakConfig     `toml:"breaks"`
}

// BreakConfig один ежедневный перерыв
type BreakConfig struct {
	Start string `toml:"start"` // "13:00"
	End   string `toml:"end"`   // "14:00"
}

// SlotsConfig параметры движка слотов
// Все наблюдавшиеся варианты (шаг 20 или 40, разные политики перерывов)
// сводятся в одну явную конфигурацию вместо копий кода
type SlotsConfig struct {
	DurationMinutes    int `toml:"duration_minutes"`
	StepMinutes        int `toml:"step_minutes"`
	LeadMinutes        int `toml:"lead_minutes"`
	DefaultHorizonDays int `toml:"default_horizon_days"`
	// FullDayBreak - консервативная политика: запись-перерыв из backend
	// блокирует весь день, а не только свой интервал
	FullDayBreak bool `toml:"full_day_break"`
	// PreferBulkSummary - использовать bulk-эндпоинт backend для горизонта
	PreferBulkSummary bool `toml:"prefer_bulk_summary"`
}

// CacheConfig настройки кеша результатов
type CacheConfig struct {
	Backend                string `toml:"backend"` // "memory" | "redis"
	AvailabilityTTLSeconds int    `toml:"availability_ttl_seconds"`
	HorizonTTLSeconds      int    `toml:"horizon_ttl_seconds"`
	RedisAddr              string `toml:"redis_addr"`
	RedisPassword          string `toml:"redis_password"`
	RedisDB                int    `toml:"redis_db"`
}

// AvailabilityTTL TTL кеша однодневной доступности
func (c CacheConfig) AvailabilityTTL() time.Duration {
	return time.Duration(c.AvailabilityTTLSeconds) * time.Second
}

// HorizonTTL TTL кеша горизонта
func (c CacheConfig) HorizonTTL() time.Duration {
	return time.Duration(c.HorizonTTLSeconds) * time.Second
}

// BackendConfig внешний booking backend (источник записей)
// Пустой URL означает standalone-режим с локальным хранилищем
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// DatabaseConfig настройки Postgres для standalone-режима
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
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
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "lemo-availability",
		},
		Schedule: ScheduleConfig{
			OpenTime:       "09:00",
			CloseTime:      "19:00",
			ClosedWeekdays: []string{"Sunday", "Monday"},
			CloseOverrides: map[string]string{"Saturday": "17:40"},
			Breaks: []BreakConfig{
				{Start: "13:00", End: "14:00"},
			},
		},
		Slots: SlotsConfig{
			DurationMinutes:    domain.DefaultDurationMinutes,
			StepMinutes:        domain.DefaultStepMinutes,
			LeadMinutes:        domain.DefaultLeadMinutes,
			DefaultHorizonDays: domain.DefaultHorizonDays,
			FullDayBreak:       true,
			PreferBulkSummary:  true,
		},
		Cache: CacheConfig{
			Backend:                "memory",
			AvailabilityTTLSeconds: 60,
			HorizonTTLSeconds:      180,
		},
		Backend: BackendConfig{
			Timeout: 5,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

func (c *Config) validate() error {
	if c.Slots.DurationMinutes <= 0 {
		return fmt.Errorf("slots.duration_minutes must be positive, got %d", c.Slots.DurationMinutes)
	}
	if c.Slots.StepMinutes <= 0 {
		return fmt.Errorf("slots.step_minutes must be positive, got %d", c.Slots.StepMinutes)
	}
	if c.Slots.LeadMinutes < 0 {
		return fmt.Errorf("slots.lead_minutes must not be negative, got %d", c.Slots.LeadMinutes)
	}
	if c.Slots.DefaultHorizonDays < domain.MinHorizonDays || c.Slots.DefaultHorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("slots.default_horizon_days must be in [%d, %d], got %d",
			domain.MinHorizonDays, domain.MaxHorizonDays, c.Slots.DefaultHorizonDays)
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be \"memory\" or \"redis\", got %q", c.Cache.Backend)
	}
	if _, err := c.WeeklySchedule(); err != nil {
		return err
	}
	return nil
}

// WeeklySchedule строит доменное недельное расписание из конфигурации
func (c *Config) WeeklySchedule() (domain.WeeklySchedule, error) {
	open, err := parseMinute(c.Schedule.OpenTime)
	if err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("schedule.open_time: %w", err)
	}
	closeMinute, err := parseMinute(c.Schedule.CloseTime)
	if err != nil {
		return domain.WeeklySchedule{}, fmt.Errorf("schedule.close_time: %w", err)
	}
	if closeMinute <= open {
		return domain.WeeklySchedule{}, fmt.Errorf("schedule.close_time %q must be after open_time %q",
			c.Schedule.CloseTime, c.Schedule.OpenTime)
	}

	closed := make([]time.Weekday, 0, len(c.Schedule.ClosedWeekdays))
	for _, name := range c.Schedule.ClosedWeekdays {
		weekday, err := parseWeekday(name)
		if err != nil {
			return domain.WeeklySchedule{}, fmt.Errorf("schedule.closed_weekdays: %w", err)
		}
		closed = append(closed, weekday)
	}

	overrides := make(map[time.Weekday]int, len(c.Schedule.CloseOverrides))
	for name, value := range c.Schedule.CloseOverrides {
		weekday, err := parseWeekday(name)
		if err != nil {
			return domain.WeeklySchedule{}, fmt.Errorf("schedule.close_overrides: %w", err)
		}
		minute, err := parseMinute(value)
		if err != nil {
			return domain.WeeklySchedule{}, fmt.Errorf("schedule.close_overrides[%s]: %w", name, err)
		}
		overrides[weekday] = minute
	}

	breaks := make([]domain.BreakInterval, 0, len(c.Schedule.Breaks))
	for i, br := range c.Schedule.Breaks {
		start, err := parseMinute(br.Start)
		if err != nil {
			return domain.WeeklySchedule{}, fmt.Errorf("schedule.breaks[%d].start: %w", i, err)
		}
		end, err := parseMinute(br.End)
		if err != nil {
			return domain.WeeklySchedule{}, fmt.Errorf("schedule.breaks[%d].end: %w", i, err)
		}
		if end <= start {
			return domain.WeeklySchedule{}, fmt.Errorf("schedule.breaks[%d]: end %q must be after start %q", i, br.End, br.Start)
		}
		breaks = append(breaks, domain.BreakInterval{StartMinute: start, EndMinute: end})
	}

	return domain.WeeklySchedule{
		OpenMinute:     open,
		CloseMinute:    closeMinute,
		ClosedWeekdays: closed,
		CloseOverrides: overrides,
		Breaks:         breaks,
	}, nil
}

func parseMinute(s string) (int, error) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return 0, err
	}
	return ts.Minutes()
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return 0, fmt.Errorf("unknown weekday: %q", name)
	}
}
