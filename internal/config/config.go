package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// EnvConfigPath переменная окружения, переопределяющая путь к config.toml
const EnvConfigPath = "CONFIG_PATH"

// Источники расписания
const (
	SourceSheets   = "sheets"
	SourcePostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Salon    SalonConfig    `toml:"salon"`
	Masters  []MasterConfig `toml:"masters"`
	Google   GoogleConfig   `toml:"google"`
	Schedule ScheduleConfig `toml:"schedule"`
	Database DatabaseConfig `toml:"database"`
	Cache    CacheConfig    `toml:"cache"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	// AllowedOrigins источники, которым разрешены CORS-запросы (фронтенд бронирования)
	AllowedOrigins []string `toml:"allowed_origins"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonConfig параметры расчёта доступности
type SalonConfig struct {
	Timezone                string `toml:"timezone"`
	StepMinutes             int    `toml:"step_minutes"`
	MinBookingNoticeMinutes int    `toml:"min_booking_notice_minutes"`
	MaxRangeDays            int    `toml:"max_range_days"`
	BusyWindowStart         string `toml:"busy_window_start"`
	BusyWindowEnd           string `toml:"busy_window_end"`
}

// MasterConfig мастер салона со своим календарём и таблицей
type MasterConfig struct {
	ID         string `toml:"id"`
	Name       string `toml:"name"`
	CalendarID string `toml:"calendar_id"`
	SheetID    string `toml:"sheet_id"`
	Default    bool   `toml:"default"`
}

// GoogleConfig доступ к Google Calendar / Sheets
type GoogleConfig struct {
	CredentialsFile string `toml:"credentials_file"`
	Timeout         int    `toml:"timeout"` // секунды
	WeeklyRange     string `toml:"weekly_range"`
	ExceptionsRange string `toml:"exceptions_range"`
	ProceduresRange string `toml:"procedures_range"`

	// Ограничение исходящих запросов к Google API (квота проекта)
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// ScheduleConfig источник расписания и TTL кэша (в секундах)
type ScheduleConfig struct {
	Source        string `toml:"source"`
	WeeklyTTL     int    `toml:"weekly_ttl"`
	ExceptionsTTL int    `toml:"exceptions_ttl"`
	ProceduresTTL int    `toml:"procedures_ttl"`
}

// DatabaseConfig настройки PostgreSQL (используется при schedule.source = "postgres")
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

// CacheConfig настройки кэша; Redis подключается, если задан адрес
type CacheConfig struct {
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	KeyPrefix     string `toml:"key_prefix"`
}

// DSN строка подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisEnabled возвращает true, если настроен Redis
func (c CacheConfig) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Location загружает часовой пояс салона
func (c SalonConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Policy собирает параметры расчёта доступности салона
func (c SalonConfig) Policy() (domain.SalonPolicy, error) {
	loc, err := c.Location()
	if err != nil {
		return domain.SalonPolicy{}, fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	busyStart, err := types.NewTimeStringFromString(c.BusyWindowStart)
	if err != nil {
		return domain.SalonPolicy{}, fmt.Errorf("%w: salon.busy_window_start: %v", ErrInvalidConfig, err)
	}
	busyEnd, err := types.NewTimeStringFromString(c.BusyWindowEnd)
	if err != nil {
		return domain.SalonPolicy{}, fmt.Errorf("%w: salon.busy_window_end: %v", ErrInvalidConfig, err)
	}

	return domain.SalonPolicy{
		Location:                loc,
		StepMinutes:             c.StepMinutes,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		MaxRangeDays:            c.MaxRangeDays,
		BusyWindowStart:         busyStart,
		BusyWindowEnd:           busyEnd,
	}, nil
}

// Load загружает конфигурацию из TOML файла
// Путь можно переопределить переменной окружения CONFIG_PATH
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "availability-service"
	}

	if c.Salon.Timezone == "" {
		c.Salon.Timezone = domain.DefaultTimezone
	}
	if c.Salon.StepMinutes == 0 {
		c.Salon.StepMinutes = domain.DefaultStepMinutes
	}
	if c.Salon.MaxRangeDays == 0 {
		c.Salon.MaxRangeDays = domain.DefaultMaxRangeDays
	}
	if c.Salon.BusyWindowStart == "" {
		c.Salon.BusyWindowStart = domain.DefaultBusyWindowStart
	}
	if c.Salon.BusyWindowEnd == "" {
		c.Salon.BusyWindowEnd = domain.DefaultBusyWindowEnd
	}

	if c.Google.Timeout == 0 {
		c.Google.Timeout = 10
	}
	if c.Google.RequestsPerSecond == 0 {
		c.Google.RequestsPerSecond = 5
	}
	if c.Google.Burst == 0 {
		c.Google.Burst = 10
	}
	if c.Google.WeeklyRange == "" {
		c.Google.WeeklyRange = "weekly!A1:Z100"
	}
	if c.Google.ExceptionsRange == "" {
		c.Google.ExceptionsRange = "exceptions!A1:Z1000"
	}
	if c.Google.ProceduresRange == "" {
		c.Google.ProceduresRange = "procedures!A1:Z1000"
	}

	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}

	if c.Schedule.Source == "" {
		c.Schedule.Source = SourceSheets
	}
	if c.Schedule.WeeklyTTL == 0 {
		c.Schedule.WeeklyTTL = 60
	}
	if c.Schedule.ExceptionsTTL == 0 {
		c.Schedule.ExceptionsTTL = 60
	}
	if c.Schedule.ProceduresTTL == 0 {
		c.Schedule.ProceduresTTL = 900
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Cache.KeyPrefix == "" {
		c.Cache.KeyPrefix = "availability:"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	policy, err := c.Salon.Policy()
	if err != nil {
		return err
	}

	if c.Salon.StepMinutes < domain.MinStepMinutes || c.Salon.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: salon.step_minutes must be between %d and %d",
			ErrInvalidConfig, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if c.Salon.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("%w: salon.min_booking_notice_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Salon.MaxRangeDays < 1 {
		return fmt.Errorf("%w: salon.max_range_days must be positive", ErrInvalidConfig)
	}

	if !policy.BusyWindowStart.IsBefore(policy.BusyWindowEnd) {
		return fmt.Errorf("%w: salon.busy_window_start must be before busy_window_end", ErrInvalidConfig)
	}

	if c.Google.RequestsPerSecond < 0 || c.Google.Burst < 1 {
		return fmt.Errorf("%w: google.requests_per_second must not be negative and burst must be positive", ErrInvalidConfig)
	}

	if len(c.Masters) == 0 {
		return fmt.Errorf("%w: at least one [[masters]] entry is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Masters))
	defaults := 0
	for _, m := range c.Masters {
		if m.ID == "" || m.CalendarID == "" {
			return fmt.Errorf("%w: master id and calendar_id are required", ErrInvalidConfig)
		}
		if seen[m.ID] {
			return fmt.Errorf("%w: duplicate master id %q", ErrInvalidConfig, m.ID)
		}
		seen[m.ID] = true
		if m.Default {
			defaults++
		}
		if c.Schedule.Source == SourceSheets && m.SheetID == "" {
			return fmt.Errorf("%w: master %q has no sheet_id", ErrInvalidConfig, m.ID)
		}
	}
	if defaults > 1 {
		return fmt.Errorf("%w: only one master can be default", ErrInvalidConfig)
	}

	switch c.Schedule.Source {
	case SourceSheets, SourcePostgres:
	default:
		return fmt.Errorf("%w: schedule.source must be %q or %q", ErrInvalidConfig, SourceSheets, SourcePostgres)
	}

	return nil
}
