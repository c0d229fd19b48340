package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, timeout, policy limits)
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

type Config struct {
	Server      ServerConfig
	Store       StoreConfig
	DB          DBConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Reservation ReservationConfig
	RateLimit   RateLimitConfig
	Tracing     TracingConfig
	CORS        CORSConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type MongoConfig struct {
	URI      string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database string        `envconfig:"MONGO_DATABASE" default:"campsite"`
	Timeout  time.Duration `envconfig:"MONGO_TIMEOUT" default:"5s"`
}

// Addr empty means bookings are serialized with an in-process lock.
// LockTTL also caps how long one booking write may run under the lock.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"REDIS_LOCK_TTL" default:"10s"`
	LockWait time.Duration `envconfig:"REDIS_LOCK_WAIT" default:"5s"`
}

// Brokers empty disables the outbox relay.
type KafkaConfig struct {
	Brokers   []string      `envconfig:"KAFKA_BROKERS"`
	Topic     string        `envconfig:"KAFKA_TOPIC" default:"campsite.bookings"`
	PollEvery time.Duration `envconfig:"OUTBOX_POLL_EVERY" default:"2s"`
	BatchSize int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
}

type ReservationConfig struct {
	MaxBookingDays      int    `envconfig:"RESERVATION_MAX_BOOKING_DAYS" default:"3"`
	MinDaysAhead        int    `envconfig:"RESERVATION_MIN_DAYS_AHEAD" default:"1"`
	MaxDaysAhead        int    `envconfig:"RESERVATION_MAX_DAYS_AHEAD" default:"30"` // negative disables the upper bound
	DefaultWindowMonths int    `envconfig:"RESERVATION_DEFAULT_WINDOW_MONTHS" default:"1"`
	TimeZone            string `envconfig:"RESERVATION_TIMEZONE" default:"UTC"`
}

// Applies per client IP to endpoints that change bookings. Zero disables.
type RateLimitConfig struct {
	WritesPerMinute int `envconfig:"RATE_LIMIT_WRITES_PER_MINUTE" default:"60"`
	Burst           int `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

// Endpoint empty keeps the no-op tracer provider.
type TracingConfig struct {
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"campsite-reservation"`
	SampleRatio float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ReservationConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid RESERVATION_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c Config) validate() error {
	switch strings.ToLower(c.Store.Driver) {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for store driver %q", c.Store.Driver)
		}
	case StoreDriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required for store driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Reservation.MaxBookingDays < 1 {
		return fmt.Errorf("RESERVATION_MAX_BOOKING_DAYS must be positive, got %d", c.Reservation.MaxBookingDays)
	}
	if c.Reservation.MinDaysAhead < 0 {
		return fmt.Errorf("RESERVATION_MIN_DAYS_AHEAD must not be negative, got %d", c.Reservation.MinDaysAhead)
	}
	if c.Reservation.DefaultWindowMonths < 1 {
		return fmt.Errorf("RESERVATION_DEFAULT_WINDOW_MONTHS must be positive, got %d", c.Reservation.DefaultWindowMonths)
	}
	if len(c.Kafka.Brokers) > 0 {
		if c.Kafka.BatchSize < 1 {
			return fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.Kafka.BatchSize)
		}
		if c.Kafka.PollEvery <= 0 {
			return fmt.Errorf("OUTBOX_POLL_EVERY must be positive, got %s", c.Kafka.PollEvery)
		}
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATIO must be within [0, 1], got %g", c.Tracing.SampleRatio)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			LockTTL:  10 * time.Second,
			LockWait: 5 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic:     "campsite.bookings",
			PollEvery: 2 * time.Second,
			BatchSize: 50,
		},
		Reservation: ReservationConfig{
			MaxBookingDays:      3,
			MinDaysAhead:        1,
			MaxDaysAhead:        30,
			DefaultWindowMonths: 1,
			TimeZone:            "UTC",
		},
		Tracing: TracingConfig{
			ServiceName: "campsite-reservation",
			SampleRatio: 1,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Location"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
