package goSession

import (
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionCookieName is the fixed name of the cookie carrying the signed
// session identifier.
const SessionCookieName = "GOSESSION_ID"

const (
	// DefaultSessionsDB is the Redis logical database used for session
	// records when no selector is configured.
	DefaultSessionsDB = 0
	// DefaultNotificationsDB is the Redis logical database reserved for the
	// notification subsystem sharing the same Redis instance.
	DefaultNotificationsDB = 1
)

// Config defines a public type used by goSession APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Redis   RedisConfig
	Cookie  CookieConfig
	Session SessionConfig
	Metrics MetricsConfig
}

/*
====================================
REDIS CONFIG
====================================
*/

// RedisConfig holds connection parameters for the shared Redis instance and
// the dataset selectors partitioning it between subsystems.
//
// SessionsDB and NotificationsDB select separate Redis logical databases so
// that session records and notification state never collide even though both
// subsystems mint identifiers the same way. The selectors are configuration
// only: [RedisConfig.SessionOptions] passes SessionsDB and nothing else to
// the session client, so the notifications selector can never be
// misinterpreted as a session connection option.
type RedisConfig struct {
	Addr     string
	Username string
	Password string

	SessionsDB      int
	NotificationsDB int
}

// SessionOptions returns client options selected onto the sessions dataset.
func (c RedisConfig) SessionOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Username: c.Username,
		Password: c.Password,
		DB:       c.SessionsDB,
	}
}

// NotificationOptions returns client options selected onto the reserved
// notifications dataset, for wiring the notification subpackage.
func (c RedisConfig) NotificationOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Username: c.Username,
		Password: c.Password,
		DB:       c.NotificationsDB,
	}
}

/*
====================================
COOKIE CONFIG
====================================
*/

// CookieConfig controls the attributes of the issued session cookie and the
// key used to sign its value.
//
// With neither Expires nor ExpiresDays set, the cookie carries no expiry at
// all: it is a browser-session cookie that disappears when the client's
// browsing session ends. The Redis record keeps its own, independent idle
// TTL either way.
type CookieConfig struct {
	// HashKey signs the identifier value (HMAC). Required when the built-in
	// cookie carrier is used; 32 or 64 bytes recommended.
	HashKey []byte

	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite

	// Expires pins an absolute expiry on the cookie. Takes precedence over
	// ExpiresDays when both are set.
	Expires time.Time
	// ExpiresDays sets a relative expiry of now + n days at issue time.
	ExpiresDays int
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by goSession APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// IdleTTL is the idle expiration window reapplied on every write.
	IdleTTL time.Duration
}

// MetricsConfig defines a public type used by goSession APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			SessionsDB:      DefaultSessionsDB,
			NotificationsDB: DefaultNotificationsDB,
		},
		Cookie: CookieConfig{
			Path:     "/",
			HTTPOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		Session: SessionConfig{
			IdleTTL: 24 * time.Hour,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Cookie.HashKey != nil {
		out.Cookie.HashKey = make([]byte, len(cfg.Cookie.HashKey))
		copy(out.Cookie.HashKey, cfg.Cookie.HashKey)
	}
	return out
}

// Validate checks the configuration for construction-time errors.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Config) Validate() error {
	if c.Session.IdleTTL <= 0 {
		return errors.New("session idle TTL must be positive")
	}
	if c.Redis.SessionsDB < 0 {
		return errors.New("sessions dataset selector must not be negative")
	}
	if c.Redis.NotificationsDB < 0 {
		return errors.New("notifications dataset selector must not be negative")
	}
	if c.Redis.SessionsDB == c.Redis.NotificationsDB {
		return errors.New("sessions and notifications dataset selectors must differ")
	}
	if c.Cookie.ExpiresDays < 0 {
		return errors.New("cookie expires days must not be negative")
	}
	return nil
}
