package goSession

import (
	"errors"
	"net/http"
	"time"

	"github.com/MrEthical07/goSession/cookie"
	"github.com/MrEthical07/goSession/store"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goSession APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config  Config
	redis   redis.UniversalClient
	carrier CarrierFactory

	built bool
}

// New returns a [Builder] preloaded with defaults: localhost Redis,
// sessions on dataset 0, notifications reserved on dataset 1, a 24 hour
// idle TTL, and a browser-session cookie.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis injects an existing Redis client, already selected onto the
// sessions dataset. When set, the Addr/DB fields of [RedisConfig] are not
// used to dial and [Manager.Close] leaves the client open.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithHashKey sets the cookie signing key used by the built-in carrier.
func (b *Builder) WithHashKey(key []byte) *Builder {
	b.config.Cookie.HashKey = key
	return b
}

// WithIdleTTL overrides the idle expiration window.
func (b *Builder) WithIdleTTL(ttl time.Duration) *Builder {
	b.config.Session.IdleTTL = ttl
	return b
}

// WithCarrierFactory replaces the built-in signed-cookie carrier. When set,
// no cookie hash key is required and the [CookieConfig] attributes are the
// factory's responsibility.
func (b *Builder) WithCarrierFactory(f CarrierFactory) *Builder {
	b.carrier = f
	return b
}

// WithMetricsEnabled toggles the operation counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and assembles the [Manager]. The store
// connection is established eagerly here, not lazily on first use, so a
// misconfigured deployment fails at startup rather than mid-request.
func (b *Builder) Build() (*Manager, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	carrier := b.carrier
	if carrier == nil {
		if len(cfg.Cookie.HashKey) == 0 {
			return nil, errors.New("cookie hash key required without a custom carrier factory")
		}

		codec, err := cookie.New(cfg.Cookie.HashKey, cookie.Config{
			Path:        cfg.Cookie.Path,
			Domain:      cfg.Cookie.Domain,
			Secure:      cfg.Cookie.Secure,
			HTTPOnly:    cfg.Cookie.HTTPOnly,
			SameSite:    cfg.Cookie.SameSite,
			Expires:     cfg.Cookie.Expires,
			ExpiresDays: cfg.Cookie.ExpiresDays,
		})
		if err != nil {
			return nil, err
		}
		carrier = func(w http.ResponseWriter, r *http.Request) Carrier {
			return codec.Bind(w, r)
		}
	}

	client := b.redis
	owns := false
	if client == nil {
		client = redis.NewClient(cfg.Redis.SessionOptions())
		owns = true
	}

	b.built = true

	return &Manager{
		config:     cfg,
		store:      store.New(client, cfg.Session.IdleTTL),
		carrier:    carrier,
		metrics:    NewMetrics(cfg.Metrics),
		redis:      client,
		ownsClient: owns,
	}, nil
}
