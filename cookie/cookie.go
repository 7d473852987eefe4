package cookie

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// ErrHashKeyTooShort is returned by [New] for signing keys under 32 bytes.
var ErrHashKeyTooShort = errors.New("cookie hash key must be at least 32 bytes")

const minHashKeySize = 32

// Config controls the transport attributes of issued cookies. The zero
// value issues a host-scoped, path "/" browser-session cookie.
type Config struct {
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite

	// Expires pins an absolute expiry; takes precedence over ExpiresDays.
	// With both zero the cookie carries no expiry and lives until the
	// client's browsing session ends.
	Expires     time.Time
	ExpiresDays int
}

func (c Config) normalize() Config {
	if c.Path == "" {
		c.Path = "/"
	}
	return c
}

// Codec signs and verifies cookie values. One Codec serves the whole
// process; [Codec.Bind] ties it to a single request/response pair.
type Codec struct {
	sc  *securecookie.SecureCookie
	cfg Config
}

// New creates a [Codec] signing values with hashKey (HMAC-SHA256 via
// securecookie). Values are authenticated, not encrypted: the identifier is
// tamper-evident but readable.
func New(hashKey []byte, cfg Config) (*Codec, error) {
	if len(hashKey) < minHashKeySize {
		return nil, ErrHashKeyTooShort
	}

	return &Codec{
		sc:  securecookie.New(hashKey, nil),
		cfg: cfg.normalize(),
	}, nil
}

// Bind returns a [Carrier] for one request/response pair.
func (c *Codec) Bind(w http.ResponseWriter, r *http.Request) *Carrier {
	return &Carrier{codec: c, w: w, r: r}
}

// Carrier reads and writes signed cookies on a single request/response
// pair. It satisfies the root package's Carrier interface.
type Carrier struct {
	codec *Codec
	w     http.ResponseWriter
	r     *http.Request
}

// Get returns the authenticated value of the named cookie. A missing
// cookie, a forged value, or a value signed under a different key all read
// as absent — verification failure is "no identifier yet", not an error.
func (c *Carrier) Get(name string) (string, bool) {
	ck, err := c.r.Cookie(name)
	if err != nil {
		return "", false
	}

	var value string
	if err := c.codec.sc.Decode(name, ck.Value, &value); err != nil {
		return "", false
	}
	return value, true
}

// Set writes the named cookie with a signed encoding of value on the
// outbound response, using the configured transport attributes.
func (c *Carrier) Set(name, value string) {
	encoded, err := c.codec.sc.Encode(name, value)
	if err != nil {
		// Encode only fails on codec misconfiguration, which New rejects.
		return
	}

	ck := c.codec.cookie(name, encoded)
	http.SetCookie(c.w, ck)
}

// Clear instructs the client to drop the named cookie.
func (c *Carrier) Clear(name string) {
	cfg := c.codec.cfg
	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		MaxAge:   -1,
		Secure:   cfg.Secure,
		HttpOnly: cfg.HTTPOnly,
		SameSite: cfg.SameSite,
	})
}

func (c *Codec) cookie(name, value string) *http.Cookie {
	cfg := c.cfg

	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		Secure:   cfg.Secure,
		HttpOnly: cfg.HTTPOnly,
		SameSite: cfg.SameSite,
	}

	switch {
	case !cfg.Expires.IsZero():
		ck.Expires = cfg.Expires
	case cfg.ExpiresDays > 0:
		ck.Expires = time.Now().AddDate(0, 0, cfg.ExpiresDays)
	}

	return ck
}
