package cookie

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var testHashKey = []byte("0123456789abcdef0123456789abcdef")

func newCodecTest(t *testing.T, cfg Config) *Codec {
	t.Helper()
	codec, err := New(testHashKey, cfg)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return codec
}

// roundTrip writes name=value on a recorder and returns a request carrying
// the resulting cookie, simulating the client's next request.
func roundTrip(t *testing.T, codec *Codec, name, value string) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	codec.Bind(w, r).Set(name, value)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	return next
}

func TestSignedRoundTrip(t *testing.T) {
	codec := newCodecTest(t, Config{})

	r := roundTrip(t, codec, "sid", "opaque-identifier")

	got, ok := codec.Bind(httptest.NewRecorder(), r).Get("sid")
	if !ok {
		t.Fatal("expected signed value to verify")
	}
	if got != "opaque-identifier" {
		t.Fatalf("expected opaque-identifier, got %q", got)
	}
}

func TestTamperedValueReadsAsAbsent(t *testing.T) {
	codec := newCodecTest(t, Config{})

	r := roundTrip(t, codec, "sid", "opaque-identifier")
	ck := r.Cookies()[0]

	tampered := httptest.NewRequest(http.MethodGet, "/", nil)
	tampered.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value + "x"})

	if _, ok := codec.Bind(httptest.NewRecorder(), tampered).Get("sid"); ok {
		t.Fatal("tampered value must read as absent")
	}
}

func TestValueSignedUnderDifferentKeyReadsAsAbsent(t *testing.T) {
	codec := newCodecTest(t, Config{})

	other, err := New([]byte("ffffffffffffffffffffffffffffffff"), Config{})
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	r := roundTrip(t, other, "sid", "opaque-identifier")
	if _, ok := codec.Bind(httptest.NewRecorder(), r).Get("sid"); ok {
		t.Fatal("foreign signature must read as absent")
	}
}

func TestMissingCookieReadsAsAbsent(t *testing.T) {
	codec := newCodecTest(t, Config{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := codec.Bind(httptest.NewRecorder(), r).Get("sid"); ok {
		t.Fatal("missing cookie must read as absent")
	}
}

func TestShortHashKeyRejected(t *testing.T) {
	if _, err := New([]byte("too-short"), Config{}); !errors.Is(err, ErrHashKeyTooShort) {
		t.Fatalf("expected ErrHashKeyTooShort, got %v", err)
	}
}

func TestDefaultCookieIsBrowserSessionScoped(t *testing.T) {
	codec := newCodecTest(t, Config{HTTPOnly: true})

	w := httptest.NewRecorder()
	codec.Bind(w, httptest.NewRequest(http.MethodGet, "/", nil)).Set("sid", "v")

	ck := w.Result().Cookies()[0]
	if !ck.Expires.IsZero() || ck.MaxAge != 0 {
		t.Fatalf("expected no expiry on a session cookie, got %v/%d", ck.Expires, ck.MaxAge)
	}
	if ck.Path != "/" {
		t.Fatalf("expected normalized path /, got %q", ck.Path)
	}
	if !ck.HttpOnly {
		t.Fatal("expected HttpOnly to pass through")
	}
}

func TestExpiresDaysSetsRelativeExpiry(t *testing.T) {
	codec := newCodecTest(t, Config{ExpiresDays: 7})

	w := httptest.NewRecorder()
	codec.Bind(w, httptest.NewRequest(http.MethodGet, "/", nil)).Set("sid", "v")

	ck := w.Result().Cookies()[0]
	want := time.Now().AddDate(0, 0, 7)
	if ck.Expires.Before(want.Add(-time.Minute)) || ck.Expires.After(want.Add(time.Minute)) {
		t.Fatalf("expected expiry about %v, got %v", want, ck.Expires)
	}
}

func TestAbsoluteExpiresWinsOverDays(t *testing.T) {
	pinned := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)
	codec := newCodecTest(t, Config{Expires: pinned, ExpiresDays: 7})

	w := httptest.NewRecorder()
	codec.Bind(w, httptest.NewRequest(http.MethodGet, "/", nil)).Set("sid", "v")

	ck := w.Result().Cookies()[0]
	if !ck.Expires.Equal(pinned) {
		t.Fatalf("expected pinned expiry %v, got %v", pinned, ck.Expires)
	}
}

func TestClearExpiresTheCookie(t *testing.T) {
	codec := newCodecTest(t, Config{})

	w := httptest.NewRecorder()
	codec.Bind(w, httptest.NewRequest(http.MethodGet, "/", nil)).Clear("sid")

	ck := w.Result().Cookies()[0]
	if ck.MaxAge != -1 || ck.Value != "" {
		t.Fatalf("expected deletion cookie, got MaxAge=%d Value=%q", ck.MaxAge, ck.Value)
	}
}
