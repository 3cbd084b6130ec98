package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/config"
)

func TestPayloadCodecRoundTrip(t *testing.T) {
	hdr := http.Header{
		"Content-Type": []string{"application/json"},
		"X-Custom":     []string{"a", "b"},
	}
	body := []byte(`[{"name":"Gala"}]`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(bs)
	if !ok {
		t.Fatal("decode failed")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", gotHdr.Get("Content-Type"))
	}
	if got := gotHdr["X-Custom"]; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("X-Custom = %v", got)
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = %q", gotBody)
	}
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	for _, bs := range [][]byte{nil, {}, {0, 0, 0, 200}, {0, 0, 0, 200, 0, 0, 1, 0}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload(%v) accepted truncated input", bs)
		}
	}
}

func newCacheContext(t *testing.T, route, target string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetPath(route)
	return c
}

func TestCacheKeyStrategies(t *testing.T) {
	mk := func(strategy, target string) string {
		cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: strategy}
		return cacheKey(cfg, newCacheContext(t, "/events", target))
	}

	// Under the route strategy the query string is ignored.
	if mk("route", "/events?x=1") != mk("route", "/events?x=2") {
		t.Error("route strategy should ignore the query string")
	}
	// Under route_query distinct queries get distinct entries.
	if mk("route_query", "/events?x=1") == mk("route_query", "/events?x=2") {
		t.Error("route_query strategy should include the query string")
	}
}

func TestCacheKeySeparatesDocumentsOnParamRoutes(t *testing.T) {
	// Both requests match the same registered route; a shared key would
	// let a HIT replay one document's body for the other id.
	a := newCacheContext(t, "/events/:id", "/events/68b1c2d3e4f5a6b7c8d9e0f1")
	b := newCacheContext(t, "/events/:id", "/events/ffffffffffffffffffffffff")

	for _, strategy := range []string{"route", "route_query"} {
		cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: strategy}
		if cacheKey(cfg, a) == cacheKey(cfg, b) {
			t.Errorf("strategy %s: cache keys collide for two different event ids", strategy)
		}
	}
}

func TestDisabledCacheIsPassThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	if err := mw(next)(newCacheContext(t, "/events", "/events")); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if !called {
		t.Error("disabled cache blocked the handler")
	}
}
