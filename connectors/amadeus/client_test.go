package amadeus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"voyager/utils"

	"golang.org/x/time/rate"
)

type fakeAmadeus struct {
	tokenHits int32
	dataHits  int32
	dataFunc  func(w http.ResponseWriter, hit int32)
}

func (f *fakeAmadeus) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/security/oauth2/token" {
			atomic.AddInt32(&f.tokenHits, 1)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"tok-1","expires_in":1799}`))
			return
		}
		hit := atomic.AddInt32(&f.dataHits, 1)
		f.dataFunc(w, hit)
	})
}

func okData(w http.ResponseWriter, _ int32) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"data":[{"id":"offer-1"}]}`))
}

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     "key",
		apiSecret:  "secret",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		retryCfg: &utils.RetryConfig{
			MaxRetries:      3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2.0,
			RetryIf:         utils.DefaultRetryCondition,
		},
	}
}

func TestTokenCachedAcrossRequests(t *testing.T) {
	fake := &fakeAmadeus{dataFunc: okData}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := testClient(srv.URL)
	var out []struct {
		ID string `json:"id"`
	}
	for i := 0; i < 3; i++ {
		if err := c.get(context.Background(), "/v2/shopping/flight-offers", url.Values{}, &out); err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
	}

	if hits := atomic.LoadInt32(&fake.tokenHits); hits != 1 {
		t.Errorf("token endpoint hit %d times, want 1", hits)
	}
	if hits := atomic.LoadInt32(&fake.dataHits); hits != 3 {
		t.Errorf("data endpoint hit %d times, want 3", hits)
	}
	if len(out) != 1 || out[0].ID != "offer-1" {
		t.Errorf("decoded data = %+v", out)
	}
}

func TestTokenRefreshedAfterExpiry(t *testing.T) {
	fake := &fakeAmadeus{dataFunc: okData}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := testClient(srv.URL)
	var out []struct{}
	if err := c.get(context.Background(), "/v2/shopping/flight-offers", url.Values{}, &out); err != nil {
		t.Fatalf("first get: %v", err)
	}

	c.mu.Lock()
	c.tokenExpiry = time.Now().Add(-time.Second)
	c.mu.Unlock()

	if err := c.get(context.Background(), "/v2/shopping/flight-offers", url.Values{}, &out); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if hits := atomic.LoadInt32(&fake.tokenHits); hits != 2 {
		t.Errorf("token endpoint hit %d times, want 2 after expiry", hits)
	}
}

func TestUnauthorizedClearsCachedToken(t *testing.T) {
	fake := &fakeAmadeus{dataFunc: func(w http.ResponseWriter, _ int32) {
		w.WriteHeader(http.StatusUnauthorized)
	}}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := testClient(srv.URL)
	var out []struct{}
	err := c.get(context.Background(), "/v2/shopping/flight-offers", url.Values{}, &out)
	if err == nil {
		t.Fatal("expected error on 401")
	}

	// A 401 is not transient; there must be no retry.
	if hits := atomic.LoadInt32(&fake.dataHits); hits != 1 {
		t.Errorf("data endpoint hit %d times, want 1", hits)
	}

	c.mu.Lock()
	cached := c.accessToken
	c.mu.Unlock()
	if cached != "" {
		t.Errorf("cached token = %q, want cleared after 401", cached)
	}
}

func TestRetriesTransientFailures(t *testing.T) {
	fake := &fakeAmadeus{dataFunc: func(w http.ResponseWriter, hit int32) {
		if hit < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		okData(w, hit)
	}}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := testClient(srv.URL)
	var out []struct {
		ID string `json:"id"`
	}
	if err := c.get(context.Background(), "/v2/shopping/flight-offers", url.Values{}, &out); err != nil {
		t.Fatalf("get should recover from 503s: %v", err)
	}
	if hits := atomic.LoadInt32(&fake.dataHits); hits != 3 {
		t.Errorf("data endpoint hit %d times, want 3", hits)
	}
	if len(out) != 1 || out[0].ID != "offer-1" {
		t.Errorf("decoded data = %+v", out)
	}
}

func TestLimiterHonorsContext(t *testing.T) {
	fake := &fakeAmadeus{dataFunc: okData}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := testClient(srv.URL)
	// Exhaust the burst so the next wait must block, then expire the ctx.
	c.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)
	if !c.limiter.Allow() {
		t.Fatal("burst should be available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	_, err := c.token(ctx)
	if err == nil {
		t.Fatal("expected limiter wait to fail on an expired context")
	}
	if hits := atomic.LoadInt32(&fake.tokenHits); hits != 0 {
		t.Errorf("token endpoint hit %d times, want 0", hits)
	}
}

func TestUnconfiguredClientIsNilSafe(t *testing.T) {
	var c *Client
	if c.Configured() {
		t.Error("nil client reports configured")
	}
	if (&Client{}).Configured() {
		t.Error("credential-less client reports configured")
	}

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = errors.New("panicked")
			}
		}()
		_ = (&Client{apiKey: "k"}).Configured()
	}()
	if err != nil {
		t.Error("Configured must not panic")
	}
}
