package dca

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/etnz/dca/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// priceServer serves 'body' with 'status' and records the last query.
func priceServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &query
}

// observeLogs redirects the global logger for the duration of the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Get()
	logger.Set(zap.New(core).Sugar())
	t.Cleanup(func() { logger.Set(previous) })
	return logs
}

func TestCoinGecko_Current(t *testing.T) {
	srv, query := priceServer(t, http.StatusOK, `{"bitcoin":{"usd":67187.5,"cny":486534}}`)

	got := NewCoinGecko(srv.Client(), srv.URL).Current(context.Background())
	if want := Dollars(67187.5); !got.Equal(want) {
		t.Errorf("Current() = %v, want %v", got, want)
	}
	if want := "ids=bitcoin&vs_currencies=usd%2Ccny"; *query != want {
		t.Errorf("query = %q, want %q", *query, want)
	}
}

func TestCoinGecko_Quote(t *testing.T) {
	srv, _ := priceServer(t, http.StatusOK, `{"bitcoin":{"usd":67187,"cny":486534}}`)

	q, err := NewCoinGecko(srv.Client(), srv.URL).Quote(context.Background())
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if len(q) != 2 || !q["USD"].Equal(Dollars(67187)) || !q["CNY"].Equal(M(486534, "CNY")) {
		t.Errorf("Quote() = %v", q)
	}
}

func TestCoinGecko_QuoteWithoutSecondaryCurrency(t *testing.T) {
	srv, _ := priceServer(t, http.StatusOK, `{"bitcoin":{"usd":67187}}`)

	q, err := NewCoinGecko(srv.Client(), srv.URL).Quote(context.Background())
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if _, ok := q["CNY"]; ok || len(q) != 1 {
		t.Errorf("Quote() = %v, want only USD", q)
	}
}

func TestCoinGecko_CurrentFallsBack(t *testing.T) {
	testCases := map[string]struct {
		status int
		body   string
	}{
		"server error":   {http.StatusInternalServerError, `{"bitcoin":{"usd":67187}}`},
		"rate limited":   {http.StatusTooManyRequests, `{"status":{"error_code":429}}`},
		"malformed":      {http.StatusOK, `{"bitcoin":`},
		"missing field":  {http.StatusOK, `{"bitcoin":{"eur":61000}}`},
		"missing coin":   {http.StatusOK, `{}`},
		"not a number":   {http.StatusOK, `{"bitcoin":{"usd":"67187"}}`},
		"not positive":   {http.StatusOK, `{"bitcoin":{"usd":0}}`},
		"not an object":  {http.StatusOK, `[]`},
		"empty response": {http.StatusOK, ``},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			logs := observeLogs(t)
			srv, _ := priceServer(t, tc.status, tc.body)

			got := NewCoinGecko(srv.Client(), srv.URL).Current(context.Background())
			if !got.Equal(FallbackPrice) {
				t.Errorf("Current() = %v, want fallback %v", got, FallbackPrice)
			}
			if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
				t.Errorf("want one warning, got %v", logs.All())
			}
		})
	}
}

func TestCoinGecko_CurrentUnreachable(t *testing.T) {
	observeLogs(t)
	srv, _ := priceServer(t, http.StatusOK, `{"bitcoin":{"usd":67187}}`)
	addr := srv.URL
	srv.Close()

	got := NewCoinGecko(nil, addr).Current(context.Background())
	if !got.Equal(FallbackPrice) {
		t.Errorf("Current() = %v, want fallback %v", got, FallbackPrice)
	}
}

func TestFixedPrice(t *testing.T) {
	var src PriceSource = FixedPrice(Dollars(30000))
	if got := src.Current(context.Background()); !got.Equal(Dollars(30000)) {
		t.Errorf("Current() = %v, want $30,000.00", got)
	}
}

func TestQuote_Currencies(t *testing.T) {
	q := Quote{"EUR": M(61000, "EUR"), "USD": Dollars(67000), "CNY": M(486534, "CNY")}
	got := q.Currencies()
	if want := []string{"USD", "CNY", "EUR"}; !slices.Equal(got, want) {
		t.Errorf("Currencies() = %v, want %v", got, want)
	}
}
