package dca

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/dca/logger"
	"github.com/shopspring/decimal"
)

// FallbackPrice is the bitcoin price used whenever the current price cannot be fetched.
var FallbackPrice = Dollars(42500)

// DefaultPriceURL is the CoinGecko simple price endpoint.
const DefaultPriceURL = "https://api.coingecko.com/api/v3/simple/price"

// quoteCurrencies are the fiat currencies requested, the first one is the
// currency of the tracker.
var quoteCurrencies = []string{"usd", "cny"}

// PriceSource provides the current bitcoin price.
type PriceSource interface {
	Current(ctx context.Context) Money
}

// CoinGecko fetches the bitcoin price from the CoinGecko public API.
type CoinGecko struct {
	client  *http.Client
	baseURL string
}

// NewCoinGecko returns a source for 'baseURL', DefaultPriceURL if empty.
// A nil client is the http.DefaultClient.
func NewCoinGecko(client *http.Client, baseURL string) *CoinGecko {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultPriceURL
	}
	return &CoinGecko{client: client, baseURL: baseURL}
}

/*
	{
	  "bitcoin": {
	    "usd": 67187,
	    "cny": 486534
	  }
	}
*/

// Quote is the bitcoin price in each fiat currency returned by the API,
// keyed by upper case ISO code.
type Quote map[string]Money

// Currencies returns the quote currencies, USD first then alphabetically.
func (q Quote) Currencies() []string {
	curs := slices.Sorted(maps.Keys(q))
	slices.SortStableFunc(curs, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == USD:
			return -1
		case b == USD:
			return 1
		}
		return 0
	})
	return curs
}

// Quote performs a single request and returns every fiat price found.
// It fails if the USD price is missing.
func (c *CoinGecko) Quote(ctx context.Context) (Quote, error) {
	q := url.Values{}
	q.Set("ids", "bitcoin")
	q.Set("vs_currencies", strings.Join(quoteCurrencies, ","))
	addr := c.baseURL + "?" + q.Encode()

	var jobj any
	if err := jwget(ctx, c.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error fetching bitcoin price: %w", err)
	}

	quote := make(Quote)
	for i, vs := range quoteCurrencies {
		price, err := extractPrice(jobj, "$.bitcoin."+vs)
		if err != nil {
			if i == 0 {
				return nil, err
			}
			continue
		}
		cur := strings.ToUpper(vs)
		quote[cur] = M(price, cur)
	}
	return quote, nil
}

// extractPrice reads a positive number at 'path'.
func extractPrice(jobj any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("error parsing %q: not a number %v", path, jval)
	}
	if val <= 0 {
		return decimal.Zero, fmt.Errorf("error parsing %q: not a positive price %v", path, val)
	}
	return decimal.NewFromFloat(val), nil
}

// Current returns the current bitcoin price in USD, or FallbackPrice if it
// cannot be fetched for any reason.
func (c *CoinGecko) Current(ctx context.Context) Money {
	quote, err := c.Quote(ctx)
	if err != nil {
		logger.Get().Warnw("cannot fetch bitcoin price, using fallback", "fallback", FallbackPrice.String(), "error", err)
		return FallbackPrice
	}
	return quote[USD]
}

// FixedPrice is a PriceSource that always returns the same price.
type FixedPrice Money

func (p FixedPrice) Current(context.Context) Money { return Money(p) }
