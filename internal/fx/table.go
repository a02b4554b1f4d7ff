package fx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Pair declares a configured conversion rate from Base to Quote.
type Pair struct {
	Base  string
	Quote string
	Rate  float64
}

type pairKey struct {
	from string
	to   string
}

// Table is an immutable bidirectional exchange-rate lookup over a closed set
// of supported currencies. Reciprocal rates are derived at construction, so
// every configured pair resolves in both directions.
type Table struct {
	currencies map[string]struct{}
	rates      map[pairKey]float64
}

// NewTable validates the currency set and configured pairs and builds the
// lookup. A pair referencing an unsupported currency, a non-positive rate, a
// self-pair, or a duplicate is a configuration error.
func NewTable(currencies []string, pairs []Pair) (*Table, error) {
	if len(currencies) == 0 {
		return nil, fmt.Errorf("at least one supported currency is required")
	}

	supported := make(map[string]struct{}, len(currencies))
	for _, code := range currencies {
		code = strings.TrimSpace(code)
		if code == "" {
			return nil, fmt.Errorf("empty currency code")
		}
		if _, dup := supported[code]; dup {
			return nil, fmt.Errorf("duplicate currency %s", code)
		}
		supported[code] = struct{}{}
	}

	rates := make(map[pairKey]float64, len(pairs)*2)
	for _, p := range pairs {
		if _, ok := supported[p.Base]; !ok {
			return nil, fmt.Errorf("pair %s/%s: unsupported currency %s", p.Base, p.Quote, p.Base)
		}
		if _, ok := supported[p.Quote]; !ok {
			return nil, fmt.Errorf("pair %s/%s: unsupported currency %s", p.Base, p.Quote, p.Quote)
		}
		if p.Base == p.Quote {
			return nil, fmt.Errorf("self pair %s/%s is not allowed", p.Base, p.Quote)
		}
		if p.Rate <= 0 {
			return nil, fmt.Errorf("pair %s/%s: rate must be positive, got %v", p.Base, p.Quote, p.Rate)
		}
		key := pairKey{from: p.Base, to: p.Quote}
		if _, dup := rates[key]; dup {
			return nil, fmt.Errorf("duplicate pair %s/%s", p.Base, p.Quote)
		}
		rates[key] = p.Rate
		rates[pairKey{from: p.Quote, to: p.Base}] = 1 / p.Rate
	}

	return &Table{currencies: supported, rates: rates}, nil
}

// Lookup returns the conversion rate from one currency to another. The second
// return value reports whether the pair is configured; absence means the
// conversion is unsupported, never a zero rate.
func (t *Table) Lookup(from, to string) (float64, bool) {
	rate, ok := t.rates[pairKey{from: from, to: to}]
	return rate, ok
}

// Supported reports whether the code belongs to the configured currency set.
func (t *Table) Supported(code string) bool {
	_, ok := t.currencies[code]
	return ok
}

// Currencies returns the supported currency codes in sorted order.
func (t *Table) Currencies() []string {
	codes := make([]string, 0, len(t.currencies))
	for code := range t.currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ParseCurrencies splits a comma-separated currency list, e.g. "USDx,EURx".
func ParseCurrencies(s string) []string {
	parts := strings.Split(s, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// ParsePairs decodes a comma-separated pair list in the form
// "BASE/QUOTE=RATE", e.g. "USDx/cNGN=1495.0,USDx/EURx=0.84".
func ParsePairs(s string) ([]Pair, error) {
	var pairs []Pair
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		spec, rateStr, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("invalid pair %q: missing rate", part)
		}
		base, quote, found := strings.Cut(spec, "/")
		if !found {
			return nil, fmt.Errorf("invalid pair %q: expected BASE/QUOTE=RATE", part)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate in pair %q: %w", part, err)
		}
		pairs = append(pairs, Pair{
			Base:  strings.TrimSpace(base),
			Quote: strings.TrimSpace(quote),
			Rate:  rate,
		})
	}
	return pairs, nil
}
