package gelbook

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/etnz/gelbook/nbg"
)

// ErrUnknownCurrency is returned when a requested code is not part of the
// published rates for a date.
var ErrUnknownCurrency = errors.New("currency not published")

// RateFetcher fetches the published rates for an ISO-8601 date string.
// *nbg.Client implements it.
type RateFetcher interface {
	Rates(ctx context.Context, day string) ([]nbg.Currency, error)
}

// RateService resolves daily rates, caching each fetched day in Storage under
// a "currencyRates_<date>" key. Rates for a past date never change, so a
// cache hit skips the network entirely.
type RateService struct {
	Storage Storage
	Fetcher RateFetcher
}

// Rates returns the published currencies for day, from cache when possible.
func (s *RateService) Rates(ctx context.Context, day Date) ([]nbg.Currency, error) {
	key := ratesKeyPrefix + day.String()

	var cached []nbg.Currency
	if ok, err := s.Storage.Get(key, &cached); err == nil && ok {
		return cached, nil
	}
	// An unreadable cache entry is not fatal, refetch over it.

	currencies, err := s.Fetcher.Rates(ctx, day.String())
	if err != nil {
		return nil, err
	}
	if err := s.Storage.Set(key, currencies); err != nil {
		return nil, fmt.Errorf("could not cache rates for %s: %w", day, err)
	}
	return currencies, nil
}

// Currency resolves one currency code for day. The local currency is not part
// of the published list and resolves to the identity rate without a fetch.
func (s *RateService) Currency(ctx context.Context, day Date, code string) (nbg.Currency, error) {
	if code == LocalCurrency {
		return nbg.Currency{
			Code:     LocalCurrency,
			Name:     "Georgian Lari",
			Rate:     decimal.NewFromInt(1),
			Quantity: decimal.NewFromInt(1),
		}, nil
	}
	currencies, err := s.Rates(ctx, day)
	if err != nil {
		return nbg.Currency{}, err
	}
	cur, ok := nbg.Find(currencies, code)
	if !ok {
		return nbg.Currency{}, fmt.Errorf("%w: %q on %s", ErrUnknownCurrency, code, day)
	}
	return cur, nil
}

// ClearCache removes every cached rates day and returns how many were removed.
func (s *RateService) ClearCache() (int, error) {
	keys, err := s.Storage.Keys(ratesKeyPrefix)
	if err != nil {
		return 0, err
	}
	for i, key := range keys {
		if err := s.Storage.Remove(key); err != nil {
			return i, err
		}
	}
	return len(keys), nil
}
