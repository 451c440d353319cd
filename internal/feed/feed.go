// Package feed defines the quote feed consumed by the live-prices views.
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kirbygold/goldsuite/internal/fixtures"
)

// Quote is a single instrument price.
type Quote struct {
	Instrument    string          `json:"instrument"`
	Bid           decimal.Decimal `json:"bid"`
	Ask           decimal.Decimal `json:"ask"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Feed yields the latest quotes.
type Feed interface {
	Quotes(ctx context.Context) ([]Quote, error)
}

// FixtureFeed replays the fixture quote tables. Prices never move; only the
// timestamp follows the clock.
type FixtureFeed struct {
	source fixtures.Source
	now    func() time.Time
}

// NewFixtureFeed creates a feed over source. A nil clock uses time.Now.
func NewFixtureFeed(source fixtures.Source, now func() time.Time) *FixtureFeed {
	if now == nil {
		now = time.Now
	}
	return &FixtureFeed{source: source, now: now}
}

func (f *FixtureFeed) Quotes(ctx context.Context) ([]Quote, error) {
	c, err := f.source.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fixtures: %w", err)
	}
	ts := f.now().UTC()

	quotes := make([]Quote, 0, len(c.Gold)+len(c.Silver)+len(c.Watches))
	for _, q := range c.Gold {
		quotes = append(quotes, fromFixture("XAU-"+q.Grade, q, ts))
	}
	for _, q := range c.Silver {
		quotes = append(quotes, fromFixture("XAG-"+q.Grade, q, ts))
	}
	for _, w := range c.Watches {
		// Indices have a single value, quoted on both sides.
		quotes = append(quotes, Quote{
			Instrument:    w.Name,
			Bid:           w.Value,
			Ask:           w.Value,
			ChangePercent: w.Daily,
			Timestamp:     ts,
		})
	}
	return quotes, nil
}

func fromFixture(instrument string, q fixtures.Quote, ts time.Time) Quote {
	return Quote{
		Instrument:    instrument,
		Bid:           q.Bid,
		Ask:           q.Ask,
		ChangePercent: q.Change,
		Timestamp:     ts,
	}
}
