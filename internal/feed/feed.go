// Package feed loads caller-supplied alert and trade fixtures and
// normalises them into model values at the boundary.
package feed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/nhle/trade-alerts/internal/model"
)

// Snapshot is everything the dashboard renders.
type Snapshot struct {
	Alerts []model.Alert
	Trades []model.Trade
}

// Field aliases, authoritative name first. Upstream producers disagree
// on naming; only the first present key is read.
var (
	categoryKeys = []string{"alert_type", "type", "category"}
	tickerKeys   = []string{"ticker", "symbol"}
	labelKeys    = []string{"label", "title"}
	messageKeys  = []string{"message", "body"}
	timeKeys     = []string{"created_at", "timestamp"}
)

// Normalize converts a loosely typed alert record into a model.Alert.
// Missing fields become zero values; it never fails.
func Normalize(raw map[string]any) model.Alert {
	a := model.Alert{
		ID:       cast.ToString(raw["id"]),
		Category: model.Category(strings.ToUpper(strings.TrimSpace(first(raw, categoryKeys)))),
		Ticker:   strings.ToUpper(strings.TrimSpace(first(raw, tickerKeys))),
		Label:    first(raw, labelKeys),
		Message:  first(raw, messageKeys),
	}
	for _, k := range timeKeys {
		if v, ok := lookup(raw, k); ok {
			if ts, err := cast.ToTimeE(v); err == nil {
				a.CreatedAt = ts
			}
			break
		}
	}
	return a
}

// NormalizeTrade converts a loosely typed trade record. An unparseable
// return is an error because the pill would otherwise show a made-up
// number.
func NormalizeTrade(raw map[string]any) (model.Trade, error) {
	t := model.Trade{
		Ticker: strings.ToUpper(strings.TrimSpace(first(raw, tickerKeys))),
		Win:    cast.ToBool(raw["win"]),
	}

	pct := first(raw, []string{"return_pct", "pct"})
	if pct == "" {
		pct = "0"
	}
	d, err := decimal.NewFromString(pct)
	if err != nil {
		return model.Trade{}, fmt.Errorf("trade %s: parsing return %q: %w", t.Ticker, pct, err)
	}
	t.ReturnPct = d

	if _, ok := lookup(raw, "win"); !ok {
		t.Win = d.IsPositive()
	}
	return t, nil
}

// Load reads a YAML, JSON or TOML fixture with top-level "alerts" and
// "trades" lists. Alerts are returned newest first.
func Load(path string) (Snapshot, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Snapshot{}, fmt.Errorf("reading feed %s: %w", path, err)
	}

	var snap Snapshot
	for _, raw := range records(v.Get("alerts")) {
		snap.Alerts = append(snap.Alerts, Normalize(raw))
	}
	for i, raw := range records(v.Get("trades")) {
		t, err := NormalizeTrade(raw)
		if err != nil {
			return Snapshot{}, fmt.Errorf("feed %s: trade %d: %w", path, i, err)
		}
		snap.Trades = append(snap.Trades, t)
	}

	sortNewestFirst(snap.Alerts)
	return snap, nil
}

// records converts a decoded list into string-keyed maps, skipping
// entries that are not maps.
func records(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		m, err := cast.ToStringMapE(it)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// lookup finds key case-insensitively; viper lower-cases nested keys.
func lookup(raw map[string]any, key string) (any, bool) {
	if v, ok := raw[key]; ok && v != nil {
		return v, true
	}
	for k, v := range raw {
		if v != nil && strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func first(raw map[string]any, keys []string) string {
	for _, k := range keys {
		if v, ok := lookup(raw, k); ok {
			return cast.ToString(v)
		}
	}
	return ""
}

func sortNewestFirst(alerts []model.Alert) {
	slices.SortStableFunc(alerts, func(a, b model.Alert) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
