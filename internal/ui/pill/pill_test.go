package pill

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nhle/trade-alerts/internal/model"
)

func TestPillText(t *testing.T) {
	win := Pill{Trade: model.Trade{Ticker: "AAPL", ReturnPct: decimal.RequireFromString("12.5"), Win: true}}
	require.Equal(t, "▲ AAPL +12.50%", win.Text())

	loss := Pill{Trade: model.Trade{Ticker: "TSLA", ReturnPct: decimal.RequireFromString("-4.2"), Win: false}}
	require.Equal(t, "▼ TSLA -4.20%", loss.Text())
}

func TestPillOutcomeComesFromFlag(t *testing.T) {
	// Break-even trades are classified by the caller, not by the sign.
	p := Pill{Trade: model.Trade{Ticker: "MSFT", ReturnPct: decimal.Zero, Win: true}}
	require.True(t, strings.HasPrefix(p.Text(), "▲"))
	require.Contains(t, p.Render(), "MSFT")
}

func TestRowWraps(t *testing.T) {
	var trades []model.Trade
	for _, tk := range []string{"AAPL", "MSFT", "NVDA", "AMZN"} {
		trades = append(trades, model.Trade{Ticker: tk, ReturnPct: decimal.NewFromInt(1), Win: true})
	}

	wide := Row(trades, 200)
	require.Equal(t, 1, strings.Count(wide, "\n")+1)

	narrow := Row(trades, 20)
	require.Greater(t, strings.Count(narrow, "\n")+1, 1)
	for _, tk := range []string{"AAPL", "MSFT", "NVDA", "AMZN"} {
		require.Contains(t, narrow, tk)
	}

	require.Empty(t, Row(nil, 80))
}
