package tabs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPrevWrap(t *testing.T) {
	m := New("Alerts", "Trades", "Resources")
	require.Equal(t, "Alerts", m.ActiveTitle())

	m.Next()
	m.Next()
	require.Equal(t, "Resources", m.ActiveTitle())
	m.Next()
	require.Equal(t, "Alerts", m.ActiveTitle())

	m.Prev()
	require.Equal(t, "Resources", m.ActiveTitle())
}

func TestSetAndSelect(t *testing.T) {
	m := New("Alerts", "Trades")

	m.Set(5)
	require.Equal(t, 0, m.Active())
	m.Set(1)
	require.Equal(t, 1, m.Active())

	require.True(t, m.Select("Alerts"))
	require.Equal(t, 0, m.Active())
	require.False(t, m.Select("Nope"))
	require.Equal(t, 0, m.Active())
}

func TestEmptyTabs(t *testing.T) {
	var m Model
	m.Next()
	m.Prev()
	require.Empty(t, m.ActiveTitle())
	require.Empty(t, strings.TrimSpace(m.View(40)))
}

func TestViewListsTitlesInOrder(t *testing.T) {
	m := New("Alerts", "Trades", "Resources")
	view := m.View(120)
	a := strings.Index(view, "Alerts")
	b := strings.Index(view, "Trades")
	c := strings.Index(view, "Resources")
	require.True(t, a >= 0 && a < b && b < c)
}

func TestTitlesIsCopy(t *testing.T) {
	m := New("Alerts")
	m.Titles()[0] = "x"
	require.Equal(t, "Alerts", m.ActiveTitle())
}
