package skeleton

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nhle/trade-alerts/internal/model"
)

func TestGenerateZeroCountIsEmpty(t *testing.T) {
	blocks := Generate(model.PlaceholderRequest{Variant: "card", Count: 0})
	require.NotNil(t, blocks)
	require.Empty(t, blocks)

	require.Empty(t, Generate(model.PlaceholderRequest{Variant: "card", Count: -3}))
}

func TestGenerateStaggersDelays(t *testing.T) {
	blocks := Generate(model.PlaceholderRequest{Variant: "list", Count: 5})
	require.Len(t, blocks, 5)

	for i, b := range blocks {
		require.Equal(t, i, b.Index)
		require.Equal(t, VariantList, b.Variant)
		require.Equal(t, time.Duration(i)*100*time.Millisecond, b.Delay)
		if i > 0 {
			require.Greater(t, b.Delay, blocks[i-1].Delay)
		}
	}
}

func TestResolveSupportedVariants(t *testing.T) {
	for _, v := range []Variant{
		VariantCard, VariantList, VariantTable, VariantChart,
		VariantStat, VariantText, VariantAlert,
	} {
		require.Equal(t, v, Resolve(string(v)))
		require.NotEmpty(t, Shape(v))
	}
	require.Equal(t, VariantGeneric, Resolve(""))
	require.Equal(t, VariantGeneric, Resolve("hexagon"))
	require.Equal(t, Shape(VariantGeneric), Shape("hexagon"))
}

func TestShapeReturnsCopy(t *testing.T) {
	rows := Shape(VariantCard)
	rows[0] = -1
	require.NotEqual(t, -1, Shape(VariantCard)[0])
}

func TestViewRendersEveryBlock(t *testing.T) {
	m := New(model.PlaceholderRequest{Variant: "stat", Count: 4, Columns: 2}, 60)
	view := m.View()

	// Two rows of two bordered blocks: four top-left corners.
	require.Equal(t, 4, strings.Count(view, "╭"))
	require.Contains(t, view, "░")
}

func TestViewEmptyForZeroCount(t *testing.T) {
	m := New(model.PlaceholderRequest{Variant: "card"}, 60)
	require.Empty(t, m.View())
}

func TestUpdateIgnoresForeignTicks(t *testing.T) {
	a := New(model.PlaceholderRequest{Variant: "text", Count: 1}, 40)
	b := New(model.PlaceholderRequest{Variant: "text", Count: 1}, 40)

	next, cmd := a.Update(TickMsg{id: b.id, tag: b.tag})
	require.Nil(t, cmd)
	require.Equal(t, 0, next.frame)

	next, cmd = a.Update(TickMsg{id: a.id, tag: a.tag})
	require.NotNil(t, cmd)
	require.Equal(t, 1, next.frame)

	// A duplicate of the tick that was just consumed is stale now.
	again, cmd := next.Update(TickMsg{id: a.id, tag: a.tag})
	require.Nil(t, cmd)
	require.Equal(t, 1, again.frame)
}
