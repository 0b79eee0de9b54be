package banner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nhle/trade-alerts/internal/model"
)

func TestRenderUsesSeverityLabelWhenUntitled(t *testing.T) {
	tests := []struct {
		severity model.Severity
		want     string
	}{
		{model.SeverityError, "Error"},
		{model.SeverityWarning, "Warning"},
		{model.SeverityInfo, "Info"},
		{"", "Error"},
		{"bogus", "Error"},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			out := Banner{Severity: tt.severity, Message: "feed unavailable"}.Render(60)
			require.Contains(t, out, tt.want)
			require.Contains(t, out, "feed unavailable")
		})
	}
}

func TestRenderCustomTitle(t *testing.T) {
	out := Banner{Severity: model.SeverityWarning, Title: "Stale data"}.Render(60)
	require.Contains(t, out, "Stale data")
	require.Contains(t, out, "⚠")
	require.NotContains(t, out, "Warning")
}
