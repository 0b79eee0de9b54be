package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/model"
)

// Descriptor is the visual treatment of one variant. It only holds
// symbolic tokens; Style turns them into a lipgloss style.
type Descriptor struct {
	Icon       string
	Label      string
	Foreground Token
	Background Token
	Border     Token
}

// Style returns a lipgloss style built from the descriptor's tokens.
func (d Descriptor) Style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Color(d.Foreground)).
		Background(Color(d.Background))
}

// BorderStyle returns a rounded border in the descriptor's border colour.
func (d Descriptor) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Color(d.Border))
}

// Severity descriptors.
var (
	severityError = Descriptor{
		Icon: "✖", Label: "Error",
		Foreground: TokenDanger, Background: TokenDangerSurface, Border: TokenDanger,
	}
	severityWarning = Descriptor{
		Icon: "⚠", Label: "Warning",
		Foreground: TokenWarning, Background: TokenWarningSurface, Border: TokenWarning,
	}
	severityInfo = Descriptor{
		Icon: "ℹ", Label: "Info",
		Foreground: TokenInfo, Background: TokenInfoSurface, Border: TokenInfo,
	}
)

// SeverityStyle returns the banner treatment for a severity. Anything
// that is not warning or info, including the empty string, is treated
// as an error.
func SeverityStyle(s model.Severity) Descriptor {
	switch s {
	case model.SeverityWarning:
		return severityWarning
	case model.SeverityInfo:
		return severityInfo
	default:
		return severityError
	}
}

// Trade outcome descriptors.
var (
	outcomeWin = Descriptor{
		Icon: "▲", Label: "Win",
		Foreground: TokenSuccess, Background: TokenSuccessSurface, Border: TokenSuccess,
	}
	outcomeLoss = Descriptor{
		Icon: "▼", Label: "Loss",
		Foreground: TokenDanger, Background: TokenDangerSurface, Border: TokenDanger,
	}
)

// OutcomeStyle returns the pill treatment for a trade result.
func OutcomeStyle(win bool) Descriptor {
	if win {
		return outcomeWin
	}
	return outcomeLoss
}

// Alert category descriptors.
var (
	categoryEntry = Descriptor{
		Icon: "↗", Label: string(model.CategoryEntry),
		Foreground: TokenSuccess, Background: TokenSuccessSurface, Border: TokenSuccess,
	}
	categoryUpdate = Descriptor{
		Icon: "↻", Label: string(model.CategoryUpdate),
		Foreground: TokenInfo, Background: TokenInfoSurface, Border: TokenInfo,
	}
	categoryExit = Descriptor{
		Icon: "↘", Label: string(model.CategoryExit),
		Foreground: TokenWarning, Background: TokenWarningSurface, Border: TokenWarning,
	}
)

// CategoryStyle returns the toast treatment for an alert category.
// Unknown categories get the exit styling with the raw tag as label.
func CategoryStyle(c model.Category) Descriptor {
	switch c {
	case model.CategoryEntry:
		return categoryEntry
	case model.CategoryUpdate:
		return categoryUpdate
	case model.CategoryExit:
		return categoryExit
	default:
		d := categoryExit
		d.Label = string(c)
		return d
	}
}
