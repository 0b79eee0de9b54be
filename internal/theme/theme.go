package theme

import "github.com/charmbracelet/lipgloss"

// Token is a symbolic design token. Components refer to tokens only;
// the palette below is the single place where they become colours.
type Token string

const (
	TokenText     Token = "color.text"
	TokenMuted    Token = "color.muted"
	TokenSubtle   Token = "color.subtle"
	TokenBorder   Token = "color.border"
	TokenAccent   Token = "color.accent"
	TokenSurface  Token = "color.surface"
	TokenSkeleton Token = "color.skeleton"
	TokenShimmer  Token = "color.skeleton.shimmer"

	TokenDanger         Token = "color.danger"
	TokenDangerSurface  Token = "color.danger.surface"
	TokenWarning        Token = "color.warning"
	TokenWarningSurface Token = "color.warning.surface"
	TokenInfo           Token = "color.info"
	TokenInfoSurface    Token = "color.info.surface"
	TokenSuccess        Token = "color.success"
	TokenSuccessSurface Token = "color.success.surface"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var palette = map[Token]lipgloss.AdaptiveColor{
	TokenText:     {Dark: "#F8F9FA", Light: "#1A202C"},
	TokenMuted:    {Dark: "#868E96", Light: "#718096"},
	TokenSubtle:   {Dark: "#495057", Light: "#CBD5E0"},
	TokenBorder:   {Dark: "#495057", Light: "#E2E8F0"},
	TokenAccent:   {Dark: "#5B9BD5", Light: "#2B6CB0"},
	TokenSurface:  {Dark: "#212529", Light: "#F7FAFC"},
	TokenSkeleton: {Dark: "#343A40", Light: "#E2E8F0"},
	TokenShimmer:  {Dark: "#5C636A", Light: "#F1F5F9"},

	TokenDanger:         {Dark: "#FF6B6B", Light: "#C53030"},
	TokenDangerSurface:  {Dark: "#3B1F22", Light: "#FFF5F5"},
	TokenWarning:        {Dark: "#FFD93D", Light: "#B7791F"},
	TokenWarningSurface: {Dark: "#3A3320", Light: "#FFFFF0"},
	TokenInfo:           {Dark: "#5B9BD5", Light: "#2B6CB0"},
	TokenInfoSurface:    {Dark: "#1C2A3A", Light: "#EBF8FF"},
	TokenSuccess:        {Dark: "#6BCB77", Light: "#2F855A"},
	TokenSuccessSurface: {Dark: "#1E3323", Light: "#F0FFF4"},
}

// Color resolves a token to its adaptive colour. Unknown tokens resolve
// to the text colour so a bad token never breaks rendering.
func Color(t Token) lipgloss.AdaptiveColor {
	if c, ok := palette[t]; ok {
		return c
	}
	return palette[TokenText]
}

// Known reports whether t is defined in the palette.
func Known(t Token) bool {
	_, ok := palette[t]
	return ok
}

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Color(TokenText)).
	Background(Color(TokenAccent)).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(Color(TokenText)).
	Background(Color(TokenSubtle)).
	Padding(0, 1)

// PanelStyle wraps overlay content such as help and the command palette.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Color(TokenBorder))

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(Color(TokenAccent)).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(Color(TokenAccent))

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(Color(TokenMuted)).
	Italic(true)
