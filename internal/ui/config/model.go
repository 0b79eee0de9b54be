// Package config is the alert settings editor. It edits the display
// section of the application config and writes it back to disk.
package config

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"

	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/theme"
	"github.com/nhle/trade-alerts/internal/ui/skeleton"
)

// Limits accepted by the form.
const (
	minToastMS   = 500
	maxToastMS   = 60000
	maxToasts    = 10
	maxSkeletons = 20
	maxColumns   = 4
)

// ConfigSavedMsg signals the settings were written to disk.
type ConfigSavedMsg struct {
	Config model.AppConfig
}

// configSavedInternalMsg is sent after the save command finishes.
type configSavedInternalMsg struct {
	cfg model.AppConfig
	err error
}

type fields struct {
	duration string
	max      string
	variant  string
	count    string
	columns  string
}

// Model is the Bubble Tea model for the settings form.
type Model struct {
	path string
	cfg  model.AppConfig
	form *huh.Form

	// Form field values. huh binds to these through pointers, so they
	// live behind a pointer shared by every copy of the Model.
	fields *fields

	saving    bool
	statusMsg string

	width, height int
}

// New creates a settings editor for cfg that saves to path.
func New(cfg model.AppConfig, path string, width, height int) Model {
	return Model{
		path:   path,
		cfg:    cfg,
		fields: &fields{},
		width:  width,
		height: height,
	}
}

// Open resets the fields from the current config and starts the form.
func (m *Model) Open() tea.Cmd {
	d := m.cfg.Display
	*m.fields = fields{
		duration: cast.ToString(d.ToastDurationMS),
		max:      cast.ToString(d.MaxToasts),
		variant:  string(skeleton.Resolve(d.SkeletonVariant)),
		count:    cast.ToString(d.SkeletonCount),
		columns:  cast.ToString(d.SkeletonColumns),
	}
	m.statusMsg = ""
	m.saving = false

	m.form = m.buildForm()
	return m.form.Init()
}

// Config returns the config the editor last saved or was created with.
func (m Model) Config() model.AppConfig { return m.cfg }

// Update handles messages for the settings form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configSavedInternalMsg:
		m.saving = false
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error saving settings: %v", msg.err)
			cmd := m.restart()
			return m, cmd
		}
		m.cfg = msg.cfg
		m.form = nil
		m.statusMsg = "Settings saved"
		saved := msg.cfg
		return m, func() tea.Msg { return ConfigSavedMsg{Config: saved} }
	}

	if m.form == nil || m.saving {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submit()
	case huh.StateAborted:
		cmd := m.restart()
		return m, cmd
	}
	return m, cmd
}

// submit converts the form fields and saves them.
func (m Model) submit() (Model, tea.Cmd) {
	display, err := m.display()
	if err != nil {
		m.statusMsg = err.Error()
		cmd := m.restart()
		return m, cmd
	}

	cfg := m.cfg
	cfg.Display = display
	m.saving = true
	return m, saveConfig(m.path, cfg)
}

// restart rebuilds the form so it can be submitted again.
func (m *Model) restart() tea.Cmd {
	m.form = m.buildForm()
	return m.form.Init()
}

// display parses the form fields into a DisplayConfig.
func (m Model) display() (model.DisplayConfig, error) {
	var d model.DisplayConfig
	var err error

	if d.ToastDurationMS, err = parseInt("Toast duration", m.fields.duration, minToastMS, maxToastMS); err != nil {
		return d, err
	}
	if d.MaxToasts, err = parseInt("Max toasts", m.fields.max, 1, maxToasts); err != nil {
		return d, err
	}
	if d.SkeletonCount, err = parseInt("Placeholder count", m.fields.count, 0, maxSkeletons); err != nil {
		return d, err
	}
	if d.SkeletonColumns, err = parseInt("Placeholder columns", m.fields.columns, 1, maxColumns); err != nil {
		return d, err
	}
	d.SkeletonVariant = string(skeleton.Resolve(m.fields.variant))
	return d, nil
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Toast duration (ms)").
				Description("How long a toast stays before it dismisses itself").
				Placeholder("5000").
				Value(&m.fields.duration).
				Validate(validateInt("Toast duration", minToastMS, maxToastMS)),
			huh.NewInput().
				Title("Max toasts").
				Description("Older toasts dismiss once this many are showing").
				Placeholder("3").
				Value(&m.fields.max).
				Validate(validateInt("Max toasts", 1, maxToasts)),
		).Title("Toasts"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Placeholder shape").
				Options(variantOptions()...).
				Value(&m.fields.variant),
			huh.NewInput().
				Title("Placeholder count").
				Placeholder("5").
				Value(&m.fields.count).
				Validate(validateInt("Placeholder count", 0, maxSkeletons)),
			huh.NewInput().
				Title("Placeholder columns").
				Placeholder("1").
				Value(&m.fields.columns).
				Validate(validateInt("Placeholder columns", 1, maxColumns)),
		).Title("Loading placeholders"),
	).WithWidth(m.formWidth()).WithShowHelp(true)
}

func variantOptions() []huh.Option[string] {
	variants := []skeleton.Variant{
		skeleton.VariantAlert,
		skeleton.VariantCard,
		skeleton.VariantList,
		skeleton.VariantTable,
		skeleton.VariantChart,
		skeleton.VariantStat,
		skeleton.VariantText,
		skeleton.VariantGeneric,
	}
	opts := make([]huh.Option[string], len(variants))
	for i, v := range variants {
		opts[i] = huh.NewOption(string(v), string(v))
	}
	return opts
}

// View renders the settings form.
func (m Model) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Color(theme.TokenText)).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("Alert Settings"))
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.form.View())
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Color(theme.TokenWarning)).
			Italic(true).
			Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Color(theme.TokenMuted)).
		Render("saved to " + m.path + " | esc back"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Height(m.height).
		Render(b.String())
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth())
	}
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

// saveConfig returns a command that writes cfg to path.
func saveConfig(path string, cfg model.AppConfig) tea.Cmd {
	return func() tea.Msg {
		err := model.SaveConfig(path, &cfg)
		return configSavedInternalMsg{cfg: cfg, err: err}
	}
}

// --- Validators ---

func parseInt(field, s string, lo, hi int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	n, err := cast.ToIntE(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%s must be between %d and %d", field, lo, hi)
	}
	return n, nil
}

func validateInt(field string, lo, hi int) func(string) error {
	return func(s string) error {
		_, err := parseInt(field, s, lo, hi)
		return err
	}
}
