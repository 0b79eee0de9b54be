package config

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/nhle/trade-alerts/internal/model"
)

func newEditor(t *testing.T, path string) Model {
	t.Helper()
	m := New(*model.DefaultAppConfig(), path, 80, 24)
	m.Open()
	return m
}

func TestOpenPrefillsFromConfig(t *testing.T) {
	cfg := *model.DefaultAppConfig()
	cfg.Display.ToastDurationMS = 2500
	cfg.Display.SkeletonVariant = "bogus"

	m := New(cfg, "config.yaml", 80, 24)
	m.Open()

	require.Equal(t, "2500", m.fields.duration)
	require.Equal(t, "3", m.fields.max)
	require.Equal(t, "generic", m.fields.variant, "unknown variants resolve to the generic shape")
	require.Contains(t, m.View(), "Alert Settings")
	require.Contains(t, m.View(), "Toast duration")
}

func TestDisplayValidation(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*fields)
		wantErr string
	}{
		{"valid", func(*fields) {}, ""},
		{"empty duration", func(f *fields) { f.duration = " " }, "Toast duration is required"},
		{"short duration", func(f *fields) { f.duration = "100" }, "between 500 and 60000"},
		{"not a number", func(f *fields) { f.max = "lots" }, "Max toasts must be a number"},
		{"too many toasts", func(f *fields) { f.max = "50" }, "between 1 and 10"},
		{"zero columns", func(f *fields) { f.columns = "0" }, "Placeholder columns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newEditor(t, "config.yaml")
			tt.edit(m.fields)

			_, err := m.display()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSubmitSavesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	m := newEditor(t, path)
	m.fields.duration = "1500"
	m.fields.max = "6"
	m.fields.variant = "table"
	m.fields.count = "4"
	m.fields.columns = "2"

	m, cmd := m.submit()
	require.True(t, m.saving)
	require.NotNil(t, cmd)

	// Keys are ignored while the save is in flight.
	_, keyCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, keyCmd)

	m, cmd = m.Update(cmd())
	require.False(t, m.saving)
	require.Contains(t, m.View(), "Settings saved")

	saved, ok := cmd().(ConfigSavedMsg)
	require.True(t, ok)
	want := model.DisplayConfig{
		ToastDurationMS: 1500,
		MaxToasts:       6,
		SkeletonVariant: "table",
		SkeletonCount:   4,
		SkeletonColumns: 2,
	}
	require.Equal(t, want, saved.Config.Display)
	require.Equal(t, want, m.Config().Display)

	onDisk, err := model.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, want, onDisk.Display)
	require.Equal(t, saved.Config.Feed, onDisk.Feed, "other sections are written unchanged")
}

func TestSubmitInvalidKeepsForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m := newEditor(t, path)
	m.fields.max = "0"

	m, _ = m.submit()
	require.False(t, m.saving)
	require.NotNil(t, m.form)
	require.Contains(t, m.View(), "Max toasts must be between 1 and 10")

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestSaveErrorIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	m := newEditor(t, filepath.Join(blocker, "config.yaml"))
	m, cmd := m.submit()
	m, cmd = m.Update(cmd())

	require.False(t, m.saving)
	require.NotNil(t, m.form, "form is rebuilt so the user can retry")
	require.Contains(t, m.View(), "Error saving settings")
	require.Equal(t, 5000, m.Config().Display.ToastDurationMS)
	_ = cmd
}
