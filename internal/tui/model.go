// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/agekey/internal/clipboard"
	"github.com/toeirei/agekey/internal/i18n"
	"github.com/toeirei/agekey/internal/keyfile"
	"github.com/toeirei/agekey/internal/keygen"
	"github.com/toeirei/agekey/internal/logging"
	"github.com/toeirei/agekey/internal/theme"
)

// Options configures the key form.
type Options struct {
	Generator keygen.Generator
	Clipboard clipboard.Writer
	// Theme must already be resolved (light or dark).
	Theme     theme.Mode
	OutputDir string
	// Context bounds every generation; nil means context.Background().
	Context context.Context
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// generatedMsg carries the outcome of one run of the external tool.
type generatedMsg struct {
	pair keygen.KeyPair
	err  error
}

// model is the single key form: two read-only key fields, a generate
// button and a status line.
type model struct {
	opts   Options
	styles theme.Styles
	keys   keyMap
	help   help.Model

	spinner spinner.Model
	input   textinput.Model

	pair  keygen.KeyPair
	focus keygen.Kind

	generating bool
	saving     bool

	status     string
	statusKind statusKind
	errMsg     string // non-empty while the error dialog is open

	width, height int
}

func newModel(opts Options) *model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.Default()
	}
	if opts.Theme != theme.Dark && opts.Theme != theme.Light {
		opts.Theme = theme.Detect(opts.Theme)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	in := textinput.New()
	in.CharLimit = 4096

	m := &model{
		opts:    opts,
		styles:  theme.New(opts.Theme),
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: sp,
		input:   in,
		focus:   keygen.Identity,
		status:  i18n.T("status.ready"),
	}
	m.applyStyles()
	return m
}

func (m *model) applyStyles() {
	m.spinner.Style = m.styles.Status.UnsetPadding()
	m.help.Styles.ShortKey = m.styles.Label
	m.help.Styles.FullKey = m.styles.Label
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.FullDesc = m.styles.Help
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case generatedMsg:
		return m.handleGenerated(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.errMsg != "":
			return m.handleDialogKeys(msg)
		case m.saving:
			return m.handleSaveKeys(msg)
		default:
			return m.handleFormKeys(msg)
		}
	}

	if m.saving {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Generate):
		return m.startGeneration()
	case key.Matches(msg, m.keys.Switch):
		if m.focus == keygen.Identity {
			m.focus = keygen.Recipient
		} else {
			m.focus = keygen.Identity
		}
	case key.Matches(msg, m.keys.Copy):
		m.copyFocused()
	case key.Matches(msg, m.keys.Save):
		return m.openSavePrompt()
	case key.Matches(msg, m.keys.Theme):
		m.styles = theme.New(theme.Toggle(m.styles.Mode))
		m.applyStyles()
		m.setStatus(statusInfo, i18n.T("status.theme", string(m.styles.Mode)))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *model) handleDialogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q", " ":
		m.errMsg = ""
	}
	return m, nil
}

func (m *model) handleSaveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeSavePrompt()
		m.setStatus(statusInfo, i18n.T("status.save_cancelled"))
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.input.Value())
		m.closeSavePrompt()
		if path == "" {
			m.setStatus(statusInfo, i18n.T("status.save_cancelled"))
			return m, nil
		}
		m.saveFocused(path)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startGeneration launches the external tool off the UI goroutine. Only one
// run is in flight at a time.
func (m *model) startGeneration() (tea.Model, tea.Cmd) {
	if m.generating {
		m.setStatus(statusInfo, i18n.T("status.busy"))
		return m, nil
	}
	m.generating = true
	m.setStatus(statusInfo, i18n.T("status.generating"))
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.opts.Context, m.opts.Generator))
}

func generateCmd(ctx context.Context, gen keygen.Generator) tea.Cmd {
	return func() tea.Msg {
		if gen == nil {
			return generatedMsg{err: keygen.ErrNotFound}
		}
		pair, err := gen.Generate(ctx)
		return generatedMsg{pair: pair, err: err}
	}
}

// handleGenerated replaces both fields in one step on success and leaves
// them untouched on failure.
func (m *model) handleGenerated(msg generatedMsg) (tea.Model, tea.Cmd) {
	m.generating = false
	if msg.err != nil {
		logging.Errorf("key generation failed: %v", msg.err)
		m.setStatus(statusError, i18n.T("status.error"))
		m.errMsg = errorText(msg.err)
		return m, nil
	}
	m.pair = msg.pair
	logging.Infof("generated key pair with recipient %s", msg.pair.Recipient)
	m.setStatus(statusSuccess, i18n.T("status.success"))
	return m, nil
}

func (m *model) copyFocused() {
	text := m.pair.Get(m.focus)
	if text == "" {
		m.setStatus(statusError, i18n.T("status.no_key"))
		return
	}
	if err := m.opts.Clipboard.WriteAll(text); err != nil {
		logging.Warnf("copy %s: %v", m.focus, err)
		m.setStatus(statusError, i18n.T("status.error"))
		m.errMsg = i18n.T("copy.failed", err)
		return
	}
	m.setStatus(statusSuccess, i18n.T("status.copied"))
}

func (m *model) openSavePrompt() (tea.Model, tea.Cmd) {
	if m.pair.Get(m.focus) == "" {
		m.setStatus(statusError, i18n.T("status.no_key"))
		return m, nil
	}
	m.saving = true
	m.input.SetValue(filepath.Join(m.opts.OutputDir, keyfile.DefaultName(m.focus)))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *model) closeSavePrompt() {
	m.saving = false
	m.input.Blur()
	m.input.Reset()
}

func (m *model) saveFocused(path string) {
	written, err := keyfile.Save(path, m.focus, m.pair.Get(m.focus))
	if err != nil {
		logging.Errorf("save %s to %s: %v", m.focus, path, err)
		m.setStatus(statusError, i18n.T("status.error"))
		m.errMsg = i18n.T("save.failed", err)
		return
	}
	logging.Infof("saved %s to %s", m.focus, written)
	m.setStatus(statusSuccess, i18n.T("status.saved", written))
}

func (m *model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}
