// Package tui implements the interactive annotate session. It is a
// keyboard-first stand-in for a pointing device: arrows move a placement
// cursor in image pixel space, f drops the current body part there, d/a
// walk the image list, and ctrl+s persists the session.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/poseek/poseek/pkg/types"
)

// cursorStep is the arrow-key increment in pixels.
const cursorStep = 5

// saveDoneMsg reports the outcome of an async save.
type saveDoneMsg struct{ err error }

// Saver persists the session when the user hits ctrl+s.
type Saver func(sess *types.Session) error

// App is the Bubble Tea model for an annotate session.
type App struct {
	sess  *types.Session
	saver Saver

	width  int
	height int

	// Placement cursor in image pixel space.
	cursorX float64
	cursorY float64

	// partIdx is the body part the next f keypress places.
	partIdx int

	// selected marks body parts staged for deletion on the current image.
	selected map[string]bool

	dirty  bool
	status string
	err    error

	keys  KeyMap
	theme Theme

	quitting bool
}

// NewApp creates an annotate session over a populated session.
func NewApp(sess *types.Session, saver Saver) App {
	return App{
		sess:     sess,
		saver:    saver,
		selected: make(map[string]bool),
		keys:     DefaultKeyMap(),
		theme:    DefaultTheme(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case saveDoneMsg:
		if msg.err != nil {
			a.err = msg.err
			a.status = ""
		} else {
			a.dirty = false
			a.err = nil
			a.status = "saved"
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.AddPoint):
		a.addPoint()
		return a, nil

	case key.Matches(msg, a.keys.NextImage):
		a.switchImage(func() (string, error) { return a.sess.Next() })
		return a, nil

	case key.Matches(msg, a.keys.PrevImage):
		a.switchImage(func() (string, error) { return a.sess.Prev() })
		return a, nil

	case key.Matches(msg, a.keys.Save):
		saver, sess := a.saver, a.sess
		return a, func() tea.Msg {
			return saveDoneMsg{err: saver(sess)}
		}

	case key.Matches(msg, a.keys.Delete):
		a.deleteSelected()
		return a, nil

	case key.Matches(msg, a.keys.ClearSelect):
		a.selected = make(map[string]bool)
		a.status = ""
		return a, nil

	case key.Matches(msg, a.keys.CursorUp):
		a.cursorY -= cursorStep
		if a.cursorY < 0 {
			a.cursorY = 0
		}
		return a, nil

	case key.Matches(msg, a.keys.CursorDown):
		a.cursorY += cursorStep
		return a, nil

	case key.Matches(msg, a.keys.CursorLeft):
		a.cursorX -= cursorStep
		if a.cursorX < 0 {
			a.cursorX = 0
		}
		return a, nil

	case key.Matches(msg, a.keys.CursorRight):
		a.cursorX += cursorStep
		return a, nil

	case key.Matches(msg, a.keys.NextPart):
		a.partIdx = (a.partIdx + 1) % a.sess.Schema().NumKeypoints()
		return a, nil

	case key.Matches(msg, a.keys.PrevPart):
		n := a.sess.Schema().NumKeypoints()
		a.partIdx = (a.partIdx - 1 + n) % n
		return a, nil

	case key.Matches(msg, a.keys.ToggleSelect):
		part := a.sess.Schema().BodyParts[a.partIdx]
		a.selected[part] = !a.selected[part]
		return a, nil
	}
	return a, nil
}

// addPoint places the current body part at the cursor and advances to the
// next unplaced part, the way click-through annotation works.
func (a *App) addPoint() {
	st, ok := a.currentStore()
	if !ok {
		return
	}
	schema := a.sess.Schema()
	part := schema.BodyParts[a.partIdx]
	if err := st.SetPoint(part, a.cursorX, a.cursorY); err != nil {
		a.err = err
		return
	}
	a.dirty = true
	a.err = nil
	a.status = fmt.Sprintf("placed %s at (%.0f, %.0f)", part, a.cursorX, a.cursorY)

	for i := 1; i <= schema.NumKeypoints(); i++ {
		next := (a.partIdx + i) % schema.NumKeypoints()
		if _, placed := st.Point(schema.BodyParts[next]); !placed {
			a.partIdx = next
			return
		}
	}
}

func (a *App) deleteSelected() {
	st, ok := a.currentStore()
	if !ok {
		return
	}
	parts := make([]string, 0, len(a.selected))
	for part, sel := range a.selected {
		if sel {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return
	}
	if err := st.DeleteSelected(parts...); err != nil {
		a.err = err
		return
	}
	a.selected = make(map[string]bool)
	a.dirty = true
	a.err = nil
	a.status = fmt.Sprintf("removed %d point(s)", len(parts))
}

// switchImage moves the cursor in the image list and resets per-image
// selection state.
func (a *App) switchImage(move func() (string, error)) {
	if _, err := move(); err != nil {
		a.err = err
		return
	}
	a.selected = make(map[string]bool)
	a.partIdx = 0
	a.status = ""
	a.err = nil
}

func (a *App) currentStore() (*types.Store, bool) {
	filename, err := a.sess.Current()
	if err != nil {
		a.err = err
		return nil, false
	}
	st, err := a.sess.Store(filename)
	if err != nil {
		a.err = err
		return nil, false
	}
	return st, true
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder

	filename, err := a.sess.Current()
	if err != nil {
		return a.theme.ErrorStyle.Render(err.Error()) + "\n"
	}
	images := a.sess.Images()
	position := 1
	for i, img := range images {
		if img == filename {
			position = i + 1
			break
		}
	}

	title := fmt.Sprintf("%s  [%d/%d]", filename, position, len(images))
	if a.dirty {
		title += " *"
	}
	b.WriteString(a.theme.TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(a.theme.StatusStyle.Render(
		fmt.Sprintf("cursor (%.0f, %.0f)", a.cursorX, a.cursorY)))
	b.WriteString("\n\n")

	st, ok := a.currentStore()
	if !ok {
		return b.String()
	}

	schema := a.sess.Schema()
	for i, part := range schema.BodyParts {
		marker := " "
		if i == a.partIdx {
			marker = ">"
		}
		sel := " "
		if a.selected[part] {
			sel = "x"
		}

		line := fmt.Sprintf("%s [%s] %-16s", marker, sel, part)
		if p, placed := st.Point(part); placed {
			line += a.theme.PlacedStyle.Render(fmt.Sprintf("(%g, %g)", p.X, p.Y))
		} else {
			line += a.theme.MissingStyle.Render("-")
		}
		switch {
		case i == a.partIdx:
			line = a.theme.CurrentStyle.Render(line)
		case a.selected[part]:
			line = a.theme.SelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.err != nil {
		b.WriteString(a.theme.ErrorStyle.Render(a.err.Error()))
		b.WriteString("\n")
	} else if a.status != "" {
		b.WriteString(a.theme.StatusStyle.Render(a.status))
		b.WriteString("\n")
	}

	help := "f add · d/a next/prev · arrows cursor · tab part · space select · del remove · esc clear · ctrl+s save · q quit"
	b.WriteString(a.theme.HelpStyle.Render(help))
	b.WriteString("\n")

	return lipgloss.NewStyle().MaxWidth(max(a.width, 40)).Render(b.String())
}
