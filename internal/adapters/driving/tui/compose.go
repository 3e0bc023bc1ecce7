// Package tui provides the interactive compose wizard.
// The wizard walks through the answers a commit message is rendered
// from: issue id, verb, description and an optional body.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebreed/verbump/internal/adapters/driving/tui/styles"
	"github.com/calebreed/verbump/internal/core/domain"
	"github.com/calebreed/verbump/internal/core/ports/driving"
)

// composeStep tracks the current step in the wizard.
type composeStep int

const (
	stepIssueID composeStep = iota
	stepVerb
	stepDescription
	stepBody
	stepDone
)

// verbChoice is a selectable verb with its impact level.
type verbChoice struct {
	verb    string
	level   domain.Increment
	section string // non-empty on the first choice of a group
}

// ComposeModel is the bubbletea model for the compose wizard.
type ComposeModel struct {
	convention driving.ConventionService
	styles     *styles.Styles

	step    composeStep
	errMsg  string
	aborted bool

	issueInput textinput.Model
	descInput  textinput.Model
	bodyInput  textinput.Model

	choices  []verbChoice
	selected int

	answers domain.MessageFields
	message string
}

// NewComposeModel creates the wizard over a convention service.
func NewComposeModel(convention driving.ConventionService) *ComposeModel {
	issueInput := textinput.New()
	issueInput.Placeholder = "ENG-123"
	issueInput.CharLimit = 64
	issueInput.Focus()

	descInput := textinput.New()
	descInput.Placeholder = "Brief description of the change"
	descInput.CharLimit = 256

	bodyInput := textinput.New()
	bodyInput.Placeholder = "Detailed description (optional)"
	bodyInput.CharLimit = 1024

	return &ComposeModel{
		convention: convention,
		styles:     styles.DefaultStyles(),
		step:       stepIssueID,
		issueInput: issueInput,
		descInput:  descInput,
		bodyInput:  bodyInput,
		choices:    buildChoices(convention.Table()),
	}
}

// buildChoices flattens the verb table into selectable entries grouped
// by impact.
func buildChoices(table *domain.VerbTable) []verbChoice {
	groups := []struct {
		section string
		level   domain.Increment
	}{
		{"── Breaking Changes (Major) ──", domain.IncrementMajor},
		{"── New Features (Minor) ──", domain.IncrementMinor},
		{"── Fixes & Maintenance (Patch) ──", domain.IncrementPatch},
		{"── Other Changes ──", domain.IncrementNone},
	}

	var choices []verbChoice
	for _, g := range groups {
		for i, verb := range table.ByLevel(g.level) {
			c := verbChoice{verb: verb, level: g.level}
			if i == 0 {
				c.section = g.section
			}
			choices = append(choices, c)
		}
	}
	return choices
}

// Init initialises the wizard.
func (m *ComposeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		return m.advance()
	case "up", "down":
		if m.step == stepVerb {
			m.moveSelection(keyMsg.String())
			return m, nil
		}
	}

	return m, m.updateInputs(msg)
}

// updateInputs forwards a message to the focused text input.
func (m *ComposeModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.step {
	case stepIssueID:
		m.issueInput, cmd = m.issueInput.Update(msg)
	case stepDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	case stepBody:
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return cmd
}

// moveSelection moves the verb cursor.
func (m *ComposeModel) moveSelection(key string) {
	if key == "up" && m.selected > 0 {
		m.selected--
	}
	if key == "down" && m.selected < len(m.choices)-1 {
		m.selected++
	}
}

// advance validates the current step and moves to the next one.
func (m *ComposeModel) advance() (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch m.step {
	case stepIssueID:
		value := strings.TrimSpace(m.issueInput.Value())
		if !m.convention.ValidateIssueID(value) {
			m.errMsg = "Invalid issue ID (expected e.g. ENG-123)"
			return m, nil
		}
		m.answers.IssueID = value
		m.step = stepVerb

	case stepVerb:
		m.answers.Verb = m.choices[m.selected].verb
		m.step = stepDescription
		return m, m.descInput.Focus()

	case stepDescription:
		value := m.descInput.Value()
		if !m.convention.ValidateDescription(value) {
			m.errMsg = fmt.Sprintf("Description too short (minimum %d characters)", domain.MinDescriptionLength)
			return m, nil
		}
		m.answers.Description = value
		m.step = stepBody
		return m, m.bodyInput.Focus()

	case stepBody:
		m.answers.Body = m.bodyInput.Value()
		m.message = m.convention.Render(m.answers)
		m.step = stepDone
		return m, tea.Quit
	}

	return m, nil
}

// View renders the wizard.
func (m *ComposeModel) View() string {
	if m.aborted || m.step == stepDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Compose commit message"))
	b.WriteString("\n\n")

	switch m.step {
	case stepIssueID:
		b.WriteString(m.styles.Normal.Render("Issue ID (e.g., ENG-123):"))
		b.WriteString("\n")
		b.WriteString(m.styles.InputField.Render(m.issueInput.View()))
	case stepVerb:
		b.WriteString(m.styles.Normal.Render("Select the type of change:"))
		b.WriteString("\n")
		b.WriteString(m.viewChoices())
	case stepDescription:
		b.WriteString(m.styles.Normal.Render("Brief description of the change:"))
		b.WriteString("\n")
		b.WriteString(m.styles.InputField.Render(m.descInput.View()))
	case stepBody:
		b.WriteString(m.styles.Normal.Render("Detailed description (optional). Press Enter to skip:"))
		b.WriteString("\n")
		b.WriteString(m.styles.InputField.Render(m.bodyInput.View()))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("enter continue • esc abort"))
	return b.String()
}

// viewChoices renders the verb list with section headers.
func (m *ComposeModel) viewChoices() string {
	var b strings.Builder
	for i, choice := range m.choices {
		if choice.section != "" {
			b.WriteString(m.styles.Section.Render(choice.section))
			b.WriteString("\n")
		}

		line := choice.verb + " - " + choice.level.Description()
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Muted.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Message returns the rendered commit message once the wizard has
// completed.
func (m *ComposeModel) Message() string {
	return m.message
}

// Aborted returns true if the user quit before completing the wizard.
func (m *ComposeModel) Aborted() bool {
	return m.aborted
}
