package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebreed/verbump/internal/core/domain"
	"github.com/calebreed/verbump/internal/core/services"
)

func newTestModel(t *testing.T) *ComposeModel {
	t.Helper()
	convention, err := services.NewConvention(domain.DefaultSettings())
	require.NoError(t, err)
	return NewComposeModel(convention)
}

func typeText(m *ComposeModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *ComposeModel, key tea.KeyType) {
	m.Update(tea.KeyMsg{Type: key})
}

func TestComposeModel_ChoicesCoverTable(t *testing.T) {
	model := newTestModel(t)

	convention, err := services.NewConvention(domain.DefaultSettings())
	require.NoError(t, err)

	assert.Len(t, model.choices, convention.Table().Len())

	// First choice is the single major verb
	assert.Equal(t, "Changed", model.choices[0].verb)
	assert.NotEmpty(t, model.choices[0].section)
}

func TestComposeModel_RejectsBadIssueID(t *testing.T) {
	model := newTestModel(t)

	typeText(model, "nope")
	press(model, tea.KeyEnter)

	assert.Equal(t, stepIssueID, model.step)
	assert.NotEmpty(t, model.errMsg)
}

func TestComposeModel_FullFlow(t *testing.T) {
	model := newTestModel(t)

	typeText(model, "eng-42")
	press(model, tea.KeyEnter)
	require.Equal(t, stepVerb, model.step)

	// Keep the first verb (Changed)
	press(model, tea.KeyEnter)
	require.Equal(t, stepDescription, model.step)

	typeText(model, "database schema for tenancy")
	press(model, tea.KeyEnter)
	require.Equal(t, stepBody, model.step)

	typeText(model, "breaking change notes")
	press(model, tea.KeyEnter)

	require.Equal(t, stepDone, model.step)
	assert.Equal(t, "ENG-42 Changed database schema for tenancy\n\nbreaking change notes", model.Message())
	assert.False(t, model.Aborted())
}

func TestComposeModel_RejectsShortDescription(t *testing.T) {
	model := newTestModel(t)

	typeText(model, "ENG-1")
	press(model, tea.KeyEnter)
	press(model, tea.KeyEnter)
	require.Equal(t, stepDescription, model.step)

	typeText(model, "ab")
	press(model, tea.KeyEnter)

	assert.Equal(t, stepDescription, model.step)
	assert.Equal(t,
		fmt.Sprintf("Description too short (minimum %d characters)", domain.MinDescriptionLength),
		model.errMsg)
}

func TestComposeModel_SkipBody(t *testing.T) {
	model := newTestModel(t)

	typeText(model, "OPS-7")
	press(model, tea.KeyEnter)
	press(model, tea.KeyDown) // Added
	press(model, tea.KeyEnter)
	typeText(model, "metrics endpoint")
	press(model, tea.KeyEnter)
	press(model, tea.KeyEnter) // empty body

	require.Equal(t, stepDone, model.step)
	assert.Equal(t, "OPS-7 Added metrics endpoint", model.Message())
}

func TestComposeModel_Abort(t *testing.T) {
	model := newTestModel(t)

	press(model, tea.KeyEsc)

	assert.True(t, model.Aborted())
	assert.Empty(t, model.Message())
}

func TestComposeModel_SelectionBounds(t *testing.T) {
	model := newTestModel(t)
	model.step = stepVerb

	press(model, tea.KeyUp)
	assert.Equal(t, 0, model.selected)

	model.selected = len(model.choices) - 1
	press(model, tea.KeyDown)
	assert.Equal(t, len(model.choices)-1, model.selected)
}
