package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCmd_Plain(t *testing.T) {
	initTestServices(t, nil)

	out, err := execute(t, "parse", "ENG-123 Fixed authentication bug")

	assert.NoError(t, err)
	assert.Contains(t, out, "issue id:    ENG-123")
	assert.Contains(t, out, "verb:        Fixed")
	assert.Contains(t, out, "description: authentication bug")
}

func TestParseCmd_JSON(t *testing.T) {
	initTestServices(t, nil)

	out, err := execute(t, "parse", "--json", "ENG-123 Fixed bug\n\n[bump:major]")
	t.Cleanup(func() { parseJSON = false })

	assert.NoError(t, err)
	assert.Contains(t, out, `"issue_id": "ENG-123"`)
	assert.Contains(t, out, `"verb": "Fixed"`)
	assert.Contains(t, out, `"manual_bump": "major"`)
}

func TestParseCmd_UnrecognisedVerb(t *testing.T) {
	initTestServices(t, nil)

	out, err := execute(t, "parse", "ENG-123 Tweaked the build")

	assert.NoError(t, err)
	assert.Contains(t, out, "verb:        -")
	assert.Contains(t, out, "description: Tweaked the build")
}
