package interaction

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubports/installer-reporter/pkg/uir_err"
)

func reportForm() Form {
	return Form{
		Title:       "Report a result",
		Description: "Tell us **how** it went.",
		Confirm:     "Send a report?",
		Fields: []Field{
			{Name: "result", Label: "Result", Options: []string{"PASS", "WONKY", "FAIL"}, Default: "PASS"},
			{Name: "title", Label: "Title", Required: true},
			{Name: "comment", Label: "Comment"},
			{Name: "token", Label: "Token", Secret: true},
		},
	}
}

func TestPromptCollectsAnswers(t *testing.T) {
	in := strings.NewReader("y\n3\n\nIt broke\n\nsecret\n")
	var out bytes.Buffer

	answers, err := NewTerminalPrompter(in, &out).Prompt(context.Background(), reportForm())
	require.NoError(t, err)
	assert.Equal(t, Answers{"result": "FAIL", "title": "It broke", "token": "secret"}, answers)
	assert.Contains(t, out.String(), "Report a result")
	assert.Contains(t, out.String(), "input cannot be empty")
}

func TestPromptSelectByName(t *testing.T) {
	in := strings.NewReader("yes\nwonky\nTitle\nsome comment\n\n")
	answers, err := NewTerminalPrompter(in, &bytes.Buffer{}).Prompt(context.Background(), reportForm())
	require.NoError(t, err)
	assert.Equal(t, "WONKY", answers["result"])
	assert.Equal(t, "some comment", answers["comment"])
	assert.NotContains(t, answers, "token")
}

func TestPromptDeclined(t *testing.T) {
	for _, input := range []string{"n\n", "\n", "maybe\nno\n"} {
		answers, err := NewTerminalPrompter(strings.NewReader(input), &bytes.Buffer{}).Prompt(context.Background(), reportForm())
		require.ErrorIs(t, err, uir_err.ErrPromptDeclined, input)
		assert.Nil(t, answers, input)
	}
}

func TestPromptEOFIsError(t *testing.T) {
	_, err := NewTerminalPrompter(strings.NewReader(""), &bytes.Buffer{}).Prompt(context.Background(), reportForm())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, uir_err.ErrPromptDeclined)

	_, err = NewTerminalPrompter(strings.NewReader("y\n1\n"), &bytes.Buffer{}).Prompt(context.Background(), reportForm())
	assert.Error(t, err)
}

func TestPromptWithoutConfirm(t *testing.T) {
	form := Form{Fields: []Field{{Name: "token", Secret: true}}}
	answers, err := NewTerminalPrompter(strings.NewReader("asdf"), &bytes.Buffer{}).Prompt(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, Answers{"token": "asdf"}, answers)
}

func TestNormalizeYesNoInput(t *testing.T) {
	cases := map[string][2]bool{
		"y":     {true, true},
		" YES ": {true, true},
		"n":     {false, true},
		"No":    {false, true},
		"sure":  {false, false},
	}
	for in, want := range cases {
		got, ok := NormalizeYesNoInput(in)
		assert.Equal(t, want[0], got, in)
		assert.Equal(t, want[1], ok, in)
	}
}

func TestRenderMarkdownPlain(t *testing.T) {
	out := RenderMarkdown("**Error:** boom", false)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "boom")
}
