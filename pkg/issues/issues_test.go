package issues

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssueURL(t *testing.T) {
	u := NewIssueURL(DefaultNewIssueURL, "it broke & burned", "**Error:**\n```\nboom\n```")

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "github.com", parsed.Host)
	assert.Equal(t, "/ubports/ubports-installer/issues/new", parsed.Path)
	assert.Equal(t, "it broke & burned", parsed.Query().Get("title"))
	assert.Equal(t, "**Error:**\n```\nboom\n```", parsed.Query().Get("body"))
}

func TestTrackerOpen(t *testing.T) {
	var out bytes.Buffer
	var opened string
	tr := New("", &out)
	tr.Opener = func(u string) error {
		opened = u
		return nil
	}

	require.NoError(t, tr.Open(context.Background(), "wasd", "body"))
	assert.Equal(t, NewIssueURL(DefaultNewIssueURL, "wasd", "body"), opened)
	assert.Contains(t, out.String(), opened)
}

func TestTrackerOpenFailure(t *testing.T) {
	t.Run("url printed", func(t *testing.T) {
		var out bytes.Buffer
		tr := New("https://example.test/new", &out)
		tr.Opener = func(string) error { return errors.New("no display") }

		require.NoError(t, tr.Open(context.Background(), "t", "b"))
		assert.Contains(t, out.String(), "https://example.test/new?")
	})

	t.Run("nowhere to show it", func(t *testing.T) {
		tr := New("https://example.test/new", nil)
		tr.Opener = func(string) error { return ErrNoBrowser }

		err := tr.Open(context.Background(), "t", "b")
		assert.ErrorIs(t, err, ErrNoBrowser)
	})
}
