package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ubports/installer-reporter/pkg/uir_err"
)

const baconYAML = `name: "Oneplus One"
codename: "bacon"
aliases: []
operating_systems:
  - name: "Ubuntu Touch"
  - name: "LineageOS"
`

type mockGetter struct {
	mock.Mock
}

func (m *mockGetter) Get(ctx context.Context, endpoint string) ([]byte, error) {
	args := m.Called(ctx, endpoint)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(baconYAML))
	require.NoError(t, err)
	assert.Equal(t, "bacon", cfg.Codename)
	assert.Equal(t, "Oneplus One", cfg.Name)
	require.Len(t, cfg.OperatingSystems, 2)

	_, err = ParseConfig([]byte("name: nameless\n"))
	assert.ErrorIs(t, err, uir_err.ErrNoDevice)

	_, err = ParseConfig([]byte(":\n\t- broken"))
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bacon.yml")
	require.NoError(t, os.WriteFile(path, []byte(baconYAML), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bacon", cfg.Codename)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestConfigFetcherCaches(t *testing.T) {
	g := &mockGetter{}
	g.On("Get", mock.Anything, "https://example.test/devices/bacon.yml").Return([]byte(baconYAML), nil).Once()

	f := NewConfigFetcher(g, "https://example.test/devices")
	for i := 0; i < 3; i++ {
		cfg, err := f.Fetch(context.Background(), "bacon")
		require.NoError(t, err)
		assert.Equal(t, "Oneplus One", cfg.Name)
	}
	g.AssertNumberOfCalls(t, "Get", 1)
}

func TestConfigFetcherErrorNotCached(t *testing.T) {
	g := &mockGetter{}
	g.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("404")).Twice()

	f := NewConfigFetcher(g, "")
	_, err := f.Fetch(context.Background(), "nope")
	require.Error(t, err)
	_, err = f.Fetch(context.Background(), "nope")
	require.Error(t, err)
	g.AssertNumberOfCalls(t, "Get", 2)

	_, err = f.Fetch(context.Background(), "")
	assert.ErrorIs(t, err, uir_err.ErrNoDevice)
}

func TestResolve(t *testing.T) {
	t.Run("published config", func(t *testing.T) {
		g := &mockGetter{}
		g.On("Get", mock.Anything, DefaultConfigBaseURL+"bacon.yml").Return([]byte(baconYAML), nil)

		props := Resolve(context.Background(), NewConfigFetcher(g, ""), CLI{}, "bacon", 0)
		require.NotNil(t, props.Config)
		require.NotNil(t, props.OS)
		assert.Equal(t, "Ubuntu Touch", props.OS.Name)
		assert.Equal(t, "bacon", props.Codename())
	})

	t.Run("local file wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "local.yml")
		require.NoError(t, os.WriteFile(path, []byte(baconYAML), 0644))
		g := &mockGetter{}

		props := Resolve(context.Background(), NewConfigFetcher(g, ""), CLI{File: path}, "something", 1)
		require.NotNil(t, props.Config)
		assert.Equal(t, "LineageOS", props.OS.Name)
		assert.Equal(t, "bacon", props.Codename())
		g.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure leaves config nil", func(t *testing.T) {
		g := &mockGetter{}
		g.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("offline"))

		props := Resolve(context.Background(), NewConfigFetcher(g, ""), CLI{}, "a", 0)
		assert.Nil(t, props.Config)
		assert.Nil(t, props.OS)
		assert.Equal(t, "a", props.Codename())
	})

	t.Run("no device", func(t *testing.T) {
		props := Resolve(context.Background(), nil, CLI{}, "", 0)
		assert.Equal(t, Props{}, props)
	})

	t.Run("os index out of range", func(t *testing.T) {
		props := Props{Config: &DeviceConfig{Codename: "x"}}
		assert.Nil(t, props.SelectOS(3))
	})
}
