package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingletonResolvedOnce(t *testing.T) {
	c := NewContainer()

	calls := 0
	err := c.Singleton("mailer", func(cfg map[string]interface{}) (interface{}, error) {
		calls++
		return "mailer-instance", nil
	}, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		v, err := c.Resolve("mailer")
		require.NoError(t, err)
		assert.Equal(t, "mailer-instance", v)
	}
	assert.Equal(t, 1, calls)
}

func TestSingletonFactoryReceivesConfig(t *testing.T) {
	c := NewContainer()

	var got map[string]interface{}
	require.NoError(t, c.Singleton("cache", func(cfg map[string]interface{}) (interface{}, error) {
		got = cfg
		return struct{}{}, nil
	}, map[string]interface{}{"ttl": 60}))

	_, err := c.Resolve("cache")
	require.NoError(t, err)
	assert.Equal(t, 60, got["ttl"])
}

func TestSingletonNilConfig(t *testing.T) {
	c := NewContainer()

	var got map[string]interface{} = map[string]interface{}{"sentinel": true}
	require.NoError(t, c.Singleton("plain", func(cfg map[string]interface{}) (interface{}, error) {
		got = cfg
		return struct{}{}, nil
	}, nil))

	_, err := c.Resolve("plain")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveUnbound(t *testing.T) {
	c := NewContainer()

	_, err := c.Resolve("ghost")
	assert.Error(t, err)
}

func TestFactoryErrorIsSticky(t *testing.T) {
	c := NewContainer()

	calls := 0
	boom := errors.New("boom")
	require.NoError(t, c.Singleton("bad", func(cfg map[string]interface{}) (interface{}, error) {
		calls++
		return nil, boom
	}, nil))

	_, err := c.Resolve("bad")
	require.ErrorIs(t, err, boom)
	_, err = c.Resolve("bad")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestOnResolveCallback(t *testing.T) {
	c := NewContainer()

	var seen []string
	c.OnResolve(func(name string) { seen = append(seen, name) })

	require.NoError(t, c.Singleton("mailer", func(cfg map[string]interface{}) (interface{}, error) {
		return "mailer-instance", nil
	}, nil))
	require.NoError(t, c.Singleton("bad", func(cfg map[string]interface{}) (interface{}, error) {
		return nil, errors.New("boom")
	}, nil))

	_, err := c.Resolve("mailer")
	require.NoError(t, err)
	_, err = c.Resolve("mailer")
	require.NoError(t, err)

	// Failed and unbound resolutions do not fire the callback.
	_, err = c.Resolve("bad")
	require.Error(t, err)
	_, err = c.Resolve("ghost")
	require.Error(t, err)

	assert.Equal(t, []string{"mailer", "mailer"}, seen)
}

func TestSingletonValidation(t *testing.T) {
	c := NewContainer()

	assert.Error(t, c.Singleton("", func(map[string]interface{}) (interface{}, error) { return nil, nil }, nil))
	assert.Error(t, c.Singleton("x", nil, nil))
}

func TestNames(t *testing.T) {
	c := NewContainer()
	f := func(map[string]interface{}) (interface{}, error) { return nil, nil }

	require.NoError(t, c.Singleton("b", f, nil))
	require.NoError(t, c.Singleton("a", f, nil))

	assert.Equal(t, []string{"a", "b"}, c.Names())
	assert.True(t, c.Has("a"))
	assert.False(t, c.Has("z"))
}
