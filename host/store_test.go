package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMergeFileYAML(t *testing.T) {
	s := NewConfigStore()
	path := writeTemp(t, "blog.yaml", "cache:\n  ttl: 60\ntitle: Blog\n")

	require.NoError(t, s.MergeFile("blog", path))

	v, ok := s.Get("blog.cache.ttl")
	require.True(t, ok)
	assert.EqualValues(t, 60, v)
	assert.Equal(t, "Blog", s.GetString("blog.title", ""))
}

func TestMergeFileTOML(t *testing.T) {
	s := NewConfigStore()
	path := writeTemp(t, "blog.toml", "title = \"Blog\"\n\n[cache]\nttl = 60\n")

	require.NoError(t, s.MergeFile("blog", path))
	assert.Equal(t, "Blog", s.GetString("blog.title", ""))
}

func TestMergeFileHostValuesWin(t *testing.T) {
	s := NewConfigStore()
	s.Set("blog.title", "Overridden")
	path := writeTemp(t, "blog.yaml", "title: Default\nsubtitle: Kept\n")

	require.NoError(t, s.MergeFile("blog", path))

	assert.Equal(t, "Overridden", s.GetString("blog.title", ""))
	assert.Equal(t, "Kept", s.GetString("blog.subtitle", ""))
}

func TestMergeFileDeepMerge(t *testing.T) {
	s := NewConfigStore()
	s.Set("blog.cache.driver", "redis")
	path := writeTemp(t, "blog.yaml", "cache:\n  driver: memory\n  ttl: 60\n")

	require.NoError(t, s.MergeFile("blog", path))

	assert.Equal(t, "redis", s.GetString("blog.cache.driver", ""))
	v, ok := s.Get("blog.cache.ttl")
	require.True(t, ok)
	assert.EqualValues(t, 60, v)
}

func TestMergeFileErrors(t *testing.T) {
	s := NewConfigStore()

	assert.Error(t, s.MergeFile("blog", filepath.Join(t.TempDir(), "missing.yaml")))

	bad := writeTemp(t, "blog.ini", "nope")
	assert.Error(t, s.MergeFile("blog", bad))
}

func TestGetMissing(t *testing.T) {
	s := NewConfigStore()

	_, ok := s.Get("nothing.here")
	assert.False(t, ok)
	assert.Equal(t, "fallback", s.GetString("nothing.here", "fallback"))
	assert.Nil(t, s.Sub("nothing"))
}

func TestSub(t *testing.T) {
	s := NewConfigStore()
	path := writeTemp(t, "blog.yaml", "cache:\n  ttl: 60\n")
	require.NoError(t, s.MergeFile("blog", path))

	sub := s.Sub("blog.cache")
	require.NotNil(t, sub)
	assert.EqualValues(t, 60, sub["ttl"])
}
