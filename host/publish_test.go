package host

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDirectory(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, src, "index.tmpl", "<h1>hi</h1>")
	writeFile(t, src, "posts/show.tmpl", "<p>post</p>")

	p := NewPublisher()
	p.Add("blog-views", src, filepath.Join(dst, "views", "vendor", "blog"))

	n, err := p.Publish("blog-views")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(filepath.Join(dst, "views", "vendor", "blog", "index.tmpl"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>hi</h1>", string(data))

	manifest := p.Manifest()
	require.Len(t, manifest, 2)
	assert.Equal(t, "blog-views", manifest[0].Tag)
	assert.NotEmpty(t, manifest[0].ContentType)
}

func TestPublishSingleFile(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	cfg := writeFile(t, src, "blog.yaml", "title: Blog\n")

	p := NewPublisher()
	p.Add("blog-config", cfg, filepath.Join(dst, "config", "blog.yaml"))

	n, err := p.Publish("")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(filepath.Join(dst, "config", "blog.yaml"))
	assert.NoError(t, err)
}

func TestPublishTagFilter(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	a := writeFile(t, src, "a.yaml", "a: 1\n")
	b := writeFile(t, src, "b.yaml", "b: 2\n")

	p := NewPublisher()
	p.Add("tag-a", a, filepath.Join(dst, "a.yaml"))
	p.Add("tag-b", b, filepath.Join(dst, "b.yaml"))

	n, err := p.Publish("tag-a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(filepath.Join(dst, "b.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestPublishMissingSourceSkipped(t *testing.T) {
	p := NewPublisher()
	p.Add("ghost", filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "out"))

	n, err := p.Publish("")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWriteManifest(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	cfg := writeFile(t, src, "blog.yaml", "title: Blog\n")

	p := NewPublisher()
	p.Add("blog-config", cfg, filepath.Join(dst, "blog.yaml"))
	_, err := p.Publish("")
	require.NoError(t, err)

	manifestPath := filepath.Join(dst, "manifest.json")
	require.NoError(t, p.WriteManifest(manifestPath))

	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)

	var entries []ManifestEntry
	require.NoError(t, sonic.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "blog-config", entries[0].Tag)
}

func TestArchive(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	cfg := writeFile(t, src, "blog.yaml", "title: Blog\n")

	p := NewPublisher()
	p.Add("blog-config", cfg, filepath.Join(dst, "config", "blog.yaml"))
	_, err := p.Publish("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Archive(&buf, dst))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	hdr, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, "config/blog.yaml", hdr.Name)

	content, err := io.ReadAll(tr)
	require.NoError(t, err)
	assert.Equal(t, "title: Blog\n", string(content))
}
