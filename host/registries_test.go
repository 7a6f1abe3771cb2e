package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

func TestViewRegistryBuild(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.tmpl", "<h1>{{.Title}}</h1>")
	writeFile(t, dir, "posts/show.html", "<p>{{.Body}}</p>")
	writeFile(t, dir, "notes.txt", "not a template")

	r := NewViewRegistry()
	r.AddDir("blog", dir)

	tmpl, err := r.Build()
	require.NoError(t, err)

	assert.NotNil(t, tmpl.Lookup("blog::index.tmpl"))
	assert.NotNil(t, tmpl.Lookup("blog::posts/show.html"))
	assert.Nil(t, tmpl.Lookup("blog::notes.txt"))
}

func TestViewRegistryNamespacing(t *testing.T) {
	blogDir := t.TempDir()
	shopDir := t.TempDir()
	writeFile(t, blogDir, "index.tmpl", "blog")
	writeFile(t, shopDir, "index.tmpl", "shop")

	r := NewViewRegistry()
	r.AddDir("blog", blogDir)
	r.AddDir("shop", shopDir)

	tmpl, err := r.Build()
	require.NoError(t, err)

	assert.NotNil(t, tmpl.Lookup("blog::index.tmpl"))
	assert.NotNil(t, tmpl.Lookup("shop::index.tmpl"))
	assert.Equal(t, []string{"blog", "shop"}, r.Namespaces())
}

func TestViewRegistryMissingDirSkipped(t *testing.T) {
	r := NewViewRegistry()
	r.AddDir("ghost", filepath.Join(t.TempDir(), "nope"))

	_, err := r.Build()
	assert.NoError(t, err)
}

func TestTranslationLookup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.yaml", "posts:\n  title: Posts\n  count: 42\n")
	writeFile(t, dir, "de.yaml", "posts:\n  title: Beiträge\n")

	r := NewTranslationRegistry()
	r.AddDir("blog", dir)

	assert.Equal(t, "Posts", r.T("en", "blog::posts.title"))
	assert.Equal(t, "Beiträge", r.T("de", "blog::posts.title"))
	assert.Equal(t, "42", r.T("en", "blog::posts.count"))
}

func TestTranslationFallbackLocale(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.yaml", "posts:\n  title: Posts\n")

	r := NewTranslationRegistry()
	r.AddDir("blog", dir)

	// de has no catalog; falls back to en, then the key itself.
	assert.Equal(t, "Posts", r.T("de", "blog::posts.title"))
	assert.Equal(t, "blog::posts.missing", r.T("de", "blog::posts.missing"))
}

func TestTranslationUnknownNamespace(t *testing.T) {
	r := NewTranslationRegistry()
	assert.Equal(t, "ghost::key", r.T("en", "ghost::key"))
	assert.Equal(t, "no-namespace", r.T("en", "no-namespace"))
}

func TestMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "002_add_tags.sql", "")
	writeFile(t, dir, "001_create_posts.sql", "")
	writeFile(t, dir, "README.md", "")

	r := NewMigrationRegistry()
	r.AddDir(dir)
	r.AddDir(dir) // duplicate ignored

	files, err := r.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "001_create_posts.sql"), files[0])
	assert.Equal(t, filepath.Join(dir, "002_add_tags.sql"), files[1])
	assert.Len(t, r.Dirs(), 1)
}

func TestMigrationMissingDirSkipped(t *testing.T) {
	r := NewMigrationRegistry()
	r.AddDir(filepath.Join(t.TempDir(), "nope"))

	files, err := r.Files()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCommandRegistry(t *testing.T) {
	r := NewCommandRegistry("host")
	r.Add(newTestCommand("blog:sync"), newTestCommand("blog:prune"))

	names := r.Names()
	assert.Contains(t, names, "blog:sync")
	assert.Contains(t, names, "blog:prune")
	assert.Equal(t, "host", r.Root().Use)
}
