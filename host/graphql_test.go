package host

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjventurini/service-provider/pack"
)

func TestSchemaCollector(t *testing.T) {
	schema := writeFile(t, t.TempDir(), "schema.graphql", "type Query { posts: [Post] }")

	c := NewSchemaCollector()
	require.NoError(t, c.AddSchemaFile(schema))

	c.AddNamespace(pack.NamespaceQueries, "acme/blog/queries")
	c.AddNamespace(pack.NamespaceQueries, "acme/shop/queries")
	c.AddNamespace(pack.NamespaceMutations, "acme/blog/mutations")

	assert.Equal(t, []string{schema}, c.SchemaFiles())
	assert.Equal(t, []string{"acme/blog/queries", "acme/shop/queries"}, c.Namespaces(pack.NamespaceQueries))
	assert.Equal(t, []pack.NamespaceKind{pack.NamespaceMutations, pack.NamespaceQueries}, c.Kinds())
}

func TestSchemaCollectorMissingFile(t *testing.T) {
	c := NewSchemaCollector()

	err := c.AddSchemaFile(filepath.Join(t.TempDir(), "nope.graphql"))
	require.Error(t, err)
	assert.Empty(t, c.SchemaFiles())
}
