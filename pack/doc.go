// Package pack defines the Package descriptor for plugin packages.
//
// A Package records which optional resources a plugin ships (configuration,
// migrations, views, translations, a GraphQL schema, route manifests,
// commands, and container services), either via explicit builder calls or by
// filesystem autodetection against the conventional layout:
//
//	config/<slug>.yaml        package configuration defaults
//	database/migrations/      SQL migrations
//	resources/views/          templates
//	resources/lang/           translation catalogs
//	graphql/schema.graphql    GraphQL schema
//	routes/web.yaml           web route manifest
//	routes/api.yaml           API route manifest
//
// The descriptor holds flags and paths only; loading the resources is the
// host's concern. Builders return the same instance for chaining:
//
//	pkg := pack.New("github.com/acme/blog").
//		WithViews().
//		WithCommands(syncCmd)
//
// or, the common case, let autodetection do the work:
//
//	pkg := pack.New("github.com/acme/blog").Autodetect()
package pack
