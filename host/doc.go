// Package host implements the host application surface that package
// providers register into.
//
// App owns the service container, config store, view/translation/migration
// registries, the cobra command tree, the publishes manifest, an optional
// GraphQL plugin slot, and a gin HTTP server. Providers never touch these
// directly; they call the registration methods through the provider.Host
// interface, each guarded by the host's feature flags.
package host
