// Package provider implements the lifecycle registrar that wires a package
// descriptor into a host application.
//
// The host drives two phases, matching its bootstrap lifecycle. Register
// merges configuration, binds container services, and contributes GraphQL
// schema and namespaces. Boot wires console-only resources (migrations,
// commands) when the process runs as a CLI, registers views and translations,
// mounts route manifests, and records publishable resources. Every step is
// guarded by the host's feature flags and by the descriptor's own flags;
// absent resources are silent no-ops.
//
// The common case is one line per plugin package:
//
//	p := provider.New(app, "github.com/acme/blog")
//
// which autodetects the package's resources from the caller's directory.
// Packages that need more take over configuration and hook into the phases:
//
//	p := provider.New(app, "github.com/acme/blog",
//		provider.WithConfigure(func(pkg *pack.Package) error {
//			pkg.Autodetect().WithCommands(syncCmd)
//			return nil
//		}),
//		provider.WithHooks(provider.Hooks{
//			AfterBoot: warmCaches,
//		}),
//	)
package provider
