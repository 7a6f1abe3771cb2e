package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tjventurini/service-provider/host"
	"github.com/tjventurini/service-provider/internal/detect"
	"github.com/tjventurini/service-provider/internal/slug"
)

func newPublishCmd() *cobra.Command {
	var (
		pkgSlug string
		target  string
		archive string
	)

	cmd := &cobra.Command{
		Use:   "publish <package-dir>",
		Short: "Copy a package's publishable resources to a target directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if pkgSlug == "" {
				pkgSlug = slug.Derive(root)
			}

			report := detect.Scan(root, pkgSlug)
			publisher := host.NewPublisher()

			if report.ConfigFile != "" {
				publisher.Add(pkgSlug+"-config", report.ConfigFile,
					filepath.Join(target, "config", filepath.Base(report.ConfigFile)))
			}
			if report.Views {
				publisher.Add(pkgSlug+"-views", filepath.Join(root, filepath.FromSlash(detect.ViewsDir)),
					filepath.Join(target, "views", "vendor", pkgSlug))
			}
			if report.Translations {
				publisher.Add(pkgSlug+"-lang", filepath.Join(root, filepath.FromSlash(detect.TranslationsDir)),
					filepath.Join(target, "lang", "vendor", pkgSlug))
			}

			published, err := publisher.Publish("")
			if err != nil {
				return err
			}
			if err := publisher.WriteManifest(filepath.Join(target, "manifest.json")); err != nil {
				return err
			}

			if archive != "" {
				f, err := os.Create(archive)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := publisher.Archive(f, target); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Published %d files to %s\n", published, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&pkgSlug, "slug", "", "package slug (default: derived from the directory name)")
	cmd.Flags().StringVar(&target, "target", "publish", "target directory")
	cmd.Flags().StringVar(&archive, "archive", "", "also write a .tar.gz of the published files")
	return cmd
}
