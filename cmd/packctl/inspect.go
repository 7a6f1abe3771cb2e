package main

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tjventurini/service-provider/internal/detect"
	"github.com/tjventurini/service-provider/internal/slug"
)

func newInspectCmd() *cobra.Command {
	var pkgSlug string

	cmd := &cobra.Command{
		Use:   "inspect <package-dir>",
		Short: "Show which resources a package ships at its conventional paths",
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
			entries, err := detect.Inventory(root)
			if err != nil {
				return fmt.Errorf("scanning %s: %w", root, err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetTitle("Package %s", pkgSlug)
			t.AppendHeader(table.Row{"Resource", "Detected", "Path"})
			t.AppendRows([]table.Row{
				{"config", mark(report.ConfigFile != ""), report.ConfigFile},
				{"migrations", mark(report.Migrations), detect.MigrationsDir},
				{"views", mark(report.Views), detect.ViewsDir},
				{"translations", mark(report.Translations), detect.TranslationsDir},
				{"graphql schema", mark(report.GraphQLSchema), detect.GraphQLSchema},
				{"web routes", mark(report.WebRoutes), detect.WebRoutesFile},
				{"api routes", mark(report.APIRoutes), detect.APIRoutesFile},
			})
			t.Render()

			if len(entries) > 0 {
				files := table.NewWriter()
				files.SetOutputMirror(cmd.OutOrStdout())
				files.AppendHeader(table.Row{"Kind", "File"})
				for _, e := range entries {
					files.AppendRow(table.Row{e.Kind, e.Path})
				}
				files.Render()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pkgSlug, "slug", "", "package slug (default: derived from the directory name)")
	return cmd
}

func mark(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
