// Command packctl inspects and publishes plugin package resources.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "packctl",
		Short:         "Inspect and publish plugin package resources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInspectCmd())
	root.AddCommand(newPublishCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
