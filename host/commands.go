package host

import (
	"github.com/spf13/cobra"
)

// CommandRegistry owns the host's cobra command tree. Packages contribute
// commands in console mode only.
type CommandRegistry struct {
	root *cobra.Command
}

// NewCommandRegistry creates a registry rooted at name.
func NewCommandRegistry(name string) *CommandRegistry {
	return &CommandRegistry{
		root: &cobra.Command{
			Use:           name,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}
}

// Add attaches commands to the root.
func (r *CommandRegistry) Add(cmds ...*cobra.Command) {
	r.root.AddCommand(cmds...)
}

// Root returns the root command, for embedding into a larger CLI.
func (r *CommandRegistry) Root() *cobra.Command { return r.root }

// Execute runs the command tree against os.Args.
func (r *CommandRegistry) Execute() error {
	return r.root.Execute()
}

// Names returns the Use strings of all registered commands.
func (r *CommandRegistry) Names() []string {
	cmds := r.root.Commands()
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name())
	}
	return names
}
