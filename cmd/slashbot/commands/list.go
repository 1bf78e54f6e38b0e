package commands

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	botcommands "slashbot/internal/commands"
	"slashbot/internal/commands/types"

	"github.com/spf13/cobra"
)

func NewCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the slash commands this bot registers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCommands(cmd.OutOrStdout(), botcommands.NewModuleHandler(loadedConfig))
		},
	}
}

// printCommands writes one row per command, sorted by name for stable output
func printCommands(w io.Writer, reg types.Registry) error {
	cmds := reg.Commands()
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVISIBILITY\tDESCRIPTION")
	for _, c := range cmds {
		visibility := "public"
		if c.Ephemeral {
			visibility = "ephemeral"
		}
		fmt.Fprintf(tw, "/%s\t%s\t%s\n", c.Name(), visibility, c.Description())
	}
	return tw.Flush()
}
