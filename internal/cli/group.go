package cli

import (
	"github.com/spf13/cobra"
)

// groupCommand groups the named-selection operations.
func (c *CLI) groupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage named entity groups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name> [handle...]",
		Short: "Create a group from entity handles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				if err := w.client.CreateGroup(cmd.Context(), args[0], handleArgs(args[1:])); err != nil {
					return err
				}
				printSuccess("created group %s (%d members)", args[0], len(args)-1)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <handle...>",
		Short: "Add entities to a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.AddToGroup(cmd.Context(), args[0], handleArgs(args[1:]))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name> <handle...>",
		Short: "Remove entities from a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.RemoveFromGroup(cmd.Context(), args[0], handleArgs(args[1:]))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "members <name>",
		Short: "List a group's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				members, err := w.client.GroupMembers(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				for _, h := range members {
					printInfo("%s", h)
				}
				printStats(len(members), false)
				return nil
			})
		},
	})

	return cmd
}
