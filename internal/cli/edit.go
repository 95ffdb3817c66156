package cli

import (
	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/cad"
)

// editCommand groups the transform and arrangement operations.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Transform and arrange entities",
	}

	cmd.AddCommand(c.editMoveCommand())
	cmd.AddCommand(c.editScaleCommand())
	cmd.AddCommand(c.editRotateCommand())
	cmd.AddCommand(c.editCloneCommand())
	cmd.AddCommand(c.editDeleteCommand())
	cmd.AddCommand(c.editAlignCommand())
	cmd.AddCommand(c.editDistributeCommand())

	return cmd
}

func (c *CLI) editMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <handle> <to>",
		Short: "Move an entity to a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.Move(cmd.Context(), cad.Handle(args[0]), to)
			})
		},
	}
}

func (c *CLI) editScaleCommand() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "scale <handle> <factor>",
		Short: "Scale an entity about a base point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			basePoint, err := parsePoint(base)
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.Scale(cmd.Context(), cad.Handle(args[0]), basePoint, factor)
			})
		},
	}

	cmd.Flags().StringVar(&base, "base", "0,0", "base point of the scaling")
	return cmd
}

func (c *CLI) editRotateCommand() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "rotate <handle> <radians>",
		Short: "Rotate an entity about a base point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			angle, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			basePoint, err := parsePoint(base)
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.Rotate(cmd.Context(), cad.Handle(args[0]), basePoint, angle)
			})
		},
	}

	cmd.Flags().StringVar(&base, "base", "0,0", "base point of the rotation")
	return cmd
}

func (c *CLI) editCloneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clone <handle> <at>",
		Short: "Copy an entity to a new insertion point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				h, err := w.client.CloneObject(cmd.Context(), cad.Handle(args[0]), at)
				if err != nil {
					return err
				}
				printSuccess("cloned")
				printDetail("%s", h)
				return nil
			})
		},
	}
}

func (c *CLI) editDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <handle...>",
		Short: "Delete entities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				for _, h := range handleArgs(args) {
					if err := w.client.DeleteObject(cmd.Context(), h); err != nil {
						return err
					}
				}
				printSuccess("deleted %d entities", len(args))
				return nil
			})
		},
	}
}

func (c *CLI) editAlignCommand() *cobra.Command {
	var right bool

	cmd := &cobra.Command{
		Use:   "align <handle...>",
		Short: "Align entities on their leftmost or rightmost insertion X",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alignment := cad.AlignLeft
			if right {
				alignment = cad.AlignRight
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				if err := w.client.AlignObjects(cmd.Context(), handleArgs(args), alignment); err != nil {
					return err
				}
				printSuccess("aligned %d entities %s", len(args), alignment)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&right, "right", false, "align right instead of left")
	return cmd
}

func (c *CLI) editDistributeCommand() *cobra.Command {
	var spacing float64

	cmd := &cobra.Command{
		Use:   "distribute <handle...>",
		Short: "Space entities a fixed distance apart along X",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				if err := w.client.DistributeObjects(cmd.Context(), handleArgs(args), spacing); err != nil {
					return err
				}
				printSuccess("distributed %d entities at spacing %g", len(args), spacing)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&spacing, "spacing", 10, "distance between insertion points")
	return cmd
}
