package cli

import (
	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/cad"
)

// blockCommand groups the block table operations.
func (c *CLI) blockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Manage block definitions and references",
	}

	cmd.AddCommand(c.blockListCommand())
	cmd.AddCommand(c.blockInsertCommand())
	cmd.AddCommand(c.blockImportCommand())
	cmd.AddCommand(c.blockExportCommand())
	cmd.AddCommand(c.blockWhereCommand())
	cmd.AddCommand(c.blockAttrCommand())

	return cmd
}

func (c *CLI) blockListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List block definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				names, err := w.client.BlockNames(cmd.Context())
				if err != nil {
					return err
				}
				for _, name := range names {
					printInfo("%s", name)
				}
				if len(names) == 0 {
					printDetail("no blocks defined")
				}
				return nil
			})
		},
	}
}

func (c *CLI) blockInsertCommand() *cobra.Command {
	var (
		at       string
		scale    float64
		rotation float64
	)

	cmd := &cobra.Command{
		Use:   "insert <name>",
		Short: "Place one reference of a defined block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			insertion, err := parsePoint(at)
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				h, err := w.client.InsertBlock(cmd.Context(), cad.BlockReference{
					Name:      args[0],
					Insertion: insertion,
					Scale:     scale,
					Rotation:  rotation,
				})
				if err != nil {
					return err
				}
				printSuccess("inserted %s", args[0])
				printDetail("%s", h)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&at, "at", "0,0", "insertion point")
	cmd.Flags().Float64Var(&scale, "scale", 1, "uniform scale factor")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "rotation in radians")
	return cmd
}

func (c *CLI) blockImportCommand() *cobra.Command {
	var (
		at     string
		insert bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a block definition from a block file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				ctx := cmd.Context()
				if insert {
					insertion, err := parsePoint(at)
					if err != nil {
						return err
					}
					h, err := w.client.InsertBlockFromFile(ctx, args[0], insertion, 1, 0)
					if err != nil {
						return err
					}
					printSuccess("imported and inserted")
					printDetail("%s", h)
					return nil
				}

				name, err := w.client.Session().ImportBlock(ctx, args[0])
				if err != nil {
					return err
				}
				printSuccess("imported block %s", name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&insert, "insert", false, "also place one reference")
	cmd.Flags().StringVar(&at, "at", "0,0", "insertion point with --insert")
	return cmd
}

func (c *CLI) blockExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> <file>",
		Short: "Write a block definition to a block file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				if err := w.client.ExportBlock(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				printSuccess("exported %s", args[0])
				printFile(args[1])
				return nil
			})
		},
	}
}

func (c *CLI) blockWhereCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "where <name>",
		Short: "List the insertion points of a block's references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				points, err := w.client.BlockCoordinates(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				for _, p := range points {
					printInfo("%s", p)
				}
				printStats(len(points), false)
				return nil
			})
		},
	}
}

// blockAttrCommand groups attribute operations on block references.
func (c *CLI) blockAttrCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attr",
		Short: "Read and edit block reference attributes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <handle>",
		Short: "List a reference's attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				attrs, err := w.client.BlockAttributes(cmd.Context(), cad.Handle(args[0]))
				if err != nil {
					return err
				}
				for _, a := range attrs {
					printKeyValue(a.Tag, a.Value)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <handle> <tag> <value>",
		Short: "Set an attribute value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.SetBlockAttribute(cmd.Context(), cad.Handle(args[0]), args[1], args[2])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <handle> <tag>",
		Short: "Remove an attribute",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.DeleteBlockAttribute(cmd.Context(), cad.Handle(args[0]), args[1])
			})
		},
	})

	return cmd
}
