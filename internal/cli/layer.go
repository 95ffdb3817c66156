package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/cad"
)

// layerCommand groups the layer table operations.
func (c *CLI) layerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layer",
		Short: "Manage drawing layers",
	}

	cmd.AddCommand(c.layerListCommand())
	cmd.AddCommand(c.layerCreateCommand())
	cmd.AddCommand(c.layerDeleteCommand())
	cmd.AddCommand(c.layerActiveCommand())
	cmd.AddCommand(c.layerShowHideCommand(true))
	cmd.AddCommand(c.layerShowHideCommand(false))
	cmd.AddCommand(c.layerLockCommand(true))
	cmd.AddCommand(c.layerLockCommand(false))
	cmd.AddCommand(c.layerColorCommand())
	cmd.AddCommand(c.layerLinetypeCommand())
	cmd.AddCommand(c.layerInitCommand())

	return cmd
}

func (c *CLI) layerListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				layers, err := w.client.Layers(cmd.Context())
				if err != nil {
					return err
				}
				for _, l := range layers {
					flags := ""
					if !l.Visible {
						flags += " hidden"
					}
					if l.Locked {
						flags += " locked"
					}
					printKeyValue(l.Name, fmt.Sprintf("%s%s", l.Color, StyleDim.Render(flags)))
				}
				return nil
			})
		},
	}
}

func (c *CLI) layerCreateCommand() *cobra.Command {
	var colorStr string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := parseColor(colorStr)
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				if err := w.client.CreateLayer(cmd.Context(), cad.NewLayer(args[0], color)); err != nil {
					return err
				}
				printSuccess("created layer %s", args[0])
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&colorStr, "color", "white", "layer color (name or ACI index)")
	return cmd
}

func (c *CLI) layerDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an empty, inactive layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				if err := w.client.DeleteLayer(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess("deleted layer %s", args[0])
				return nil
			})
		},
	}
}

func (c *CLI) layerActiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "active <name>",
		Short: "Make a layer the target of new entities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				if err := w.client.SetActiveLayer(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess("active layer is now %s", args[0])
				return nil
			})
		},
	}
}

func (c *CLI) layerShowHideCommand(visible bool) *cobra.Command {
	use, short := "show <name>", "Make a layer visible"
	if !visible {
		use, short = "hide <name>", "Hide a layer"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.SetLayerVisibility(cmd.Context(), args[0], visible)
			})
		},
	}
}

func (c *CLI) layerLockCommand(locked bool) *cobra.Command {
	use, short := "lock <name>", "Protect a layer's entities from modification"
	if !locked {
		use, short = "unlock <name>", "Unlock a layer"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.LockLayer(cmd.Context(), args[0], locked)
			})
		},
	}
}

func (c *CLI) layerColorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "color <name> <color>",
		Short: "Change a layer's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := parseColor(args[1])
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.SetLayerColor(cmd.Context(), args[0], color)
			})
		},
	}
}

func (c *CLI) layerLinetypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "linetype <name> <linetype>",
		Short: "Change a layer's linetype",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				return w.client.SetLayerLinetype(cmd.Context(), args[0], args[1])
			})
		},
	}
}

func (c *CLI) layerInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the standard drafting layer palette",
		Long: `Create the standard drafting layer palette.

Layers that already exist are left untouched, so init is safe to re-run.
The palette can be overridden with a [[layers]] table in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			palette, err := c.config.palette()
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				if err := w.client.CreateStandardLayers(cmd.Context(), palette); err != nil {
					return err
				}
				n := len(palette)
				if n == 0 {
					n = len(cad.StandardLayers)
				}
				printSuccess("palette ready (%d layers)", n)
				printNextStep("start drawing", "cadkit draw line 0,0 100,0")
				return nil
			})
		},
	}
}
