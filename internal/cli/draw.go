package cli

import (
	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/cad"
)

// drawCommand groups the entity creation operations.
func (c *CLI) drawCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw entities on the active layer",
	}

	cmd.AddCommand(c.drawLineCommand())
	cmd.AddCommand(c.drawCircleCommand())
	cmd.AddCommand(c.drawEllipseCommand())
	cmd.AddCommand(c.drawRectCommand())
	cmd.AddCommand(c.drawTextCommand())
	cmd.AddCommand(c.drawDimCommand())
	cmd.AddCommand(c.drawListCommand())

	return cmd
}

func (c *CLI) drawLineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "line <start> <end>",
		Short: "Draw a line between two points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			end, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				h, err := w.client.AddLine(cmd.Context(), start, end)
				if err != nil {
					return err
				}
				printSuccess("line %s", h)
				return nil
			})
		},
	}
}

func (c *CLI) drawCircleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "circle <center> <radius>",
		Short: "Draw a circle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			center, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			radius, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				h, err := w.client.AddCircle(cmd.Context(), center, radius)
				if err != nil {
					return err
				}
				printSuccess("circle %s", h)
				return nil
			})
		},
	}
}

func (c *CLI) drawEllipseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ellipse <center> <major-axis> <ratio>",
		Short: "Draw an ellipse",
		Long: `Draw an ellipse from its center, the major axis endpoint relative to the
center, and the minor/major radius ratio in (0, 1].`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			center, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			major, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			ratio, err := parseFloat(args[2])
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				h, err := w.client.AddEllipse(cmd.Context(), center, major, ratio)
				if err != nil {
					return err
				}
				printSuccess("ellipse %s", h)
				return nil
			})
		},
	}
}

func (c *CLI) drawRectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rect <lower-left> <upper-right>",
		Short: "Draw an axis-aligned rectangle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ll, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			ur, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				h, err := w.client.AddRectangle(cmd.Context(), ll, ur)
				if err != nil {
					return err
				}
				printSuccess("rectangle %s", h)
				return nil
			})
		},
	}
}

func (c *CLI) drawTextCommand() *cobra.Command {
	var (
		height float64
		align  string
	)

	cmd := &cobra.Command{
		Use:   "text <insertion> <content>",
		Short: "Place single-line text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			insertion, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				h, err := w.client.AddText(cmd.Context(), cad.Text{
					Content:   args[1],
					Insertion: insertion,
					Height:    height,
					Alignment: cad.Alignment(align),
				})
				if err != nil {
					return err
				}
				printSuccess("text %s", h)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&height, "height", 2.5, "text height in drawing units")
	cmd.Flags().StringVar(&align, "align", "", "alignment: left (default), right")
	return cmd
}

func (c *CLI) drawDimCommand() *cobra.Command {
	var textPos string

	cmd := &cobra.Command{
		Use:   "dim <start> <end>",
		Short: "Place an aligned dimension between two points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			end, err := parsePoint(args[1])
			if err != nil {
				return err
			}

			// Default text position: midpoint.
			pos := start.Translate((end.X-start.X)/2, (end.Y-start.Y)/2, (end.Z-start.Z)/2)
			if textPos != "" {
				pos, err = parsePoint(textPos)
				if err != nil {
					return err
				}
			}

			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				h, err := w.client.AddDimension(cmd.Context(), cad.Dimension{
					Start:        start,
					End:          end,
					TextPosition: pos,
					Kind:         cad.DimensionAligned,
				})
				if err != nil {
					return err
				}
				printSuccess("dimension %s", h)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&textPos, "text-at", "", "dimension text position (default: midpoint)")
	return cmd
}

func (c *CLI) drawListCommand() *cobra.Command {
	var (
		layerFilter string
		typeFilter  string
		blockFilter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entities in model space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				objects, err := w.client.Objects(cmd.Context(), cad.ObjectFilter{
					Type:  cad.EntityType(typeFilter),
					Layer: layerFilter,
					Block: blockFilter,
				})
				if err != nil {
					return err
				}
				for _, o := range objects {
					label := string(o.Type)
					if o.Block != "" {
						label += " " + StyleHighlight.Render(o.Block)
					}
					printInfo("%s %s", label, StyleDim.Render(o.Insertion.String()+" on "+o.Layer))
					printDetail("%s", o.Handle)
				}
				printStats(len(objects), false)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&layerFilter, "layer", "", "only entities on this layer")
	cmd.Flags().StringVar(&typeFilter, "type", "", "only entities of this type")
	cmd.Flags().StringVar(&blockFilter, "block", "", "only references of this block")
	return cmd
}
