package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/tiling"
)

// tileCommand repeats a block along the X axis.
func (c *CLI) tileCommand() *cobra.Command {
	var (
		total  float64
		length float64
		at     string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "tile <block>",
		Short: "Repeat a block along a span",
		Long: `Repeat a block along the X axis.

The planner fits floor(total/length) copies into the span, spaced one block
length apart from the start point; the remainder stays empty. A span shorter
than one block is valid and places nothing.

Use --dry-run to print the planned insertion points without touching the
drawing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePoint(at)
			if err != nil {
				return err
			}

			req := tiling.Request{
				TotalLength: total,
				ItemLength:  length,
				Start:       start,
			}

			if dryRun {
				points, err := tiling.Plan(req)
				if err != nil {
					return err
				}
				for _, p := range points {
					printInfo("%s", p)
				}
				printDetail("%d of %s fit in %g (remainder %g)",
					len(points), args[0], total, total-float64(len(points))*length)
				printNextStep("insert them", "rerun without --dry-run")
				return nil
			}

			return c.withWorkspace(cmd.Context(), func(w *workspace) error {
				spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Tiling %s...", args[0]))
				spinner.Start()

				handles, err := w.client.RepeatBlockHorizontally(cmd.Context(), args[0], total, length, start)
				if err != nil {
					spinner.StopWithError("Tiling failed")
					return err
				}
				spinner.StopWithSuccess(fmt.Sprintf("Inserted %d × %s", len(handles), args[0]))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&total, "total", 0, "span length to fill")
	cmd.Flags().Float64Var(&length, "length", 0, "length of one block along X")
	cmd.Flags().StringVar(&at, "at", "0,0", "start point of the span")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the plan without inserting")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
