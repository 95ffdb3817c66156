package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/cache"
	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/observability"
	"github.com/cadkit/cadkit/pkg/render"
)

// previewCommand renders the drawing to an SVG file.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output     string
		width      int
		height     int
		background string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the drawing to SVG",
		Long: `Render the drawing to a standalone SVG file. Hidden layers are skipped and
block references appear as labeled footprints.

Renders are cached by drawing content and render options; pass --no-cache to
force a fresh render.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.host != "" {
				return errors.New(errors.ErrCodeUnsupported, "preview renders a local drawing, not a remote host")
			}

			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}

			// Key the cache on the drawing file content. A missing file is an
			// empty drawing with a stable hash.
			raw, err := os.ReadFile(c.drawing)
			if err != nil && !os.IsNotExist(err) {
				return errors.Wrap(errors.ErrCodeIO, err, "read drawing %s", c.drawing)
			}

			// Scope keys by drawing path so one drawing's entries can be
			// reasoned about (and purged) independently of another's.
			opts := cache.PreviewKeyOpts{Width: width, Height: height, Background: background}
			keyer := cache.NewScopedKeyer(nil, c.drawing+":")
			key := keyer.PreviewKey(cache.Hash(raw), opts)

			store, err := newCache(noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			data, hit, err := store.Get(ctx, key)
			if err != nil {
				loggerFromContext(ctx).Debug("cache read failed", "err", err)
			}
			if hit {
				observability.Cache().OnCacheHit(ctx, "preview")
			} else {
				observability.Cache().OnCacheMiss(ctx, "preview")

				svgOpts := []render.SVGOption{render.WithSize(width, height)}
				if background != "" {
					svgOpts = append(svgOpts, render.WithBackground(background))
				}
				data = render.SVG(w.doc.View(), svgOpts...)

				if err := store.Set(ctx, key, data, 0); err != nil {
					loggerFromContext(ctx).Debug("cache write failed", "err", err)
				} else {
					observability.Cache().OnCacheSet(ctx, "preview", len(data))
				}
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "write %s", output)
			}

			prog.done("Rendered preview")
			printFile(output)
			printStats(len(w.doc.View().Entities), hit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "preview.svg", "output SVG file")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	cmd.Flags().StringVar(&background, "background", "", "background color (default dark)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render without the preview cache")
	return cmd
}
