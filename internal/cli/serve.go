package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/cadhttp"
	cadkiterrors "github.com/cadkit/cadkit/pkg/errors"
)

// serveCommand exposes a local drawing over the bridge HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the drawing over the bridge API",
		Long: `Serve the drawing over the bridge HTTP API so that other cadkit instances
(or anything speaking the wire format) can drive it with --host.

The drawing file is written back on shutdown unless --no-save is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if c.host != "" {
				return cadkiterrors.New(cadkiterrors.ErrCodeUnsupported, "serve hosts a local drawing, not a remote host")
			}

			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           cadhttp.NewServer(w.doc, cadhttp.WithLogger(c.Logger)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			printInfo("serving %s on %s", c.drawing, addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			if err := w.commit(shutdownCtx); err != nil {
				return err
			}
			printSuccess("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8437", "listen address")
	return cmd
}
