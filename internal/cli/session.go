package cli

import (
	"context"
	"os"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/cad/memory"
	"github.com/cadkit/cadkit/pkg/cadhttp"
	"github.com/cadkit/cadkit/pkg/errors"
)

// workspace is an open drafting target: a client plus the bookkeeping to
// persist changes when the command is done.
type workspace struct {
	client *cad.Client
	doc    *memory.Document // nil when driving a remote host
	path   string           // drawing file, local mode only
	save   bool
}

// openWorkspace connects to the configured target. Local mode loads the
// drawing file into a memory document (a missing file starts an empty
// drawing); remote mode dials the bridge host.
func (c *CLI) openWorkspace(ctx context.Context) (*workspace, error) {
	if c.host != "" {
		session, err := cadhttp.NewClient(c.host)
		if err != nil {
			return nil, err
		}
		return &workspace{client: cad.NewClient(session)}, nil
	}

	doc := memory.NewDocument(
		memory.WithPrompter(newTerminalPrompter()),
		memory.WithMessageWriter(os.Stdout),
	)

	if _, err := os.Stat(c.drawing); err == nil {
		if err := doc.Open(ctx, c.drawing); err != nil {
			return nil, err
		}
		loggerFromContext(ctx).Debug("opened drawing", "path", c.drawing)
	}

	return &workspace{
		client: cad.NewClient(doc),
		doc:    doc,
		path:   c.drawing,
		save:   !c.noSave,
	}, nil
}

// commit writes local changes back to the drawing file. Remote hosts own
// their documents, so commit is a no-op there.
func (w *workspace) commit(ctx context.Context) error {
	if w.doc == nil || !w.save {
		return nil
	}
	if err := w.client.SaveAs(ctx, w.path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "save drawing %s", w.path)
	}
	return nil
}

// withWorkspace opens the target, runs fn, and commits on success.
func (c *CLI) withWorkspace(ctx context.Context, fn func(*workspace) error) error {
	w, err := c.openWorkspace(ctx)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		return err
	}
	return w.commit(ctx)
}
