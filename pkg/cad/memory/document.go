package memory

import (
	"context"
	"io"
	"sync"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
)

// DefaultLayer is the layer every document starts with. It cannot be
// deleted, matching host behavior for layer "0".
const DefaultLayer = "0"

// Document is an in-process CAD host. It implements cad.Session.
//
// All exported methods are safe for concurrent use; a single mutex
// serializes access the way a real host serializes its automation apartment.
type Document struct {
	mu sync.Mutex

	layers     map[string]*cad.Layer
	layerOrder []string
	active     string

	entities []*entity
	byHandle map[cad.Handle]*entity

	blocks     map[string]*BlockDef
	blockOrder []string

	groups     map[string][]cad.Handle
	groupOrder []string

	prompter Prompter
	messages io.Writer
}

// Option configures a Document.
type Option func(*Document)

// WithPrompter attaches the prompter used to answer modal input requests.
// Without one, prompt operations fail with UNSUPPORTED.
func WithPrompter(p Prompter) Option {
	return func(d *Document) { d.prompter = p }
}

// WithMessageWriter directs ShowMessage output to w. The default discards
// messages.
func WithMessageWriter(w io.Writer) Option {
	return func(d *Document) { d.messages = w }
}

// NewDocument creates an empty document with the default layer active.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		layers:   map[string]*cad.Layer{},
		byHandle: map[cad.Handle]*entity{},
		blocks:   map[string]*BlockDef{},
		groups:   map[string][]cad.Handle{},
		messages: io.Discard,
	}
	base := cad.NewLayer(DefaultLayer, cad.ColorWhite)
	d.layers[DefaultLayer] = &base
	d.layerOrder = []string{DefaultLayer}
	d.active = DefaultLayer

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ActiveLayer returns the name of the current drawing layer.
func (d *Document) ActiveLayer() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// =============================================================================
// Layers
// =============================================================================

// CreateLayer adds a layer to the layer table.
func (d *Document) CreateLayer(_ context.Context, layer cad.Layer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.layers[layer.Name]; exists {
		return errors.New(errors.ErrCodeDuplicate, "layer %q already exists", layer.Name)
	}
	if layer.Color == 0 {
		layer.Color = cad.ColorWhite
	}
	if layer.Linetype == "" {
		layer.Linetype = cad.DefaultLinetype
	}
	d.layers[layer.Name] = &layer
	d.layerOrder = append(d.layerOrder, layer.Name)
	return nil
}

// DeleteLayer removes a layer. The default layer, the active layer, and
// layers still referenced by entities cannot be deleted.
func (d *Document) DeleteLayer(_ context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.layers[name]; !exists {
		return layerNotFound(name)
	}
	if name == DefaultLayer {
		return errors.New(errors.ErrCodeLayerInUse, "layer %q cannot be deleted", name)
	}
	if name == d.active {
		return errors.New(errors.ErrCodeLayerInUse, "layer %q is the active layer", name)
	}
	for _, e := range d.entities {
		if e.Layer == name {
			return errors.New(errors.ErrCodeLayerInUse, "layer %q still has entities", name)
		}
	}

	delete(d.layers, name)
	for i, n := range d.layerOrder {
		if n == name {
			d.layerOrder = append(d.layerOrder[:i], d.layerOrder[i+1:]...)
			break
		}
	}
	return nil
}

// SetActiveLayer selects the layer new entities are created on.
func (d *Document) SetActiveLayer(_ context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.layers[name]; !exists {
		return layerNotFound(name)
	}
	d.active = name
	return nil
}

// SetLayerVisibility turns a layer on or off.
func (d *Document) SetLayerVisibility(_ context.Context, name string, visible bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	layer, exists := d.layers[name]
	if !exists {
		return layerNotFound(name)
	}
	layer.Visible = visible
	return nil
}

// LockLayer locks or unlocks a layer.
func (d *Document) LockLayer(_ context.Context, name string, locked bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	layer, exists := d.layers[name]
	if !exists {
		return layerNotFound(name)
	}
	layer.Locked = locked
	return nil
}

// SetLayerColor changes a layer's color.
func (d *Document) SetLayerColor(_ context.Context, name string, color cad.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	layer, exists := d.layers[name]
	if !exists {
		return layerNotFound(name)
	}
	layer.Color = color
	return nil
}

// SetLayerLinetype changes a layer's linetype. Unknown linetypes are loaded
// implicitly; the in-memory host accepts any name.
func (d *Document) SetLayerLinetype(_ context.Context, name, linetype string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	layer, exists := d.layers[name]
	if !exists {
		return layerNotFound(name)
	}
	layer.Linetype = linetype
	return nil
}

// Layers returns all layers in creation order.
func (d *Document) Layers(_ context.Context) ([]cad.Layer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]cad.Layer, 0, len(d.layerOrder))
	for _, name := range d.layerOrder {
		out = append(out, *d.layers[name])
	}
	return out, nil
}

// =============================================================================
// Messages
// =============================================================================

// ShowMessage writes the message to the configured writer, newline
// terminated, the way the host's prompt area displays it.
func (d *Document) ShowMessage(_ context.Context, message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := io.WriteString(d.messages, message+"\n")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write message")
	}
	return nil
}

// =============================================================================
// Internal helpers
// =============================================================================

func layerNotFound(name string) error {
	return errors.New(errors.ErrCodeLayerNotFound, "layer %q not found", name)
}

// lockedLayer reports whether the entity's layer rejects modification.
// Callers hold d.mu.
func (d *Document) lockedLayer(e *entity) error {
	if layer, ok := d.layers[e.Layer]; ok && layer.Locked {
		return errors.New(errors.ErrCodeLayerLocked, "layer %q is locked", e.Layer)
	}
	return nil
}

// find resolves a handle. Callers hold d.mu.
func (d *Document) find(h cad.Handle) (*entity, error) {
	e, ok := d.byHandle[h]
	if !ok {
		return nil, errors.New(errors.ErrCodeEntityNotFound, "no object with handle %q", h)
	}
	return e, nil
}

// Interface check.
var _ cad.Session = (*Document)(nil)
