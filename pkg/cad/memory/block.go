package memory

import (
	"context"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
)

// BlockDef is a reusable block definition: template geometry plus default
// attribute values stamped onto every inserted reference.
type BlockDef struct {
	Name string `json:"name"`

	// Length is the block's footprint along the X axis, used by callers
	// that tile the block across a span. Optional.
	Length float64 `json:"length,omitempty"`

	Entities   []entity        `json:"entities,omitempty"`
	Attributes []cad.Attribute `json:"attributes,omitempty"`
}

// DefineBlock registers (or replaces) a block definition. This is the
// in-memory counterpart of drawing geometry into a host block table.
func (d *Document) DefineBlock(def BlockDef) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.defineBlock(def)
}

// defineBlock registers a definition. Callers hold d.mu.
func (d *Document) defineBlock(def BlockDef) {
	if _, exists := d.blocks[def.Name]; !exists {
		d.blockOrder = append(d.blockOrder, def.Name)
	}
	d.blocks[def.Name] = &def
}

// Block returns a copy of the named block definition.
func (d *Document) Block(name string) (BlockDef, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	def, ok := d.blocks[name]
	if !ok {
		return BlockDef{}, false
	}
	return *def, true
}

// InsertBlock places one reference of a defined block. The reference starts
// with a copy of the definition's default attributes.
func (d *Document) InsertBlock(_ context.Context, ref cad.BlockReference) (cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	def, ok := d.blocks[ref.Name]
	if !ok {
		return "", errors.New(errors.ErrCodeBlockNotFound, "block %q not defined", ref.Name)
	}

	return d.add(&entity{
		Type:      cad.EntityBlockReference,
		Insertion: ref.Insertion,
		Block:     def.Name,
		Scale:     ref.EffectiveScale(),
		Rotation:  ref.Rotation,
		Attrs:     append([]cad.Attribute(nil), def.Attributes...),
	})
}

// BlockNames returns the user-defined block names in definition order.
func (d *Document) BlockNames(_ context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.blockOrder...), nil
}

// =============================================================================
// Reference attributes
// =============================================================================

// BlockAttributes returns the attributes attached to a block reference.
func (d *Document) BlockAttributes(_ context.Context, h cad.Handle) ([]cad.Attribute, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.findBlockRef(h)
	if err != nil {
		return nil, err
	}
	return append([]cad.Attribute(nil), e.Attrs...), nil
}

// SetBlockAttribute updates the value of an existing attribute. Attributes
// originate from the block definition; tags that were never defined fail
// with ATTRIBUTE_NOT_FOUND.
func (d *Document) SetBlockAttribute(_ context.Context, h cad.Handle, tag, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.findBlockRef(h)
	if err != nil {
		return err
	}
	if err := d.lockedLayer(e); err != nil {
		return err
	}

	for i := range e.Attrs {
		if e.Attrs[i].Tag == tag {
			e.Attrs[i].Value = value
			return nil
		}
	}
	return attributeNotFound(tag)
}

// DeleteBlockAttribute removes the attribute with the given tag from a
// block reference.
func (d *Document) DeleteBlockAttribute(_ context.Context, h cad.Handle, tag string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.findBlockRef(h)
	if err != nil {
		return err
	}
	if err := d.lockedLayer(e); err != nil {
		return err
	}

	for i := range e.Attrs {
		if e.Attrs[i].Tag == tag {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return nil
		}
	}
	return attributeNotFound(tag)
}

func (d *Document) findBlockRef(h cad.Handle) (*entity, error) {
	e, err := d.find(h)
	if err != nil {
		return nil, err
	}
	if e.Type != cad.EntityBlockReference {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "object %q is not a block reference", h)
	}
	return e, nil
}

func attributeNotFound(tag string) error {
	return errors.New(errors.ErrCodeAttributeNotFound, "no attribute with tag %q", tag)
}
