package cad

import (
	"context"
	"math"
	"time"

	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
	"github.com/cadkit/cadkit/pkg/observability"
)

// Client is the high-level drafting wrapper around a host [Session].
//
// Every method validates its arguments, forwards one or more calls to the
// injected session, and reports the operation to the registered
// observability hooks. The client holds no drawing state of its own.
type Client struct {
	session Session
}

// NewClient wraps a host session.
func NewClient(session Session) *Client {
	return &Client{session: session}
}

// Session returns the underlying host session.
func (c *Client) Session() Session {
	return c.session
}

// op forwards a single void operation through the observability hooks.
func (c *Client) op(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	observability.Session().OnOp(ctx, name, time.Since(start), err)
	return err
}

// run forwards a single value-returning operation through the hooks.
func run[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	observability.Session().OnOp(ctx, name, time.Since(start), err)
	return v, err
}

// =============================================================================
// Layers
// =============================================================================

// CreateLayer creates a new drawing layer.
func (c *Client) CreateLayer(ctx context.Context, layer Layer) error {
	if err := errors.ValidateSymbolName(layer.Name); err != nil {
		return err
	}
	if layer.Color != 0 && !layer.Color.Valid() {
		return errors.New(errors.ErrCodeInvalidColor, "color index %d out of range", layer.Color)
	}
	return c.op(ctx, "create-layer", func() error {
		return c.session.CreateLayer(ctx, layer)
	})
}

// DeleteLayer removes a layer from the document.
func (c *Client) DeleteLayer(ctx context.Context, name string) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	return c.op(ctx, "delete-layer", func() error {
		return c.session.DeleteLayer(ctx, name)
	})
}

// SetActiveLayer makes the named layer the target of subsequent entity
// creation.
func (c *Client) SetActiveLayer(ctx context.Context, name string) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	return c.op(ctx, "set-active-layer", func() error {
		return c.session.SetActiveLayer(ctx, name)
	})
}

// SetLayerVisibility turns a layer on or off.
func (c *Client) SetLayerVisibility(ctx context.Context, name string, visible bool) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	return c.op(ctx, "set-layer-visibility", func() error {
		return c.session.SetLayerVisibility(ctx, name, visible)
	})
}

// LockLayer locks or unlocks a layer. Entities on a locked layer reject
// modification until the layer is unlocked.
func (c *Client) LockLayer(ctx context.Context, name string, locked bool) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	return c.op(ctx, "lock-layer", func() error {
		return c.session.LockLayer(ctx, name, locked)
	})
}

// SetLayerColor changes a layer's color.
func (c *Client) SetLayerColor(ctx context.Context, name string, color Color) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	if !color.Valid() {
		return errors.New(errors.ErrCodeInvalidColor, "color index %d out of range", color)
	}
	return c.op(ctx, "set-layer-color", func() error {
		return c.session.SetLayerColor(ctx, name, color)
	})
}

// SetLayerLinetype changes a layer's linetype, loading it on the host if
// necessary.
func (c *Client) SetLayerLinetype(ctx context.Context, name, linetype string) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	if err := errors.ValidateSymbolName(linetype); err != nil {
		return err
	}
	return c.op(ctx, "set-layer-linetype", func() error {
		return c.session.SetLayerLinetype(ctx, name, linetype)
	})
}

// Layers lists all layers in the document.
func (c *Client) Layers(ctx context.Context) ([]Layer, error) {
	return run(ctx, "list-layers", func() ([]Layer, error) {
		return c.session.Layers(ctx)
	})
}

// =============================================================================
// Entities
// =============================================================================

// AddLine draws a line between two points.
func (c *Client) AddLine(ctx context.Context, start, end geom.Point) (Handle, error) {
	return run(ctx, "add-line", func() (Handle, error) {
		return c.session.AddLine(ctx, start, end)
	})
}

// AddCircle draws a circle with the given center and radius.
func (c *Client) AddCircle(ctx context.Context, center geom.Point, radius float64) (Handle, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return "", errors.New(errors.ErrCodeInvalidArgument, "radius must be positive, got %v", radius)
	}
	return run(ctx, "add-circle", func() (Handle, error) {
		return c.session.AddCircle(ctx, center, radius)
	})
}

// AddEllipse draws an ellipse from a center, a major-axis endpoint relative
// to the center, and the minor/major radius ratio.
func (c *Client) AddEllipse(ctx context.Context, center, majorAxis geom.Point, ratio float64) (Handle, error) {
	if ratio <= 0 || ratio > 1 || math.IsNaN(ratio) {
		return "", errors.New(errors.ErrCodeInvalidArgument, "axis ratio must be in (0, 1], got %v", ratio)
	}
	return run(ctx, "add-ellipse", func() (Handle, error) {
		return c.session.AddEllipse(ctx, center, majorAxis, ratio)
	})
}

// AddRectangle draws an axis-aligned rectangle as a closed polyline between
// opposite corners on the Z=0 plane.
func (c *Client) AddRectangle(ctx context.Context, lowerLeft, upperRight geom.Point) (Handle, error) {
	if lowerLeft.X == upperRight.X || lowerLeft.Y == upperRight.Y {
		return "", errors.New(errors.ErrCodeInvalidArgument, "rectangle corners must span both axes")
	}
	return run(ctx, "add-rectangle", func() (Handle, error) {
		return c.session.AddRectangle(ctx, lowerLeft, upperRight)
	})
}

// AddText places a single-line text entity.
func (c *Client) AddText(ctx context.Context, text Text) (Handle, error) {
	if text.Content == "" {
		return "", errors.New(errors.ErrCodeInvalidArgument, "text content cannot be empty")
	}
	if text.Height <= 0 {
		return "", errors.New(errors.ErrCodeInvalidArgument, "text height must be positive, got %v", text.Height)
	}
	if text.Alignment != "" && text.Alignment != AlignLeft && text.Alignment != AlignRight {
		return "", errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment %q", text.Alignment)
	}
	return run(ctx, "add-text", func() (Handle, error) {
		return c.session.AddText(ctx, text)
	})
}

// AddDimension places an aligned dimension between two points.
func (c *Client) AddDimension(ctx context.Context, dim Dimension) (Handle, error) {
	if dim.Kind != "" && dim.Kind != DimensionAligned {
		return "", errors.New(errors.ErrCodeUnsupported, "dimension kind %q not supported", dim.Kind)
	}
	if dim.Start == dim.End {
		return "", errors.New(errors.ErrCodeInvalidArgument, "dimension endpoints must differ")
	}
	return run(ctx, "add-dimension", func() (Handle, error) {
		return c.session.AddDimension(ctx, dim)
	})
}

// DeleteObject removes an entity from the document.
func (c *Client) DeleteObject(ctx context.Context, h Handle) error {
	if h == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "handle cannot be empty")
	}
	return c.op(ctx, "delete-object", func() error {
		return c.session.DeleteObject(ctx, h)
	})
}

// CloneObject copies an entity, placing the copy at the given insertion point.
func (c *Client) CloneObject(ctx context.Context, h Handle, insertion geom.Point) (Handle, error) {
	if h == "" {
		return "", errors.New(errors.ErrCodeInvalidArgument, "handle cannot be empty")
	}
	return run(ctx, "clone-object", func() (Handle, error) {
		return c.session.CloneObject(ctx, h, insertion)
	})
}

// =============================================================================
// Query and Transform
// =============================================================================

// Objects queries model space. A zero-valued filter returns every object.
func (c *Client) Objects(ctx context.Context, filter ObjectFilter) ([]Object, error) {
	return run(ctx, "list-objects", func() ([]Object, error) {
		return c.session.Objects(ctx, filter)
	})
}

// Move translates an entity so its insertion reference lands on the target
// point.
func (c *Client) Move(ctx context.Context, h Handle, to geom.Point) error {
	if h == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "handle cannot be empty")
	}
	return c.op(ctx, "move-object", func() error {
		return c.session.Move(ctx, h, to)
	})
}

// Scale scales an entity about a base point.
func (c *Client) Scale(ctx context.Context, h Handle, base geom.Point, factor float64) error {
	if h == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "handle cannot be empty")
	}
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return errors.New(errors.ErrCodeInvalidArgument, "scale factor must be positive, got %v", factor)
	}
	return c.op(ctx, "scale-object", func() error {
		return c.session.Scale(ctx, h, base, factor)
	})
}

// Rotate rotates an entity about a base point by the given angle in radians.
func (c *Client) Rotate(ctx context.Context, h Handle, base geom.Point, angle float64) error {
	if h == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "handle cannot be empty")
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return errors.New(errors.ErrCodeInvalidArgument, "rotation angle must be finite")
	}
	return c.op(ctx, "rotate-object", func() error {
		return c.session.Rotate(ctx, h, base, angle)
	})
}

// =============================================================================
// Blocks
// =============================================================================

// InsertBlock places one reference of a defined block.
func (c *Client) InsertBlock(ctx context.Context, ref BlockReference) (Handle, error) {
	if err := errors.ValidateSymbolName(ref.Name); err != nil {
		return "", err
	}
	if ref.Scale < 0 {
		return "", errors.New(errors.ErrCodeInvalidArgument, "block scale cannot be negative, got %v", ref.Scale)
	}
	return run(ctx, "insert-block", func() (Handle, error) {
		return c.session.InsertBlock(ctx, ref)
	})
}

// InsertBlockFromFile imports a block definition from a file and immediately
// places one reference of it. Returns the new reference's handle.
func (c *Client) InsertBlockFromFile(ctx context.Context, path string, insertion geom.Point, scale, rotation float64) (Handle, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return "", err
	}
	if scale < 0 {
		return "", errors.New(errors.ErrCodeInvalidArgument, "block scale cannot be negative, got %v", scale)
	}
	return run(ctx, "insert-block-from-file", func() (Handle, error) {
		name, err := c.session.ImportBlock(ctx, path)
		if err != nil {
			return "", err
		}
		return c.session.InsertBlock(ctx, BlockReference{
			Name:      name,
			Insertion: insertion,
			Scale:     scale,
			Rotation:  rotation,
		})
	})
}

// ExportBlock writes a block definition to a file.
func (c *Client) ExportBlock(ctx context.Context, name, path string) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	if err := errors.ValidateFilePath(path); err != nil {
		return err
	}
	return c.op(ctx, "export-block", func() error {
		return c.session.ExportBlock(ctx, name, path)
	})
}

// BlockNames lists the user-defined block definitions in the document.
func (c *Client) BlockNames(ctx context.Context) ([]string, error) {
	return run(ctx, "list-blocks", func() ([]string, error) {
		return c.session.BlockNames(ctx)
	})
}

// BlockAttributes returns all attributes of a block reference.
func (c *Client) BlockAttributes(ctx context.Context, h Handle) ([]Attribute, error) {
	if h == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "handle cannot be empty")
	}
	return run(ctx, "list-block-attributes", func() ([]Attribute, error) {
		return c.session.BlockAttributes(ctx, h)
	})
}

// SetBlockAttribute updates the value of the attribute with the given tag on
// a block reference.
func (c *Client) SetBlockAttribute(ctx context.Context, h Handle, tag, value string) error {
	if h == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "handle cannot be empty")
	}
	if err := errors.ValidateAttributeTag(tag); err != nil {
		return err
	}
	return c.op(ctx, "set-block-attribute", func() error {
		return c.session.SetBlockAttribute(ctx, h, tag, value)
	})
}

// DeleteBlockAttribute removes the attribute with the given tag from a block
// reference.
func (c *Client) DeleteBlockAttribute(ctx context.Context, h Handle, tag string) error {
	if h == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "handle cannot be empty")
	}
	if err := errors.ValidateAttributeTag(tag); err != nil {
		return err
	}
	return c.op(ctx, "delete-block-attribute", func() error {
		return c.session.DeleteBlockAttribute(ctx, h, tag)
	})
}

// =============================================================================
// Groups
// =============================================================================

// CreateGroup creates a named group containing the given entities.
func (c *Client) CreateGroup(ctx context.Context, name string, members []Handle) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	return c.op(ctx, "create-group", func() error {
		return c.session.CreateGroup(ctx, name, members)
	})
}

// AddToGroup appends entities to an existing group.
func (c *Client) AddToGroup(ctx context.Context, name string, members []Handle) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	return c.op(ctx, "add-to-group", func() error {
		return c.session.AddToGroup(ctx, name, members)
	})
}

// RemoveFromGroup removes entities from a group.
func (c *Client) RemoveFromGroup(ctx context.Context, name string, members []Handle) error {
	if err := errors.ValidateSymbolName(name); err != nil {
		return err
	}
	return c.op(ctx, "remove-from-group", func() error {
		return c.session.RemoveFromGroup(ctx, name, members)
	})
}

// GroupMembers returns the handles collected in a group, in insertion order.
func (c *Client) GroupMembers(ctx context.Context, name string) ([]Handle, error) {
	if err := errors.ValidateSymbolName(name); err != nil {
		return nil, err
	}
	return run(ctx, "group-members", func() ([]Handle, error) {
		return c.session.GroupMembers(ctx, name)
	})
}

// =============================================================================
// Prompts and Messages
// =============================================================================

// PromptPoint asks the user to pick a point.
func (c *Client) PromptPoint(ctx context.Context, prompt string) (geom.Point, error) {
	start := time.Now()
	p, err := c.session.PromptPoint(ctx, prompt)
	observability.Session().OnPrompt(ctx, "point", time.Since(start), err)
	return p, err
}

// PromptString asks the user for a line of text.
func (c *Client) PromptString(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	s, err := c.session.PromptString(ctx, prompt)
	observability.Session().OnPrompt(ctx, "string", time.Since(start), err)
	return s, err
}

// PromptInt asks the user for an integer.
func (c *Client) PromptInt(ctx context.Context, prompt string) (int, error) {
	start := time.Now()
	n, err := c.session.PromptInt(ctx, prompt)
	observability.Session().OnPrompt(ctx, "integer", time.Since(start), err)
	return n, err
}

// ShowMessage displays a message to the user through the host.
func (c *Client) ShowMessage(ctx context.Context, message string) error {
	return c.op(ctx, "show-message", func() error {
		return c.session.ShowMessage(ctx, message)
	})
}

// =============================================================================
// Document
// =============================================================================

// Open loads a document from a file, replacing the current drawing state.
func (c *Client) Open(ctx context.Context, path string) error {
	if err := errors.ValidateFilePath(path); err != nil {
		return err
	}
	return c.op(ctx, "open-document", func() error {
		return c.session.Open(ctx, path)
	})
}

// SaveAs writes the current document to a file.
func (c *Client) SaveAs(ctx context.Context, path string) error {
	if err := errors.ValidateFilePath(path); err != nil {
		return err
	}
	return c.op(ctx, "save-document", func() error {
		return c.session.SaveAs(ctx, path)
	})
}
