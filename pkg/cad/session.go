package cad

import (
	"context"

	"github.com/cadkit/cadkit/pkg/geom"
)

// Session is the capability surface of a running CAD host.
//
// Every method forwards to host-owned state: the host serializes access to
// its document and is the single source of truth for layers, entities,
// blocks, and groups. Implementations return structured errors from
// pkg/errors so callers can branch on codes rather than message text.
//
// The interface is deliberately wide — it mirrors the automation surface of
// the host one-to-one rather than abstracting over it. Consumers that need
// only a slice of it should declare their own narrow interface; cadkit's
// implementations satisfy any subset.
type Session interface {
	// Layers
	CreateLayer(ctx context.Context, layer Layer) error
	DeleteLayer(ctx context.Context, name string) error
	SetActiveLayer(ctx context.Context, name string) error
	SetLayerVisibility(ctx context.Context, name string, visible bool) error
	LockLayer(ctx context.Context, name string, locked bool) error
	SetLayerColor(ctx context.Context, name string, color Color) error
	SetLayerLinetype(ctx context.Context, name, linetype string) error
	Layers(ctx context.Context) ([]Layer, error)

	// Entities
	AddLine(ctx context.Context, start, end geom.Point) (Handle, error)
	AddCircle(ctx context.Context, center geom.Point, radius float64) (Handle, error)
	AddEllipse(ctx context.Context, center, majorAxis geom.Point, ratio float64) (Handle, error)
	AddRectangle(ctx context.Context, lowerLeft, upperRight geom.Point) (Handle, error)
	AddText(ctx context.Context, text Text) (Handle, error)
	AddDimension(ctx context.Context, dim Dimension) (Handle, error)
	DeleteObject(ctx context.Context, h Handle) error
	CloneObject(ctx context.Context, h Handle, insertion geom.Point) (Handle, error)

	// Query and transform
	Objects(ctx context.Context, filter ObjectFilter) ([]Object, error)
	Move(ctx context.Context, h Handle, to geom.Point) error
	Scale(ctx context.Context, h Handle, base geom.Point, factor float64) error
	Rotate(ctx context.Context, h Handle, base geom.Point, angle float64) error

	// Blocks
	InsertBlock(ctx context.Context, ref BlockReference) (Handle, error)
	ImportBlock(ctx context.Context, path string) (string, error)
	ExportBlock(ctx context.Context, name, path string) error
	BlockNames(ctx context.Context) ([]string, error)
	BlockAttributes(ctx context.Context, h Handle) ([]Attribute, error)
	SetBlockAttribute(ctx context.Context, h Handle, tag, value string) error
	DeleteBlockAttribute(ctx context.Context, h Handle, tag string) error

	// Groups
	CreateGroup(ctx context.Context, name string, members []Handle) error
	AddToGroup(ctx context.Context, name string, members []Handle) error
	RemoveFromGroup(ctx context.Context, name string, members []Handle) error
	GroupMembers(ctx context.Context, name string) ([]Handle, error)

	// Modal prompts and messages
	PromptPoint(ctx context.Context, prompt string) (geom.Point, error)
	PromptString(ctx context.Context, prompt string) (string, error)
	PromptInt(ctx context.Context, prompt string) (int, error)
	ShowMessage(ctx context.Context, message string) error

	// Document
	Open(ctx context.Context, path string) error
	SaveAs(ctx context.Context, path string) error
}
