package memory

import (
	"context"
	"encoding/json"
	"os"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
)

// snapshotVersion guards the drawing file format. Bump on incompatible
// changes.
const snapshotVersion = 1

// snapshot is the JSON shape of a whole document.
type snapshot struct {
	Version     int             `json:"version"`
	ActiveLayer string          `json:"active_layer"`
	Layers      []cad.Layer     `json:"layers"`
	Entities    []entity        `json:"entities,omitempty"`
	Blocks      []BlockDef      `json:"blocks,omitempty"`
	Groups      []groupSnapshot `json:"groups,omitempty"`
}

type groupSnapshot struct {
	Name    string       `json:"name"`
	Members []cad.Handle `json:"members"`
}

// blockFile is the JSON shape of one exported block definition.
type blockFile struct {
	Version int      `json:"version"`
	Block   BlockDef `json:"block"`
}

// =============================================================================
// Document open / save
// =============================================================================

// SaveAs writes the document snapshot to path.
func (d *Document) SaveAs(_ context.Context, path string) error {
	d.mu.Lock()
	snap := d.snapshot()
	d.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode drawing")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write drawing %s", path)
	}
	return nil
}

// Open replaces the document state with the snapshot stored at path.
func (d *Document) Open(_ context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeNotFound, "drawing %s not found", path)
		}
		return errors.Wrap(errors.ErrCodeIO, err, "read drawing %s", path)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "decode drawing %s", path)
	}
	if snap.Version != snapshotVersion {
		return errors.New(errors.ErrCodeUnsupported, "drawing %s has format version %d, want %d", path, snap.Version, snapshotVersion)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.restore(snap)
	return nil
}

// snapshot captures the document state. Callers hold d.mu.
func (d *Document) snapshot() snapshot {
	snap := snapshot{
		Version:     snapshotVersion,
		ActiveLayer: d.active,
	}
	for _, name := range d.layerOrder {
		snap.Layers = append(snap.Layers, *d.layers[name])
	}
	for _, e := range d.entities {
		snap.Entities = append(snap.Entities, *e)
	}
	for _, name := range d.blockOrder {
		snap.Blocks = append(snap.Blocks, *d.blocks[name])
	}
	for _, name := range d.groupOrder {
		snap.Groups = append(snap.Groups, groupSnapshot{
			Name:    name,
			Members: append([]cad.Handle(nil), d.groups[name]...),
		})
	}
	return snap
}

// restore replaces the document state. Callers hold d.mu.
func (d *Document) restore(snap snapshot) {
	d.layers = map[string]*cad.Layer{}
	d.layerOrder = d.layerOrder[:0]
	for _, layer := range snap.Layers {
		l := layer
		d.layers[l.Name] = &l
		d.layerOrder = append(d.layerOrder, l.Name)
	}
	if _, ok := d.layers[DefaultLayer]; !ok {
		base := cad.NewLayer(DefaultLayer, cad.ColorWhite)
		d.layers[DefaultLayer] = &base
		d.layerOrder = append([]string{DefaultLayer}, d.layerOrder...)
	}
	d.active = snap.ActiveLayer
	if _, ok := d.layers[d.active]; !ok {
		d.active = DefaultLayer
	}

	d.entities = d.entities[:0]
	d.byHandle = map[cad.Handle]*entity{}
	for _, rec := range snap.Entities {
		e := rec
		if e.Handle == "" {
			e.Handle = newHandle()
		}
		d.entities = append(d.entities, &e)
		d.byHandle[e.Handle] = &e
	}

	d.blocks = map[string]*BlockDef{}
	d.blockOrder = d.blockOrder[:0]
	for _, def := range snap.Blocks {
		d.defineBlock(def)
	}

	d.groups = map[string][]cad.Handle{}
	d.groupOrder = d.groupOrder[:0]
	for _, g := range snap.Groups {
		members := []cad.Handle{}
		for _, h := range g.Members {
			if _, ok := d.byHandle[h]; ok {
				members = append(members, h)
			}
		}
		d.groups[g.Name] = members
		d.groupOrder = append(d.groupOrder, g.Name)
	}
}

// =============================================================================
// Block export / import
// =============================================================================

// ExportBlock writes one block definition to path.
func (d *Document) ExportBlock(_ context.Context, name, path string) error {
	d.mu.Lock()
	def, ok := d.blocks[name]
	var file blockFile
	if ok {
		file = blockFile{Version: snapshotVersion, Block: *def}
	}
	d.mu.Unlock()

	if !ok {
		return errors.New(errors.ErrCodeBlockNotFound, "block %q not defined", name)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode block %q", name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write block file %s", path)
	}
	return nil
}

// ImportBlock loads a block definition from path, replacing any existing
// definition with the same name, and returns the block's name.
func (d *Document) ImportBlock(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeNotFound, "block file %s not found", path)
		}
		return "", errors.Wrap(errors.ErrCodeIO, err, "read block file %s", path)
	}

	var file blockFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "decode block file %s", path)
	}
	if file.Version != snapshotVersion {
		return "", errors.New(errors.ErrCodeUnsupported, "block file %s has format version %d, want %d", path, file.Version, snapshotVersion)
	}
	if file.Block.Name == "" {
		return "", errors.New(errors.ErrCodeInvalidName, "block file %s has no block name", path)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.defineBlock(file.Block)
	return file.Block.Name, nil
}
