package memory

import (
	"context"
	"slices"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
)

// CreateGroup creates a named group over existing entities.
func (d *Document) CreateGroup(_ context.Context, name string, members []cad.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.groups[name]; exists {
		return errors.New(errors.ErrCodeDuplicate, "group %q already exists", name)
	}

	collected, err := d.collect(nil, members)
	if err != nil {
		return err
	}
	d.groups[name] = collected
	d.groupOrder = append(d.groupOrder, name)
	return nil
}

// AddToGroup appends entities to an existing group. Handles already in the
// group are skipped.
func (d *Document) AddToGroup(_ context.Context, name string, members []cad.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, exists := d.groups[name]
	if !exists {
		return groupNotFound(name)
	}

	collected, err := d.collect(current, members)
	if err != nil {
		return err
	}
	d.groups[name] = collected
	return nil
}

// RemoveFromGroup removes entities from a group. Handles not in the group
// are ignored.
func (d *Document) RemoveFromGroup(_ context.Context, name string, members []cad.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, exists := d.groups[name]
	if !exists {
		return groupNotFound(name)
	}

	for _, h := range members {
		current = removeHandle(current, h)
	}
	d.groups[name] = current
	return nil
}

// GroupMembers returns the group's handles in insertion order.
func (d *Document) GroupMembers(_ context.Context, name string) ([]cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	members, exists := d.groups[name]
	if !exists {
		return nil, groupNotFound(name)
	}
	return append([]cad.Handle(nil), members...), nil
}

// GroupNames returns all group names in creation order.
func (d *Document) GroupNames() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.groupOrder...)
}

// collect validates and appends members, deduplicating against current.
// Callers hold d.mu.
func (d *Document) collect(current []cad.Handle, members []cad.Handle) ([]cad.Handle, error) {
	out := append([]cad.Handle(nil), current...)
	for _, h := range members {
		if _, err := d.find(h); err != nil {
			return nil, err
		}
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out, nil
}

func groupNotFound(name string) error {
	return errors.New(errors.ErrCodeGroupNotFound, "group %q not found", name)
}
