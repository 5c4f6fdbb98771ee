package registry

import (
	"pkg.world.dev/hexforge/types"
)

// Upsert is the reversible insert-or-replace of one definition. It snapshots
// the previous occupant of the slot (if any) at construction, so unapply
// restores exactly what was there before.
type Upsert[T any] struct {
	reg   *Registry[T]
	id    types.Identity
	label string

	old    T
	hadOld bool
	next   T
}

func NewUpsert[T any](reg *Registry[T], id types.Identity, next T, label string) *Upsert[T] {
	old, hadOld := reg.Get(id)
	return &Upsert[T]{
		reg:    reg,
		id:     id,
		label:  label,
		old:    old,
		hadOld: hadOld,
		next:   next,
	}
}

func (c *Upsert[T]) Apply() error {
	c.reg.Upsert(c.id, c.next)
	return nil
}

func (c *Upsert[T]) Unapply() error {
	if c.hadOld {
		c.reg.Upsert(c.id, c.old)
	} else {
		c.reg.Remove(c.id)
	}
	return nil
}

func (c *Upsert[T]) Label() string {
	return c.label
}

// Delete is the reversible removal of one definition. Deletion never cascades:
// instances referencing the identity keep it, and later lookups simply miss.
type Delete[T any] struct {
	reg   *Registry[T]
	id    types.Identity
	label string

	old    T
	hadOld bool
}

func NewDelete[T any](reg *Registry[T], id types.Identity, label string) *Delete[T] {
	old, hadOld := reg.Get(id)
	return &Delete[T]{reg: reg, id: id, label: label, old: old, hadOld: hadOld}
}

func (c *Delete[T]) Apply() error {
	c.reg.Remove(c.id)
	return nil
}

func (c *Delete[T]) Unapply() error {
	if c.hadOld {
		c.reg.Upsert(c.id, c.old)
	}
	return nil
}

func (c *Delete[T]) Label() string {
	return c.label
}
