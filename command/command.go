// Package command implements the undoable command protocol: reversible,
// snapshot-carrying mutations and the stack that replays them.
package command

import (
	"github.com/rotisserie/eris"
)

// Command is a reversible mutation. A command is a value, not a live view into
// mutable state: it carries both the old and new snapshots it needs, so
// Unapply is correct even if unrelated state changed since Apply, as long as
// the same target is addressed. Deltas recomputed from the current world are
// never acceptable here.
type Command interface {
	// Apply performs the mutation.
	Apply() error
	// Unapply reverses the mutation exactly.
	Unapply() error
	// Label is the human-readable description shown in undo/redo menus.
	Label() string
}

// Compound groups an ordered list of sub-commands into one atomic undo step.
// Apply runs them in list order; Unapply runs them in reverse, because later
// sub-commands may depend on earlier ones having been applied.
type Compound struct {
	label    string
	commands []Command
}

func NewCompound(label string, commands ...Command) *Compound {
	return &Compound{label: label, commands: commands}
}

// Add appends a sub-command.
func (c *Compound) Add(cmd Command) {
	c.commands = append(c.commands, cmd)
}

// Len returns the number of sub-commands.
func (c *Compound) Len() int {
	return len(c.commands)
}

func (c *Compound) Apply() error {
	for i, cmd := range c.commands {
		if err := cmd.Apply(); err != nil {
			return eris.Wrapf(err, "compound %q: sub-command %d failed to apply", c.label, i)
		}
	}
	return nil
}

func (c *Compound) Unapply() error {
	for i := len(c.commands) - 1; i >= 0; i-- {
		if err := c.commands[i].Unapply(); err != nil {
			return eris.Wrapf(err, "compound %q: sub-command %d failed to unapply", c.label, i)
		}
	}
	return nil
}

func (c *Compound) Label() string {
	return c.label
}

var _ Command = (*Compound)(nil)
