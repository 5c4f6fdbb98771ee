package command_test

import (
	"testing"

	"github.com/rotisserie/eris"

	"pkg.world.dev/hexforge/assert"
	"pkg.world.dev/hexforge/command"
)

// step mutates a shared register and records its label in a trace, so tests
// can observe both state and ordering. The fail flags force one direction to
// error without touching the register.
type step struct {
	register    *int
	delta       int
	name        string
	trace       *[]string
	failApply   bool
	failUnapply bool
}

func (s *step) Apply() error {
	if s.failApply {
		return eris.New("apply refused")
	}
	*s.register += s.delta
	if s.trace != nil {
		*s.trace = append(*s.trace, "apply:"+s.name)
	}
	return nil
}

func (s *step) Unapply() error {
	if s.failUnapply {
		return eris.New("unapply refused")
	}
	*s.register -= s.delta
	if s.trace != nil {
		*s.trace = append(*s.trace, "unapply:"+s.name)
	}
	return nil
}

func (s *step) Label() string {
	return s.name
}

func TestUndoRestoresPreCommandState(t *testing.T) {
	stack := command.NewUndoStack()
	register := 0

	cmd := &step{register: &register, delta: 5, name: "add five"}
	assert.NilError(t, cmd.Apply())
	stack.Record(cmd)
	assert.Equal(t, 5, register)

	stack.Undo()
	assert.Equal(t, 0, register)

	stack.Redo()
	assert.Equal(t, 5, register)
}

func TestUndoRedoSequence(t *testing.T) {
	stack := command.NewUndoStack()
	register := 0
	for _, delta := range []int{1, 10, 100} {
		cmd := &step{register: &register, delta: delta, name: "step"}
		assert.NilError(t, cmd.Apply())
		stack.Record(cmd)
	}
	assert.Equal(t, 111, register)

	stack.Undo()
	assert.Equal(t, 11, register)
	stack.Undo()
	assert.Equal(t, 1, register)
	stack.Redo()
	assert.Equal(t, 11, register)
	stack.Redo()
	assert.Equal(t, 111, register)
}

func TestRecordClearsRedo(t *testing.T) {
	stack := command.NewUndoStack()
	register := 0

	first := &step{register: &register, delta: 1, name: "first"}
	assert.NilError(t, first.Apply())
	stack.Record(first)
	stack.Undo()
	assert.True(t, stack.CanRedo())

	second := &step{register: &register, delta: 2, name: "second"}
	assert.NilError(t, second.Apply())
	stack.Record(second)
	assert.False(t, stack.CanRedo())
}

func TestEmptyStacksAreNoOps(t *testing.T) {
	stack := command.NewUndoStack()
	stack.Undo()
	stack.Redo()
	assert.False(t, stack.CanUndo())
	assert.False(t, stack.CanRedo())
	_, ok := stack.UndoLabel()
	assert.False(t, ok)
	_, ok = stack.RedoLabel()
	assert.False(t, ok)
}

func TestCompoundUnappliesInReverseOrder(t *testing.T) {
	register := 0
	var trace []string
	compound := command.NewCompound("batch",
		&step{register: &register, delta: 1, name: "c1", trace: &trace},
		&step{register: &register, delta: 2, name: "c2", trace: &trace},
		&step{register: &register, delta: 4, name: "c3", trace: &trace},
	)
	assert.Equal(t, 3, compound.Len())
	assert.Equal(t, "batch", compound.Label())

	assert.NilError(t, compound.Apply())
	assert.Equal(t, 7, register)
	assert.DeepEqual(t, []string{"apply:c1", "apply:c2", "apply:c3"}, trace)

	trace = trace[:0]
	assert.NilError(t, compound.Unapply())
	assert.Equal(t, 0, register)
	assert.DeepEqual(t, []string{"unapply:c3", "unapply:c2", "unapply:c1"}, trace)
}

func TestCompoundIsOneUndoStep(t *testing.T) {
	stack := command.NewUndoStack()
	register := 0
	compound := command.NewCompound("batch")
	for i := 0; i < 10; i++ {
		compound.Add(&step{register: &register, delta: 1, name: "tile"})
	}
	assert.NilError(t, compound.Apply())
	stack.Record(compound)
	assert.Equal(t, 10, register)
	assert.Equal(t, 1, stack.Depth())

	stack.Undo()
	assert.Equal(t, 0, register)
}

func TestFailedUndoKeepsHistoryEntry(t *testing.T) {
	stack := command.NewUndoStack()
	register := 0
	cmd := &step{register: &register, delta: 1, name: "bad", failUnapply: true}
	assert.NilError(t, cmd.Apply())
	stack.Record(cmd)

	// Dev builds halt on the broken command, but the history entry must
	// survive either way.
	assert.Panics(t, func() { stack.Undo() })
	assert.Equal(t, 1, stack.Depth())
	assert.True(t, stack.CanUndo())
	assert.False(t, stack.CanRedo())
	assert.Equal(t, 1, register)
}

func TestFailedRedoKeepsHistoryEntry(t *testing.T) {
	stack := command.NewUndoStack()
	register := 0
	cmd := &step{register: &register, delta: 1, name: "bad"}
	assert.NilError(t, cmd.Apply())
	stack.Record(cmd)
	stack.Undo()
	assert.True(t, stack.CanRedo())

	cmd.failApply = true
	assert.Panics(t, func() { stack.Redo() })
	assert.True(t, stack.CanRedo())
	assert.False(t, stack.CanUndo())
	assert.Equal(t, 0, register)
}

func TestLabels(t *testing.T) {
	stack := command.NewUndoStack()
	register := 0
	cmd := &step{register: &register, delta: 1, name: "place token"}
	assert.NilError(t, cmd.Apply())
	stack.Record(cmd)

	label, ok := stack.UndoLabel()
	assert.True(t, ok)
	assert.Equal(t, "place token", label)

	stack.Undo()
	label, ok = stack.RedoLabel()
	assert.True(t, ok)
	assert.Equal(t, "place token", label)
}
