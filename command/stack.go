package command

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pkg.world.dev/hexforge/internal/assert"
	"pkg.world.dev/hexforge/statsd"
)

// UndoStack is the single gateway through which mutations become reversible.
// It holds two ordered sequences: undo (most recent first) and redo. Depth is
// unbounded; any cap is an external policy.
type UndoStack struct {
	undo   []Command
	redo   []Command
	logger *zerolog.Logger
}

func NewUndoStack() *UndoStack {
	return &UndoStack{logger: &log.Logger}
}

// Record pushes an already-applied command onto the undo stack. Recording new
// history invalidates old futures, so the redo stack is cleared entirely.
func (s *UndoStack) Record(cmd Command) {
	assert.That(cmd != nil, "recorded command must not be nil")
	s.undo = append(s.undo, cmd)
	s.redo = s.redo[:0]
	s.logger.Debug().Str("label", cmd.Label()).Int("depth", len(s.undo)).Msg("command recorded")
}

// Undo reverses the most recently recorded command and moves it to the redo
// stack. An empty undo stack is a no-op.
func (s *UndoStack) Undo() {
	if len(s.undo) == 0 {
		s.logger.Debug().Msg("undo requested with empty stack")
		return
	}
	start := time.Now()
	cmd := s.undo[len(s.undo)-1]
	if err := cmd.Unapply(); err != nil {
		// A failing unapply through the public contract is a core bug. Halt in
		// development builds; degrade to a logged no-op rather than corrupting
		// state further. The command stays on the undo stack so the history
		// entry is not silently lost.
		assert.That(false, "unapply of %q failed: %v", cmd.Label(), err)
		s.logger.Error().Err(err).Str("label", cmd.Label()).Msg("unapply failed")
		return
	}
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, cmd)
	statsd.EmitCommandStat(start, "undo")
	s.logger.Debug().Str("label", cmd.Label()).Msg("command undone")
}

// Redo re-applies the most recently undone command and moves it back to the
// undo stack. An empty redo stack is a no-op.
func (s *UndoStack) Redo() {
	if len(s.redo) == 0 {
		s.logger.Debug().Msg("redo requested with empty stack")
		return
	}
	start := time.Now()
	cmd := s.redo[len(s.redo)-1]
	if err := cmd.Apply(); err != nil {
		assert.That(false, "re-apply of %q failed: %v", cmd.Label(), err)
		s.logger.Error().Err(err).Str("label", cmd.Label()).Msg("redo failed")
		return
	}
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, cmd)
	statsd.EmitCommandStat(start, "redo")
	s.logger.Debug().Str("label", cmd.Label()).Msg("command redone")
}

func (s *UndoStack) CanUndo() bool {
	return len(s.undo) > 0
}

func (s *UndoStack) CanRedo() bool {
	return len(s.redo) > 0
}

// UndoLabel returns the label of the command Undo would reverse.
func (s *UndoStack) UndoLabel() (string, bool) {
	if len(s.undo) == 0 {
		return "", false
	}
	return s.undo[len(s.undo)-1].Label(), true
}

// RedoLabel returns the label of the command Redo would re-apply.
func (s *UndoStack) RedoLabel() (string, bool) {
	if len(s.redo) == 0 {
		return "", false
	}
	return s.redo[len(s.redo)-1].Label(), true
}

// Depth returns the number of undoable commands.
func (s *UndoStack) Depth() int {
	return len(s.undo)
}
