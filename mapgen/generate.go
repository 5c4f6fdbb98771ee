package mapgen

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pkg.world.dev/hexforge/board"
	"pkg.world.dev/hexforge/command"
	"pkg.world.dev/hexforge/internal/assert"
	"pkg.world.dev/hexforge/registry"
	"pkg.world.dev/hexforge/statsd"
	"pkg.world.dev/hexforge/types"
)

// GenerateLabel is the fixed undo label for a generation pass.
const GenerateLabel = "Generate terrain"

// Generator derives terrain assignments from noise and records the whole
// board update as one compound command.
type Generator struct {
	board       *board.Board
	entityTypes *registry.EntityTypeRegistry
	structs     *registry.StructRegistry
	stack       *command.UndoStack
	logger      *zerolog.Logger
}

func NewGenerator(
	b *board.Board,
	entityTypes *registry.EntityTypeRegistry,
	structs *registry.StructRegistry,
	stack *command.UndoStack,
) *Generator {
	return &Generator{
		board:       b,
		entityTypes: entityTypes,
		structs:     structs,
		stack:       stack,
		logger:      &log.Logger,
	}
}

// Generate validates the biome table, computes every tile's new state, then
// applies and records everything as a single undo step. It returns the
// changed positions so renderers can refresh. Validation failures abort with
// zero side effects; a board with no positions or no registered BoardPosition
// types is a benign no-op.
func (g *Generator) Generate(params NoiseParams, table BiomeTable) ([]board.HexCoord, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	positions := g.board.Positions()
	if len(positions) == 0 {
		g.logger.Debug().Msg("generation skipped: board has no positions")
		return nil, nil
	}
	terrains := g.entityTypes.ByRole(types.RoleBoardPosition)
	if len(terrains) == 0 {
		g.logger.Debug().Msg("generation skipped: no board position types registered")
		return nil, nil
	}

	start := time.Now()

	// Build every sub-command before touching the board, so a failure while
	// deriving defaults leaves no partial state behind.
	compound := command.NewCompound(GenerateLabel)
	var changed []board.HexCoord
	for _, at := range positions {
		elevation := Elevation(params, at)
		index, ok := table.Classify(elevation)
		assert.That(ok, "validated table failed to classify elevation %v", elevation)
		if !ok {
			continue
		}

		// Ordinal wraparound: a table may carry more bands than there are
		// terrain types.
		terrain := terrains[index%len(terrains)]
		newProps, err := terrain.DefaultProps(g.structs)
		if err != nil {
			return nil, err
		}
		cmd, err := board.NewSetTile(g.board, at, GenerateLabel, terrain.ID, newProps)
		if err != nil {
			return nil, err
		}
		if !cmd.Changed() {
			continue
		}
		compound.Add(cmd)
		changed = append(changed, at)
	}

	if compound.Len() == 0 {
		g.logger.Debug().Msg("generation produced no changes")
		return nil, nil
	}
	if err := compound.Apply(); err != nil {
		return nil, err
	}
	g.stack.Record(compound)

	statsd.EmitGenerationStat(start, compound.Len())
	g.logger.Info().
		Int("tiles", compound.Len()).
		Uint64("seed", params.Seed).
		Msg("terrain generated")
	return changed, nil
}
