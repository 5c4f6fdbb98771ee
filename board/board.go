// Package board models the hex grid: positions holding exactly one
// BoardPosition instance each, and tokens that may co-occupy positions.
// Instances hold definition identities only; the registries stay the sole
// owners of the schema.
package board

import (
	"pkg.world.dev/hexforge/types"
)

// HexCoord is an axial hex grid coordinate.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Neighbors returns the six adjacent coordinates.
func (c HexCoord) Neighbors() [6]HexCoord {
	return [6]HexCoord{
		{c.Q + 1, c.R}, {c.Q + 1, c.R - 1}, {c.Q, c.R - 1},
		{c.Q - 1, c.R}, {c.Q - 1, c.R + 1}, {c.Q, c.R + 1},
	}
}

// Tile is the BoardPosition instance occupying one hex position.
type Tile struct {
	Type  types.Identity                          `json:"type"`
	Props map[types.Identity]types.PropertyValue `json:"props"`
}

// Token is a placed Token instance. Tokens carry their own identity so they
// can be addressed after other tokens on the same position come and go.
type Token struct {
	ID    types.Identity                          `json:"id"`
	Type  types.Identity                          `json:"type"`
	At    HexCoord                                `json:"at"`
	Props map[types.Identity]types.PropertyValue `json:"props"`
}

// Board owns the placed instances. Position order is insertion order, which
// keeps generation passes and serialization deterministic.
type Board struct {
	order  []HexCoord
	tiles  map[HexCoord]*Tile
	tokens []*Token
}

func New() *Board {
	return &Board{tiles: map[HexCoord]*Tile{}}
}

// AddPosition adds a hex position occupied by the given tile. Adding an
// already-present position replaces its tile.
func (b *Board) AddPosition(at HexCoord, tile Tile) {
	if _, exists := b.tiles[at]; !exists {
		b.order = append(b.order, at)
	}
	b.tiles[at] = &tile
}

// RemovePosition removes a hex position, returning the removed tile.
func (b *Board) RemovePosition(at HexCoord) (Tile, bool) {
	tile, ok := b.tiles[at]
	if !ok {
		return Tile{}, false
	}
	delete(b.tiles, at)
	for i, existing := range b.order {
		if existing == at {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return *tile, true
}

// Positions returns every covered coordinate in insertion order.
func (b *Board) Positions() []HexCoord {
	coords := make([]HexCoord, len(b.order))
	copy(coords, b.order)
	return coords
}

// Tile returns the tile at the given position.
func (b *Board) Tile(at HexCoord) (Tile, bool) {
	tile, ok := b.tiles[at]
	if !ok {
		return Tile{}, false
	}
	return *tile, true
}

// setTile overwrites the tile state at a covered position. Only commands call
// this; it is how both apply and unapply write their snapshots back.
func (b *Board) setTile(at HexCoord, typeID types.Identity, props map[types.Identity]types.PropertyValue) bool {
	tile, ok := b.tiles[at]
	if !ok {
		return false
	}
	tile.Type = typeID
	tile.Props = cloneProps(props)
	return true
}

// Tokens returns all placed tokens.
func (b *Board) Tokens() []Token {
	tokens := make([]Token, 0, len(b.tokens))
	for _, tok := range b.tokens {
		tokens = append(tokens, *tok)
	}
	return tokens
}

// TokensAt returns the tokens co-occupying the given position.
func (b *Board) TokensAt(at HexCoord) []Token {
	var tokens []Token
	for _, tok := range b.tokens {
		if tok.At == at {
			tokens = append(tokens, *tok)
		}
	}
	return tokens
}

func (b *Board) addToken(tok Token) {
	copied := tok
	copied.Props = cloneProps(tok.Props)
	b.tokens = append(b.tokens, &copied)
}

func (b *Board) removeToken(id types.Identity) (Token, bool) {
	for i, tok := range b.tokens {
		if tok.ID == id {
			b.tokens = append(b.tokens[:i], b.tokens[i+1:]...)
			return *tok, true
		}
	}
	return Token{}, false
}

// PropValue reads a property off a tile or token property map. A missing key
// for a known property identity falls back to that property's current
// default; it is never an error.
func PropValue(props map[types.Identity]types.PropertyValue, def types.PropertyDefinition) types.PropertyValue {
	if value, ok := props[def.ID]; ok {
		return value
	}
	return def.Default
}

func cloneProps(props map[types.Identity]types.PropertyValue) map[types.Identity]types.PropertyValue {
	if props == nil {
		return nil
	}
	copied := make(map[types.Identity]types.PropertyValue, len(props))
	for id, value := range props {
		copied[id] = value
	}
	return copied
}
