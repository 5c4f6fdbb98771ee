package board

import (
	"github.com/rotisserie/eris"

	"pkg.world.dev/hexforge/types"
)

var ErrPositionNotCovered = eris.New("position is not covered by the board")

// SetTile replaces the entity type and full property map of one tile. Both the
// old and new state are captured up front so unapply never re-derives anything
// from the current world.
type SetTile struct {
	board *Board
	at    HexCoord
	label string

	oldType  types.Identity
	newType  types.Identity
	oldProps map[types.Identity]types.PropertyValue
	newProps map[types.Identity]types.PropertyValue
}

// NewSetTile snapshots the tile's current state and the desired new state.
// The returned command has not been applied.
func NewSetTile(
	b *Board, at HexCoord, label string,
	newType types.Identity, newProps map[types.Identity]types.PropertyValue,
) (*SetTile, error) {
	tile, ok := b.Tile(at)
	if !ok {
		return nil, eris.Wrapf(ErrPositionNotCovered, "%+v", at)
	}
	return &SetTile{
		board:    b,
		at:       at,
		label:    label,
		oldType:  tile.Type,
		newType:  newType,
		oldProps: cloneProps(tile.Props),
		newProps: cloneProps(newProps),
	}, nil
}

// Changed reports whether applying would alter the tile at all.
func (c *SetTile) Changed() bool {
	if c.oldType != c.newType || len(c.oldProps) != len(c.newProps) {
		return true
	}
	for id, oldValue := range c.oldProps {
		newValue, ok := c.newProps[id]
		if !ok || !oldValue.Equal(newValue) {
			return true
		}
	}
	return false
}

func (c *SetTile) Apply() error {
	if !c.board.setTile(c.at, c.newType, c.newProps) {
		return eris.Wrapf(ErrPositionNotCovered, "%+v", c.at)
	}
	return nil
}

func (c *SetTile) Unapply() error {
	if !c.board.setTile(c.at, c.oldType, c.oldProps) {
		return eris.Wrapf(ErrPositionNotCovered, "%+v", c.at)
	}
	return nil
}

func (c *SetTile) Label() string {
	return c.label
}

// SetTileProp overwrites a single property entry, keeping the rest of the
// tile's map untouched. Used by direct edits from the property panel.
type SetTileProp struct {
	board *Board
	at    HexCoord
	prop  types.Identity
	label string

	oldValue types.PropertyValue
	hadOld   bool
	newValue types.PropertyValue
}

func NewSetTileProp(
	b *Board, at HexCoord, label string,
	prop types.Identity, newValue types.PropertyValue,
) (*SetTileProp, error) {
	tile, ok := b.Tile(at)
	if !ok {
		return nil, eris.Wrapf(ErrPositionNotCovered, "%+v", at)
	}
	oldValue, hadOld := tile.Props[prop]
	return &SetTileProp{
		board:    b,
		at:       at,
		prop:     prop,
		label:    label,
		oldValue: oldValue,
		hadOld:   hadOld,
		newValue: newValue,
	}, nil
}

func (c *SetTileProp) Apply() error {
	tile, ok := c.board.tiles[c.at]
	if !ok {
		return eris.Wrapf(ErrPositionNotCovered, "%+v", c.at)
	}
	if tile.Props == nil {
		tile.Props = map[types.Identity]types.PropertyValue{}
	}
	tile.Props[c.prop] = c.newValue
	return nil
}

func (c *SetTileProp) Unapply() error {
	tile, ok := c.board.tiles[c.at]
	if !ok {
		return eris.Wrapf(ErrPositionNotCovered, "%+v", c.at)
	}
	if c.hadOld {
		tile.Props[c.prop] = c.oldValue
	} else {
		delete(tile.Props, c.prop)
	}
	return nil
}

func (c *SetTileProp) Label() string {
	return c.label
}

// PlaceToken adds a token to the board.
type PlaceToken struct {
	board *Board
	token Token
	label string
}

func NewPlaceToken(b *Board, token Token, label string) *PlaceToken {
	token.Props = cloneProps(token.Props)
	return &PlaceToken{board: b, token: token, label: label}
}

func (c *PlaceToken) Apply() error {
	c.board.addToken(c.token)
	return nil
}

func (c *PlaceToken) Unapply() error {
	if _, ok := c.board.removeToken(c.token.ID); !ok {
		return eris.Errorf("token %s is not on the board", c.token.ID)
	}
	return nil
}

func (c *PlaceToken) Label() string {
	return c.label
}

// RemoveToken removes a token, keeping its full snapshot for unapply.
type RemoveToken struct {
	board *Board
	token Token
	label string
}

func NewRemoveToken(b *Board, id types.Identity, label string) (*RemoveToken, error) {
	for _, tok := range b.Tokens() {
		if tok.ID == id {
			tok.Props = cloneProps(tok.Props)
			return &RemoveToken{board: b, token: tok, label: label}, nil
		}
	}
	return nil, eris.Errorf("token %s is not on the board", id)
}

func (c *RemoveToken) Apply() error {
	if _, ok := c.board.removeToken(c.token.ID); !ok {
		return eris.Errorf("token %s is not on the board", c.token.ID)
	}
	return nil
}

func (c *RemoveToken) Unapply() error {
	c.board.addToken(c.token)
	return nil
}

func (c *RemoveToken) Label() string {
	return c.label
}
