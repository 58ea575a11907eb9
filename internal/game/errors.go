package game

import "errors"

// Errors returned by Engine.Apply for commands that can never succeed as
// issued. Precondition failures a player can recover from (not enough money,
// no movement left) are not errors; the state is returned unchanged.
var (
	ErrUnknownNation      = errors.New("unknown nation")
	ErrUnknownArmy        = errors.New("unknown army")
	ErrUnknownGeneral     = errors.New("unknown general")
	ErrUnknownTile        = errors.New("unknown tile")
	ErrUnknownDefinition  = errors.New("unknown catalog definition")
	ErrReserveExceeded    = errors.New("requested units exceed reserves")
	ErrGeneralUnavailable = errors.New("general is not available for command")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrEmptyArmy          = errors.New("army must contain at least one unit")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUnknownAction      = errors.New("unknown diplomatic action or spy mission")
)
