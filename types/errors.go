package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace of the genesis migration.
const Codespace = "migrate"

// genesis migration sentinel errors
var (
	ErrParse          = errorsmod.Register(Codespace, 2, "malformed genesis document")
	ErrValidation     = errorsmod.Register(Codespace, 3, "invalid migration argument")
	ErrInvalidStatus  = errorsmod.Register(Codespace, 4, "invalid validator status")
	ErrKeyNotFound    = errorsmod.Register(Codespace, 5, "key not found")
	ErrInvalidType    = errorsmod.Register(Codespace, 6, "unexpected value type")
	ErrInvalidAmount  = errorsmod.Register(Codespace, 7, "invalid token amount")
	ErrInvalidVesting = errorsmod.Register(Codespace, 8, "invalid vesting schedule")
)
