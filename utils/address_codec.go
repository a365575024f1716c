package utils

import (
	"strings"

	"cosmossdk.io/core/address"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authaddress "github.com/cosmos/cosmos-sdk/types/address"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Bech32Codec defines an address codec for a single bech32 prefix
type Bech32Codec struct {
	Bech32Prefix string
}

var _ address.Codec = (*Bech32Codec)(nil)

// NewBech32Codec returns a new Bech32Codec with the given bech32 prefix
func NewBech32Codec(prefix string) Bech32Codec {
	return Bech32Codec{prefix}
}

// StringToBytes decodes a bech32 address carrying the codec prefix
func (bc Bech32Codec) StringToBytes(text string) ([]byte, error) {
	if len(strings.TrimSpace(text)) == 0 {
		return []byte{}, sdkerrors.ErrInvalidAddress.Wrap("empty address string is not allowed")
	}

	hrp, bz, err := bech32.DecodeAndConvert(text)
	if err != nil {
		return nil, sdkerrors.ErrInvalidAddress.Wrapf("%s: %s", text, err)
	}
	if hrp != bc.Bech32Prefix {
		return nil, sdkerrors.ErrLogic.Wrapf("hrp does not match bech32 prefix: expected '%s' got '%s'", bc.Bech32Prefix, hrp)
	}
	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return nil, err
	}
	return bz, nil
}

// BytesToString encodes bytes to a bech32 string with the codec prefix
func (bc Bech32Codec) BytesToString(bz []byte) (string, error) {
	return sdk.Bech32ifyAddressBytes(bc.Bech32Prefix, bz)
}

// ModuleAddress returns the address of the named module account, the
// truncated sha256 of the module name.
func (bc Bech32Codec) ModuleAddress(name string) (string, error) {
	return bc.BytesToString(authaddress.Module(name))
}
