package types

import (
	"strings"
	"time"
)

// ValidateChainID fails when the chain id is blank once trimmed.
func ValidateChainID(chainID string) error {
	if strings.TrimSpace(chainID) == "" {
		return ErrValidation.Wrap("chain-id required")
	}
	return nil
}

// ValidateGenesisTime fails when t is not an RFC 3339 timestamp.
func ValidateGenesisTime(t string) error {
	if _, err := time.Parse(time.RFC3339Nano, t); err != nil {
		return ErrValidation.Wrapf("start-time %q: %s", t, err)
	}
	return nil
}
