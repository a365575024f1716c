package v3_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	v3 "github.com/terra-project/columbus-migrate/x/market/migrations/v3"
)

func TestDefaultGenesisState(t *testing.T) {
	bz, err := json.Marshal(v3.DefaultGenesisState())
	require.NoError(t, err)

	require.JSONEq(t, `{
		"base_pool": "0.000000000000000000",
		"terra_pool": "0.000000000000000000",
		"last_update_height": "0",
		"params": {
			"pool_update_interval": "100800",
			"daily_terra_liquidity_ratio": "0.010000000000000000",
			"min_spread": "0.020000000000000000",
			"tobin_tax": "0.003000000000000000"
		}
	}`, string(bz))
}
