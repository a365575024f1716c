package genesis_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terra-project/columbus-migrate/genesis"
	"github.com/terra-project/columbus-migrate/types"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		expPass bool
	}{
		{"object", `{"chain_id":"columbus-2","app_state":{}}`, true},
		{"object with trailing whitespace", "{\"a\":1}\n\n", true},
		{"empty input", "", false},
		{"truncated object", `{"chain_id":`, false},
		{"array document", `[1,2,3]`, false},
		{"null document", `null`, false},
		{"trailing data", `{"a":1}{"b":2}`, false},
		{"not json", `chain_id = "columbus-2"`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := genesis.Load(strings.NewReader(tc.input))
			if tc.expPass {
				require.NoError(t, err)
				require.NotNil(t, doc)
				return
			}
			require.ErrorIs(t, err, types.ErrParse)
		})
	}
}

func TestLoadKeepsNumberLiterals(t *testing.T) {
	doc, err := genesis.Load(strings.NewReader(`{"big":123456789012345678901234567890,"status":2}`))
	require.NoError(t, err)
	require.Equal(t, json.Number("123456789012345678901234567890"), doc["big"])
	require.Equal(t, json.Number("2"), doc["status"])

	bz, err := genesis.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(bz), "123456789012345678901234567890")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"chain_id":"columbus-2"}`), 0o600))

	doc, err := genesis.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "columbus-2", doc["chain_id"])

	_, err = genesis.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

type coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func TestMarshalSortsKeysAndIndents(t *testing.T) {
	doc := types.Object{
		"zeta":  []any{},
		"alpha": map[string]any{"b": "<b>", "a": types.Object{}},
		"coins": []coin{{Denom: "uluna", Amount: "10"}},
	}

	bz, err := genesis.Marshal(doc)
	require.NoError(t, err)

	exp := `{
    "alpha": {
        "a": {},
        "b": "<b>"
    },
    "coins": [
        {
            "amount": "10",
            "denom": "uluna"
        }
    ],
    "zeta": []
}
`
	require.Equal(t, exp, string(bz))
}

func TestMarshalIsDeterministic(t *testing.T) {
	input := `{"b":{"y":[1,2,{"k":"v","c":null}],"x":true},"a":"1.000000000000000000"}`

	var outputs [][]byte
	for i := 0; i < 3; i++ {
		doc, err := genesis.Load(strings.NewReader(input))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, genesis.Write(&buf, doc))
		outputs = append(outputs, buf.Bytes())
	}
	require.Equal(t, outputs[0], outputs[1])
	require.Equal(t, outputs[1], outputs[2])
}
