// Package genesis reads exported genesis documents into a types.Object and
// writes migrated documents back out in canonical form.
package genesis

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"

	errorsmod "cosmossdk.io/errors"

	"github.com/terra-project/columbus-migrate/types"
)

// Indent is the indentation of emitted documents.
const Indent = "    "

// Load decodes a single JSON object from r. Numbers keep their literal text.
func Load(r io.Reader) (types.Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, errorsmod.Wrap(types.ErrParse, err.Error())
	}
	if doc == nil {
		return nil, types.ErrParse.Wrap("document is not a JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, types.ErrParse.Wrap("unexpected data after the document")
	}

	return types.Object(doc), nil
}

// LoadFile reads the genesis document stored at path.
func LoadFile(path string) (types.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Marshal encodes v with object keys sorted at every level and four space
// indentation. Structs are first flattened to plain JSON values so that their
// keys are ordered as well.
func Marshal(v any) ([]byte, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes v as Marshal does and writes it to w.
func Write(w io.Writer, v any) error {
	bz, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(bz)
	return err
}
