package question

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const structuralIDPrefix = "h:"

// StructuralID derives a stable identity for a record that has no natural id.
// The record is re-encoded canonically (object keys sorted) and hashed, so
// the same logical content always yields the same id regardless of key order
// or whitespace in the source, and distinct content does not collide.
func StructuralID(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("decode record: %w", err)
	}
	canonical, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return structuralIDPrefix + hex.EncodeToString(sum[:16]), nil
}
