package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint derives a deterministic key from a canonical snapshot of the
// inputs a calculation actually reads. Two snapshots with equal content always
// produce equal fingerprints; any input change yields a new key, which is how
// stale entries are invalidated.
func Fingerprint(snapshot any) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
