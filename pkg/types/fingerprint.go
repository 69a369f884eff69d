package types

import (
	"encoding/hex"
	"encoding/json"
)

// FingerprintSize is the length of a key fingerprint in bytes.
const FingerprintSize = 20

// Fingerprint identifies a wallet by its account public key without
// revealing the key itself.
type Fingerprint [FingerprintSize]byte

// IsZero returns true if the fingerprint is all zeros.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// String returns the hex-encoded fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first four bytes in hex, for display.
func (f Fingerprint) Short() string {
	return hex.EncodeToString(f[:4])
}

// MarshalJSON encodes the fingerprint as a hex string.
func (f Fingerprint) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a hex string into a fingerprint.
func (f *Fingerprint) UnmarshalJSON(data []byte) error {
	return unmarshalHex(data, f[:], "fingerprint")
}

// HexToFingerprint converts a hex string to a Fingerprint.
func HexToFingerprint(s string) (Fingerprint, error) {
	var f Fingerprint
	if err := decodeFixedHex(s, f[:], "fingerprint"); err != nil {
		return Fingerprint{}, err
	}
	return f, nil
}
