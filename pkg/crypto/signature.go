package crypto

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

// messageTag separates message signatures from any other BLAKE3 use.
const messageTag = "klingnet-mnemonic/message"

// PrivateKey wraps a secp256k1 private key for Schnorr signing.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(b))
	}
	return &PrivateKey{key: secp256k1.PrivKeyFromBytes(b)}, nil
}

// SignMessage hashes msg under the message tag and signs the digest.
func (pk *PrivateKey) SignMessage(msg []byte) ([]byte, error) {
	digest := TaggedHash(messageTag, msg)
	sig, err := schnorr.Sign(pk.key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("schnorr sign: %w", err)
	}
	return sig.Serialize(), nil
}

// PublicKey returns the compressed 33-byte public key.
func (pk *PrivateKey) PublicKey() []byte {
	return pk.key.PubKey().SerializeCompressed()
}

// Fingerprint returns the fingerprint of the public key.
func (pk *PrivateKey) Fingerprint() types.Fingerprint {
	return FingerprintFromPubKey(pk.PublicKey())
}

// Zero clears the private scalar.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// VerifyMessage checks a signature made by SignMessage against a
// compressed public key. Returns false on any error.
func VerifyMessage(msg, signature, publicKey []byte) bool {
	pubKey, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	sig, err := schnorr.ParseSignature(signature)
	if err != nil {
		return false
	}
	digest := TaggedHash(messageTag, msg)
	return sig.Verify(digest[:], pubKey)
}
