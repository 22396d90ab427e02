// Package validatorpk provides typed public keys for validator session roles.
// A PubKey carries the signature scheme it belongs to next to the raw bytes, so
// keys of unrelated schemes (sr25519, ed25519, secp256k1) can travel through the
// same genesis structures without being confused for one another.

package validatorpk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrEmptyPubKey is returned when decoding zero bytes.
	ErrEmptyPubKey = errors.New("empty pubkey")
	// ErrUnknownType is returned for a type byte that is not one of Types.
	ErrUnknownType = errors.New("unknown pubkey type")
	// ErrMalformed is returned when the raw bytes do not have the shape of the type.
	ErrMalformed = errors.New("malformed pubkey")
)

// PubKey represents a validator's public key for one session role.
type PubKey struct {
	// Type identifies the signature scheme (see Types).
	Type uint8
	// Raw contains the public key bytes as produced by the scheme.
	Raw []byte
}

// Types defines the supported public key types.
var Types = struct {
	Secp256k1 uint8
	Sr25519   uint8
	Ed25519   uint8
}{
	// Secp256k1 keys are stored SEC1 compressed (33 bytes).
	Secp256k1: 0xc0,
	// Sr25519 keys are Ristretto255 points (32 bytes).
	Sr25519: 0xc1,
	// Ed25519 keys are compressed Edwards points (32 bytes).
	Ed25519: 0xc2,
}

// Size returns the raw key length expected for the given type, or 0 if the
// type is unknown.
func Size(typ uint8) int {
	switch typ {
	case Types.Secp256k1:
		return 33
	case Types.Sr25519, Types.Ed25519:
		return 32
	}
	return 0
}

// TypeName returns a short human-readable name of the type.
func TypeName(typ uint8) string {
	switch typ {
	case Types.Secp256k1:
		return "secp256k1"
	case Types.Sr25519:
		return "sr25519"
	case Types.Ed25519:
		return "ed25519"
	}
	return fmt.Sprintf("unknown(0x%02x)", typ)
}

// Empty checks if the public key is uninitialized or zeroed out.
func (pk PubKey) Empty() bool {
	return len(pk.Raw) == 0 && pk.Type == 0
}

// Validate checks that the key is structurally well formed for its type:
// a known type, the expected length, and for secp256k1 a compression prefix.
// It does not check that the bytes encode a point on the curve.
func (pk PubKey) Validate() error {
	size := Size(pk.Type)
	if size == 0 {
		return fmt.Errorf("%w: 0x%02x", ErrUnknownType, pk.Type)
	}
	if len(pk.Raw) != size {
		return fmt.Errorf("%w: %s key has %d bytes, want %d", ErrMalformed, TypeName(pk.Type), len(pk.Raw), size)
	}
	if pk.Type == Types.Secp256k1 && pk.Raw[0] != 0x02 && pk.Raw[0] != 0x03 {
		return fmt.Errorf("%w: secp256k1 key prefix 0x%02x is not compressed", ErrMalformed, pk.Raw[0])
	}
	return nil
}

// String returns the hex form of the full key (type byte included), with "0x".
func (pk PubKey) String() string {
	return "0x" + common.Bytes2Hex(pk.Bytes())
}

// Hex returns the hex form of the raw key only, with "0x". This is what the
// node expects inside session key maps.
func (pk PubKey) Hex() string {
	return "0x" + common.Bytes2Hex(pk.Raw)
}

// Bytes returns the flat byte slice representation of the public key.
// The format is [Type byte] + [Raw bytes...].
func (pk PubKey) Bytes() []byte {
	return append([]byte{pk.Type}, pk.Raw...)
}

// Copy creates a deep copy of the PubKey.
func (pk PubKey) Copy() PubKey {
	return PubKey{
		Type: pk.Type,
		Raw:  common.CopyBytes(pk.Raw),
	}
}

// FromString parses a hex string (with or without "0x" prefix) into a PubKey.
// The first byte is the type.
func FromString(str string) (PubKey, error) {
	return FromBytes(common.FromHex(str))
}

// FromBytes reconstructs a PubKey from a flat byte slice.
func FromBytes(b []byte) (PubKey, error) {
	if len(b) == 0 {
		return PubKey{}, ErrEmptyPubKey
	}
	return PubKey{b[0], common.CopyBytes(b[1:])}, nil
}

// FromRawHex builds a key of the given type from hex-encoded raw bytes and
// validates it. Hex without a type prefix is how literal session keys are
// written in key catalogs.
func FromRawHex(typ uint8, str string) (PubKey, error) {
	if !strings.HasPrefix(str, "0x") && !strings.HasPrefix(str, "0X") {
		str = "0x" + str
	}
	raw, err := hexutil.Decode(str)
	if err != nil {
		return PubKey{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	pk := PubKey{Type: typ, Raw: raw}
	if err := pk.Validate(); err != nil {
		return PubKey{}, err
	}
	return pk, nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (pk PubKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (pk *PubKey) UnmarshalText(input []byte) error {
	res, err := FromString(string(input))
	if err != nil {
		return err
	}
	*pk = res
	return nil
}
