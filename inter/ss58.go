package inter

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// GenericSS58Prefix is the address format shared by Substrate development chains.
const GenericSS58Prefix uint16 = 42

const ss58ChecksumLen = 2

var ss58Context = []byte("SS58PRE")

// SS58 encodes the account as an SS58 address under the given network prefix.
func (a Account) SS58(prefix uint16) string {
	payload := append(ss58PrefixBytes(prefix), a[:]...)
	sum := ss58Checksum(payload)
	return base58.Encode(append(payload, sum[:ss58ChecksumLen]...))
}

// AccountFromSS58 decodes an SS58 address and returns the account together with
// the network prefix it was encoded under.
func AccountFromSS58(addr string) (Account, uint16, error) {
	raw, err := base58.Decode(addr)
	if err != nil {
		return Account{}, 0, fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}
	if len(raw) == 0 {
		return Account{}, 0, fmt.Errorf("%w: empty address", ErrInvalidAccount)
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case raw[0] < 64:
		prefix, prefixLen = uint16(raw[0]), 1
	case raw[0] < 128:
		if len(raw) < 2 {
			return Account{}, 0, fmt.Errorf("%w: truncated prefix", ErrInvalidAccount)
		}
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0b0011_1111
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return Account{}, 0, fmt.Errorf("%w: reserved prefix byte 0x%02x", ErrInvalidAccount, raw[0])
	}

	if len(raw) != prefixLen+AccountLength+ss58ChecksumLen {
		return Account{}, 0, fmt.Errorf("%w: %d byte address", ErrInvalidAccount, len(raw))
	}
	payload := raw[:prefixLen+AccountLength]
	sum := ss58Checksum(payload)
	if !bytes.Equal(sum[:ss58ChecksumLen], raw[prefixLen+AccountLength:]) {
		return Account{}, 0, fmt.Errorf("%w: bad checksum", ErrInvalidAccount)
	}

	var a Account
	copy(a[:], payload[prefixLen:])
	return a, prefix, nil
}

func ss58PrefixBytes(prefix uint16) []byte {
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	// 14-bit prefixes use the two byte form.
	first := byte((prefix&0b0000_0000_1111_1100)>>2) | 0b0100_0000
	second := byte(prefix>>8) | byte(prefix&0b0000_0000_0000_0011)<<6
	return []byte{first, second}
}

func ss58Checksum(payload []byte) [blake2b.Size]byte {
	return blake2b.Sum512(append(append([]byte{}, ss58Context...), payload...))
}
