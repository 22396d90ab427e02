// Package inter defines the core data types shared by the genesis builder:
// ledger accounts, session key schemes and the authority bundles that describe
// one initial validator.
package inter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AccountLength is the size of an account identifier in bytes.
const AccountLength = 32

// ErrInvalidAccount is returned when text does not decode to a 32-byte account.
var ErrInvalidAccount = errors.New("invalid account")

// Account identifies a ledger participant (an AccountId32). For sr25519
// identities it is the public key itself. The same account may hold several
// roles at once.
type Account [AccountLength]byte

// AccountFromBytes copies b into an Account. b must be exactly 32 bytes long.
func AccountFromBytes(b []byte) (Account, error) {
	var a Account
	if len(b) != AccountLength {
		return a, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidAccount, len(b), AccountLength)
	}
	copy(a[:], b)
	return a, nil
}

// AccountFromHex decodes a hex string, with or without the 0x prefix.
func AccountFromHex(s string) (Account, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return Account{}, fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}
	return AccountFromBytes(b)
}

// ParseAccount accepts either the hex or the SS58 form of an account.
func ParseAccount(s string) (Account, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return AccountFromHex(s)
	}
	a, _, err := AccountFromSS58(s)
	return a, err
}

// Bytes returns a copy of the account bytes.
func (a Account) Bytes() []byte {
	return common.CopyBytes(a[:])
}

// IsZero reports whether every byte of the account is zero.
func (a Account) IsZero() bool {
	return a == Account{}
}

// Equal reports whether two accounts are the same.
func (a Account) Equal(b Account) bool {
	return bytes.Equal(a[:], b[:])
}

// Hex returns the 0x-prefixed hex form.
func (a Account) Hex() string {
	return hexutil.Encode(a[:])
}

// String returns the SS58 form under the generic Substrate prefix.
func (a Account) String() string {
	return a.SS58(GenericSS58Prefix)
}

// MarshalText implements encoding.TextMarshaler using the SS58 form.
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both hex and SS58 are accepted.
func (a *Account) UnmarshalText(input []byte) error {
	res, err := ParseAccount(string(input))
	if err != nil {
		return err
	}
	*a = res
	return nil
}

// CopyAccounts returns a new slice holding the same accounts.
func CopyAccounts(accs []Account) []Account {
	if accs == nil {
		return nil
	}
	cp := make([]Account, len(accs))
	copy(cp, accs)
	return cp
}
