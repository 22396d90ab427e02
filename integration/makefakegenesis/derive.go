// Package makefakegenesis derives deterministic development identities from
// human-readable seeds ("Alice", "Bob//stash", ...). It exists for ephemeral
// local networks only: every secret produced here is trivially reproducible,
// so nothing derived by this package may guard real funds.
//
// Derivation model:
//   - A seed s is written as the path "//s" and split into junctions the
//     same way. Only the syntax is shared with Substrate key URIs: the keys
//     are not the ones a Substrate keystore derives for "//s" (a node started
//     with --alice holds different keys).
//   - A 32-byte secret is computed as BLAKE2b-256 keyed with the scheme's key
//     type id over the path, which separates the key spaces of the schemes.
//   - The secret is handed to the signature primitive of the scheme
//     (sr25519, ed25519 or secp256k1) which turns it into a public key.

package makefakegenesis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/oasisprotocol/curve25519-voi/primitives/sr25519"
	"golang.org/x/crypto/blake2b"

	"github.com/rony4d/uonenet-appchain/inter"
	"github.com/rony4d/uonenet-appchain/inter/validatorpk"
)

// accountDomain is the domain tag of plain account identities.
const accountDomain = "acct"

var (
	errEmptySeed     = errors.New("empty seed")
	errEmptyJunction = errors.New("empty junction")
	errStraySlash    = errors.New("soft junctions are not supported")
)

// KeyDerivationError is returned when a seed cannot be turned into a key.
type KeyDerivationError struct {
	// Scheme is the scheme the key was requested for, or 0 for an account.
	Scheme inter.KeyScheme
	Seed   string
	Err    error
}

func (e *KeyDerivationError) Error() string {
	what := "account"
	if e.Scheme != 0 {
		what = e.Scheme.String() + " key"
	}
	return fmt.Sprintf("derive %s from seed %q: %v", what, e.Seed, e.Err)
}

func (e *KeyDerivationError) Unwrap() error {
	return e.Err
}

// Deriver turns a 32-byte secret into the public key of one signature scheme.
type Deriver interface {
	PubKeyType() uint8
	Derive(secret [32]byte) ([]byte, error)
}

type sr25519Deriver struct{}

func (sr25519Deriver) PubKeyType() uint8 { return validatorpk.Types.Sr25519 }

func (sr25519Deriver) Derive(secret [32]byte) ([]byte, error) {
	var msk sr25519.MiniSecretKey
	if err := msk.UnmarshalBinary(secret[:]); err != nil {
		return nil, err
	}
	kp := msk.ExpandEd25519().KeyPair()
	return kp.PublicKey().MarshalBinary()
}

type ed25519Deriver struct{}

func (ed25519Deriver) PubKeyType() uint8 { return validatorpk.Types.Ed25519 }

func (ed25519Deriver) Derive(secret [32]byte) ([]byte, error) {
	priv := ed25519.NewKeyFromSeed(secret[:])
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("unexpected ed25519 public key type")
	}
	return []byte(pub), nil
}

type secp256k1Deriver struct{}

func (secp256k1Deriver) PubKeyType() uint8 { return validatorpk.Types.Secp256k1 }

func (secp256k1Deriver) Derive(secret [32]byte) ([]byte, error) {
	priv, err := crypto.ToECDSA(secret[:])
	if err != nil {
		return nil, err
	}
	return crypto.CompressPubkey(&priv.PublicKey), nil
}

// derivers maps every validatorpk type to its primitive.
var derivers = map[uint8]Deriver{
	validatorpk.Types.Sr25519:   sr25519Deriver{},
	validatorpk.Types.Ed25519:   ed25519Deriver{},
	validatorpk.Types.Secp256k1: secp256k1Deriver{},
}

// DeriverFor returns the primitive used for the scheme.
func DeriverFor(scheme inter.KeyScheme) (Deriver, bool) {
	if !scheme.Valid() {
		return nil, false
	}
	d, ok := derivers[scheme.PubKeyType()]
	return d, ok
}

// path validates a seed and returns its hard derivation path.
func path(seed string) (string, error) {
	if seed == "" {
		return "", errEmptySeed
	}
	p := "//" + seed
	for _, junction := range strings.Split(p[2:], "//") {
		if junction == "" {
			return "", errEmptyJunction
		}
		if strings.Contains(junction, "/") {
			return "", errStraySlash
		}
	}
	return p, nil
}

// secret computes the domain-separated secret of the path.
func secret(domain, p string) ([32]byte, error) {
	var out [32]byte
	h, err := blake2b.New256([]byte(domain))
	if err != nil {
		return out, err
	}
	h.Write([]byte(p))
	copy(out[:], h.Sum(nil))
	return out, nil
}

// Derive returns the public key of the scheme for the seed.
// The same (scheme, seed) pair always yields the same key.
func Derive(scheme inter.KeyScheme, seed string) (validatorpk.PubKey, error) {
	fail := func(err error) (validatorpk.PubKey, error) {
		return validatorpk.PubKey{}, &KeyDerivationError{Scheme: scheme, Seed: seed, Err: err}
	}
	d, ok := DeriverFor(scheme)
	if !ok {
		return fail(fmt.Errorf("unknown scheme %s", scheme))
	}
	p, err := path(seed)
	if err != nil {
		return fail(err)
	}
	s, err := secret(scheme.KeyTypeID(), p)
	if err != nil {
		return fail(err)
	}
	raw, err := d.Derive(s)
	if err != nil {
		return fail(err)
	}
	return validatorpk.PubKey{Type: d.PubKeyType(), Raw: raw}, nil
}

// DeriveAccount returns the account identity of the seed: the sr25519 public
// key under the account domain, used as an AccountId32 unchanged.
func DeriveAccount(seed string) (inter.Account, error) {
	fail := func(err error) (inter.Account, error) {
		return inter.Account{}, &KeyDerivationError{Seed: seed, Err: err}
	}
	p, err := path(seed)
	if err != nil {
		return fail(err)
	}
	s, err := secret(accountDomain, p)
	if err != nil {
		return fail(err)
	}
	raw, err := sr25519Deriver{}.Derive(s)
	if err != nil {
		return fail(err)
	}
	acc, err := inter.AccountFromBytes(raw)
	if err != nil {
		return fail(err)
	}
	return acc, nil
}

// MustDerive is like Derive but panics on failure. Seeds passed here are
// literals, so a failure is a programming error.
func MustDerive(scheme inter.KeyScheme, seed string) validatorpk.PubKey {
	pk, err := Derive(scheme, seed)
	if err != nil {
		panic(err)
	}
	return pk
}

// MustDeriveAccount is like DeriveAccount but panics on failure.
func MustDeriveAccount(seed string) inter.Account {
	acc, err := DeriveAccount(seed)
	if err != nil {
		panic(err)
	}
	return acc
}
