package inter

import (
	"fmt"

	"github.com/rony4d/uonenet-appchain/inter/validatorpk"
)

// KeyScheme names one session role. Every scheme has its own key space: the
// same seed never yields the same key under two schemes.
type KeyScheme uint8

const (
	// Babe is the block production role.
	Babe KeyScheme = iota + 1
	// Grandpa is the finality role.
	Grandpa
	// ImOnline is the liveness monitoring role.
	ImOnline
	// Beefy is the checkpoint authority role.
	Beefy
	// Octopus is the bridge relay role.
	Octopus
)

// KeySchemes lists every scheme in session key order.
var KeySchemes = []KeyScheme{Babe, Grandpa, ImOnline, Beefy, Octopus}

var schemeInfo = map[KeyScheme]struct {
	name    string
	keyType string
	role    string
	pkType  uint8
}{
	Babe:     {"babe", "babe", "block production", validatorpk.Types.Sr25519},
	Grandpa:  {"grandpa", "gran", "finality", validatorpk.Types.Ed25519},
	ImOnline: {"im_online", "imon", "liveness monitoring", validatorpk.Types.Sr25519},
	Beefy:    {"beefy", "beef", "checkpoint authority", validatorpk.Types.Secp256k1},
	Octopus:  {"octopus", "octo", "bridge relay", validatorpk.Types.Sr25519},
}

// Valid reports whether s is one of KeySchemes.
func (s KeyScheme) Valid() bool {
	_, ok := schemeInfo[s]
	return ok
}

// String returns the session key field name of the scheme.
func (s KeyScheme) String() string {
	if info, ok := schemeInfo[s]; ok {
		return info.name
	}
	return fmt.Sprintf("KeyScheme(%d)", uint8(s))
}

// KeyTypeID returns the four character key type identifier of the scheme.
func (s KeyScheme) KeyTypeID() string {
	return schemeInfo[s].keyType
}

// Role describes what the scheme's key is used for.
func (s KeyScheme) Role() string {
	return schemeInfo[s].role
}

// PubKeyType returns the validatorpk type every key of this scheme must have.
func (s KeyScheme) PubKeyType() uint8 {
	return schemeInfo[s].pkType
}
