package inter

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/rony4d/uonenet-appchain/inter/validatorpk"
)

// ErrPartialBundle is returned by AuthorityBundle.Validate when an account is missing.
var ErrPartialBundle = errors.New("partial authority bundle")

// SessionKeys aggregates the five role keys one validator registers with the
// session mechanism.
type SessionKeys struct {
	Babe     validatorpk.PubKey
	Grandpa  validatorpk.PubKey
	ImOnline validatorpk.PubKey
	Beefy    validatorpk.PubKey
	Octopus  validatorpk.PubKey
}

// Key returns the key registered for the scheme.
func (k SessionKeys) Key(s KeyScheme) validatorpk.PubKey {
	switch s {
	case Babe:
		return k.Babe
	case Grandpa:
		return k.Grandpa
	case ImOnline:
		return k.ImOnline
	case Beefy:
		return k.Beefy
	case Octopus:
		return k.Octopus
	}
	return validatorpk.PubKey{}
}

// Validate checks every key has the type of its scheme and is well formed.
func (k SessionKeys) Validate() error {
	var merr error
	for _, s := range KeySchemes {
		pk := k.Key(s)
		if pk.Type != s.PubKeyType() {
			merr = multierror.Append(merr, fmt.Errorf("%s key: %w: have %s, want %s", s,
				validatorpk.ErrMalformed, validatorpk.TypeName(pk.Type), validatorpk.TypeName(s.PubKeyType())))
			continue
		}
		if err := pk.Validate(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s key: %w", s, err))
		}
	}
	return merr
}

// Copy returns a deep copy.
func (k SessionKeys) Copy() SessionKeys {
	return SessionKeys{
		Babe:     k.Babe.Copy(),
		Grandpa:  k.Grandpa.Copy(),
		ImOnline: k.ImOnline.Copy(),
		Beefy:    k.Beefy.Copy(),
		Octopus:  k.Octopus.Copy(),
	}
}

// AuthorityBundle is the complete identity of one initial validator: the
// funds-holding stash, the managing controller, and one key per session role.
// All seven fields are chosen independently; they may coincide but never have to.
// Bundles come either from a literal key catalog or from seed derivation and
// the genesis composer treats both the same.
type AuthorityBundle struct {
	Stash      Account
	Controller Account

	Babe     validatorpk.PubKey
	Grandpa  validatorpk.PubKey
	ImOnline validatorpk.PubKey
	Beefy    validatorpk.PubKey
	Octopus  validatorpk.PubKey
}

// SessionKeys packs the role keys of the bundle.
func (b AuthorityBundle) SessionKeys() SessionKeys {
	return SessionKeys{
		Babe:     b.Babe,
		Grandpa:  b.Grandpa,
		ImOnline: b.ImOnline,
		Beefy:    b.Beefy,
		Octopus:  b.Octopus,
	}.Copy()
}

// Key returns the bundle's key for the scheme.
func (b AuthorityBundle) Key(s KeyScheme) validatorpk.PubKey {
	return b.SessionKeys().Key(s)
}

// Validate reports every structural defect of the bundle at once. A bundle
// with a zero account or a missing key is partial and therefore invalid.
func (b AuthorityBundle) Validate() error {
	var merr error
	if b.Stash.IsZero() {
		merr = multierror.Append(merr, fmt.Errorf("%w: stash account missing", ErrPartialBundle))
	}
	if b.Controller.IsZero() {
		merr = multierror.Append(merr, fmt.Errorf("%w: controller account missing", ErrPartialBundle))
	}
	if err := b.SessionKeys().Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}
	return merr
}

// Copy returns a deep copy of the bundle.
func (b AuthorityBundle) Copy() AuthorityBundle {
	keys := b.SessionKeys()
	return AuthorityBundle{
		Stash:      b.Stash,
		Controller: b.Controller,
		Babe:       keys.Babe,
		Grandpa:    keys.Grandpa,
		ImOnline:   keys.ImOnline,
		Beefy:      keys.Beefy,
		Octopus:    keys.Octopus,
	}
}
