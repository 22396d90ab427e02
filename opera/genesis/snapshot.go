package genesis

// Package genesis composes the genesis snapshot of a UOneNet appchain: the
// starting state of every runtime subsystem derived from one set of inputs
// (runtime code, sudo account, initial authorities, endowed accounts and the
// appchain id).
//
// Key concepts:
//   - Snapshot: the complete record, one section per subsystem
//   - Params: the fixed economic and bridge parameters applied by Compose
//   - Sub-builders: Params.Ledger, Params.Staking, SessionKeys, Params.Octopus
//     and Params.EVM each produce one section and can be tested alone
//
// Usage:
//   snap := genesis.Compose(code, sudo, authorities, endowed, "uonenet_local_appchain")
//   if err := snap.Validate(); err != nil { ... }
//
// Compose never fails. Validation is a separate step so that malformed input
// can be inspected rather than rejected halfway through construction.

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"

	"github.com/rony4d/uonenet-appchain/evmcore"
	"github.com/rony4d/uonenet-appchain/inter"
	"github.com/rony4d/uonenet-appchain/inter/validatorpk"
	"github.com/rony4d/uonenet-appchain/opera"
)

// System holds the runtime code the chain boots with.
type System struct {
	Code []byte
}

// Validate checks the runtime code is present.
func (s System) Validate() error {
	if len(s.Code) == 0 {
		return fmt.Errorf("system: empty runtime code")
	}
	return nil
}

// Balance is one ledger credit.
type Balance struct {
	Account inter.Account
	Amount  *big.Int
}

// Balances is the initial token ledger. Entries are credits: an account that
// appears twice receives the sum of its entries.
type Balances struct {
	Balances []Balance
}

// Totals returns the summed balance of every account.
func (b Balances) Totals() map[inter.Account]*big.Int {
	totals := make(map[inter.Account]*big.Int, len(b.Balances))
	for _, e := range b.Balances {
		sum, ok := totals[e.Account]
		if !ok {
			sum = new(big.Int)
			totals[e.Account] = sum
		}
		if e.Amount != nil {
			sum.Add(sum, e.Amount)
		}
	}
	return totals
}

// Total returns the issuance created by the ledger.
func (b Balances) Total() *big.Int {
	total := new(big.Int)
	for _, e := range b.Balances {
		if e.Amount != nil {
			total.Add(total, e.Amount)
		}
	}
	return total
}

// Validate checks every credit is positive.
func (b Balances) Validate() error {
	var merr error
	for i, e := range b.Balances {
		if e.Amount == nil || e.Amount.Sign() <= 0 {
			merr = multierror.Append(merr, fmt.Errorf("balances[%d]: non-positive amount for %s", i, e.Account))
		}
	}
	return merr
}

// Sudo holds the administrative account.
type Sudo struct {
	Key inter.Account
}

// Validate checks the sudo account is set.
func (s Sudo) Validate() error {
	if s.Key.IsZero() {
		return fmt.Errorf("sudo: missing key")
	}
	return nil
}

func validateKeys(section string, keys []validatorpk.PubKey, typ uint8) error {
	var merr error
	for i, pk := range keys {
		if pk.Type != typ {
			merr = multierror.Append(merr, fmt.Errorf("%s[%d]: %w: want %s key", section, i, validatorpk.ErrMalformed, validatorpk.TypeName(typ)))
			continue
		}
		if err := pk.Validate(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s[%d]: %w", section, i, err))
		}
	}
	return merr
}

// Babe is the block production section. The authority list is left empty at
// genesis; the session mechanism fills it from the session keys.
type Babe struct {
	Authorities []validatorpk.PubKey
	EpochConfig opera.BabeEpochConfig
}

// Validate checks the epoch config is a probability and the keys are sr25519.
func (b Babe) Validate() error {
	var merr error
	c := b.EpochConfig.C
	if c[1] == 0 || c[0] > c[1] {
		merr = multierror.Append(merr, fmt.Errorf("babe: invalid primary probability %d/%d", c[0], c[1]))
	}
	if b.EpochConfig.AllowedSlots > opera.PrimaryAndSecondaryVRFSlots {
		merr = multierror.Append(merr, fmt.Errorf("babe: invalid allowed slots %s", b.EpochConfig.AllowedSlots))
	}
	if err := validateKeys("babe.authorities", b.Authorities, validatorpk.Types.Sr25519); err != nil {
		merr = multierror.Append(merr, err)
	}
	return merr
}

// Grandpa is the finality section, filled from session keys like Babe.
type Grandpa struct {
	Authorities []validatorpk.PubKey
}

func (g Grandpa) Validate() error {
	return validateKeys("grandpa.authorities", g.Authorities, validatorpk.Types.Ed25519)
}

// ImOnline is the liveness monitoring section.
type ImOnline struct {
	Keys []validatorpk.PubKey
}

func (m ImOnline) Validate() error {
	return validateKeys("im_online.keys", m.Keys, validatorpk.Types.Sr25519)
}

// Beefy is the checkpoint authority section.
type Beefy struct {
	Authorities []validatorpk.PubKey
}

func (b Beefy) Validate() error {
	return validateKeys("beefy.authorities", b.Authorities, validatorpk.Types.Secp256k1)
}

// SessionBinding registers the session keys of one validator.
type SessionBinding struct {
	Stash      inter.Account
	Controller inter.Account
	Keys       inter.SessionKeys
}

// Session lists one binding per initial validator, in authority order.
type Session struct {
	Keys []SessionBinding
}

// Stashes returns the stash of every binding, in order.
func (s Session) Stashes() []inter.Account {
	out := make([]inter.Account, len(s.Keys))
	for i, b := range s.Keys {
		out[i] = b.Stash
	}
	return out
}

// Validate checks every binding has both accounts and well formed keys.
func (s Session) Validate() error {
	var merr error
	for i, b := range s.Keys {
		if b.Stash.IsZero() || b.Controller.IsZero() {
			merr = multierror.Append(merr, fmt.Errorf("session.keys[%d]: %w", i, inter.ErrPartialBundle))
		}
		if err := b.Keys.Validate(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("session.keys[%d]: %w", i, err))
		}
	}
	return merr
}

// StakerStatus is the staking role an account starts with.
type StakerStatus uint8

const (
	Idle StakerStatus = iota
	Validator
	Nominator
)

func (s StakerStatus) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Validator:
		return "Validator"
	case Nominator:
		return "Nominator"
	}
	return fmt.Sprintf("StakerStatus(%d)", uint8(s))
}

// Staker is one bonded stash at genesis.
type Staker struct {
	Stash      inter.Account
	Controller inter.Account
	Amount     *big.Int
	Status     StakerStatus
}

// Staking is the staking section.
type Staking struct {
	ValidatorCount        uint32
	MinimumValidatorCount uint32
	Invulnerables         []inter.Account
	SlashRewardFraction   opera.Perbill
	Stakers               []Staker
}

// Stake returns the bonded amount of the stash, or nil if it is not a staker.
func (s Staking) Stake(stash inter.Account) *big.Int {
	for _, st := range s.Stakers {
		if st.Stash == stash {
			return st.Amount
		}
	}
	return nil
}

// Validate checks the section on its own; cross-section invariants are
// checked by Snapshot.Validate.
func (s Staking) Validate() error {
	var merr error
	if s.MinimumValidatorCount > s.ValidatorCount {
		merr = multierror.Append(merr, fmt.Errorf("staking: minimum validator count %d exceeds validator count %d",
			s.MinimumValidatorCount, s.ValidatorCount))
	}
	if !s.SlashRewardFraction.Valid() {
		merr = multierror.Append(merr, fmt.Errorf("staking: slash reward fraction %d exceeds one", s.SlashRewardFraction))
	}
	for i, st := range s.Stakers {
		if st.Amount == nil || st.Amount.Sign() <= 0 {
			merr = multierror.Append(merr, fmt.Errorf("staking.stakers[%d]: non-positive bond", i))
		}
		if st.Status > Nominator {
			merr = multierror.Append(merr, fmt.Errorf("staking.stakers[%d]: invalid status %s", i, st.Status))
		}
	}
	return merr
}

// EVM is the genesis EVM account table.
type EVM struct {
	Accounts evmcore.GenesisAlloc
}

func (e EVM) Validate() error {
	return e.Accounts.Validate()
}

// Ethereum is the Ethereum block-emulation section. It has no parameters.
type Ethereum struct{}

// OctopusValidator registers one validator stake on the relay.
type OctopusValidator struct {
	Account inter.Account
	Stake   *big.Int
}

// Asset maps a bridged token name to its local asset id.
type Asset struct {
	Name string
	ID   uint32
}

// Octopus is the bridge registration section.
type Octopus struct {
	AppchainID    string
	RelayContract string
	Validators    []OctopusValidator
	AssetIDByName []Asset
}

// Validate checks identifiers are set, stakes are positive and asset names
// and ids are unique.
func (o Octopus) Validate() error {
	var merr error
	if o.AppchainID == "" {
		merr = multierror.Append(merr, fmt.Errorf("octopus: empty appchain id"))
	}
	if o.RelayContract == "" {
		merr = multierror.Append(merr, fmt.Errorf("octopus: empty relay contract"))
	}
	for i, v := range o.Validators {
		if v.Stake == nil || v.Stake.Sign() <= 0 {
			merr = multierror.Append(merr, fmt.Errorf("octopus.validators[%d]: non-positive stake", i))
		}
	}
	names := map[string]bool{}
	ids := map[uint32]bool{}
	for _, a := range o.AssetIDByName {
		if names[a.Name] || ids[a.ID] {
			merr = multierror.Append(merr, fmt.Errorf("octopus: duplicate asset %q/%d", a.Name, a.ID))
		}
		names[a.Name], ids[a.ID] = true, true
	}
	return merr
}

// Snapshot is the genesis state of every runtime subsystem.
type Snapshot struct {
	System   System
	Balances Balances
	Sudo     Sudo
	Babe     Babe
	Grandpa  Grandpa
	ImOnline ImOnline
	Beefy    Beefy
	Session  Session
	Staking  Staking
	// EVM is fingerprinted through its state root, see Hash.
	EVM      EVM `rlp:"-"`
	Ethereum Ethereum
	Octopus  Octopus
}

// Validate checks every section and the invariants linking them, using the
// default parameters. All violations are reported together.
func (s *Snapshot) Validate() error {
	return DefaultParams().Validate(s)
}
