package genesis

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"

	"github.com/rony4d/uonenet-appchain/evmcore"
	"github.com/rony4d/uonenet-appchain/inter"
	"github.com/rony4d/uonenet-appchain/opera"
)

// RelayContract is the relay the appchain registers with.
const RelayContract = "dev-oct-relay.testnet"

// Params are the fixed parameters Compose applies on top of its inputs.
type Params struct {
	// Endowment is credited to every endowed account.
	Endowment *big.Int
	// Stash is credited to and bonded by every authority stash.
	Stash *big.Int
	// OctopusStash is the relay stake of every authority.
	OctopusStash *big.Int

	SlashRewardFraction opera.Perbill
	BabeEpochConfig     opera.BabeEpochConfig

	RelayContract string
	Assets        []Asset
	EVMAccounts   evmcore.GenesisAlloc
}

// DefaultParams returns the parameters every UOneNet network uses.
func DefaultParams() Params {
	return Params{
		Endowment:           opera.Endowment(),
		Stash:               opera.Stash(),
		OctopusStash:        opera.OctopusStash(),
		SlashRewardFraction: opera.DefaultSlashRewardFraction(),
		BabeEpochConfig:     opera.DefaultBabeEpochConfig(),
		RelayContract:       RelayContract,
		Assets:              []Asset{{Name: "usdc.testnet", ID: 0}},
		EVMAccounts:         evmcore.DefaultGenesisAlloc(),
	}
}

func amount(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x)
}

// Ledger credits Endowment to every endowed account, then Stash to every
// authority stash. Entries are not merged.
func (p Params) Ledger(authorities []inter.AuthorityBundle, endowed []inter.Account) Balances {
	b := Balances{Balances: make([]Balance, 0, len(endowed)+len(authorities))}
	for _, a := range endowed {
		b.Balances = append(b.Balances, Balance{Account: a, Amount: amount(p.Endowment)})
	}
	for _, auth := range authorities {
		b.Balances = append(b.Balances, Balance{Account: auth.Stash, Amount: amount(p.Stash)})
	}
	return b
}

// Staking makes every authority an invulnerable validator bonding Stash.
func (p Params) Staking(authorities []inter.AuthorityBundle) Staking {
	s := Staking{
		ValidatorCount:        uint32(len(authorities)),
		MinimumValidatorCount: uint32(len(authorities)),
		Invulnerables:         make([]inter.Account, 0, len(authorities)),
		SlashRewardFraction:   p.SlashRewardFraction,
		Stakers:               make([]Staker, 0, len(authorities)),
	}
	for _, auth := range authorities {
		s.Invulnerables = append(s.Invulnerables, auth.Stash)
		s.Stakers = append(s.Stakers, Staker{
			Stash:      auth.Stash,
			Controller: auth.Controller,
			Amount:     amount(p.Stash),
			Status:     Validator,
		})
	}
	return s
}

// SessionKeys binds the session keys of every authority, in order.
func SessionKeys(authorities []inter.AuthorityBundle) Session {
	s := Session{Keys: make([]SessionBinding, 0, len(authorities))}
	for _, auth := range authorities {
		s.Keys = append(s.Keys, SessionBinding{
			Stash:      auth.Stash,
			Controller: auth.Controller,
			Keys:       auth.SessionKeys(),
		})
	}
	return s
}

// Octopus registers the appchain and every authority stash with the relay.
func (p Params) Octopus(appchainID string, authorities []inter.AuthorityBundle) Octopus {
	o := Octopus{
		AppchainID:    appchainID,
		RelayContract: p.RelayContract,
		Validators:    make([]OctopusValidator, 0, len(authorities)),
		AssetIDByName: append([]Asset{}, p.Assets...),
	}
	for _, auth := range authorities {
		o.Validators = append(o.Validators, OctopusValidator{Account: auth.Stash, Stake: amount(p.OctopusStash)})
	}
	return o
}

// EVM returns a copy of the genesis EVM table.
func (p Params) EVM() EVM {
	return EVM{Accounts: p.EVMAccounts.Copy()}
}

// Compose builds the snapshot with DefaultParams.
func Compose(code []byte, root inter.Account, authorities []inter.AuthorityBundle, endowed []inter.Account, appchainID string) *Snapshot {
	return DefaultParams().Compose(code, root, authorities, endowed, appchainID)
}

// Compose builds the genesis snapshot. It never fails; the inputs are copied
// so the snapshot shares no memory with the caller.
func (p Params) Compose(code []byte, root inter.Account, authorities []inter.AuthorityBundle, endowed []inter.Account, appchainID string) *Snapshot {
	auths := make([]inter.AuthorityBundle, len(authorities))
	for i, a := range authorities {
		auths[i] = a.Copy()
	}
	endowed = inter.CopyAccounts(endowed)

	return &Snapshot{
		System:   System{Code: append([]byte{}, code...)},
		Balances: p.Ledger(auths, endowed),
		Sudo:     Sudo{Key: root},
		Babe: Babe{
			Authorities: nil,
			EpochConfig: p.BabeEpochConfig,
		},
		Grandpa:  Grandpa{},
		ImOnline: ImOnline{},
		Beefy:    Beefy{},
		Session:  SessionKeys(auths),
		Staking:  p.Staking(auths),
		EVM:      p.EVM(),
		Ethereum: Ethereum{},
		Octopus:  p.Octopus(appchainID, auths),
	}
}

func accountsEqual(a, b []inter.Account) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Validate checks every section of s and the invariants linking them:
//   - validator counts equal the number of session bindings
//   - invulnerables are the binding stashes, in order
//   - every staker has a session binding
//   - the relay validators are the binding stashes, each staking OctopusStash
func (p Params) Validate(s *Snapshot) error {
	var merr error
	sections := []interface{ Validate() error }{
		s.System, s.Balances, s.Sudo, s.Babe, s.Grandpa, s.ImOnline,
		s.Beefy, s.Session, s.Staking, s.EVM, s.Octopus,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	n := uint32(len(s.Session.Keys))
	if s.Staking.ValidatorCount != n || s.Staking.MinimumValidatorCount != n {
		merr = multierror.Append(merr, fmt.Errorf("staking: validator counts %d/%d, want %d",
			s.Staking.ValidatorCount, s.Staking.MinimumValidatorCount, n))
	}

	stashes := s.Session.Stashes()
	if !accountsEqual(s.Staking.Invulnerables, stashes) {
		merr = multierror.Append(merr, fmt.Errorf("staking: invulnerables differ from session stashes"))
	}

	bound := make(map[inter.Account]bool, len(stashes))
	for _, a := range stashes {
		bound[a] = true
	}
	for i, st := range s.Staking.Stakers {
		if !bound[st.Stash] {
			merr = multierror.Append(merr, fmt.Errorf("staking.stakers[%d]: stash %s has no session keys", i, st.Stash))
		}
	}

	relay := make([]inter.Account, len(s.Octopus.Validators))
	for i, v := range s.Octopus.Validators {
		relay[i] = v.Account
		if v.Stake != nil && p.OctopusStash != nil && v.Stake.Cmp(p.OctopusStash) != 0 {
			merr = multierror.Append(merr, fmt.Errorf("octopus.validators[%d]: stake %s, want %s", i, v.Stake, p.OctopusStash))
		}
	}
	if !accountsEqual(relay, stashes) {
		merr = multierror.Append(merr, fmt.Errorf("octopus: validators differ from session stashes"))
	}
	return merr
}
