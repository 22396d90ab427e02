package genesis

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/Fantom-foundation/lachesis-base/inter/pos"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/uonenet-appchain/integration/makefakegenesis"
	"github.com/rony4d/uonenet-appchain/inter"
	"github.com/rony4d/uonenet-appchain/inter/validatorpk"
	"github.com/rony4d/uonenet-appchain/opera"
	"github.com/rony4d/uonenet-appchain/opera/catalog"
)

func localSnapshot(t *testing.T) *Snapshot {
	authorities, endowed := fakeInputs(t, makefakegenesis.Alice, makefakegenesis.Bob)
	return Compose(testCode, endowed[0], authorities, endowed, opera.LocalNetworkID)
}

func TestSnapshotValidate(t *testing.T) {
	require.NoError(t, localSnapshot(t).Validate())

	for _, tier := range catalog.Tiers() {
		c := catalog.MustLoad(tier)
		snap := Compose(testCode, c.Sudo, c.Authorities, c.Endowed, string(tier))
		require.NoError(t, snap.Validate(), string(tier))
	}
}

func TestSnapshotValidateReportsEveryViolation(t *testing.T) {
	require := require.New(t)

	snap := localSnapshot(t)
	snap.Staking.ValidatorCount = 5
	snap.Staking.Invulnerables = snap.Staking.Invulnerables[:1]
	snap.Staking.Stakers = append(snap.Staking.Stakers, Staker{
		Stash:  inter.Account{0xee},
		Amount: big.NewInt(1),
		Status: Validator,
	})
	snap.Staking.SlashRewardFraction = opera.PerbillOne + 1
	snap.Octopus.Validators = snap.Octopus.Validators[1:]

	err := snap.Validate()
	require.Error(err)

	var merr *multierror.Error
	require.True(errors.As(err, &merr))
	msg := err.Error()
	require.Contains(msg, "validator counts")
	require.Contains(msg, "invulnerables differ")
	require.Contains(msg, "has no session keys")
	require.Contains(msg, "slash reward fraction")
	require.Contains(msg, "octopus: validators differ")
}

func TestSectionValidate(t *testing.T) {
	require := require.New(t)

	require.Error(System{}.Validate())
	require.Error(Sudo{}.Validate())
	require.Error(Balances{Balances: []Balance{{Account: inter.Account{1}}}}.Validate())
	require.Error(Balances{Balances: []Balance{{Account: inter.Account{1}, Amount: big.NewInt(-1)}}}.Validate())

	require.Error(Babe{EpochConfig: opera.BabeEpochConfig{C: [2]uint64{1, 0}}}.Validate())
	require.Error(Babe{EpochConfig: opera.BabeEpochConfig{C: [2]uint64{5, 4}}}.Validate())
	require.NoError(Babe{EpochConfig: opera.DefaultBabeEpochConfig()}.Validate())

	alice := makefakegenesis.MustFakeBundle(makefakegenesis.Alice)
	require.NoError(Grandpa{Authorities: []validatorpk.PubKey{alice.Grandpa}}.Validate())
	require.ErrorIs(Grandpa{Authorities: []validatorpk.PubKey{alice.Babe}}.Validate(), validatorpk.ErrMalformed)
	require.NoError(Beefy{Authorities: []validatorpk.PubKey{alice.Beefy}}.Validate())
	require.NoError(ImOnline{Keys: []validatorpk.PubKey{alice.ImOnline}}.Validate())

	session := SessionKeys([]inter.AuthorityBundle{alice})
	require.NoError(session.Validate())
	session.Keys[0].Controller = inter.Account{}
	require.ErrorIs(session.Validate(), inter.ErrPartialBundle)

	require.Error(Octopus{}.Validate())
	require.Error(Octopus{
		AppchainID:    "a",
		RelayContract: "r",
		AssetIDByName: []Asset{{"usdc", 0}, {"usdc", 1}},
	}.Validate())

	require.Error(Staking{ValidatorCount: 1, MinimumValidatorCount: 2}.Validate())
	require.Error(Staking{Stakers: []Staker{{Status: StakerStatus(9), Amount: big.NewInt(1)}}}.Validate())
}

func TestSnapshotHash(t *testing.T) {
	require := require.New(t)

	a := localSnapshot(t)
	b := localSnapshot(t)
	require.Equal(a.Hash(), b.Hash())

	b.Octopus.AppchainID = "other"
	require.NotEqual(a.Hash(), b.Hash())

	c := localSnapshot(t)
	acc := c.EVM.Accounts
	for addr, v := range acc {
		v.Nonce = 1
		acc[addr] = v
	}
	require.NotEqual(a.Hash(), c.Hash())
}

func TestSnapshotValidatorSet(t *testing.T) {
	require := require.New(t)

	snap := localSnapshot(t)
	vv := snap.ValidatorSet()
	require.Equal(2, int(vv.Len()))
	require.True(vv.Exists(ValidatorID(0)))
	require.True(vv.Exists(ValidatorID(1)))
	require.Equal(100, int(vv.Get(ValidatorID(0))))
	require.Equal(200, int(vv.TotalWeight()))
}

func TestSnapshotValidatorSetLargeStake(t *testing.T) {
	require := require.New(t)

	p := DefaultParams()
	p.Stash = opera.Units(3_000_000_000)
	authorities, endowed := fakeInputs(t, makefakegenesis.Alice, makefakegenesis.Bob)
	snap := p.Compose(testCode, endowed[0], authorities, endowed, opera.LocalNetworkID)
	require.NoError(p.Validate(snap))

	var vv *pos.Validators
	require.NotPanics(func() { vv = snap.ValidatorSet() })
	require.Equal(2, int(vv.Len()))
	require.LessOrEqual(uint64(vv.TotalWeight()), uint64(math.MaxUint32/2))
	// both stakes scale by the same factor
	require.Equal(300_000_000, int(vv.Get(ValidatorID(0))))
	require.Equal(vv.Get(ValidatorID(0)), vv.Get(ValidatorID(1)))
}

func TestSnapshotValidatorSetDustStake(t *testing.T) {
	p := DefaultParams()
	p.Stash = big.NewInt(3)
	authorities, endowed := fakeInputs(t, makefakegenesis.Alice)
	snap := p.Compose(testCode, endowed[0], authorities, endowed, opera.LocalNetworkID)

	vv := snap.ValidatorSet()
	require.Equal(t, 1, int(vv.Get(ValidatorID(0))))
}

func TestSnapshotJSON(t *testing.T) {
	require := require.New(t)

	c := catalog.MustLoad(catalog.Development)
	snap := Compose(testCode, c.Sudo, c.Authorities, c.Endowed, opera.DevelopmentNetworkID)

	b, err := json.Marshal(snap)
	require.NoError(err)

	var view map[string]json.RawMessage
	require.NoError(json.Unmarshal(b, &view))
	for _, key := range []string{"system", "balances", "sudo", "babe", "grandpa", "imOnline", "beefy",
		"session", "staking", "evm", "ethereum", "octopusAppchain"} {
		require.Contains(view, key)
	}

	require.JSONEq(`{"key":"5FbjQgSg97nvPsfuf21D886B26mwtNvZTgEfGfWR6gdNy3Tx"}`, string(view["sudo"]))
	require.JSONEq(`{"code":"0x0061736d"}`, string(view["system"]))
	require.JSONEq(`{"authorities":[],"epochConfig":{"c":[1,4],"allowed_slots":"PrimaryAndSecondaryPlainSlots"}}`, string(view["babe"]))
	require.JSONEq(`{"balances":[
		["5FbjQgSg97nvPsfuf21D886B26mwtNvZTgEfGfWR6gdNy3Tx", 1000000000000000000000000],
		["`+c.Authorities[0].Stash.String()+`", 100000000000000000000]
	]}`, string(view["balances"]))
	require.JSONEq(`{
		"appchainId":"uonenet_development_appchain",
		"relayContract":"dev-oct-relay.testnet",
		"validators":[["`+c.Authorities[0].Stash.String()+`", 10000000000000000]],
		"assetIdByName":[["usdc.testnet",0]]
	}`, string(view["octopusAppchain"]))

	var staking struct {
		SlashRewardFraction uint32          `json:"slashRewardFraction"`
		Stakers             [][]interface{} `json:"stakers"`
		Invulnerables       []inter.Account `json:"invulnerables"`
	}
	require.NoError(json.Unmarshal(view["staking"], &staking))
	require.Equal(uint32(100_000_000), staking.SlashRewardFraction)
	require.Equal("Validator", staking.Stakers[0][3])
	require.Equal([]inter.Account{c.Authorities[0].Stash}, staking.Invulnerables)

	var session struct {
		Keys [][3]json.RawMessage `json:"keys"`
	}
	require.NoError(json.Unmarshal(view["session"], &session))
	require.Len(session.Keys, 1)
	require.JSONEq(`{
		"babe":"0xd811839e01e3cc6eeb64e6f312a1eaf2988ae2c5fea9dd0b8ac018c146ca7073",
		"grandpa":"0xdfb839beaf6fe750ca87b9059161d43f2682a6c3a0ac765f1e5054063ed9903b",
		"im_online":"0xd811839e01e3cc6eeb64e6f312a1eaf2988ae2c5fea9dd0b8ac018c146ca7073",
		"beefy":"0x02d337069cb73bcefafc4e35e5189ad62932e4f2ee3f985b6bbff654cb68017ff1",
		"octopus":"0xd811839e01e3cc6eeb64e6f312a1eaf2988ae2c5fea9dd0b8ac018c146ca7073"
	}`, string(session.Keys[0][2]))
}
