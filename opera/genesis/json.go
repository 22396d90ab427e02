package genesis

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rony4d/uonenet-appchain/evmcore"
	"github.com/rony4d/uonenet-appchain/inter"
	"github.com/rony4d/uonenet-appchain/inter/validatorpk"
)

// The JSON view follows the runtime genesis layout the node consumes:
// camelCase sections, SS58 accounts, hex keys and integer amounts.

type sessionKeysJSON struct {
	Babe     string `json:"babe"`
	Grandpa  string `json:"grandpa"`
	ImOnline string `json:"im_online"`
	Beefy    string `json:"beefy"`
	Octopus  string `json:"octopus"`
}

type epochConfigJSON struct {
	C            [2]uint64 `json:"c"`
	AllowedSlots string    `json:"allowed_slots"`
}

type snapshotJSON struct {
	System struct {
		Code hexutil.Bytes `json:"code"`
	} `json:"system"`
	Balances struct {
		Balances [][2]interface{} `json:"balances"`
	} `json:"balances"`
	Sudo struct {
		Key inter.Account `json:"key"`
	} `json:"sudo"`
	Babe struct {
		Authorities [][2]interface{} `json:"authorities"`
		EpochConfig epochConfigJSON  `json:"epochConfig"`
	} `json:"babe"`
	Grandpa struct {
		Authorities [][2]interface{} `json:"authorities"`
	} `json:"grandpa"`
	ImOnline struct {
		Keys []string `json:"keys"`
	} `json:"imOnline"`
	Beefy struct {
		Authorities []string `json:"authorities"`
	} `json:"beefy"`
	Session struct {
		Keys [][3]interface{} `json:"keys"`
	} `json:"session"`
	Staking struct {
		ValidatorCount        uint32           `json:"validatorCount"`
		MinimumValidatorCount uint32           `json:"minimumValidatorCount"`
		Invulnerables         []inter.Account  `json:"invulnerables"`
		SlashRewardFraction   uint32           `json:"slashRewardFraction"`
		Stakers               [][4]interface{} `json:"stakers"`
	} `json:"staking"`
	EVM struct {
		Accounts evmcore.GenesisAlloc `json:"accounts"`
	} `json:"evm"`
	Ethereum struct{} `json:"ethereum"`
	Octopus  struct {
		AppchainID    string           `json:"appchainId"`
		RelayContract string           `json:"relayContract"`
		Validators    [][2]interface{} `json:"validators"`
		AssetIDByName [][2]interface{} `json:"assetIdByName"`
	} `json:"octopusAppchain"`
}

func weighted(keys []validatorpk.PubKey) [][2]interface{} {
	out := make([][2]interface{}, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]interface{}{k.Hex(), 1})
	}
	return out
}

func hexKeys(keys []validatorpk.PubKey) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Hex())
	}
	return out
}

func jsonAmount(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}

// MarshalJSON implements json.Marshaler.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var v snapshotJSON

	v.System.Code = s.System.Code

	v.Balances.Balances = make([][2]interface{}, 0, len(s.Balances.Balances))
	for _, b := range s.Balances.Balances {
		v.Balances.Balances = append(v.Balances.Balances, [2]interface{}{b.Account, jsonAmount(b.Amount)})
	}

	v.Sudo.Key = s.Sudo.Key

	v.Babe.Authorities = weighted(s.Babe.Authorities)
	v.Babe.EpochConfig = epochConfigJSON{
		C:            s.Babe.EpochConfig.C,
		AllowedSlots: s.Babe.EpochConfig.AllowedSlots.String(),
	}
	v.Grandpa.Authorities = weighted(s.Grandpa.Authorities)
	v.ImOnline.Keys = hexKeys(s.ImOnline.Keys)
	v.Beefy.Authorities = hexKeys(s.Beefy.Authorities)

	v.Session.Keys = make([][3]interface{}, 0, len(s.Session.Keys))
	for _, b := range s.Session.Keys {
		v.Session.Keys = append(v.Session.Keys, [3]interface{}{b.Stash, b.Controller, sessionKeysJSON{
			Babe:     b.Keys.Babe.Hex(),
			Grandpa:  b.Keys.Grandpa.Hex(),
			ImOnline: b.Keys.ImOnline.Hex(),
			Beefy:    b.Keys.Beefy.Hex(),
			Octopus:  b.Keys.Octopus.Hex(),
		}})
	}

	v.Staking.ValidatorCount = s.Staking.ValidatorCount
	v.Staking.MinimumValidatorCount = s.Staking.MinimumValidatorCount
	v.Staking.Invulnerables = inter.CopyAccounts(s.Staking.Invulnerables)
	if v.Staking.Invulnerables == nil {
		v.Staking.Invulnerables = []inter.Account{}
	}
	v.Staking.SlashRewardFraction = uint32(s.Staking.SlashRewardFraction)
	v.Staking.Stakers = make([][4]interface{}, 0, len(s.Staking.Stakers))
	for _, st := range s.Staking.Stakers {
		v.Staking.Stakers = append(v.Staking.Stakers, [4]interface{}{st.Stash, st.Controller, jsonAmount(st.Amount), st.Status.String()})
	}

	v.EVM.Accounts = s.EVM.Accounts
	if v.EVM.Accounts == nil {
		v.EVM.Accounts = evmcore.GenesisAlloc{}
	}

	v.Octopus.AppchainID = s.Octopus.AppchainID
	v.Octopus.RelayContract = s.Octopus.RelayContract
	v.Octopus.Validators = make([][2]interface{}, 0, len(s.Octopus.Validators))
	for _, val := range s.Octopus.Validators {
		v.Octopus.Validators = append(v.Octopus.Validators, [2]interface{}{val.Account, jsonAmount(val.Stake)})
	}
	v.Octopus.AssetIDByName = make([][2]interface{}, 0, len(s.Octopus.AssetIDByName))
	for _, a := range s.Octopus.AssetIDByName {
		v.Octopus.AssetIDByName = append(v.Octopus.AssetIDByName, [2]interface{}{a.Name, a.ID})
	}

	return json.Marshal(&v)
}
