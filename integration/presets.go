package integration

// Package integration assembles complete chain specifications for the UOneNet
// appchain networks. Presets bundle a network tier's metadata with the inputs
// of its genesis (sudo account, initial authorities, endowed accounts) into
// named profiles so operators can produce a chain spec without assembling any
// key material by hand.
//
// Usage:
//   spec, err := integration.LocalDevelopmentConfig(integration.NewFileRuntime("runtime.wasm"))
//   spec, err := integration.GetPresetByName("staging", src)
//
// Key material comes from two places:
//   - staging and development use the literal keys of opera/catalog
//   - the local presets derive throwaway keys from development seeds
//
// Every preset loads the runtime image first and returns
// ErrMissingRuntimeImage, having built nothing, if it is not available.

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/log"

	"github.com/rony4d/uonenet-appchain/integration/makefakegenesis"
	"github.com/rony4d/uonenet-appchain/inter"
	"github.com/rony4d/uonenet-appchain/opera"
	"github.com/rony4d/uonenet-appchain/opera/catalog"
	"github.com/rony4d/uonenet-appchain/opera/genesis"
)

// Preset builds the chain spec of one network tier.
type Preset func(src RuntimeSource) (*ChainSpec, error)

// DefaultPresetName is the preset used when none is named.
const DefaultPresetName = "dev"

// presets maps every accepted name to its constructor. Aliases share an entry.
var presets = map[string]Preset{
	"staging":      StagingConfig,
	"development":  DevelopmentConfig,
	"local":        LocalTestnetConfig,
	"local-multi":  LocalTestnetConfig,
	"dev":          LocalDevelopmentConfig,
	"local-single": LocalDevelopmentConfig,
}

// catalogConfig builds a catalog-backed network: the sudo account, the
// authorities and the endowed accounts are all literal.
func catalogConfig(rules opera.Rules, tier catalog.Tier, src RuntimeSource) (*ChainSpec, error) {
	code, err := loadRuntime(src)
	if err != nil {
		return nil, err
	}
	c := catalog.MustLoad(tier)
	return compose(rules, code, c.Sudo, c.Authorities, c.Endowed), nil
}

// seedConfig builds a local network from development seeds. The sudo account
// is Alice's plain account and all DevSeeds are endowed.
func seedConfig(rules opera.Rules, validators []makefakegenesis.Seed, src RuntimeSource) (*ChainSpec, error) {
	code, err := loadRuntime(src)
	if err != nil {
		return nil, err
	}
	authorities := make([]inter.AuthorityBundle, 0, len(validators))
	for _, seed := range validators {
		authorities = append(authorities, makefakegenesis.MustFakeBundle(seed))
	}
	endowed := make([]inter.Account, 0, len(makefakegenesis.DevSeeds))
	for _, seed := range makefakegenesis.DevSeeds {
		endowed = append(endowed, makefakegenesis.MustDeriveAccount(string(seed)))
	}
	sudo := makefakegenesis.MustDeriveAccount(string(makefakegenesis.Alice))
	return compose(rules, code, sudo, authorities, endowed), nil
}

func compose(rules opera.Rules, code []byte, sudo inter.Account, authorities []inter.AuthorityBundle, endowed []inter.Account) *ChainSpec {
	snap := genesis.Compose(code, sudo, authorities, endowed, rules.NetworkID)
	log.Debug("Composed genesis", "chain", rules.NetworkID, "authorities", len(authorities),
		"endowed", len(endowed), "code", len(code))
	return newChainSpec(rules, snap)
}

// StagingConfig returns the public staging network: two literal authorities
// and one literal endowed account that is also the sudo account.
func StagingConfig(src RuntimeSource) (*ChainSpec, error) {
	return catalogConfig(opera.StagingRules(), catalog.Staging, src)
}

// DevelopmentConfig returns the public development network: one literal
// authority and one literal endowed account that is also the sudo account.
func DevelopmentConfig(src RuntimeSource) (*ChainSpec, error) {
	return catalogConfig(opera.DevelopmentRules(), catalog.Development, src)
}

// LocalTestnetConfig returns a multi-node local network validated by Alice and
// Bob.
func LocalTestnetConfig(src RuntimeSource) (*ChainSpec, error) {
	return seedConfig(opera.LocalRules(), []makefakegenesis.Seed{makefakegenesis.Alice, makefakegenesis.Bob}, src)
}

// LocalDevelopmentConfig returns a single-node network validated by Alice.
func LocalDevelopmentConfig(src RuntimeSource) (*ChainSpec, error) {
	return seedConfig(opera.LocalDevelopmentRules(), []makefakegenesis.Seed{makefakegenesis.Alice}, src)
}

// PresetNames lists every accepted preset name, aliases included, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset returns the constructor registered under name.
func LookupPreset(name string) (Preset, error) {
	if name == "" {
		name = DefaultPresetName
	}
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %q (valid: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

// GetPresetByName looks up a preset by name and builds it with src.
//
// Example:
//
//	spec, err := integration.GetPresetByName("local", integration.NewFileRuntime(path))
//	if err != nil {
//	    log.Crit("Failed to build chain spec", "err", err)
//	}
func GetPresetByName(name string, src RuntimeSource) (*ChainSpec, error) {
	p, err := LookupPreset(name)
	if err != nil {
		return nil, err
	}
	return p(src)
}
