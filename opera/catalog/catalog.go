// Package catalog holds the literal key material of the long-lived UOneNet
// networks. Each tier is an embedded TOML table of public keys and accounts;
// the tables are decoded and validated on load so that an edit introducing a
// malformed key is caught before any genesis is built from it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/log"
	"github.com/hashicorp/go-multierror"

	"github.com/rony4d/uonenet-appchain/inter"
	"github.com/rony4d/uonenet-appchain/inter/validatorpk"
)

// ErrInvalidStaticConstant marks a catalog entry that does not decode to the
// key or account it claims to be.
var ErrInvalidStaticConstant = errors.New("invalid static constant")

// Tier names a catalog-backed deployment.
type Tier string

const (
	Staging     Tier = "staging"
	Development Tier = "development"
)

var (
	//go:embed staging.toml
	stagingTOML []byte
	//go:embed development.toml
	developmentTOML []byte
)

var tables = map[Tier][]byte{
	Staging:     stagingTOML,
	Development: developmentTOML,
}

// Tiers lists the catalog-backed deployments.
func Tiers() []Tier {
	return []Tier{Staging, Development}
}

// Catalog is the decoded key material of one tier.
type Catalog struct {
	Tier        Tier
	Sudo        inter.Account
	Endowed     []inter.Account
	Authorities []inter.AuthorityBundle
}

type authorityEntry struct {
	Stash      string `toml:"stash"`
	Controller string `toml:"controller"`
	Babe       string `toml:"babe"`
	Grandpa    string `toml:"grandpa"`
	ImOnline   string `toml:"im_online"`
	Beefy      string `toml:"beefy"`
	Octopus    string `toml:"octopus"`
}

type table struct {
	Tier        string           `toml:"tier"`
	Sudo        string           `toml:"sudo"`
	Endowed     []string         `toml:"endowed"`
	Authorities []authorityEntry `toml:"authorities"`
}

// Parse decodes and validates a catalog table. All offending entries are
// reported together, each wrapping ErrInvalidStaticConstant.
func Parse(data []byte) (*Catalog, error) {
	var t table
	md, err := toml.Decode(string(data), &t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStaticConstant, err)
	}

	var merr error
	invalid := func(field string, err error) {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s: %v", ErrInvalidStaticConstant, field, err))
	}
	for _, key := range md.Undecoded() {
		invalid(key.String(), errors.New("unknown field"))
	}
	account := func(field, s string) inter.Account {
		a, err := inter.AccountFromHex(s)
		if err != nil {
			invalid(field, err)
		}
		return a
	}

	c := &Catalog{Tier: Tier(t.Tier)}
	if c.Tier == "" {
		invalid("tier", errors.New("missing"))
	}
	c.Sudo = account("sudo", t.Sudo)
	for i, s := range t.Endowed {
		c.Endowed = append(c.Endowed, account(fmt.Sprintf("endowed[%d]", i), s))
	}
	if len(t.Authorities) == 0 {
		invalid("authorities", errors.New("empty"))
	}
	for i, e := range t.Authorities {
		prefix := fmt.Sprintf("authorities[%d]", i)
		b := inter.AuthorityBundle{
			Stash:      account(prefix+".stash", e.Stash),
			Controller: account(prefix+".controller", e.Controller),
		}
		keys := []struct {
			scheme inter.KeyScheme
			hex    string
			dst    *validatorpk.PubKey
		}{
			{inter.Babe, e.Babe, &b.Babe},
			{inter.Grandpa, e.Grandpa, &b.Grandpa},
			{inter.ImOnline, e.ImOnline, &b.ImOnline},
			{inter.Beefy, e.Beefy, &b.Beefy},
			{inter.Octopus, e.Octopus, &b.Octopus},
		}
		for _, k := range keys {
			pk, err := validatorpk.FromRawHex(k.scheme.PubKeyType(), k.hex)
			if err != nil {
				invalid(prefix+"."+k.scheme.String(), err)
				continue
			}
			*k.dst = pk
		}
		c.Authorities = append(c.Authorities, b)
	}
	if merr != nil {
		return nil, merr
	}
	return c, nil
}

// Load decodes the embedded table of the tier.
func Load(tier Tier) (*Catalog, error) {
	data, ok := tables[tier]
	if !ok {
		return nil, fmt.Errorf("unknown catalog tier %q", tier)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s catalog: %w", tier, err)
	}
	if c.Tier != tier {
		return nil, fmt.Errorf("%w: %s catalog declares tier %q", ErrInvalidStaticConstant, tier, c.Tier)
	}
	return c, nil
}

// MustLoad is like Load but halts the process on failure. The tables are
// compiled in, so a failure can only be fixed by editing them.
func MustLoad(tier Tier) *Catalog {
	c, err := Load(tier)
	if err != nil {
		log.Crit("Failed to load key catalog", "tier", tier, "err", err)
	}
	return c
}
