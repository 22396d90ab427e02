package makefakegenesis

import (
	"github.com/hashicorp/go-multierror"

	"github.com/rony4d/uonenet-appchain/inter"
	"github.com/rony4d/uonenet-appchain/inter/validatorpk"
)

// Seed is a development seed. Only values of this type can be expanded into
// authority bundles, which keeps catalog-backed networks away from derivation.
type Seed string

// Well-known development seeds.
const (
	Alice   Seed = "Alice"
	Bob     Seed = "Bob"
	Charlie Seed = "Charlie"
	Dave    Seed = "Dave"
	Eve     Seed = "Eve"
	Ferdie  Seed = "Ferdie"
)

// DevSeeds are the seeds pre-funded on local networks, in order.
var DevSeeds = []Seed{Alice, Bob, Charlie, Dave, Eve, Ferdie}

// StashSeed returns the seed of the stash account paired with seed.
func (s Seed) StashSeed() Seed {
	return s + "//stash"
}

// FakeBundle derives the authority bundle of a development validator:
//   - stash is the account of "<seed>//stash"
//   - controller is the account of "<seed>"
//   - each session role key is derived from "<seed>" under its own scheme
func FakeBundle(seed Seed) (inter.AuthorityBundle, error) {
	var (
		b    inter.AuthorityBundle
		merr error
		err  error
	)
	if b.Stash, err = DeriveAccount(string(seed.StashSeed())); err != nil {
		merr = multierror.Append(merr, err)
	}
	if b.Controller, err = DeriveAccount(string(seed)); err != nil {
		merr = multierror.Append(merr, err)
	}
	slots := map[inter.KeyScheme]*validatorpk.PubKey{
		inter.Babe:     &b.Babe,
		inter.Grandpa:  &b.Grandpa,
		inter.ImOnline: &b.ImOnline,
		inter.Beefy:    &b.Beefy,
		inter.Octopus:  &b.Octopus,
	}
	for _, s := range inter.KeySchemes {
		pk, err := Derive(s, string(seed))
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		*slots[s] = pk
	}
	if merr != nil {
		return inter.AuthorityBundle{}, merr
	}
	return b, nil
}

// MustFakeBundle is like FakeBundle but panics on failure.
func MustFakeBundle(seed Seed) inter.AuthorityBundle {
	b, err := FakeBundle(seed)
	if err != nil {
		panic(err)
	}
	return b
}

// FakeBundles derives one bundle per seed, preserving order.
func FakeBundles(seeds ...Seed) ([]inter.AuthorityBundle, error) {
	out := make([]inter.AuthorityBundle, 0, len(seeds))
	for _, s := range seeds {
		b, err := FakeBundle(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// FakeAccounts derives the plain account of every seed, preserving order.
func FakeAccounts(seeds ...Seed) ([]inter.Account, error) {
	out := make([]inter.Account, 0, len(seeds))
	for _, s := range seeds {
		acc, err := DeriveAccount(string(s))
		if err != nil {
			return nil, err
		}
		out = append(out, acc)
	}
	return out, nil
}
