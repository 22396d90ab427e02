package opera

import (
	"fmt"
	"math/big"
)

// UON is one whole unit of the native currency in minor units (10^18).
var UON = new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)

// Units returns n whole UON in minor units.
func Units(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), UON)
}

// Endowment is credited to every pre-funded account at genesis.
func Endowment() *big.Int {
	return Units(1_000_000)
}

// Stash is credited to, and bonded by, every initial validator stash.
func Stash() *big.Int {
	return Units(100)
}

// OctopusStash is the stake each initial validator is registered with on the
// Octopus relay. It is denominated in the relay's unit, not in UON.
func OctopusStash() *big.Int {
	return big.NewInt(10_000_000_000_000_000)
}

// Perbill is a fraction in parts per billion.
type Perbill uint32

// PerbillOne is the Perbill equal to 1.
const PerbillOne Perbill = 1_000_000_000

// PerbillFromPercent returns p percent, saturating at 100.
func PerbillFromPercent(p uint32) Perbill {
	if p > 100 {
		p = 100
	}
	return Perbill(p * 10_000_000)
}

// Valid reports whether the fraction lies within [0, 1].
func (p Perbill) Valid() bool {
	return p <= PerbillOne
}

// String formats the fraction as a percentage.
func (p Perbill) String() string {
	return fmt.Sprintf("%d.%07d%%", uint32(p)/10_000_000, uint32(p)%10_000_000)
}

// DefaultSlashRewardFraction is the share of slashed funds paid to reporters.
func DefaultSlashRewardFraction() Perbill {
	return PerbillFromPercent(10)
}

// AllowedSlots selects which BABE slot kinds may author blocks.
type AllowedSlots uint8

const (
	PrimarySlots AllowedSlots = iota
	PrimaryAndSecondaryPlainSlots
	PrimaryAndSecondaryVRFSlots
)

// String returns the name the node uses for the setting.
func (s AllowedSlots) String() string {
	switch s {
	case PrimarySlots:
		return "PrimarySlots"
	case PrimaryAndSecondaryPlainSlots:
		return "PrimaryAndSecondaryPlainSlots"
	case PrimaryAndSecondaryVRFSlots:
		return "PrimaryAndSecondaryVRFSlots"
	}
	return fmt.Sprintf("AllowedSlots(%d)", uint8(s))
}

// BabeEpochConfig is the BABE configuration of the genesis epoch.
type BabeEpochConfig struct {
	// C is the probability (numerator, denominator) of a slot having a primary author.
	C [2]uint64
	// AllowedSlots are the slot kinds that may author blocks.
	AllowedSlots AllowedSlots
}

// DefaultBabeEpochConfig returns c = 1/4 with plain secondary slots.
func DefaultBabeEpochConfig() BabeEpochConfig {
	return BabeEpochConfig{
		C:            [2]uint64{1, 4},
		AllowedSlots: PrimaryAndSecondaryPlainSlots,
	}
}
