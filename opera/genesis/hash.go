package genesis

import (
	"crypto/sha256"
	"math"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/Fantom-foundation/lachesis-base/inter/pos"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/rony4d/uonenet-appchain/evmcore"
	"github.com/rony4d/uonenet-appchain/opera"
)

type fingerprint struct {
	Snapshot *Snapshot
	EVMRoot  common.Hash
}

// Hash returns the SHA-256 of the snapshot's RLP encoding. The EVM table is
// folded in through its state root, so two snapshots with equal content have
// equal hashes regardless of map iteration order.
func (s *Snapshot) Hash() hash.Hash {
	hasher := sha256.New()
	err := rlp.Encode(hasher, &fingerprint{
		Snapshot: s,
		EVMRoot:  evmcore.MustStateRoot(s.EVM.Accounts),
	})
	if err != nil {
		panic("can't hash: " + err.Error())
	}
	return hash.BytesToHash(hasher.Sum(nil))
}

// ValidatorID returns the validator id of a session binding position.
func ValidatorID(position int) idx.ValidatorID {
	return idx.ValidatorID(position + 1)
}

// maxTotalWeight is the largest total weight pos.Validators accepts.
const maxTotalWeight = math.MaxUint32 / 2

// ValidatorSet returns the weighted validator set implied by the snapshot.
// Validators are numbered from 1 in session order; the weight is the bonded
// stake in whole UON. If the total would overflow the set, every stake is
// scaled down by the same power of ten until it fits. A positive bond always
// weighs at least 1. Validators without a bond are left out.
func (s *Snapshot) ValidatorSet() *pos.Validators {
	var (
		ids    []idx.ValidatorID
		stakes []*big.Int
	)
	for i, binding := range s.Session.Keys {
		stake := s.Staking.Stake(binding.Stash)
		if stake == nil || stake.Sign() <= 0 {
			continue
		}
		ids = append(ids, ValidatorID(i))
		stakes = append(stakes, stake)
	}

	unit := new(big.Int).Set(opera.UON)
	ten := big.NewInt(10)
	for {
		weights, ok := scaleWeights(stakes, unit)
		if ok {
			builder := pos.NewBuilder()
			for i, id := range ids {
				builder.Set(id, weights[i])
			}
			return builder.Build()
		}
		unit.Mul(unit, ten)
	}
}

// scaleWeights divides every stake by unit, flooring positive stakes at 1.
// It reports false if the total exceeds maxTotalWeight.
func scaleWeights(stakes []*big.Int, unit *big.Int) ([]pos.Weight, bool) {
	weights := make([]pos.Weight, len(stakes))
	total := new(big.Int)
	for i, stake := range stakes {
		w := new(big.Int).Div(stake, unit)
		if w.Sign() == 0 {
			w.SetUint64(1)
		}
		total.Add(total, w)
		if !total.IsUint64() || total.Uint64() > maxTotalWeight {
			return nil, false
		}
		weights[i] = pos.Weight(w.Uint64())
	}
	return weights, true
}
