// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package evmcore describes the EVM account table placed into the appchain's
// genesis. The appchain runs an Ethereum-compatible execution layer next to
// its native ledger; at genesis that layer holds a fixed set of pre-funded
// accounts, optionally with code and storage.
//
// The table is kept as plain data inside the genesis snapshot. To give it a
// compact fingerprint it can also be written into a go-ethereum StateDB backed
// by an in-memory database, which yields the Merkle root of the table.

package evmcore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/log"
)

// DevAccount is the EVM account funded on every UOneNet network.
var DevAccount = common.HexToAddress("0x7D4a82306Eb4de7C7B1D686AFC56b1E7999ba7F9")

// DevAccountBalance is the genesis balance of DevAccount (10^24 wei).
func DevAccountBalance() *big.Int {
	return hexutil.MustDecodeBig("0xD3C21BCECCEDA1000000")
}

// GenesisAccount is one account of the genesis EVM table.
type GenesisAccount struct {
	Balance *big.Int
	Code    []byte
	Nonce   uint64
	Storage map[common.Hash]common.Hash
}

// Copy returns a deep copy of the account.
func (a GenesisAccount) Copy() GenesisAccount {
	cp := GenesisAccount{
		Code:  common.CopyBytes(a.Code),
		Nonce: a.Nonce,
	}
	if a.Balance != nil {
		cp.Balance = new(big.Int).Set(a.Balance)
	}
	if a.Storage != nil {
		cp.Storage = make(map[common.Hash]common.Hash, len(a.Storage))
		for k, v := range a.Storage {
			cp.Storage[k] = v
		}
	}
	return cp
}

// MarshalJSON emits the account the way EVM genesis tables are written:
// hex balance, hex code, integer nonce and a hex storage map.
func (a GenesisAccount) MarshalJSON() ([]byte, error) {
	balance := new(big.Int)
	if a.Balance != nil {
		balance = a.Balance
	}
	storage := a.Storage
	if storage == nil {
		storage = map[common.Hash]common.Hash{}
	}
	return json.Marshal(struct {
		Balance *hexutil.Big                `json:"balance"`
		Code    hexutil.Bytes               `json:"code"`
		Nonce   *hexutil.Big                `json:"nonce"`
		Storage map[common.Hash]common.Hash `json:"storage"`
	}{
		Balance: (*hexutil.Big)(balance),
		Code:    hexutil.Bytes(append([]byte{}, a.Code...)),
		Nonce:   (*hexutil.Big)(new(big.Int).SetUint64(a.Nonce)),
		Storage: storage,
	})
}

// GenesisAlloc is the genesis EVM table keyed by address.
type GenesisAlloc map[common.Address]GenesisAccount

// DefaultGenesisAlloc returns the table with the single funded DevAccount.
func DefaultGenesisAlloc() GenesisAlloc {
	return GenesisAlloc{
		DevAccount: {
			Balance: DevAccountBalance(),
			Code:    []byte{},
			Nonce:   0,
			Storage: map[common.Hash]common.Hash{},
		},
	}
}

// Copy returns a deep copy of the table.
func (ga GenesisAlloc) Copy() GenesisAlloc {
	if ga == nil {
		return nil
	}
	cp := make(GenesisAlloc, len(ga))
	for addr, acc := range ga {
		cp[addr] = acc.Copy()
	}
	return cp
}

// Addresses returns the addresses of the table in ascending byte order.
func (ga GenesisAlloc) Addresses() []common.Address {
	addrs := make([]common.Address, 0, len(ga))
	for addr := range ga {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	return addrs
}

// Validate checks every balance is present and non-negative.
func (ga GenesisAlloc) Validate() error {
	for _, addr := range ga.Addresses() {
		acc := ga[addr]
		if acc.Balance == nil {
			return fmt.Errorf("evm account %s: missing balance", addr.Hex())
		}
		if acc.Balance.Sign() < 0 {
			return fmt.Errorf("evm account %s: negative balance %s", addr.Hex(), acc.Balance)
		}
	}
	return nil
}

// ApplyGenesisAlloc writes the table into statedb and commits it.
//
// Process:
//  1. Sets balance, nonce, code and storage of every account
//  2. Commits the state to the database and computes the state root
//
// Returns the Merkle root of the resulting state.
func ApplyGenesisAlloc(statedb *state.StateDB, alloc GenesisAlloc) (common.Hash, error) {
	for _, addr := range alloc.Addresses() {
		acc := alloc[addr]
		if acc.Balance != nil {
			statedb.SetBalance(addr, acc.Balance)
		}
		statedb.SetNonce(addr, acc.Nonce)
		if len(acc.Code) != 0 {
			statedb.SetCode(addr, acc.Code)
		}
		for key, value := range acc.Storage {
			statedb.SetState(addr, key, value)
		}
	}
	return flush(statedb)
}

// flush commits the state and its trie to the backing database and returns
// the state root.
func flush(statedb *state.StateDB) (common.Hash, error) {
	root, err := statedb.Commit(true)
	if err != nil {
		return common.Hash{}, err
	}
	if err := statedb.Database().TrieDB().Commit(root, false, nil); err != nil {
		return common.Hash{}, err
	}
	return root, nil
}

// StateRoot computes the Merkle root of the table on a throwaway in-memory
// database. Nothing touches the disk.
func StateRoot(alloc GenesisAlloc) (common.Hash, error) {
	statedb, err := state.New(common.Hash{}, state.NewDatabase(rawdb.NewMemoryDatabase()), nil)
	if err != nil {
		return common.Hash{}, err
	}
	return ApplyGenesisAlloc(statedb, alloc)
}

// MustStateRoot is a convenience wrapper around StateRoot that halts on error.
// The database is in memory, so a failure means the process is broken.
func MustStateRoot(alloc GenesisAlloc) common.Hash {
	root, err := StateRoot(alloc)
	if err != nil {
		log.Crit("StateRoot", "err", err)
	}
	return root
}
