package integration

import (
	"encoding/json"

	"github.com/rony4d/uonenet-appchain/opera"
	"github.com/rony4d/uonenet-appchain/opera/genesis"
)

// ChainSpec is the network specification handed to the node: network
// metadata wrapped around the genesis snapshot. The node owns persisting it.
type ChainSpec struct {
	Name               string
	ID                 string
	ChainType          opera.ChainType
	Bootnodes          []string
	TelemetryEndpoints []opera.TelemetryEndpoint
	ProtocolID         string
	Properties         opera.Properties
	// Extensions carries client-specific data; none of the presets set it.
	Extensions map[string]interface{}
	Genesis    *genesis.Snapshot
}

func newChainSpec(rules opera.Rules, snap *genesis.Snapshot) *ChainSpec {
	rules = rules.Copy()
	return &ChainSpec{
		Name:               rules.Name,
		ID:                 rules.NetworkID,
		ChainType:          rules.ChainType,
		Bootnodes:          rules.Bootnodes,
		TelemetryEndpoints: rules.TelemetryEndpoints,
		ProtocolID:         rules.ProtocolID,
		Properties:         opera.DefaultProperties(),
		Genesis:            snap,
	}
}

// MarshalJSON emits the chain spec file layout the node reads. Extensions
// are flattened into the top-level object.
func (cs *ChainSpec) MarshalJSON() ([]byte, error) {
	var telemetry interface{}
	if cs.TelemetryEndpoints != nil {
		pairs := make([][2]interface{}, 0, len(cs.TelemetryEndpoints))
		for _, e := range cs.TelemetryEndpoints {
			pairs = append(pairs, [2]interface{}{e.URL, e.Verbosity})
		}
		telemetry = pairs
	}
	bootnodes := cs.Bootnodes
	if bootnodes == nil {
		bootnodes = []string{}
	}

	out := map[string]interface{}{
		"name":               cs.Name,
		"id":                 cs.ID,
		"chainType":          cs.ChainType,
		"bootNodes":          bootnodes,
		"telemetryEndpoints": telemetry,
		"protocolId":         cs.ProtocolID,
		"properties":         cs.Properties,
		"consensusEngine":    nil,
		"codeSubstitutes":    map[string]string{},
		"genesis": map[string]interface{}{
			"runtime": cs.Genesis,
		},
	}
	for k, v := range cs.Extensions {
		if _, taken := out[k]; !taken {
			out[k] = v
		}
	}
	return json.Marshal(out)
}
