// Package opera defines the network rules of the UOneNet appchain family.
//
// This package provides:
//   - Network tier identifiers (staging, development, local, local development)
//   - Chain type and display properties handed to the node
//   - Currency units and the fixed genesis amounts
//   - Consensus constants baked into genesis (BABE epoch config, slash reward)
//
// Rules is the central structure describing one network deployment; the chain
// spec presets start from one of the named Rules constructors below.

package opera

import (
	"encoding/json"
)

// Network identifiers. Each doubles as the appchain id registered with the
// Octopus relay and as the machine id of the chain spec.
const (
	StagingNetworkID          = "uonenet_staging_appchain"
	DevelopmentNetworkID      = "uonenet_development_appchain"
	LocalNetworkID            = "uonenet_local_appchain"
	LocalDevelopmentNetworkID = "uonenet_local_development_appchain"

	// TokenSymbol is the ticker of the native currency.
	TokenSymbol = "UON"
	// TokenDecimals is the number of decimals of the native currency.
	TokenDecimals = 18
	// SS58Format is the address prefix used when displaying accounts.
	SS58Format = 42
)

// ChainType tells the node how to treat the network.
type ChainType string

const (
	// Live networks are long-lived public deployments.
	Live ChainType = "Live"
	// Local networks run several nodes on one machine.
	Local ChainType = "Local"
	// Development networks run a single node.
	Development ChainType = "Development"
)

// Properties is the display-properties map of a chain spec. The node passes it
// to wallets and explorers without interpreting it.
type Properties map[string]interface{}

// NewProperties builds the display properties map.
func NewProperties(symbol string, decimals uint32, ss58Format uint32) Properties {
	return Properties{
		"tokenSymbol":   symbol,
		"tokenDecimals": decimals,
		"ss58Format":    ss58Format,
	}
}

// DefaultProperties returns the UON display properties shared by every network.
func DefaultProperties() Properties {
	return NewProperties(TokenSymbol, TokenDecimals, SS58Format)
}

// Rules describes one network deployment.
type Rules struct {
	// Name is the human-readable network name.
	Name string
	// NetworkID is the machine identifier, also used as appchain id.
	NetworkID string
	// ProtocolID separates the network's p2p protocol from other networks.
	ProtocolID string
	// ChainType tells the node how to treat the network.
	ChainType ChainType
	// Bootnodes are the multiaddrs dialled at start-up.
	Bootnodes []string
	// TelemetryEndpoints are (url, verbosity) pairs; nil means no telemetry.
	TelemetryEndpoints []TelemetryEndpoint
}

// TelemetryEndpoint is a telemetry server URL and the verbosity sent to it.
type TelemetryEndpoint struct {
	URL       string
	Verbosity uint8
}

// StagingRules returns the rules of the public staging network.
func StagingRules() Rules {
	return Rules{
		Name:       "Unique One Staging AppChain",
		NetworkID:  StagingNetworkID,
		ProtocolID: "uonenet-staging-appchain",
		ChainType:  Live,
		Bootnodes:  []string{},
	}
}

// DevelopmentRules returns the rules of the public development network.
func DevelopmentRules() Rules {
	return Rules{
		Name:       "Unique One Development AppChain",
		NetworkID:  DevelopmentNetworkID,
		ProtocolID: "uonenet-development-appchain",
		ChainType:  Live,
		Bootnodes:  []string{},
	}
}

// LocalRules returns the rules of a multi-node local network.
func LocalRules() Rules {
	return Rules{
		Name:       "Unique One Local AppChain",
		NetworkID:  LocalNetworkID,
		ProtocolID: "uonenet-local-appchain",
		ChainType:  Local,
		Bootnodes:  []string{},
	}
}

// LocalDevelopmentRules returns the rules of a single-node development network.
func LocalDevelopmentRules() Rules {
	return Rules{
		Name:       "Unique One Local Development AppChain",
		NetworkID:  LocalDevelopmentNetworkID,
		ProtocolID: "uonenet-local-development-appchain",
		ChainType:  Development,
		Bootnodes:  []string{},
	}
}

// Copy creates a deep copy of Rules.
func (r Rules) Copy() Rules {
	cp := r
	if r.Bootnodes != nil {
		cp.Bootnodes = append([]string{}, r.Bootnodes...)
	}
	if r.TelemetryEndpoints != nil {
		cp.TelemetryEndpoints = append([]TelemetryEndpoint{}, r.TelemetryEndpoints...)
	}
	return cp
}

// String returns a JSON representation of Rules for debugging and logging.
func (r Rules) String() string {
	b, _ := json.Marshal(&r)
	return string(b)
}
