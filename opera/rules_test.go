package opera

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNetworkRules verifies the identifiers of every network tier.
// The network id doubles as appchain id, so a typo here registers the
// chain under the wrong name on the relay.
func TestNetworkRules(t *testing.T) {
	tests := []struct {
		rules      Rules
		name       string
		id         string
		protocolID string
		chainType  ChainType
	}{
		{StagingRules(), "Unique One Staging AppChain", "uonenet_staging_appchain", "uonenet-staging-appchain", Live},
		{DevelopmentRules(), "Unique One Development AppChain", "uonenet_development_appchain", "uonenet-development-appchain", Live},
		{LocalRules(), "Unique One Local AppChain", "uonenet_local_appchain", "uonenet-local-appchain", Local},
		{LocalDevelopmentRules(), "Unique One Local Development AppChain", "uonenet_local_development_appchain", "uonenet-local-development-appchain", Development},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if tt.rules.Name != tt.name {
				t.Errorf("Name = %q, want %q", tt.rules.Name, tt.name)
			}
			if tt.rules.NetworkID != tt.id {
				t.Errorf("NetworkID = %q, want %q", tt.rules.NetworkID, tt.id)
			}
			if tt.rules.ProtocolID != tt.protocolID {
				t.Errorf("ProtocolID = %q, want %q", tt.rules.ProtocolID, tt.protocolID)
			}
			if tt.rules.ChainType != tt.chainType {
				t.Errorf("ChainType = %q, want %q", tt.rules.ChainType, tt.chainType)
			}
			if tt.rules.Bootnodes == nil || len(tt.rules.Bootnodes) != 0 {
				t.Errorf("Bootnodes = %v, want empty", tt.rules.Bootnodes)
			}
			if tt.rules.TelemetryEndpoints != nil {
				t.Errorf("TelemetryEndpoints = %v, want none", tt.rules.TelemetryEndpoints)
			}
		})
	}
}

// TestRulesCopy verifies that Copy does not share slices with the original.
func TestRulesCopy(t *testing.T) {
	orig := StagingRules()
	orig.Bootnodes = []string{"/dns/boot/tcp/30333"}
	orig.TelemetryEndpoints = []TelemetryEndpoint{{URL: "wss://telemetry", Verbosity: 0}}

	cp := orig.Copy()
	cp.Bootnodes[0] = "changed"
	cp.TelemetryEndpoints[0].Verbosity = 9

	if orig.Bootnodes[0] != "/dns/boot/tcp/30333" {
		t.Error("Copy shares Bootnodes with the original")
	}
	if orig.TelemetryEndpoints[0].Verbosity != 0 {
		t.Error("Copy shares TelemetryEndpoints with the original")
	}
}

// TestRulesString verifies that String produces parseable JSON.
func TestRulesString(t *testing.T) {
	var decoded Rules
	if err := json.Unmarshal([]byte(LocalRules().String()), &decoded); err != nil {
		t.Fatalf("String() is not valid JSON: %v", err)
	}
	if decoded.NetworkID != LocalNetworkID {
		t.Errorf("decoded NetworkID = %q", decoded.NetworkID)
	}
}

func TestDefaultProperties(t *testing.T) {
	require := require.New(t)

	props := DefaultProperties()
	require.Len(props, 3)

	b, err := json.Marshal(props)
	require.NoError(err)
	require.JSONEq(`{"tokenSymbol":"UON","tokenDecimals":18,"ss58Format":42}`, string(b))
}

func TestCurrency(t *testing.T) {
	require := require.New(t)

	one, _ := new(big.Int).SetString("1000000000000000000", 10)
	require.Equal(0, UON.Cmp(one))

	endowment, _ := new(big.Int).SetString("1000000000000000000000000", 10)
	require.Equal(0, Endowment().Cmp(endowment))

	stash, _ := new(big.Int).SetString("100000000000000000000", 10)
	require.Equal(0, Stash().Cmp(stash))

	require.Equal("10000000000000000", OctopusStash().String())

	// constructors hand out fresh values
	Stash().SetInt64(0)
	require.Equal(0, Stash().Cmp(stash))
}

func TestPerbill(t *testing.T) {
	require := require.New(t)

	require.Equal(Perbill(100_000_000), DefaultSlashRewardFraction())
	require.Equal(PerbillOne, PerbillFromPercent(100))
	require.Equal(PerbillOne, PerbillFromPercent(250))
	require.True(PerbillOne.Valid())
	require.False((PerbillOne + 1).Valid())
	require.Equal("10.0000000%", DefaultSlashRewardFraction().String())
}

func TestBabeEpochConfig(t *testing.T) {
	require := require.New(t)

	cfg := DefaultBabeEpochConfig()
	require.Equal([2]uint64{1, 4}, cfg.C)
	require.Equal(PrimaryAndSecondaryPlainSlots, cfg.AllowedSlots)
	require.Equal("PrimaryAndSecondaryPlainSlots", cfg.AllowedSlots.String())
	require.Equal("AllowedSlots(7)", AllowedSlots(7).String())
}
