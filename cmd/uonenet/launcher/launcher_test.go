package launcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/uonenet-appchain/integration"
)

var testWasm = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func writeRuntime(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "runtime.wasm")
	require.NoError(t, os.WriteFile(path, testWasm, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = ioutil.Discard
	err := app.Run(append([]string{"uonenet"}, args...))
	return out.String(), err
}

func TestBuildSpecToFile(t *testing.T) {
	require := require.New(t)

	output := filepath.Join(t.TempDir(), "spec.json")
	_, err := run(t, "--log.verbosity", "0", "build-spec",
		"--chain", "local", "--runtime", writeRuntime(t), "--output", output,
		"--bootnodes", "/dns/boot/tcp/30333/p2p/x")
	require.NoError(err)

	data, err := os.ReadFile(output)
	require.NoError(err)

	var spec struct {
		ID        string   `json:"id"`
		Bootnodes []string `json:"bootNodes"`
		Genesis   struct {
			Runtime struct {
				System struct {
					Code string `json:"code"`
				} `json:"system"`
				Staking struct {
					ValidatorCount int `json:"validatorCount"`
				} `json:"staking"`
			} `json:"runtime"`
		} `json:"genesis"`
	}
	require.NoError(json.Unmarshal(data, &spec))
	require.Equal("uonenet_local_appchain", spec.ID)
	require.Equal([]string{"/dns/boot/tcp/30333/p2p/x"}, spec.Bootnodes)
	require.Equal("0x0061736d01000000", spec.Genesis.Runtime.System.Code)
	require.Equal(2, spec.Genesis.Runtime.Staking.ValidatorCount)
}

func TestBuildSpecToStdout(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "--log.verbosity", "0", "build-spec", "--runtime", writeRuntime(t), "--pretty")
	require.NoError(err)

	var spec map[string]interface{}
	require.NoError(json.Unmarshal([]byte(out), &spec))
	require.Equal("uonenet_local_development_appchain", spec["id"])
	require.Contains(out, "\n  \"")
}

func TestBuildSpecWithoutRuntime(t *testing.T) {
	require := require.New(t)

	for _, preset := range []string{"staging", "development", "local", "dev"} {
		out, err := run(t, "--log.verbosity", "0", "build-spec", "--chain", preset)
		require.True(errors.Is(err, integration.ErrMissingRuntimeImage), preset)
		require.Empty(out)
	}
}

func TestBuildSpecUnknownPreset(t *testing.T) {
	_, err := run(t, "--log.verbosity", "0", "build-spec", "--chain", "mainnet", "--runtime", writeRuntime(t))
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "--log.verbosity", "0", "inspect", "--chain", "staging", "--runtime", writeRuntime(t))
	require.NoError(err)
	require.Contains(out, "Unique One Staging AppChain")
	require.Contains(out, "Validators:")
	require.Contains(out, "Genesis hash:")
	require.Contains(out, "5FbjQgSg97nvPsfuf21D886B26mwtNvZTgEfGfWR6gdNy3Tx")
	require.Contains(out, "weight 100")
}

func TestListPresets(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "list-presets")
	require.NoError(err)
	for _, name := range integration.PresetNames() {
		require.Contains(out, name)
	}
	require.Contains(out, "(default)")
}
