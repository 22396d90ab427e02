package launcher

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/uonenet-appchain/evmcore"
	"github.com/rony4d/uonenet-appchain/flags"
	"github.com/rony4d/uonenet-appchain/integration"
	"github.com/rony4d/uonenet-appchain/opera"
	"github.com/rony4d/uonenet-appchain/opera/genesis"
)

// NewApp builds the command line application.
func NewApp() *cli.App {
	app := flags.NewApp("UOneNet appchain chain spec builder")
	app.Flags = flags.CommonFlags()

	specFlags := append(flags.ChainFlags(), flags.OutputFlags()...)
	app.Commands = []cli.Command{
		{
			Name:      "build-spec",
			Usage:     "Build the chain spec of a network preset",
			ArgsUsage: " ",
			Flags:     specFlags,
			Action:    buildSpec,
		},
		{
			Name:   "inspect",
			Usage:  "Summarise the genesis of a network preset",
			Flags:  flags.ChainFlags(),
			Action: inspect,
		},
		{
			Name:   "list-presets",
			Usage:  "List the available network presets",
			Action: listPresets,
		},
	}
	return app
}

// Launch runs the application with the given arguments (args[0] is the
// program name).
func Launch(args []string) error {
	return NewApp().Run(args)
}

// prepare loads the configuration and sets up logging for a command.
func prepare(ctx *cli.Context) (Config, *logrus.Logger, error) {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return cfg, nil, err
	}
	logger, err := setupLogging(ctx.App.ErrWriter, cfg.Logging, cfg.Sentry)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return cfg, logger, nil
}

// makeChainSpec builds the configured preset and applies operator overrides.
func makeChainSpec(cfg Config, logger *logrus.Logger) (*integration.ChainSpec, error) {
	spec, err := integration.GetPresetByName(cfg.Chain.Preset, integration.NewFileRuntime(cfg.Chain.Runtime))
	if err != nil {
		logger.WithError(err).WithField("chain", cfg.Chain.Preset).Error("Failed to build chain spec")
		return nil, err
	}
	if len(cfg.Chain.Bootnodes) != 0 {
		spec.Bootnodes = append([]string{}, cfg.Chain.Bootnodes...)
	}
	if err := spec.Genesis.Validate(); err != nil {
		logger.WithError(err).WithField("chain", spec.ID).Error("Genesis is inconsistent")
		return nil, err
	}
	return spec, nil
}

func buildSpec(ctx *cli.Context) error {
	cfg, logger, err := prepare(ctx)
	if err != nil {
		return err
	}
	spec, err := makeChainSpec(cfg, logger)
	if err != nil {
		return err
	}

	var out []byte
	if cfg.Output.Pretty {
		out, err = json.MarshalIndent(spec, "", "  ")
	} else {
		out, err = json.Marshal(spec)
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if cfg.Output.Path == "" {
		_, err = ctx.App.Writer.Write(out)
		return err
	}
	if err := os.WriteFile(cfg.Output.Path, out, 0o644); err != nil {
		return fmt.Errorf("write chain spec: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"chain":   spec.ID,
		"output":  cfg.Output.Path,
		"genesis": spec.Genesis.Hash().String(),
	}).Info("Chain spec written")
	return nil
}

func inspect(ctx *cli.Context) error {
	cfg, logger, err := prepare(ctx)
	if err != nil {
		return err
	}
	spec, err := makeChainSpec(cfg, logger)
	if err != nil {
		return err
	}
	return writeSummary(ctx.App.Writer, spec)
}

func writeSummary(w io.Writer, spec *integration.ChainSpec) error {
	snap := spec.Genesis
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Name:\t%s\n", spec.Name)
	fmt.Fprintf(tw, "ID:\t%s\n", spec.ID)
	fmt.Fprintf(tw, "Chain type:\t%s\n", spec.ChainType)
	fmt.Fprintf(tw, "Protocol ID:\t%s\n", spec.ProtocolID)
	fmt.Fprintf(tw, "Runtime:\t%d bytes\n", len(snap.System.Code))
	fmt.Fprintf(tw, "Sudo:\t%s\n", snap.Sudo.Key)
	fmt.Fprintf(tw, "Ledger entries:\t%d\n", len(snap.Balances.Balances))
	fmt.Fprintf(tw, "Issuance:\t%s %s\n", new(big.Int).Div(snap.Balances.Total(), opera.UON), opera.TokenSymbol)
	fmt.Fprintf(tw, "Validators:\t%d\n", snap.Staking.ValidatorCount)
	fmt.Fprintf(tw, "EVM root:\t%s\n", evmcore.MustStateRoot(snap.EVM.Accounts).Hex())
	fmt.Fprintf(tw, "Genesis hash:\t%s\n", snap.Hash().String())

	vv := snap.ValidatorSet()
	for i, b := range snap.Session.Keys {
		id := genesis.ValidatorID(i)
		fmt.Fprintf(tw, "  #%d\t%s\tweight %d\n", id, b.Stash, vv.Get(id))
	}
	return tw.Flush()
}

func listPresets(ctx *cli.Context) error {
	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	for _, name := range integration.PresetNames() {
		if name == integration.DefaultPresetName {
			fmt.Fprintf(tw, "%s\t(default)\n", name)
			continue
		}
		fmt.Fprintf(tw, "%s\t\n", name)
	}
	return tw.Flush()
}
