package launcher

// Defaults bundles the baseline configuration values the launcher uses
// before config files and flags override them.
type Defaults struct {
	Chain   ChainDefaults
	Output  OutputDefaults
	Logging LoggingDefaults
	Sentry  SentryDefaults
}

// ChainDefaults selects the network whose chain spec is built.
type ChainDefaults struct {
	Preset    string   //	Preset name resolved by integration.GetPresetByName; "dev" is the single-node local network.
	Runtime   string   //	Path to the compiled runtime image. There is no default: every preset refuses to build without one.
	Bootnodes []string //	Multiaddrs written into the chain spec. Presets ship none; operators add their own here.
}

// OutputDefaults controls where the chain spec goes.
type OutputDefaults struct {
	Path   string //	File the chain spec is written to; empty means stdout so the output can be piped.
	Pretty bool   //	Indent the JSON. Off by default because chain specs embed a large hex runtime blob.
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs (helpful on terminals, best disabled when piping to files).
}

// SentryDefaults configures error reporting.
type SentryDefaults struct {
	DSN string //	Sentry project DSN; empty disables the hook.
}

// DefaultConfig returns a fully populated Defaults instance.
func DefaultConfig() Defaults {
	return Defaults{
		Chain: ChainDefaults{
			Preset:    "dev",
			Bootnodes: []string{},
		},
		Output: OutputDefaults{
			Pretty: false,
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}
