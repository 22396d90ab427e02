package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// ChainFlags select the network and the runtime its genesis is built with.
func ChainFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "chain",
			Usage: "Network preset (staging|development|local|local-multi|dev|local-single)",
			Value: "dev",
		},
		cli.StringFlag{
			Name:  "runtime",
			Usage: "Path to the compiled runtime image placed into genesis",
		},
		cli.StringFlag{
			Name:  "bootnodes",
			Usage: "Comma-separated multiaddrs written into the chain spec",
		},
	}
}
