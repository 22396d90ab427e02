package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// OutputFlags control where and how the chain spec is written.
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "output",
			Usage: "File the chain spec is written to (stdout when empty)",
		},
		cli.BoolFlag{
			Name:  "pretty",
			Usage: "Indent the JSON output",
		},
	}
}
