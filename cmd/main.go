package main

import (
	"fmt"
	"os"

	"github.com/rony4d/uonenet-appchain/cmd/uonenet/launcher"
)

func main() {

	// Hand the full argument list to the launcher and report any failure
	if err := launcher.Launch(os.Args); err != nil {

		// Report the issue to stderr so the user sees it without polluting piped output
		fmt.Fprintln(os.Stderr, "Error:", err)

		// Exit with a non-zero status code to indicate failure
		os.Exit(1)
	}
}
