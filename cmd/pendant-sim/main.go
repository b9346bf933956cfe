// Command pendant-sim runs the pendant core on a host machine:
// simulated camera and microphone, websocket transport, wall-clock
// scheduler passes. Point a websocket client at /stream and watch the
// chunked frames arrive.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "pendant-sim",
		Short:         "Host-side simulator for the pendant capture core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newConfigCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
