// Command tcctl previews TeamCity webhook cards and triggers builds from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tcctl",
	Short: "Operator tool for the TeamCity notifier",
	Long: `tcctl renders TeamCity webhook payloads the way the notifier posts them
to Discord, and triggers configured builds without going through Discord.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newTriggerCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
