package cmd

import (
	"pragyan-remote/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "pragyan-remote",
	Short: "pragyan-remote drives the Pragyan robot over its HTTP command API",
	Long: `pragyan-remote finds the robot on the local network by taking this host's IPv4
address and swapping in the robot's fixed last octet, or uses a manually supplied
address, and sends movement and feature commands to it.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnFinalize(logging.Close)
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML, optional)")
}
