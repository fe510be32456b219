package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resolveManualFlag string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the robot endpoint that commands would be sent to",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := startSession(context.Background(), nil)
		if err != nil {
			return err
		}
		defer session.Close()

		if err := applyManualFlag(session, resolveManualFlag); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), session.Resolver().ResolveCurrent().BaseURL)
		return nil
	},
}

var streamURLCmd = &cobra.Command{
	Use:   "stream-url",
	Short: "Print the robot's video stream URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := startSession(context.Background(), nil)
		if err != nil {
			return err
		}
		defer session.Close()

		if err := applyManualFlag(session, resolveManualFlag); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), session.StreamURL())
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveManualFlag, "manual", "", "Resolve as if this manual robot IPv4 address were set")
	streamURLCmd.Flags().StringVar(&resolveManualFlag, "manual", "", "Resolve as if this manual robot IPv4 address were set")
	rootCmd.AddCommand(resolveCmd, streamURLCmd)
}
