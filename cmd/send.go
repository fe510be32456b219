package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"pragyan-remote/internal/types"

	"github.com/spf13/cobra"
)

var sendManualFlag string

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a single command to the robot",
}

// newSendSubcommand builds a send subcommand that turns its argument into a command.
func newSendSubcommand(use, short string, build func(arg string) types.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			session, err := startSession(ctx, nil)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := applyManualFlag(session, sendManualFlag); err != nil {
				return err
			}

			command := build(args[0])
			dispatcher := session.Dispatcher()
			dispatcher.Send(command)
			dispatcher.Wait()

			// Delivery failures are logged, not returned; report the outcome for scripting
			if result, ok := dispatcher.LastResult(); ok {
				if result.Failed() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: not delivered (%v)\n", command, result.Endpoint, result.Err)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: delivered\n", command, result.Endpoint)
				}
			}
			return nil
		},
	}
}

func init() {
	sendCmd.PersistentFlags().StringVar(&sendManualFlag, "manual", "", "Send to this robot IPv4 address instead of the derived one")

	sendCmd.AddCommand(
		newSendSubcommand("instant DIRECTION", "Send an instant movement command (F, B, L, R, stop_feature)", types.MovementCommand),
		newSendSubcommand("control COMMAND", "Send a feature-typed command string (F, B, L, R, S)", types.ControlCommand),
		newSendSubcommand("feature NAME", "Start a feature (maya, object_detection, line_following, attend)", types.FeatureCommand),
	)
	rootCmd.AddCommand(sendCmd)
}
