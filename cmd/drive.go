package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"pragyan-remote/internal/pkg/logging"
	"pragyan-remote/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	driveManualFlag string
	driveLinesFlag  bool
)

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Open the teleop console",
	Long: `Open the interactive teleop console. On a terminal this is a full-screen UI;
when stdin is not a terminal (or --lines is given) commands are read line by line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		interactive := !driveLinesFlag && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

		var quiet io.Writer
		if interactive {
			quiet = io.Discard
		}
		session, err := startSession(ctx, quiet)
		if err != nil {
			return err
		}
		defer session.Close()

		if err := applyManualFlag(session, driveManualFlag); err != nil {
			return err
		}
		session.StartWatch()

		opts := ui.Options{
			Context:   session.Context(),
			Resolver:  session.Resolver(),
			Sender:    session.Dispatcher(),
			Results:   session.Results(session.Context()),
			StreamURL: session.StreamURL,
		}

		logger := logging.WithComponent("drive")
		logger.WithField("interactive", interactive).Info("Starting teleop console")

		if interactive {
			err = ui.Run(opts)
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			return err
		}

		err = ui.RunConsole(session.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	driveCmd.Flags().StringVar(&driveManualFlag, "manual", "", "Start in manual mode with this robot IPv4 address")
	driveCmd.Flags().BoolVar(&driveLinesFlag, "lines", false, "Use the line console even on a terminal")
	rootCmd.AddCommand(driveCmd)
}
