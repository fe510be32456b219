package cmd

import (
	"net"
	"strings"

	"pragyan-remote/internal/adapter/endpoint"
	"pragyan-remote/internal/app"
	"pragyan-remote/internal/port"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show what each host address source reports",
	Long: `Query every host address source in resolution order and show the addresses it
returned, the first usable IPv4 address, and which source automatic resolution would use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		rows, winner := probeSources(app.DefaultSources(cfg), uint8(cfg.Endpoint.LastOctet))

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"#", "Source", "Addresses", "Usable IPv4", "Robot", "Error"})
		for _, row := range rows {
			t.AppendRow(row)
		}
		if winner == "" {
			t.AppendFooter(table.Row{"", "", "", "", "", "fallback " + cfg.Endpoint.DefaultAddress})
		} else {
			t.AppendFooter(table.Row{"", "", "", "", "", "using " + winner})
		}
		t.Render()
		return nil
	},
}

// probeSources queries each source and returns one table row per source plus the name of
// the first source with a usable address.
func probeSources(sources []port.AddressSource, lastOctet uint8) ([]table.Row, string) {
	var rows []table.Row
	winner := ""
	for i, source := range sources {
		ips, err := source.Addresses()

		usable, robot, errText := "-", "-", ""
		if addr, ok := endpoint.FirstUsableIPv4(ips); ok {
			usable = addr.String()
			robot = addr.WithLastOctet(lastOctet).String()
			if winner == "" {
				winner = source.Name()
			}
		}
		if err != nil {
			errText = err.Error()
		}
		rows = append(rows, table.Row{i + 1, source.Name(), joinIPs(ips), usable, robot, errText})
	}
	return rows, winner
}

func joinIPs(ips []net.IP) string {
	if len(ips) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ips))
	for _, ip := range ips {
		parts = append(parts, ip.String())
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
