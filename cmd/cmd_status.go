package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mmadalone/rick-assistant/config"
	"github.com/mmadalone/rick-assistant/format"
	"github.com/mmadalone/rick-assistant/personality"
	"github.com/mmadalone/rick-assistant/sysinfo"
)

func newStatusCmd() *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show system metrics",
		Args:  cobra.ExactArgs(0),
		RunE:  StatusHandler,
	}
	statusCmd.Flags().Bool("verbose", false, "Show the full metrics table")
	return statusCmd
}

// StatusHandler prints the one-line summary, or the full table with
// --verbose.
func StatusHandler(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()
	snap := sysinfo.Sample(ctx)

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	if !verbose {
		fmt.Println(sysinfo.StatusLine(snap))
		return nil
	}

	fmt.Println(personality.New(&config.Config{}).Line(personality.Status))
	fmt.Println()
	writeStatusTable(os.Stdout, snap)
	return nil
}

// writeStatusTable renders the verbose metrics view. The menu's
// status screen shares it.
func writeStatusTable(w io.Writer, snap sysinfo.Snapshot) {
	cpu, mem, disk, load, up := "--", "--", "--", "--", "--"
	if snap.CPUValid {
		cpu = format.Percent(snap.CPUPercent)
	}
	if snap.MemValid {
		mem = fmt.Sprintf("%s of %s", format.Percent(snap.MemPercent), format.HumanBytes(snap.MemTotal))
	}
	if snap.DiskValid {
		disk = fmt.Sprintf("%s used, %s free", format.Percent(snap.DiskPercent), format.HumanBytes(snap.DiskFree))
	}
	if snap.LoadValid {
		load = fmt.Sprintf("%.2f", snap.Load1)
	}
	if snap.UptimeValid {
		up = format.HumanDuration(snap.Uptime)
	}

	data := [][]string{
		{"CPU", cpu},
		{"MEMORY", mem},
		{"DISK", disk},
		{"LOAD 1M", load},
		{"UPTIME", up},
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"METRIC", "VALUE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
