package main

import (
	"github.com/memlab/memlab/internal/procmem"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRSSCmd())
}

func newRSSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rss",
		Short: "Print the OS view of this process's memory",
		Long: `The rss command prints the current and peak resident set size of the
memlabctl process itself. It is mainly useful as a baseline before running
the demo command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := procmem.Read()
			if err != nil {
				return err
			}
			if snap.RSSBytes > 0 {
				printInfo("rss:     %s\n", procmem.FormatBytes(snap.RSSBytes))
			}
			if snap.MaxRSSBytes > 0 {
				printInfo("max rss: %s\n", procmem.FormatBytes(snap.MaxRSSBytes))
			}
			return nil
		},
	}
}
