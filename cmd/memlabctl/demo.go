package main

import (
	"errors"
	"time"

	"github.com/memlab/memlab/internal/procmem"
	"github.com/memlab/memlab/native"
	"github.com/spf13/cobra"
)

var (
	demoBlocks int
	demoSizeMB int
	demoHold   time.Duration
	demoCycles int
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoBlocks, "blocks", 4, "Number of native blocks to allocate")
	cmd.Flags().IntVar(&demoSizeMB, "size-mb", 16, "Size of each block in MiB")
	cmd.Flags().DurationVar(&demoHold, "hold", 2*time.Second, "How long to hold the blocks before releasing")
	cmd.Flags().IntVar(&demoCycles, "cycles", 1, "Number of allocate/release cycles")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run allocate/hold/release cycles and show the OS view",
		Long: `The demo command allocates native blocks, holds them while an external
observer (top, /proc, Activity Monitor) can see the resident set grow, then
releases everything and reports the deltas.

Example:
  memlabctl demo --blocks 8 --size-mb 32 --hold 10s
  memlabctl demo --cycles 3 -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	for cycle := 1; cycle <= demoCycles; cycle++ {
		if demoCycles > 1 {
			printInfo("--- cycle %d/%d ---\n", cycle, demoCycles)
		}

		before, err := procmem.Read()
		if err != nil && !errors.Is(err, procmem.ErrUnsupported) {
			return err
		}

		total := native.Allocate(demoBlocks, demoSizeMB)
		printInfo("allocated %d blocks of %d MiB, registry holds %s\n",
			demoBlocks, demoSizeMB, procmem.FormatBytes(total))
		printVerbose("%s\n", native.Stats())

		after, err := procmem.Read()
		if err == nil && before.RSSBytes > 0 {
			printInfo("resident set: %s -> %s (+%s)\n",
				procmem.FormatBytes(before.RSSBytes),
				procmem.FormatBytes(after.RSSBytes),
				procmem.FormatBytes(after.RSSBytes-before.RSSBytes))
		}

		if demoHold > 0 {
			printInfo("holding for %s...\n", demoHold)
			time.Sleep(demoHold)
		}

		freed := native.ReleaseAll()
		printInfo("released %s\n", procmem.FormatBytes(freed))

		if final, err := procmem.Read(); err == nil && final.RSSBytes > 0 {
			printInfo("resident set after release: %s\n",
				procmem.FormatBytes(final.RSSBytes))
		}
	}
	return nil
}
