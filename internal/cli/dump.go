package cli

import (
	"fmt"

	"github.com/performancecopilot/cursorbuf/bufdump"
	"github.com/performancecopilot/cursorbuf/internal/cli/output"
	"github.com/spf13/cobra"
)

// DumpSummary is the table form of a report header
type DumpSummary struct {
	File     string
	Length   int
	Checksum string
	Bytes    string
}

func summarize(r *bufdump.Report) DumpSummary {
	s := DumpSummary{
		File:     r.Path,
		Length:   r.Length,
		Checksum: fmt.Sprintf("0x%016x", r.Checksum),
		Bytes:    "-",
	}

	if st := r.Stats; st != nil {
		s.Bytes = fmt.Sprintf("min=%d max=%d mean=%.2f p50=%d p99=%d", st.Min, st.Max, st.Mean, st.P50, st.P99)
	}

	return s
}

var dumpWidth int

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Show length, checksum, byte statistics and a hex dump of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := bufdump.DumpFile(args[0], dumpWidth)
		if err != nil {
			return err
		}

		if output.IsTable(formatter) {
			render(cmd, summarize(r))
			fmt.Fprintln(cmd.OutOrStdout())
			render(cmd, r.Rows)
			return nil
		}

		render(cmd, r)
		return nil
	},
}

func init() {
	dumpCmd.Flags().IntVar(&dumpWidth, "width", bufdump.DefaultWidth, "number of bytes per row")
	rootCmd.AddCommand(dumpCmd)
}
