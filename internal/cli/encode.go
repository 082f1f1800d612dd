package cli

import (
	"github.com/performancecopilot/cursorbuf"
	"github.com/performancecopilot/cursorbuf/internal/cli/output"
	"github.com/performancecopilot/cursorbuf/numeral"
	"github.com/spf13/cobra"
)

// Rendering is the result of the encode command
type Rendering struct {
	File   string `json:"file" yaml:"file"`
	System string `json:"system" yaml:"system"`
	Length int    `json:"length" yaml:"length"`
	Text   string `json:"text" yaml:"text"`
}

var encodeSystem string

var encodeCmd = &cobra.Command{
	Use:   "encode FILE",
	Short: "Render the content of a file in a numeral system or text encoding",
	Long: `Render the content of a file as binary, octal, decimal or hex digits,
every byte taking a fixed number of digits, or decode it with a text
encoding (utf-8, ascii, latin1, base64).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b := cursorbuf.New()
		if err := b.OpenFile(args[0], "r"); err != nil {
			return err
		}
		defer b.CloseFile()

		if err := b.FromFileSync(); err != nil {
			return err
		}

		r := Rendering{File: args[0], Length: b.Len()}

		if s, err := numeral.ParseSystem(encodeSystem); err == nil {
			r.System = s.String()
			r.Text = numeral.Encode(b.Bytes(), s)
		} else {
			e, err := cursorbuf.ParseEncoding(encodeSystem)
			if err != nil {
				return err
			}
			r.System = e.String()
			r.Text = b.ToString(e)
		}

		if output.IsTable(formatter) {
			render(cmd, r.Text)
			return nil
		}

		render(cmd, r)
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeSystem, "system", "hex", "binary, octal, decimal, hex or a text encoding")
	rootCmd.AddCommand(encodeCmd)
}
