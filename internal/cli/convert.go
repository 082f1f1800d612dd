package cli

import (
	"github.com/performancecopilot/cursorbuf/numeral"
	"github.com/spf13/cobra"
)

// Conversion is the result of the convert command
type Conversion struct {
	Value  string `json:"value" yaml:"value"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Result string `json:"result" yaml:"result"`
}

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE",
	Short: "Convert a number between binary, octal, decimal and hex",
	Example: `  cursorbuf convert 255 --to hex
  cursorbuf convert 1100001 --from binary --to octal`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := numeral.ParseSystem(convertFrom)
		if err != nil {
			return err
		}

		to, err := numeral.ParseSystem(convertTo)
		if err != nil {
			return err
		}

		result, err := numeral.Convert(args[0], from, to)
		if err != nil {
			return err
		}

		render(cmd, Conversion{
			Value:  args[0],
			From:   from.String(),
			To:     to.String(),
			Result: result,
		})
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "decimal", "system of VALUE: binary, octal, decimal, hex")
	convertCmd.Flags().StringVar(&convertTo, "to", "hex", "target system: binary, octal, decimal, hex")
	rootCmd.AddCommand(convertCmd)
}
