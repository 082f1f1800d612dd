package cli

import (
	"fmt"

	"github.com/performancecopilot/cursorbuf"
	"github.com/spf13/cobra"
)

var (
	writeSize     int
	writeEncoding string
	writeAppend   bool
)

var writeCmd = &cobra.Command{
	Use:   "write FILE TEXT",
	Short: "Write encoded text to a file through a fixed size buffer",
	Long: `Allocate a buffer of --size bytes (the encoded length of TEXT by
default), append TEXT with --encoding and write the whole buffer to FILE.
The file is replaced unless --append is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, text := args[0], args[1]

		e := cursorbuf.DefaultEncoding()
		if writeEncoding != "" {
			var err error
			if e, err = cursorbuf.ParseEncoding(writeEncoding); err != nil {
				return err
			}
		}

		b := cursorbuf.New(cursorbuf.WithEncoding(e))

		size := writeSize
		if size == 0 {
			size = b.EncodedLen(text)
		}

		if err := b.Alloc(size, 0); err != nil {
			return err
		}

		if _, err := b.Append(text); err != nil {
			return err
		}

		if writeAppend {
			if err := b.OpenFile(path, "a"); err != nil {
				return err
			}
			defer b.CloseFile()

			if err := b.AppendToFileSync(); err != nil {
				return err
			}
		} else if err := b.CopyToFileSync(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", b.Len(), path)
		return nil
	},
}

func init() {
	writeCmd.Flags().IntVar(&writeSize, "size", 0, "buffer size in bytes (default is the encoded length of TEXT)")
	writeCmd.Flags().StringVar(&writeEncoding, "encoding", "", "encoding of TEXT: utf-8, ascii, latin1, hex, base64")
	writeCmd.Flags().BoolVar(&writeAppend, "append", false, "append to FILE instead of replacing it")
	rootCmd.AddCommand(writeCmd)
}
