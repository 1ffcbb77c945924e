package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qoipnm/pkg/pnm"
	"qoipnm/pkg/qoi"
)

var (
	force    bool
	compress bool
	output   string
)

var rootCmd = &cobra.Command{
	Use:          "qoipnm [flags] <file.qoi>",
	Short:        "Decode a QuiteOk image to a binary pixmap (P6)",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		img, err := qoi.Decode(bufio.NewReader(file))
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		var out io.Writer = cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		} else if !force && term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write a binary pixmap to a terminal, pass --force to override")
		}

		if compress {
			zw, err := zstd.NewWriter(out)
			if err != nil {
				return err
			}
			if err := pnm.Encode(zw, img); err != nil {
				zw.Close()
				return err
			}
			return zw.Close()
		}
		return pnm.Encode(out, img)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "write pixmap data even when stdout is a terminal")
	rootCmd.Flags().BoolVarP(&compress, "compress", "z", false, "zstd-compress the pixmap output")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
