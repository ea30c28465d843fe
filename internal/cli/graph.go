package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/linguist/pkg/errors"
	"github.com/matzehuels/linguist/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// graphCommand renders the language group hierarchy.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
		lr       bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the language group hierarchy",
		Long: `Render languages and the groups they belong to (TSX in TypeScript,
Unix Assembly in Assembly, ...) as Graphviz DOT, SVG or PNG.`,
		Example: `  linguist graph > groups.dot
  linguist graph --format svg --output groups.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := c.index(cmd.Context())
			if err != nil {
				return err
			}

			dot, err := nodelink.ToDOT(idx, nodelink.Options{Detailed: detailed, LeftToRight: lr})
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				data, err = nodelink.RenderSVG(dot)
			case formatPNG:
				if output == "" {
					return errs.New(errs.ErrCodeInvalidInput, "png output needs --output")
				}
				data, err = nodelink.RenderPNG(dot)
			default:
				return errs.New(errs.ErrCodeInvalidFormat, "unknown format %q (want dot, svg or png)", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := errs.ValidateFilePath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidPath, err, "write %s", output)
			}
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, fmt.Sprintf("output format (%s, %s, %s)", formatDOT, formatSVG, formatPNG))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with type and id")
	cmd.Flags().BoolVar(&lr, "lr", false, "lay out left to right")
	return cmd
}
