package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"photo_editor/internal/processor"
)

// A preset is a pinned batch configuration meant to be run from inside
// a photo folder: input and output are both the current working
// directory, and no flags are accepted.
type preset struct {
	Name   string
	Desc   string
	Sizing processor.SizingOptions
	Output processor.OutputOptions
}

var presetTable = []preset{
	{
		Name:   "370x370",
		Desc:   "370x370 center-cropped WebP, quality 100",
		Sizing: processor.SizingOptions{Width: 370, Height: 370, CropCenter: true},
		Output: processor.OutputOptions{Format: processor.FormatWebP, Quality: 100},
	},
	{
		Name:   "1920x398",
		Desc:   "1920x398 center-cropped WebP banner, quality 100",
		Sizing: processor.SizingOptions{Width: 1920, Height: 398, CropCenter: true},
		Output: processor.OutputOptions{Format: processor.FormatWebP, Quality: 100},
	},
	{
		Name:   "web-1200",
		Desc:   "longest side 1200px, WebP quality 80",
		Sizing: processor.SizingOptions{MaxSide: 1200},
		Output: processor.OutputOptions{Format: processor.FormatWebP, Quality: 80},
	},
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Run a pinned conversion in the current directory",
	Long: `Presets run the batch with input and output pinned to the current
working directory. Run without a name to list the available presets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range presetTable {
			fmt.Fprintf(os.Stdout, "  %-12s %s\n", p.Name, p.Desc)
		}
		return nil
	},
}

func runPreset(p preset) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	opts := processor.Options{
		InputDir:  cwd,
		OutputDir: cwd,
		Sizing:    p.Sizing,
		Output:    p.Output,
	}

	summary, err := runBatch(opts)
	if err != nil {
		return err
	}
	return finishBatch(summary, opts.OutputDir)
}

func init() {
	for _, p := range presetTable {
		p := p
		presetCmd.AddCommand(&cobra.Command{
			Use:   p.Name,
			Short: p.Desc,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPreset(p)
			},
		})
	}

	rootCmd.AddCommand(presetCmd)
}
