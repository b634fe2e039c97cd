package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"photo_editor/internal/processor"
	"photo_editor/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <dir>",
	Short: "Report image dimensions and EXIF highlights without modifying files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := processor.Inspect(args[0])
		if err != nil {
			return err
		}

		if len(reports) == 0 {
			fmt.Fprintln(os.Stdout, inspectDimStyle.Render("No supported images found."))
			return nil
		}

		for i, rep := range reports {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "%s\n", inspectFileStyle.Render(rep.Name))

			if rep.Err != nil {
				fmt.Fprintf(os.Stdout, "  %s %s\n",
					inspectBulletStyle.Render("-"),
					inspectErrStyle.Render(rep.Err.Error()),
				)
				continue
			}

			fmt.Fprintf(os.Stdout, "  %s %s\n",
				inspectLabelStyle.Render("format:"),
				inspectValueStyle.Render(rep.Kind.String()),
			)
			fmt.Fprintf(os.Stdout, "  %s %s\n",
				inspectLabelStyle.Render("size:"),
				inspectValueStyle.Render(fmt.Sprintf("%dx%d", rep.Width, rep.Height)),
			)
			if rep.Camera != "" {
				fmt.Fprintf(os.Stdout, "  %s %s\n",
					inspectLabelStyle.Render("camera:"),
					inspectValueStyle.Render(rep.Camera),
				)
			}
			if rep.Taken != "" {
				fmt.Fprintf(os.Stdout, "  %s %s\n",
					inspectLabelStyle.Render("taken:"),
					inspectValueStyle.Render(rep.Taken),
				)
			}
			if rep.HasGPS {
				fmt.Fprintf(os.Stdout, "  %s %s\n",
					inspectLabelStyle.Render("gps:"),
					inspectWarnStyle.Render("location data present"),
				)
			}
		}

		return nil
	},
}

var (
	inspectFileStyle   = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	inspectLabelStyle  = lipgloss.NewStyle().Foreground(tui.ColorAccentAlt)
	inspectValueStyle  = lipgloss.NewStyle().Foreground(tui.ColorInk)
	inspectDimStyle    = lipgloss.NewStyle().Foreground(tui.ColorDim)
	inspectBulletStyle = lipgloss.NewStyle().Foreground(tui.ColorDim)
	inspectWarnStyle   = lipgloss.NewStyle().Foreground(tui.ColorWarn)
	inspectErrStyle    = lipgloss.NewStyle().Foreground(tui.ColorError)
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}
