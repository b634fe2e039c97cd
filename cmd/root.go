package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"photo_editor/internal/processor"
	"photo_editor/internal/tui"
)

var (
	flagInput      string
	flagOutput     string
	flagMaxSide    int
	flagWidth      int
	flagHeight     int
	flagCropCenter bool
	flagFormat     string
	flagQuality    int
)

var rootCmd = &cobra.Command{
	Use:   "photo_editor",
	Short: "photo_editor - batch resize, crop, and convert images",
	Long: `photo_editor walks an input directory (non-recursive), resizes and/or
crops every jpg/jpeg/png/webp image it finds, re-encodes to the target
format, and writes the results to the output directory.

If --output is omitted, results go to a sibling "<input>_processed"
directory; the input files are never modified.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions()
		if err != nil {
			return err
		}

		summary, err := runBatch(opts)
		if err != nil {
			return err
		}

		return finishBatch(summary, opts.OutputDir)
	},
}

// batchFailedError marks a run where the batch completed but at least
// one file failed. It maps to exit code 1; startup errors exit 2.
type batchFailedError struct {
	failed int
}

func (e *batchFailedError) Error() string {
	return fmt.Sprintf("%d file(s) failed", e.failed)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var batchErr *batchFailedError
		if errors.As(err, &batchErr) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(2)
	}
}

func buildOptions() (processor.Options, error) {
	opts := processor.Options{}

	info, err := os.Stat(flagInput)
	if err != nil {
		return opts, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return opts, fmt.Errorf("input path is not a directory: %s", flagInput)
	}

	format, err := processor.ParseFormat(flagFormat)
	if err != nil {
		return opts, err
	}
	if flagQuality < 1 || flagQuality > 100 {
		return opts, fmt.Errorf("--quality must be in 1-100, got %d", flagQuality)
	}
	if flagMaxSide < 0 || flagWidth < 0 || flagHeight < 0 {
		return opts, errors.New("sizing values must be positive")
	}
	if flagMaxSide > 0 && (flagWidth > 0 || flagHeight > 0) {
		return opts, errors.New("--max-side cannot be combined with --width or --height")
	}
	if flagCropCenter && (flagWidth == 0 || flagHeight == 0) {
		return opts, errors.New("--crop-center requires both --width and --height")
	}

	outputDir := flagOutput
	if outputDir == "" {
		outputDir = filepath.Clean(flagInput) + "_processed"
	}

	opts = processor.Options{
		InputDir:  flagInput,
		OutputDir: outputDir,
		Sizing: processor.SizingOptions{
			MaxSide:    flagMaxSide,
			Width:      flagWidth,
			Height:     flagHeight,
			CropCenter: flagCropCenter,
		},
		Output: processor.OutputOptions{
			Format:  format,
			Quality: flagQuality,
		},
	}
	return opts, nil
}

// runBatch drives the processor with the live progress view attached.
func runBatch(opts processor.Options) (processor.Summary, error) {
	updates := make(chan processor.ProgressUpdate, 64)
	model := tui.NewModel(updates)
	program := tea.NewProgram(model)

	uiDone := make(chan struct{})
	go func() {
		_, _ = program.Run()
		close(uiDone)
	}()

	summary, err := processor.Run(context.Background(), opts, updates)
	close(updates)
	<-uiDone
	return summary, err
}

// finishBatch prints failures and the summary table, then maps the
// outcome to the process exit code.
func finishBatch(summary processor.Summary, outputDir string) error {
	if summary.Found == 0 {
		fmt.Fprintln(os.Stdout, "No images found in input directory.")
	}

	for _, failure := range summary.Failures {
		fmt.Fprintf(os.Stdout, "%s %s %s\n",
			errorStyle.Render("x"),
			failPathStyle.Render(failure.Path),
			failReasonStyle.Render(failure.Reason),
		)
	}

	rows := []tui.SummaryRow{
		{Label: "Images found", Value: fmt.Sprintf("%d", summary.Found)},
		{Label: "Converted", Value: fmt.Sprintf("%d", summary.Converted)},
		{Label: "Failed", Value: fmt.Sprintf("%d", summary.Failed)},
		{Label: "Bytes written", Value: fmt.Sprintf("%d", summary.BytesWritten)},
	}
	fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

	if summary.Converted > 0 {
		outPath := outputDir
		if abs, absErr := filepath.Abs(outputDir); absErr == nil {
			outPath = abs
		}
		fmt.Fprintf(os.Stdout, "Results written to: %s\n", outPath)
	}

	if summary.Failed > 0 {
		return &batchFailedError{failed: summary.Failed}
	}
	return nil
}

var (
	errorStyle      = lipgloss.NewStyle().Foreground(tui.ColorError).Bold(true)
	failPathStyle   = lipgloss.NewStyle().Foreground(tui.ColorInk)
	failReasonStyle = lipgloss.NewStyle().Foreground(tui.ColorDim)
)

func init() {
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "input directory with images (required)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (default: <input>_processed)")
	rootCmd.Flags().IntVar(&flagMaxSide, "max-side", 0, "longest side in px, preserves aspect ratio")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "target width in px")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "target height in px")
	rootCmd.Flags().BoolVar(&flagCropCenter, "crop-center", false, "center-crop to the target aspect ratio before scaling")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "output format: jpeg, png, or webp (required)")
	rootCmd.Flags().IntVarP(&flagQuality, "quality", "q", processor.DefaultQuality, "encoder quality 1-100 (ignored for png)")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("format")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
