package main

import (
	"fmt"
	"os"

	"github.com/example/bernoulli/internal/chart"
	"github.com/example/bernoulli/internal/lesson"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	chartSpeed  int
	chartOut    string
	chartWidth  int
	chartHeight int
)

// chartCmd writes the explorer chart for one speed
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write the pressure chart for a fluid speed as PNG",
	Example: `  bernoulli chart --speed 7 --out speed7.png`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().IntVar(&chartSpeed, "speed", lesson.DefaultSpeed, "Fluid speed (0-10)")
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "bernoulli.png", "Output PNG file")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "Image width (default CHART_WIDTH)")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "Image height (default CHART_HEIGHT)")
}

func runChart(cmd *cobra.Command, args []string) error {
	speed := lesson.ClampSpeed(chartSpeed)
	if speed != chartSpeed {
		logger.Warn("speed clamped to slider range", zap.Int("requested", chartSpeed), zap.Int("speed", speed))
	}

	width, height := cfg.ChartWidth, cfg.ChartHeight
	if chartWidth > 0 {
		width = chartWidth
	}
	if chartHeight > 0 {
		height = chartHeight
	}

	f, err := os.Create(chartOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", chartOut, err)
	}
	defer f.Close()

	spec := lesson.RenderChart(speed)
	if err := chart.NewRenderer(width, height).WritePNG(f, spec); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", chartOut, err)
	}

	summary := lesson.SpeedSummary{Speed: speed, Pressure: lesson.Pressure(float64(speed))}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s (%dx%d)\n", chartOut, width, height)
	fmt.Fprintf(out, "v = %d m/s, P = %.2f (relative units)\n", summary.Speed, summary.Pressure)
	return nil
}
