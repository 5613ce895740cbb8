package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/edgefinder/internal/chart"
	"github.com/abhisek/edgefinder/internal/config"
	"github.com/abhisek/edgefinder/internal/logging"
	"github.com/abhisek/edgefinder/internal/pattern"
)

var exportCmd = &cobra.Command{
	Use:   "export <setup-id>",
	Short: "Write a setup's animated pattern diagram as SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logging.ForCLI(cfg.LogLevel)
		c, err := loadCatalog(cfg, log)
		if err != nil {
			return err
		}
		setup, ok := c.Setup(args[0])
		if !ok {
			return fmt.Errorf("unknown setup %q", args[0])
		}
		if !pattern.Known(setup.Pattern) {
			log.Warn("unknown pattern, using default diagram", "setup", setup.ID, "pattern", setup.Pattern)
		}
		scene := chart.BuildScene(pattern.Resolve(setup.Pattern))

		outPath, _ := cmd.Flags().GetString("output")
		var w io.Writer = cmd.OutOrStdout()
		if outPath != "" && outPath != "-" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			w = f
		}
		if err := chart.WriteSVG(w, scene); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		if outPath != "" && outPath != "-" {
			log.Info("diagram written", "setup", setup.ID, "path", outPath)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
