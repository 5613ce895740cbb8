package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/config"
	"github.com/abhisek/edgefinder/internal/logging"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the setup and lesson catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all setups (optionally filtered by bias or difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg, logging.ForCLI(cfg.LogLevel))
		if err != nil {
			return err
		}
		bias, _ := cmd.Flags().GetString("bias")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-20s  %-26s  %4s  %-8s  %-8s  %s\n",
			"ID", "Name", "Win", "Bias", "Level", "Pattern")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		n := 0
		for _, s := range c.Setups {
			if bias != "" && !strings.EqualFold(string(s.Bias), bias) {
				continue
			}
			if difficulty != "" && !strings.EqualFold(string(s.Difficulty), difficulty) {
				continue
			}
			fmt.Fprintf(out, "%-20s  %-26s  %3d%%  %-8s  %-8s  %s\n",
				s.ID, s.Name, s.WinRate, s.Bias, s.Difficulty, s.Pattern)
			n++
		}
		fmt.Fprintf(out, "\n%d setups, %d lessons\n", n, len(c.Lessons))
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a catalog directory (or the built-in catalog) for errors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			c   *catalog.Catalog
			err error
		)
		if len(args) == 1 {
			c, err = catalog.LoadDir(args[0])
		} else {
			c, err = catalog.Default()
		}
		var invalid *catalog.ErrInvalidCatalog
		if errors.As(err, &invalid) {
			return fmt.Errorf("%s does not match its schema: %w", invalid.Path, invalid.Err)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		issues := catalog.Validate(c)
		for _, issue := range issues {
			fmt.Fprintln(out, issue.String())
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d catalog issues", len(issues))
		}
		fmt.Fprintf(out, "ok: %d setups, %d lessons\n", len(c.Setups), len(c.Lessons))
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("bias", "", "Filter by bias (bullish, bearish, neutral)")
	catalogListCmd.Flags().String("difficulty", "", "Filter by difficulty (easy, medium, advanced)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
