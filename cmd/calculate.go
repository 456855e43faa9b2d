package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/flosch/pongo2"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yakumocabin/color-change-program/input"
	"github.com/yakumocabin/color-change-program/report"
	"github.com/yakumocabin/color-change-program/series"
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate [files or directories...]",
	Short: "Computes Lab, sRGB, hue and ΔE for every sample",
	Long: `Computes Lab, sRGB, hue and ΔE for every sample and prints the results.

With --out the text report, a CSV of the computed values, the resampled
spectra and one swatch image per sample are written to the given directory.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := compute(args, os.Stdout)

		if e := report.Render(os.Stdout, s, nil, nil); e != nil {
			log.Fatal(e)
		}

		out := viper.GetString("out")
		if out == "" {
			return
		}
		dir, e := homedir.Expand(out)
		if e != nil {
			log.Fatal(e)
		}
		tpl, e := template()
		if e != nil {
			log.Fatal(e)
		}
		if e := report.Export(dir, s, tpl, viper.GetStringMap("vars")); e != nil {
			log.Fatal(e)
		}
		fmt.Printf("\nResults saved to %s\n", dir)
	},
}

func init() {
	rootCmd.AddCommand(calculateCmd)

	calculateCmd.Flags().StringP("out", "o", "", "directory to export results to")
	calculateCmd.Flags().StringP("template", "t", "", "pongo2 template for the exported text report")

	viper.BindPFlag("out", calculateCmd.Flags().Lookup("out"))
	viper.BindPFlag("template", calculateCmd.Flags().Lookup("template"))
}

// compute loads the samples named by args, runs the series and writes a line
// per skipped sample to w. Configuration errors are fatal.
func compute(args []string, w io.Writer) *series.Series {
	cfg, e := config()
	if e != nil {
		log.Fatal(e)
	}

	samples, skipped, e := input.Load(args...)
	if e != nil {
		log.Fatal(e)
	}
	samples, missing := input.Select(samples, viper.GetStringSlice("sheets"))
	skipped = append(skipped, missing...)

	s, e := series.Compute(samples, cfg)
	if e != nil {
		log.Fatal(e)
	}
	if reference != "" {
		if e := s.SetReference(reference); e != nil {
			log.Fatal(e)
		}
	}

	for _, d := range append(skipped, s.Diagnostics()...) {
		fmt.Fprintf(w, "! %s\n", d)
	}
	return s
}

func template() (*pongo2.Template, error) {
	path := viper.GetString("template")
	if path == "" {
		return nil, nil
	}
	path, e := homedir.Expand(path)
	if e != nil {
		return nil, e
	}
	return report.Load(path)
}
