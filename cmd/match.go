package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/yakumocabin/color-change-program/image"
)

var (
	colors int
	step   int
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <image> [files or directories...]",
	Short: "Ranks the dominant colors of a photo by ΔE against a sample",
	Long: `Quantizes a photo to a handful of colors and lists them from the
closest to the farthest from a sample's Lab value. The reference sample is
used unless --reference names another one.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		i, e := image.Load(args[0])
		if e != nil {
			log.Fatal(e)
		}

		s := compute(args[1:], os.Stdout)
		target, e := s.Reference()
		if e != nil {
			log.Fatal(e)
		}
		if reference != "" {
			if target, e = s.Lookup(reference); e != nil {
				log.Fatal(e)
			}
		}

		ss, e := image.Swatches(i, colors, step, s.Config().Preset.White)
		if e != nil {
			log.Fatal(e)
		}
		image.RankByDistance(ss, target.Lab, s.Config().Formula)

		fmt.Printf("\n--- %s (%s) ---\n", target.Name, target.Hex)
		for _, sw := range ss {
			fmt.Printf("\033[38;2;%d;%d;%dm██\033[0m %s  ΔE %6.2f  pixels %d\n", sw.RGB.R, sw.RGB.G, sw.RGB.B, sw.Hex, sw.DeltaE, sw.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().IntVarP(&colors, "colors", "n", 8, "number of colors to quantize the photo to")
	matchCmd.Flags().IntVar(&step, "step", 5, "pixel sampling step")
}
