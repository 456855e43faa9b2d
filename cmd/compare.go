package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/yakumocabin/color-change-program/series"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <color> [files or directories...]",
	Short: "Compares a picked sRGB color against a sample",
	Long: `Compares a picked sRGB color, given as #rrggbb or r,g,b (0-255), with a
sample's Lab value. The reference sample is used unless --reference names
another one.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c, e := parseColor(args[0])
		if e != nil {
			log.Fatal(e)
		}

		s := compute(args[1:], os.Stdout)
		cmp, e := s.CompareColor(c, reference)
		if e != nil {
			log.Fatal(e)
		}
		fmt.Print(comparisonText(cmp))
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

// parseColor accepts #rrggbb, rrggbb or r,g,b with channels in 0-255.
func parseColor(s string) ([3]uint8, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return [3]uint8{}, fmt.Errorf("'%s' is not an r,g,b color", s)
		}
		var c [3]uint8
		for i, p := range parts {
			v, e := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if e != nil {
				return [3]uint8{}, fmt.Errorf("'%s' is not an r,g,b color: channel %d out of 0-255", s, i+1)
			}
			c[i] = uint8(v)
		}
		return c, nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	col, e := colorful.Hex(s)
	if e != nil {
		return [3]uint8{}, fmt.Errorf("'%s' is not a hex color", s)
	}
	r, g, b := col.RGB255()
	return [3]uint8{r, g, b}, nil
}

func comparisonText(c series.Comparison) string {
	return fmt.Sprintf("\n--- %s vs %s ---\nCIELab: %s\nΔE: %.2f\n", c.Hex, c.Sample, series.FormatLab(c.Lab), c.DeltaE)
}
