package cmd

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yakumocabin/color-change-program/report"
)

var output string

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <template> [files or directories...]",
	Short: "Renders the results through a pongo2 template",
	Long: `Renders the results through a pongo2 template. The template sees
results (name, lab, L, a, b, xyz, hex, rgb, hue, deltaE, reference),
diagnostics (name, reason), preset, illuminant, observer, formula, grid,
reference and title, plus every key of the "vars" map in the config file.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		path, e := homedir.Expand(args[0])
		if e != nil {
			log.Fatal(e)
		}
		tpl, e := report.Load(path)
		if e != nil {
			log.Fatal(e)
		}

		var diag bytes.Buffer
		s := compute(args[1:], &diag)
		os.Stderr.Write(diag.Bytes())

		var b bytes.Buffer
		if e := report.Render(&b, s, tpl, viper.GetStringMap("vars")); e != nil {
			log.Fatal(e)
		}

		if output == "" {
			os.Stdout.Write(b.Bytes())
			return
		}
		dest, e := homedir.Expand(output)
		if e != nil {
			log.Fatal(e)
		}
		if e := ioutil.WriteFile(dest, b.Bytes(), 0644); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&output, "output", "", "file to write (default stdout)")
}
