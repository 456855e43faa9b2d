/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	reference string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorcalc",
	Short: "Computes colors from measured reflectance spectra",
	Long: `colorcalc converts measured reflectance spectra into CIELab, sRGB and
HSV values under CIE D65 and the CIE 1931 2° observer, and reports the
color difference (ΔE) of every sample against the first one.

Samples are read from CSV files with Wavelength and Reflectance columns,
or from YAML documents listing several samples.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spectra.yaml)")
	rootCmd.PersistentFlags().String("preset", "D65/2", "illuminant/observer preset")
	rootCmd.PersistentFlags().String("formula", "CIE76", "ΔE formula (CIE76 or CIE2000)")
	rootCmd.PersistentFlags().StringSlice("sheets", nil, "sample names to process, in order (default all)")
	rootCmd.PersistentFlags().StringVarP(&reference, "reference", "r", "", "reference sample (default first computed sample)")

	viper.BindPFlag("preset", rootCmd.PersistentFlags().Lookup("preset"))
	viper.BindPFlag("formula", rootCmd.PersistentFlags().Lookup("formula"))
	viper.BindPFlag("sheets", rootCmd.PersistentFlags().Lookup("sheets"))

	setDefaults()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".spectra")
	}

	viper.SetEnvPrefix("spectra")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
