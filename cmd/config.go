package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/yakumocabin/color-change-program/colorimetry"
	"github.com/yakumocabin/color-change-program/palette"
	"github.com/yakumocabin/color-change-program/series"
	"github.com/yakumocabin/color-change-program/spectrum"
)

func setDefaults() {
	viper.SetDefault("preset", colorimetry.D65Observer2.Name)
	viper.SetDefault("formula", palette.CIE76.String())
	viper.SetDefault("grid.start", spectrum.DefaultGrid.Start)
	viper.SetDefault("grid.stop", spectrum.DefaultGrid.Stop)
	viper.SetDefault("grid.step", spectrum.DefaultGrid.Step)
}

// config builds the run configuration from flags, environment and config file.
func config() (series.Config, error) {
	p, e := colorimetry.PresetByName(viper.GetString("preset"))
	if e != nil {
		return series.Config{}, e
	}

	f, e := palette.ParseFormula(viper.GetString("formula"))
	if e != nil {
		return series.Config{}, e
	}

	g := spectrum.Grid{
		Start: viper.GetFloat64("grid.start"),
		Stop:  viper.GetFloat64("grid.stop"),
		Step:  viper.GetFloat64("grid.step"),
	}
	if e := g.Validate(); e != nil {
		return series.Config{}, errors.Wrap(e, "grid")
	}

	return series.Config{Grid: g, Preset: p, Formula: f}, nil
}
