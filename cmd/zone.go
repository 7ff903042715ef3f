/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/firetools/gozone/InputParameters"
	"github.com/firetools/gozone/model_problems/Zone1D"
)

// ZoneCmd represents the zone command
var ZoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Single compartment zone model run",
	Long: `
Runs the coupled zone model: ventilation limited HRR curve, lumped gas energy
balance, explicit 1D conduction through the wall, ceiling and floor, and
charring of the exposed timber lining with its feedback into the HRR.

gozone zone --scenario room.yaml --out results.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		scenarioFile, _ := cmd.Flags().GetString("scenario")
		outFile, _ := cmd.Flags().GetString("out")
		logLevel, _ := cmd.Flags().GetString("log")
		profiling, _ := cmd.Flags().GetBool("profile")

		if lvl, err := log.ParseLevel(logLevel); err == nil {
			log.SetLevel(lvl)
		}
		if profiling {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		res, err := RunZone(scenarioFile)
		if err != nil {
			log.Fatal(err)
		}
		if err = writeResults(res, outFile); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(ZoneCmd)
	ZoneCmd.Flags().StringP("scenario", "s", "", "YAML scenario file; omit to run the built-in reference compartment")
	ZoneCmd.Flags().StringP("out", "o", "", "CSV output path; omit to write to stdout")
	ZoneCmd.Flags().String("log", "info", "log level: debug, info, warn, error")
	ZoneCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

// RunZone builds the configuration from an optional scenario file and runs
// the model to completion.
func RunZone(scenarioFile string) (*Zone1D.Results, error) {
	cfg := Zone1D.DefaultConfig()
	if scenarioFile != "" {
		data, err := os.ReadFile(scenarioFile)
		if err != nil {
			return nil, fmt.Errorf("reading scenario: %w", err)
		}
		zp := &InputParameters.ZoneParameters{}
		if err = zp.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing scenario: %w", err)
		}
		zp.Print()
		if cfg, err = buildConfig(zp); err != nil {
			return nil, err
		}
	}
	z, err := Zone1D.NewZone(cfg)
	if err != nil {
		return nil, err
	}
	return z.Solve()
}

// buildConfig maps the YAML surface onto the engine configuration, loading
// the prescribed HRR table when one is named.
func buildConfig(zp *InputParameters.ZoneParameters) (cfg Zone1D.Config, err error) {
	cfg = Zone1D.Config{
		Geometry: Zone1D.CompartmentGeometry{
			Breadth:       zp.Breadth,
			Depth:         zp.Depth,
			Height:        zp.Height,
			OpeningHeight: zp.OpeningHeight,
			OpeningWidth:  zp.OpeningWidth,
		},
		Fire: Zone1D.FireLoad{
			GrowthRate:           zp.GrowthRate,
			HRRPUA:               zp.HRRPUA,
			FLED:                 zp.FLED,
			CombustionEfficiency: zp.CombustionEfficiency,
			ConvectiveFraction:   zp.ConvectiveFraction,
		},
		AmbientTemp:            zp.AmbientTemp,
		InitialGasTemp:         zp.InitialGasTemp,
		WoodDensity:            zp.WoodDensity,
		WoodHoC:                zp.WoodHoC,
		CeilingExposedFraction: zp.CeilingExposedFraction,
		CharRegressionRate:     zp.CharRegressionRate,
		CharHoC:                zp.CharHoC,
		GasSpecificHeat:        zp.GasSpecificHeat,
		NetEmissivity:          zp.NetEmissivity,
		AirDensity:             zp.AirDensity,
		ConvectiveCoeff:        zp.ConvectiveCoeff,
		Wall:                   boundarySpec(zp.Wall),
		Ceiling:                boundarySpec(zp.Ceiling),
		Floor:                  boundarySpec(zp.Floor),
		EndTime:                zp.EndTime,
		Ignition:               zp.Ignition,
		DecayStart:             zp.DecayStart,
		DecayEnd:               zp.DecayEnd,
	}
	if zp.HRRSource != "" {
		cfg.Source = Zone1D.NewHRRSourceType(zp.HRRSource)
	}
	if cfg.Source == Zone1D.PrescribedTable {
		if zp.HRRTableFile == "" {
			return cfg, fmt.Errorf("prescribed HRR source needs HRRTableFile")
		}
		f, err := os.Open(zp.HRRTableFile)
		if err != nil {
			return cfg, fmt.Errorf("opening HRR table: %w", err)
		}
		defer f.Close()
		if cfg.PrescribedTimes, cfg.PrescribedHRR, err = Zone1D.ReadHRRTable(f); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func boundarySpec(bp InputParameters.BoundaryParameters) Zone1D.BoundarySpec {
	return Zone1D.BoundarySpec{
		Mat: Zone1D.MaterialProperties{
			Conductivity: bp.Conductivity,
			Density:      bp.Density,
			SpecificHeat: bp.SpecificHeat,
		},
		Thickness: bp.Thickness,
		Nodes:     bp.Nodes,
	}
}

func writeResults(res *Zone1D.Results, outFile string) error {
	if outFile == "" {
		return res.WriteCSV(os.Stdout)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()
	log.Infof("writing %d steps to %s", res.Len(), outFile)
	return res.WriteCSV(f)
}
