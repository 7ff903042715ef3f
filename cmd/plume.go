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

	"github.com/spf13/cobra"

	"github.com/firetools/gozone/model_problems/LocalisedFire"
)

// PlumeCmd represents the plume command
var PlumeCmd = &cobra.Command{
	Use:   "plume",
	Short: "Localised fire plume correlations",
	Long: `
Flame length, virtual origin and plume centreline temperature for a localised
fire, evaluated at a given height above the fire base.

gozone plume --hrr 2000 --hrrpua 250 -z 1.2`,
	Run: func(cmd *cobra.Command, args []string) {
		hrrKW, _ := cmd.Flags().GetFloat64("hrr")
		hrrpuaKW, _ := cmd.Flags().GetFloat64("hrrpua")
		convFract, _ := cmd.Flags().GetFloat64("convFract")
		z, _ := cmd.Flags().GetFloat64("height")

		p := LocalisedFire.Evaluate(hrrKW*1000, hrrpuaKW*1000, convFract, z)
		fmt.Printf("%8.3f\t= Fire diameter (m)\n", p.Diameter)
		fmt.Printf("%8.3f\t= Flame length (m)\n", p.FlameLength)
		fmt.Printf("%8.3f\t= Virtual origin (m)\n", p.VirtualOrigin)
		fmt.Printf("%8.1f\t= Plume temperature at z (degC)\n", p.Temperature)
	},
}

func init() {
	rootCmd.AddCommand(PlumeCmd)
	PlumeCmd.Flags().Float64("hrr", 2000, "heat release rate (kW)")
	PlumeCmd.Flags().Float64("hrrpua", 250, "heat release rate per unit area (kW/m^2)")
	PlumeCmd.Flags().Float64("convFract", 0.7, "convective fraction")
	PlumeCmd.Flags().Float64P("height", "z", 1.2, "evaluation height above the fire base (m)")
}
