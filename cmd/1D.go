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
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/gofvm/advect/FV1D"
	"github.com/gofvm/advect/InputParameters"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional advection solver",
	Long: `
Runs the 1D Godunov REA solver on a periodic domain,

advect 1D -s 0.75 --limiter superbee`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("1D called")
		ip := &InputParameters.Parameters1D{}
		if pf, _ := cmd.Flags().GetString("paramFile"); pf != "" {
			data, err := ioutil.ReadFile(pf)
			if err != nil {
				panic(err)
			}
			if err = ip.Parse(data); err != nil {
				panic(err)
			}
		} else {
			ip.Title = "1D advection"
			ip.TFinal, _ = cmd.Flags().GetFloat64("finalTime")
			ip.TStep, _ = cmd.Flags().GetFloat64("tStep")
			ip.XMin, _ = cmd.Flags().GetFloat64("xMin")
			ip.XMax, _ = cmd.Flags().GetFloat64("xMax")
			ip.Speed, _ = cmd.Flags().GetFloat64("speed")
			ip.CFL, _ = cmd.Flags().GetFloat64("CFL")
			ip.Dx, _ = cmd.Flags().GetFloat64("dx")
			ip.Slope, _ = cmd.Flags().GetString("slope")
			ip.Limiter, _ = cmd.Flags().GetString("limiter")
		}
		initType, _ := cmd.Flags().GetString("initType")
		logFreq, _ := cmd.Flags().GetInt("logFrequency")
		Run1D(ip, initType, logFreq)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("paramFile", "f", "", "YAML parameter file; overrides the individual flags")
	OneDCmd.Flags().Float64("finalTime", 50/0.75, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().Float64("tStep", 0.5, "time step")
	OneDCmd.Flags().Float64("xMin", 0, "domain start")
	OneDCmd.Flags().Float64("xMax", 50, "domain end")
	OneDCmd.Flags().Float64P("speed", "s", 0.75, "advection speed")
	OneDCmd.Flags().Float64("CFL", 0.7, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("dx", 0, "cell spacing override, only used when speed is 0")
	OneDCmd.Flags().String("slope", "", "slope scheme: upwind, downwind, centered")
	OneDCmd.Flags().String("limiter", "", "TVD limiter, overrides slope: minmod, superbee, MC")
	OneDCmd.Flags().String("initType", "pulse", "initial profile: pulse, gaussian, sine, constant")
	OneDCmd.Flags().Int("logFrequency", 50, "steps between progress lines, 0 to disable")
}

func Run1D(ip *InputParameters.Parameters1D, initType string, logFreq int) {
	mesh, err := ip.Mesh()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	scheme, err := ip.Scheme()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	profile, err := profile1D(initType, ip.XMin, ip.XMax)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	ip.Print()
	c := FV1D.NewSolver(mesh, scheme)
	c.LogFrequency = logFreq
	series, err := c.Run(profile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	var (
		first = series[0]
		last  = series[len(series)-1]
	)
	fmt.Printf("nx = %d, nt = %d, dx = %8.5f, nu = %8.5f\n", mesh.Nx(), mesh.Nt, mesh.Dx, mesh.Nu)
	fmt.Printf("mass: initial = %10.7f, final = %10.7f\n",
		FV1D.Mass(first, mesh.Dx), FV1D.Mass(last, mesh.Dx))
	fmt.Printf("total variation: initial = %10.7f, final = %10.7f\n",
		FV1D.TotalVariation(first), FV1D.TotalVariation(last))
}
