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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/gofvm/advect/FV2D"
	"github.com/gofvm/advect/InputParameters"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional advection solver with dimensional splitting",
	Long: `
Runs the 2D Godunov REA solver, sweeping x then y each step. The nx*ny
initialization integrals dominate runtime; use --cpuProfile to capture them.

advect 2D --limiter MC`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		if prof, _ := cmd.Flags().GetBool("cpuProfile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip := &InputParameters.Parameters2D{}
		if pf, _ := cmd.Flags().GetString("paramFile"); pf != "" {
			data, err := ioutil.ReadFile(pf)
			if err != nil {
				panic(err)
			}
			if err = ip.Parse(data); err != nil {
				panic(err)
			}
		} else {
			ip.Title = "2D advection"
			ip.TFinal, _ = cmd.Flags().GetFloat64("finalTime")
			ip.TStep, _ = cmd.Flags().GetFloat64("tStep")
			ip.XMin, _ = cmd.Flags().GetFloat64("xMin")
			ip.XMax, _ = cmd.Flags().GetFloat64("xMax")
			ip.YMin, _ = cmd.Flags().GetFloat64("yMin")
			ip.YMax, _ = cmd.Flags().GetFloat64("yMax")
			ip.SpeedX, _ = cmd.Flags().GetFloat64("speedX")
			ip.SpeedY, _ = cmd.Flags().GetFloat64("speedY")
			ip.CFL, _ = cmd.Flags().GetFloat64("CFL")
			ip.Dx, _ = cmd.Flags().GetFloat64("dx")
			ip.Dy, _ = cmd.Flags().GetFloat64("dy")
			ip.Slope, _ = cmd.Flags().GetString("slope")
			ip.Limiter, _ = cmd.Flags().GetString("limiter")
		}
		initType, _ := cmd.Flags().GetString("initType")
		logFreq, _ := cmd.Flags().GetInt("logFrequency")
		Run2D(ip, initType, logFreq)
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("paramFile", "f", "", "YAML parameter file; overrides the individual flags")
	TwoDCmd.Flags().Float64("finalTime", 20, "FinalTime - the target end time for the sim")
	TwoDCmd.Flags().Float64("tStep", 0.5, "time step")
	TwoDCmd.Flags().Float64("xMin", 0, "x domain start")
	TwoDCmd.Flags().Float64("xMax", 50, "x domain end")
	TwoDCmd.Flags().Float64("yMin", 0, "y domain start")
	TwoDCmd.Flags().Float64("yMax", 50, "y domain end")
	TwoDCmd.Flags().Float64("speedX", 0.75, "advection speed along x")
	TwoDCmd.Flags().Float64("speedY", 0.75, "advection speed along y")
	TwoDCmd.Flags().Float64("CFL", 0.7, "CFL - increase for speedup, decrease for stability")
	TwoDCmd.Flags().Float64("dx", 0, "x spacing override, only used when speedX is 0")
	TwoDCmd.Flags().Float64("dy", 0, "y spacing override, only used when speedY is 0")
	TwoDCmd.Flags().String("slope", "", "slope scheme: upwind, downwind, centered")
	TwoDCmd.Flags().String("limiter", "", "TVD limiter, overrides slope: minmod, superbee, MC")
	TwoDCmd.Flags().String("initType", "gaussian", "initial profile: pulse, gaussian, sine, constant")
	TwoDCmd.Flags().Int("logFrequency", 10, "steps between progress lines, 0 to disable")
	TwoDCmd.Flags().Bool("cpuProfile", false, "capture a CPU profile of the run")
}

func Run2D(ip *InputParameters.Parameters2D, initType string, logFreq int) {
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
	prof, err := profile2D(initType, ip.XMin, ip.XMax, ip.YMin, ip.YMax)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	ip.Print()
	c := FV2D.NewSolver(mesh, scheme)
	c.LogFrequency = logFreq
	series, err := c.Run(prof)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	var (
		first = series[0]
		last  = series[len(series)-1]
	)
	fmt.Printf("nx, ny = %d, %d, nt = %d, nuX, nuY = %8.5f, %8.5f\n",
		mesh.Nx(), mesh.Ny(), mesh.Nt(), mesh.X.Nu, mesh.Y.Nu)
	fmt.Printf("mass: initial = %10.7f, final = %10.7f\n",
		FV2D.Mass(first, mesh.X.Dx, mesh.Y.Dx), FV2D.Mass(last, mesh.X.Dx, mesh.Y.Dx))
}
