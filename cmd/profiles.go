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
	"math"
)

// Built-in initial profiles for the driver. The solver core only needs a
// function it can integrate over sub-intervals; these are the shippable
// defaults selected by --initType.

func profile1D(name string, xMin, xMax float64) (f func(x float64) float64, err error) {
	var (
		l = xMax - xMin
	)
	switch name {
	case "pulse":
		lo, hi := xMin+0.2*l, xMin+0.4*l
		f = func(x float64) float64 {
			if x >= lo && x <= hi {
				return 1
			}
			return 0
		}
	case "gaussian":
		c, w := xMin+0.5*l, 0.1*l
		f = func(x float64) float64 {
			r := (x - c) / w
			return math.Exp(-r * r)
		}
	case "sine":
		f = func(x float64) float64 {
			return math.Sin(2 * math.Pi * (x - xMin) / l)
		}
	case "constant":
		f = func(x float64) float64 { return 5 }
	default:
		err = fmt.Errorf("unknown initType %q: must be one of pulse, gaussian, sine, constant", name)
	}
	return
}

func profile2D(name string, xMin, xMax, yMin, yMax float64) (f func(x, y float64) float64, err error) {
	var fx, fy func(float64) float64
	if fx, err = profile1D(name, xMin, xMax); err != nil {
		return
	}
	if fy, err = profile1D(name, yMin, yMax); err != nil {
		return
	}
	f = func(x, y float64) float64 { return fx(x) * fy(y) }
	return
}
