// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ubem2d runs an unsteady panel-method simulation of a single
// airfoil under a prescribed pitch-heave motion and writes the resulting
// per-step aerodynamic coefficients to a CSV file.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"math"
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mjfairch/ubem2d/geometry"
	"github.com/mjfairch/ubem2d/kinematics"
	"github.com/mjfairch/ubem2d/stepper"
	"github.com/mjfairch/ubem2d/wake"
)

// harmonics is the JSON shape of a kinematics.FourierSeries.
type harmonics struct {
	Freq       float64   `json:"freq"`
	Amplitudes []float64 `json:"amplitudes"`
	Phases     []float64 `json:"phases"`
}

func (h *harmonics) series() *kinematics.FourierSeries {
	if h == nil || len(h.Amplitudes) == 0 {
		return nil
	}
	return kinematics.NewFourierSeries(h.Freq, h.Amplitudes, h.Phases)
}

// config is the simulation description loaded from the JSON file named on
// the command line.
type config struct {
	Airfoil    string     `json:"airfoil"`
	Pivot      float64    `json:"pivot"`
	Uinf       [2]float64 `json:"uinf"`
	Pitch      *harmonics `json:"pitch"`
	Heave      *harmonics `json:"heave"`
	Resolution int        `json:"resolution"`
	Cycles     int        `json:"cycles"`
	Output     string     `json:"output"`
}

func loadConfig(path string) config {
	buf, err := os.ReadFile(path)
	if err != nil {
		chk.Panic("ubem2d: cannot read configuration file %q: %v", path, err)
	}
	var cfg config
	if err := json.Unmarshal(buf, &cfg); err != nil {
		chk.Panic("ubem2d: cannot parse configuration file %q: %v", path, err)
	}
	if cfg.Resolution == 0 {
		cfg.Resolution = 20
	}
	if cfg.Cycles == 0 {
		cfg.Cycles = 1
	}
	if cfg.Output == "" {
		cfg.Output = "ubem2d.csv"
	}
	return cfg
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nubem2d -- unsteady 2D panel-method solver\n\n")

	flag.Parse()
	if flag.NArg() < 1 {
		chk.Panic("please provide a simulation configuration file. Ex.: ubem2d sim.json")
	}
	cfg := loadConfig(flag.Arg(0))

	foil, err := geometry.LoadAirfoil(cfg.Airfoil)
	if err != nil {
		chk.Panic("ubem2d: cannot load airfoil %q: %v", cfg.Airfoil, err)
	}
	pitch := cfg.Pitch.series()
	heave := cfg.Heave.series()

	fastPeriod := fastestPeriod(pitch, heave)
	uMag := math.Hypot(cfg.Uinf[0], cfg.Uinf[1])
	tau := foil.Chord() / uMag
	dt, stepsPerCycle := kinematics.TimeStep(cfg.Resolution, tau, fastPeriod, fastPeriod)
	totalSteps := stepsPerCycle * cfg.Cycles
	if totalSteps == 0 {
		totalSteps = cfg.Resolution * cfg.Cycles
	}
	io.Pf("> dt = %v, steps = %d\n", dt, totalSteps)

	times := kinematics.TimeStepper(dt, 0, func(step int, t float64) bool { return step > totalSteps })
	samples := kinematics.Driver(times, pitch, heave)

	s := stepper.New(foil, wake.NewWake(), cfg.Pivot, cfg.Uinf[0], cfg.Uinf[1])
	writeCSV(cfg.Output, stepper.Run(s, samples))

	io.Pf("> wrote %q\n", cfg.Output)
}

// fastestPeriod returns the shorter of the two series' periods, or a large
// sentinel if neither is prescribed (a purely steady run).
func fastestPeriod(pitch, heave *kinematics.FourierSeries) float64 {
	const steady = 1e30
	p, h := steady, steady
	if pitch != nil {
		p = pitch.Period()
	}
	if heave != nil {
		h = heave.Period()
	}
	if p < h {
		return p
	}
	return h
}

func writeCSV(path string, results <-chan stepper.Result) {
	f, err := os.Create(path)
	if err != nil {
		chk.Panic("ubem2d: cannot create output file %q: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"t", "pitch", "heave", "CT", "CL", "CM", "Ein", "Eout", "bound_circ"}
	if err := w.Write(header); err != nil {
		chk.Panic("ubem2d: cannot write CSV header: %v", err)
	}

	for r := range results {
		if r.Err != nil {
			chk.Panic("ubem2d: simulation step failed: %v", r.Err)
		}
		o := r.Output
		row := []string{
			strconv.FormatFloat(o.Kinematics.T, 'g', -1, 64),
			strconv.FormatFloat(o.Kinematics.Pitch, 'g', -1, 64),
			strconv.FormatFloat(o.Kinematics.Heave, 'g', -1, 64),
			strconv.FormatFloat(o.Sensors.CT, 'g', -1, 64),
			strconv.FormatFloat(o.Sensors.CL, 'g', -1, 64),
			strconv.FormatFloat(o.Sensors.CM, 'g', -1, 64),
			strconv.FormatFloat(o.Sensors.Ein, 'g', -1, 64),
			strconv.FormatFloat(o.Sensors.Eout, 'g', -1, 64),
			strconv.FormatFloat(o.Sensors.BoundCirc, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			chk.Panic("ubem2d: cannot write CSV row: %v", err)
		}
	}
}
