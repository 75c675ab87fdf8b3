//go:build fastant && (amd64 || arm64)

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package clock

import "time"

// readTSC reads the raw CPU cycle counter. Implemented in tsc_amd64.s and
// tsc_arm64.s.
func readTSC() uint64

const calibrationSpin = 20 * time.Millisecond

var (
	anchorCycles uint64
	nsPerCycle   float64
)

// Init spins for about 20ms, sampling the system monotonic clock and the
// CPU cycle counter at both ends, to establish the affine transform from
// cycles to nanoseconds used by Now. It returns ErrCalibration if the cycle
// counter didn't advance during the spin.
func Init() error {
	wallStart := time.Now()
	cycleStart := readTSC()

	deadline := wallStart.Add(calibrationSpin)
	var wallEnd time.Time
	var cycleEnd uint64
	for {
		wallEnd = time.Now()
		cycleEnd = readTSC()
		if wallEnd.After(deadline) {
			break
		}
	}

	elapsedNS := wallEnd.Sub(wallStart).Nanoseconds()
	elapsedCycles := cycleEnd - cycleStart
	if elapsedCycles == 0 || elapsedNS <= 0 {
		return ErrCalibration
	}

	anchorCycles = cycleStart
	nsPerCycle = float64(elapsedNS) / float64(elapsedCycles)
	return nil
}

// Now returns nanoseconds elapsed since Init, converted from the cycle
// counter by the affine transform established during calibration.
func Now() int64 {
	cycles := readTSC() - anchorCycles
	return int64(float64(cycles) * nsPerCycle)
}
