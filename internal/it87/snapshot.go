package it87

import (
	"fmt"
	"strings"
)

// Snapshot is one complete telemetry reading. Voltages are millivolts,
// temperatures are degrees Celsius, fan speeds are RPM with zero
// meaning stalled or absent. Legacy 3-fan chips leave the last two fan
// slots at zero.
type Snapshot struct {
	Voltages     [9]int16
	Temperatures [3]int16
	Fans         [5]int16
}

// String renders the snapshot in the traditional one-line-per-sensor
// report format.
func (s *Snapshot) String() string {
	var b strings.Builder

	for i, mv := range s.Voltages {
		label := fmt.Sprintf("VIN%d", i)
		if i == len(s.Voltages)-1 {
			label = "VBAT"
		}
		fmt.Fprintf(&b, "%s : %3d.%03d\n", label, mv/1000, abs(int(mv))%1000)
	}
	for i, deg := range s.Temperatures {
		fmt.Fprintf(&b, "TEMP%d: %3d\n", i, deg)
	}
	for i, rpm := range s.Fans {
		fmt.Fprintf(&b, "FAN%d : %4d\n", i+1, rpm)
	}

	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
