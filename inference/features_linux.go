//go:build linux

package inference

import (
	"os"
	"strings"
)

// chassisCodeClass maps /sys/class/dmi/id/chassis_type's numeric code to the
// coarse class used by classify_system and analyze_thermal_envelope.
var chassisCodeClass = map[string]string{
	"3": "Desktop", "4": "Desktop", "5": "Desktop", "6": "Desktop", "7": "Desktop",
	"8": "Laptop", "9": "Laptop", "10": "Laptop", "14": "Laptop",
	"11": "Handheld", "12": "Handheld",
	"13": "AllInOne",
	"17": "Server", "23": "Server",
	"35": "MiniPc", "36": "MiniPc",
}

func readChassisType() string {
	raw, err := os.ReadFile("/sys/class/dmi/id/chassis_type")
	if err != nil {
		return "Unknown"
	}
	code := strings.TrimSpace(string(raw))
	if class, ok := chassisCodeClass[code]; ok {
		return class
	}
	return "Unknown"
}
