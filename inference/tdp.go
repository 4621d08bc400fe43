package inference

import "strings"

// inferCPUTdp estimates CPU thermal design power from the model string when
// no vendor-reported TDP is available cross-platform. Ranges are keyed off
// known SKU families; the first matching case wins, and specific SKU
// families are listed ahead of broader ones.
func inferCPUTdp(model string) float64 {
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "i9-14"), strings.Contains(lower, "i9-13"):
		return 125.0
	case strings.Contains(lower, "i7-14"), strings.Contains(lower, "i7-13"):
		return 65.0
	case strings.Contains(lower, "i5-14"), strings.Contains(lower, "i5-13"):
		return 65.0
	case strings.Contains(lower, "i3"):
		return 35.0
	case strings.Contains(lower, "ryzen 9"):
		return 120.0
	case strings.Contains(lower, "ryzen 7"):
		return 65.0
	case strings.Contains(lower, "ryzen 5"):
		return 65.0
	case strings.Contains(lower, "ryzen 3"):
		return 35.0
	case strings.Contains(lower, "epyc"):
		return 225.0
	case strings.Contains(lower, "xeon"):
		return 150.0
	case strings.Contains(lower, "threadripper"):
		return 280.0
	case strings.Contains(lower, "celeron"), strings.Contains(lower, "atom"):
		return 15.0
	case strings.Contains(lower, "m1"), strings.Contains(lower, "m2"):
		return 20.0
	case strings.Contains(lower, "m3"), strings.Contains(lower, "m4"):
		return 22.0
	case strings.Contains(lower, "arm"), strings.Contains(lower, "cortex"):
		return 5.0
	default:
		return 65.0
	}
}

// inferGPUTdp mirrors inferCPUTdp for discrete GPU SKUs. An empty model means
// no GPU was detected, not an unknown one, so it reports zero rather than the
// unknown-discrete-GPU default.
func inferGPUTdp(model string) float64 {
	if model == "" {
		return 0.0
	}
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "4090"):
		return 450.0
	case strings.Contains(lower, "4080"):
		return 320.0
	case strings.Contains(lower, "4070 ti"):
		return 285.0
	case strings.Contains(lower, "4070"):
		return 200.0
	case strings.Contains(lower, "4060"):
		return 115.0
	case strings.Contains(lower, "3090"):
		return 350.0
	case strings.Contains(lower, "3080"):
		return 320.0
	case strings.Contains(lower, "3070"):
		return 220.0
	case strings.Contains(lower, "3060"):
		return 170.0
	case strings.Contains(lower, "h100"):
		return 700.0
	case strings.Contains(lower, "a100"):
		return 300.0
	case strings.Contains(lower, "rx 7900"):
		return 355.0
	case strings.Contains(lower, "rx 7800"):
		return 263.0
	case strings.Contains(lower, "rx 7700"):
		return 245.0
	case strings.Contains(lower, "rx 7600"):
		return 165.0
	case strings.Contains(lower, "arc a7"):
		return 225.0
	case strings.Contains(lower, "arc a5"):
		return 175.0
	default:
		return 100.0
	}
}

// inferCPUYear and inferGPUYear back estimate_hardware_age's confidence
// scoring: a match pins the release year, no match falls back to a coarse
// guess from core count and SSD/NVMe presence in age.go.

func inferCPUYear(model string) (int, bool) {
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "14th gen"), strings.Contains(lower, "core ultra"), strings.Contains(lower, "14900"), strings.Contains(lower, "14700"):
		return 2024, true
	case strings.Contains(lower, "13th gen"), strings.Contains(lower, "13900"), strings.Contains(lower, "13700"), strings.Contains(lower, "13600"):
		return 2022, true
	case strings.Contains(lower, "12th gen"), strings.Contains(lower, "12900"), strings.Contains(lower, "12700"), strings.Contains(lower, "12600"):
		return 2021, true
	case strings.Contains(lower, "11th gen"), strings.Contains(lower, "11900"), strings.Contains(lower, "11700"):
		return 2021, true
	case strings.Contains(lower, "10th gen"), strings.Contains(lower, "10900"), strings.Contains(lower, "10700"):
		return 2020, true
	case strings.Contains(lower, "9th gen"), strings.Contains(lower, "9900"), strings.Contains(lower, "9700"):
		return 2018, true
	case strings.Contains(lower, "8th gen"), strings.Contains(lower, "8700"):
		return 2017, true
	case strings.Contains(lower, "ryzen 9 9"), strings.Contains(lower, "ryzen 7 9"), strings.Contains(lower, "zen 5"):
		return 2024, true
	case strings.Contains(lower, "ryzen 9 7"), strings.Contains(lower, "ryzen 7 7"), strings.Contains(lower, "ryzen 5 7"), strings.Contains(lower, "zen 4"):
		return 2022, true
	case strings.Contains(lower, "ryzen 9 5"), strings.Contains(lower, "ryzen 7 5"), strings.Contains(lower, "ryzen 5 5"), strings.Contains(lower, "zen 3"):
		return 2020, true
	case strings.Contains(lower, "ryzen 9 3"), strings.Contains(lower, "ryzen 7 3"), strings.Contains(lower, "ryzen 5 3"), strings.Contains(lower, "zen 2"):
		return 2019, true
	case strings.Contains(lower, "epyc 9"):
		return 2023, true
	case strings.Contains(lower, "epyc 7") && strings.Contains(lower, "3"):
		return 2022, true
	case strings.Contains(lower, "epyc 7"):
		return 2019, true
	case strings.Contains(lower, "xeon w9"), strings.Contains(lower, "xeon w7"):
		return 2023, true
	case strings.Contains(lower, "xeon") && strings.Contains(lower, "v5"):
		return 2017, true
	case strings.Contains(lower, "xeon") && strings.Contains(lower, "v4"):
		return 2016, true
	case strings.Contains(lower, "m4"):
		return 2024, true
	case strings.Contains(lower, "m3"):
		return 2023, true
	case strings.Contains(lower, "m2"):
		return 2022, true
	case strings.Contains(lower, "m1"):
		return 2020, true
	default:
		return 0, false
	}
}

func inferGPUYear(model string) (int, bool) {
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "rtx 50"), strings.Contains(lower, "5090"), strings.Contains(lower, "5080"):
		return 2025, true
	case strings.Contains(lower, "rtx 40"), strings.Contains(lower, "4090"), strings.Contains(lower, "4080"):
		return 2022, true
	case strings.Contains(lower, "rtx 30"), strings.Contains(lower, "3090"), strings.Contains(lower, "3080"):
		return 2020, true
	case strings.Contains(lower, "rtx 20"), strings.Contains(lower, "2080"), strings.Contains(lower, "2070"):
		return 2018, true
	case strings.Contains(lower, "gtx 1080"), strings.Contains(lower, "gtx 10"):
		return 2016, true
	case strings.Contains(lower, "gtx 9"):
		return 2014, true
	case strings.Contains(lower, "h100"), strings.Contains(lower, "h200"):
		return 2023, true
	case strings.Contains(lower, "a100"):
		return 2020, true
	case strings.Contains(lower, "v100"):
		return 2017, true
	case strings.Contains(lower, "rx 9"):
		return 2025, true
	case strings.Contains(lower, "rx 7"):
		return 2022, true
	case strings.Contains(lower, "rx 6"):
		return 2020, true
	case strings.Contains(lower, "rx 5"):
		return 2019, true
	case strings.Contains(lower, "arc b"):
		return 2024, true
	case strings.Contains(lower, "arc a"):
		return 2022, true
	case strings.Contains(lower, "m4"):
		return 2024, true
	case strings.Contains(lower, "m3"):
		return 2023, true
	case strings.Contains(lower, "m2"):
		return 2022, true
	case strings.Contains(lower, "m1"):
		return 2020, true
	default:
		return 0, false
	}
}
