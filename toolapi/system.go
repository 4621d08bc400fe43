package toolapi

import (
	"context"
	"encoding/json"
	"fmt"

	agent "github.com/coreprobe/sysmon"
	"github.com/coreprobe/sysmon/errs"
	"github.com/coreprobe/sysmon/history"
	"github.com/coreprobe/sysmon/inference"
)

func marshal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal response: %w", err)
	}
	return string(b), nil
}

func handleGetSystemSummary(ctx context.Context, deps *Deps, p params) (string, error) {
	features, err := inference.ExtractFeatures(ctx)
	if err != nil {
		return "", fmt.Errorf("extract hardware features: %w", err)
	}
	return marshal(inference.FullAnalysis(features))
}

func handleGetSystemInfo(ctx context.Context, deps *Deps, p params) (string, error) {
	info, err := agent.ReadSystemInfo(ctx)
	if err != nil {
		return "", err
	}
	return marshal(info)
}

func handleGetPlatformInfo(ctx context.Context, deps *Deps, p params) (string, error) {
	features, err := inference.ExtractFeatures(ctx)
	if err != nil {
		return "", fmt.Errorf("extract hardware features: %w", err)
	}
	return marshal(features)
}

// metricArg validates the metric selector shared by get_historical_data and
// compare_metrics against history.Metrics.
func metricArg(p params) (string, error) {
	metric, err := requiredString(p, "metric")
	if err != nil {
		return "", err
	}
	for _, m := range history.Metrics {
		if m == metric {
			return metric, nil
		}
	}
	return "", fmt.Errorf("%w: metric %q must be one of %v", errs.ErrInvalidArgument, metric, history.Metrics)
}

func handleGetHistoricalData(ctx context.Context, deps *Deps, p params) (string, error) {
	metric, err := metricArg(p)
	if err != nil {
		return "", err
	}
	sinceSeconds := optionalInt64(p, "since_seconds", 300)

	samples := deps.History.Since(sinceSeconds)
	points := make([]struct {
		Timestamp int64   `json:"timestamp"`
		Value     float64 `json:"value"`
	}, 0, len(samples))
	for _, s := range samples {
		if v, ok := history.Value(s, metric); ok {
			points = append(points, struct {
				Timestamp int64   `json:"timestamp"`
				Value     float64 `json:"value"`
			}{s.Timestamp, v})
		}
	}
	return marshal(points)
}

func handleCompareMetrics(ctx context.Context, deps *Deps, p params) (string, error) {
	metric, err := metricArg(p)
	if err != nil {
		return "", err
	}
	windowASeconds, err := requiredInt64(p, "window_a_seconds")
	if err != nil {
		return "", err
	}
	windowBSeconds, err := requiredInt64(p, "window_b_seconds")
	if err != nil {
		return "", err
	}

	avgA, okA := history.Average(deps.History.Since(windowASeconds), metric)
	avgB, okB := history.Average(deps.History.Since(windowBSeconds), metric)

	result := struct {
		Metric     string  `json:"metric"`
		WindowAAvg float64 `json:"window_a_avg"`
		WindowBAvg float64 `json:"window_b_avg"`
		Delta      float64 `json:"delta"`
		HasWindowA bool    `json:"has_window_a_data"`
		HasWindowB bool    `json:"has_window_b_data"`
	}{Metric: metric, WindowAAvg: avgA, WindowBAvg: avgB, HasWindowA: okA, HasWindowB: okB}
	if okA && okB {
		result.Delta = avgA - avgB
	}

	return marshal(result)
}
