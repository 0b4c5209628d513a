package metrics

import (
	"fmt"
	"strconv"

	dto "github.com/prometheus/client_model/go"
)

// RequestCount reads the counter for (method, path, status) without creating
// the series. A series never observed reads as 0.
func (r *Recorder) RequestCount(method, path string, status int) (float64, error) {
	m, err := r.find(RequestsTotalName, map[string]string{
		"method": LabelValue(method),
		"path":   LabelValue(path),
		"status": strconv.Itoa(status),
	})
	if err != nil || m == nil {
		return 0, err
	}
	return m.GetCounter().GetValue(), nil
}

// ObservationCount reads how many durations were observed for (method, path).
func (r *Recorder) ObservationCount(method, path string) (uint64, error) {
	m, err := r.find(RequestDurationName, map[string]string{
		"method": LabelValue(method),
		"path":   LabelValue(path),
	})
	if err != nil || m == nil {
		return 0, err
	}
	return m.GetHistogram().GetSampleCount(), nil
}

func (r *Recorder) find(name string, labels map[string]string) (*dto.Metric, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m.GetLabel(), labels) {
				return m, nil
			}
		}
	}
	return nil, nil
}

func labelsMatch(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, p := range pairs {
		if v, ok := want[p.GetName()]; !ok || v != p.GetValue() {
			return false
		}
	}
	return true
}
