package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewStressTestReport_Shape(t *testing.T) {
	now := time.UnixMilli(1700000000123).UTC()
	m := StressTestMetrics{SuccessRate: 99, ErrorRate: 1, SimulatedUsers: 5000}

	r := NewStressTestReport(m, nil, now)
	if r.Filename() != "stress-test-report-1700000000123.json" {
		t.Errorf("unexpected filename %q", r.Filename())
	}

	body, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"testDate", "configuration", "performance", "resources", "insights", "recommendations", "logs"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	if len(doc) != 7 {
		t.Errorf("expected exactly 7 top-level keys, got %d", len(doc))
	}
	if r.Performance.SuccessRate != 99 {
		t.Errorf("success rate: got %d", r.Performance.SuccessRate)
	}
}
