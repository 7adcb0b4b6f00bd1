package usecase

import (
	"strings"
	"testing"
)

func TestRiskFactors(t *testing.T) {
	t.Run("calm reading reports normal conditions", func(t *testing.T) {
		got := riskFactors(calmReading())
		if len(got) != 2 {
			t.Fatalf("factor count: got %d, want 2", len(got))
		}
		if got[0] != "Normal sensor readings" || got[1] != "Stable environmental conditions" {
			t.Errorf("unexpected normal factors: %v", got)
		}
	})

	t.Run("each elevated channel contributes one factor", func(t *testing.T) {
		r := calmReading()
		r.Vibration = 4
		r.Moisture = 60
		r.SeismicActivity = 4
		r.RockStability = 6
		r.Rainfall = 10
		r.GroundwaterLevel = 2
		r.WeatherSeverity = 5

		got := riskFactors(r)
		if len(got) != 7 {
			t.Fatalf("factor count: got %d, want 7, factors %v", len(got), got)
		}

		wantPrefixes := []string{
			"High vibration levels",
			"Elevated moisture content",
			"Significant seismic activity",
			"Reduced rock stability",
			"Heavy rainfall",
			"Rising groundwater levels",
			"Severe weather conditions",
		}
		for i, prefix := range wantPrefixes {
			if !strings.HasPrefix(got[i], prefix) {
				t.Errorf("factor %d: got %q, want prefix %q", i, got[i], prefix)
			}
		}
	})

	t.Run("factor thresholds sit below scoring bands", func(t *testing.T) {
		// vibration 2.5 scores points but is not factor-worthy yet
		r := calmReading()
		r.Vibration = 2.5
		got := riskFactors(r)
		if got[0] != "Normal sensor readings" {
			t.Errorf("vibration 2.5 should not produce a factor, got %v", got)
		}

		// rainfall 10 is factor-worthy but scores nothing
		r = calmReading()
		r.Rainfall = 10
		got = riskFactors(r)
		if !strings.HasPrefix(got[0], "Heavy rainfall") {
			t.Errorf("rainfall 10 should produce a factor, got %v", got)
		}
		if score := calculateRiskScore(r); score != 0 {
			t.Errorf("rainfall 10 should not score, got %d", score)
		}
	})
}
