package usecase

import (
	"testing"

	"rockguard-srv/internal/model"
)

// calmReading is a baseline that contributes no score. RockStability must be
// high because the stability bands are inverse.
func calmReading() model.SensorReading {
	return model.SensorReading{
		Location:      "Tunnel A",
		RockStability: 9,
	}
}

func TestCalculateRiskScore(t *testing.T) {
	t.Run("calm reading scores zero", func(t *testing.T) {
		if got := calculateRiskScore(calmReading()); got != 0 {
			t.Errorf("score mismatch: got %d, want 0", got)
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		r := calmReading()
		r.Vibration = 4.2
		r.Moisture = 55
		r.GroundwaterLevel = 1.8

		first := calculateRiskScore(r)
		second := calculateRiskScore(r)
		if first != second {
			t.Errorf("score not deterministic: got %d then %d", first, second)
		}
	})

	t.Run("vibration bands", func(t *testing.T) {
		cases := []struct {
			vibration float64
			want      int
		}{
			{1, 0},
			{2.5, 5},
			{4, 12},
			{6, 20},
		}
		for _, tc := range cases {
			r := calmReading()
			r.Vibration = tc.vibration
			if got := calculateRiskScore(r); got != tc.want {
				t.Errorf("vibration %.1f: got %d, want %d", tc.vibration, got, tc.want)
			}
		}
	})

	t.Run("moisture bands", func(t *testing.T) {
		cases := []struct {
			moisture float64
			want     int
		}{
			{30, 0},
			{45, 3},
			{60, 8},
			{80, 15},
		}
		for _, tc := range cases {
			r := calmReading()
			r.Moisture = tc.moisture
			if got := calculateRiskScore(r); got != tc.want {
				t.Errorf("moisture %.1f: got %d, want %d", tc.moisture, got, tc.want)
			}
		}
	})

	t.Run("seismic bands", func(t *testing.T) {
		cases := []struct {
			seismic float64
			want    int
		}{
			{1, 0},
			{2.5, 4},
			{4, 10},
			{7, 20},
		}
		for _, tc := range cases {
			r := calmReading()
			r.SeismicActivity = tc.seismic
			if got := calculateRiskScore(r); got != tc.want {
				t.Errorf("seismic %.1f: got %d, want %d", tc.seismic, got, tc.want)
			}
		}
	})

	t.Run("rock stability is inverse", func(t *testing.T) {
		cases := []struct {
			stability float64
			want      int
		}{
			{9, 0},
			{7.5, 3},
			{6, 8},
			{4, 15},
		}
		for _, tc := range cases {
			r := calmReading()
			r.RockStability = tc.stability
			if got := calculateRiskScore(r); got != tc.want {
				t.Errorf("stability %.1f: got %d, want %d", tc.stability, got, tc.want)
			}
		}
	})

	t.Run("weather and groundwater and slope", func(t *testing.T) {
		r := calmReading()
		r.Rainfall = 20         // +8
		r.WindSpeed = 35        // +4
		r.WeatherSeverity = 8   // +3
		r.GroundwaterLevel = 3  // +10
		r.SlopeAngle = 50       // +5
		if got := calculateRiskScore(r); got != 30 {
			t.Errorf("combined score: got %d, want 30", got)
		}
	})

	t.Run("raising any hazard channel never lowers the score", func(t *testing.T) {
		base := calmReading()
		base.Vibration = 2.5
		base.Moisture = 45
		base.SeismicActivity = 2.5
		baseScore := calculateRiskScore(base)

		perturbations := []struct {
			name  string
			apply func(*model.SensorReading)
		}{
			{"vibration", func(r *model.SensorReading) { r.Vibration += 2 }},
			{"moisture", func(r *model.SensorReading) { r.Moisture += 20 }},
			{"seismic", func(r *model.SensorReading) { r.SeismicActivity += 2 }},
			{"stability drop", func(r *model.SensorReading) { r.RockStability -= 3 }},
			{"rainfall", func(r *model.SensorReading) { r.Rainfall += 20 }},
			{"groundwater", func(r *model.SensorReading) { r.GroundwaterLevel += 2 }},
			{"slope", func(r *model.SensorReading) { r.SlopeAngle += 20 }},
		}
		for _, p := range perturbations {
			r := base
			p.apply(&r)
			if got := calculateRiskScore(r); got < baseScore {
				t.Errorf("%s: score dropped from %d to %d", p.name, baseScore, got)
			}
		}
	})

	t.Run("score never exceeds 100", func(t *testing.T) {
		r := model.SensorReading{
			Location:         "Tunnel A",
			Vibration:        10,
			Moisture:         95,
			SeismicActivity:  9,
			RockStability:    1,
			Rainfall:         50,
			WindSpeed:        80,
			WeatherSeverity:  10,
			GroundwaterLevel: 5,
			SlopeAngle:       70,
		}
		if got := calculateRiskScore(r); got > maxScore {
			t.Errorf("score exceeds bound: got %d", got)
		}
	})

	t.Run("negative inputs are clamped", func(t *testing.T) {
		r := calmReading()
		r.Vibration = -3
		r.Moisture = -10
		r.GroundwaterLevel = -1
		if got := calculateRiskScore(r); got != 0 {
			t.Errorf("negative inputs: got %d, want 0", got)
		}
	})
}

func TestRiskLevelFor(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, model.RiskLevelLow},
		{24, model.RiskLevelLow},
		{25, model.RiskLevelMedium},
		{49, model.RiskLevelMedium},
		{50, model.RiskLevelHigh},
		{69, model.RiskLevelHigh},
		{70, model.RiskLevelCritical},
		{100, model.RiskLevelCritical},
	}
	for _, tc := range cases {
		if got := riskLevelFor(tc.score); got != tc.want {
			t.Errorf("score %d: got %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestRecommendationFor(t *testing.T) {
	t.Run("critical demands evacuation", func(t *testing.T) {
		got := recommendationFor(70)
		if got != "IMMEDIATE EVACUATION required. Cease all operations and conduct emergency structural assessment." {
			t.Errorf("unexpected critical recommendation: %s", got)
		}
	})

	t.Run("low keeps normal operations", func(t *testing.T) {
		got := recommendationFor(10)
		if got != "Continue normal operations with standard monitoring procedures." {
			t.Errorf("unexpected low recommendation: %s", got)
		}
	})
}

func TestTimeWindowFor(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{80, "Immediate risk (0-2 hours)"},
		{55, "Short-term risk (2-6 hours)"},
		{30, "Medium-term risk (6-24 hours)"},
		{5, "Long-term monitoring (24+ hours)"},
	}
	for _, tc := range cases {
		if got := timeWindowFor(tc.score); got != tc.want {
			t.Errorf("score %d: got %s, want %s", tc.score, got, tc.want)
		}
	}
}
