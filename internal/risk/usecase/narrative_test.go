package usecase

import (
	"strings"
	"testing"

	"rockguard-srv/internal/model"
)

func TestParseNarrative(t *testing.T) {
	t.Run("plain JSON object", func(t *testing.T) {
		raw := `{"riskLevel": "Medium", "probability": 40, "riskFactors": ["Moisture rising"], "recommendations": "Monitor closely", "timeWindow": "Medium-term risk (6-24 hours)", "confidence": 70}`
		got, err := parseNarrative(raw)
		if err != nil {
			t.Fatalf("parseNarrative failed: %v", err)
		}
		if got.RiskLevel != model.RiskLevelMedium || got.Probability != 40 {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("JSON wrapped in code fences and prose", func(t *testing.T) {
		raw := "Here is the assessment:\n```json\n{\"riskLevel\": \"CRITICAL\", \"probability\": 88, \"riskFactors\": [\"Seismic spike\"], \"recommendations\": \"Evacuate\", \"timeWindow\": \"Immediate risk (0-2 hours)\", \"confidence\": 90}\n```\nStay safe."
		got, err := parseNarrative(raw)
		if err != nil {
			t.Fatalf("parseNarrative failed: %v", err)
		}
		if got.RiskLevel != model.RiskLevelCritical {
			t.Errorf("risk level: got %s, want Critical", got.RiskLevel)
		}
	})

	t.Run("no JSON object", func(t *testing.T) {
		if _, err := parseNarrative("sorry, no data"); err == nil {
			t.Error("expected error for output without JSON")
		}
	})

	t.Run("unknown risk level", func(t *testing.T) {
		raw := `{"riskLevel": "Catastrophic", "probability": 99, "riskFactors": ["x"], "recommendations": "run", "timeWindow": "now", "confidence": 99}`
		if _, err := parseNarrative(raw); err == nil || !strings.Contains(err.Error(), "risk level") {
			t.Errorf("expected risk level error, got %v", err)
		}
	})

	t.Run("probability out of range", func(t *testing.T) {
		raw := `{"riskLevel": "High", "probability": 140, "riskFactors": ["x"], "recommendations": "act", "timeWindow": "soon", "confidence": 80}`
		if _, err := parseNarrative(raw); err == nil {
			t.Error("expected error for probability above 100")
		}
	})

	t.Run("empty recommendations", func(t *testing.T) {
		raw := `{"riskLevel": "High", "probability": 60, "riskFactors": ["x"], "recommendations": "  ", "timeWindow": "soon", "confidence": 80}`
		if _, err := parseNarrative(raw); err == nil {
			t.Error("expected error for blank recommendations")
		}
	})
}

func TestNormalizeRiskLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"low", model.RiskLevelLow},
		{"MEDIUM", model.RiskLevelMedium},
		{" High ", model.RiskLevelHigh},
		{"critical", model.RiskLevelCritical},
		{"extreme", ""},
	}
	for _, tc := range cases {
		if got := normalizeRiskLevel(tc.in); got != tc.want {
			t.Errorf("normalizeRiskLevel(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildNarrativePrompt(t *testing.T) {
	r := severeReading()
	prompt := buildNarrativePrompt(r, 93)

	for _, want := range []string{"Tunnel B", "93/100", "riskLevel", "timeWindow"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
