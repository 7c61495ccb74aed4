package main

import (
	"github.com/cloudboostingservice/client-sm-lambdaGD/shared/models"
)

// Threshold is the minimum severity that gets posted. It is compared against
// the exact labels LOW and MEDIUM; any other value requires High.
type Threshold string

const (
	ThresholdLow    Threshold = "LOW"
	ThresholdMedium Threshold = "MEDIUM"
	ThresholdHigh   Threshold = "HIGH"
)

type severityLevel string

const (
	severityNone   severityLevel = ""
	severityLow    severityLevel = "Low"
	severityMedium severityLevel = "Medium"
	severityHigh   severityLevel = "High"
)

const (
	colorDefault = "#7CD197"
	colorLow     = "#e2d43b"
	colorMedium  = "#ff8c00"
	colorHigh    = "#ad0614"
)

type classification struct {
	Level severityLevel
	Color string
	Skip  bool
}

func parseThreshold(s string) Threshold {
	switch t := Threshold(s); t {
	case ThresholdLow, ThresholdMedium:
		return t
	default:
		return ThresholdHigh
	}
}

// classify buckets a score and decides whether the threshold suppresses it.
// A NaN score fails every comparison and lands on the default branch, which
// is always suppressed.
func classify(score models.SeverityScore, threshold Threshold) classification {
	switch {
	case score < 4.0:
		return classification{Level: severityLow, Color: colorLow, Skip: threshold != ThresholdLow}
	case score < 7.0:
		return classification{Level: severityMedium, Color: colorMedium,
			Skip: threshold != ThresholdLow && threshold != ThresholdMedium}
	case score >= 7.0:
		return classification{Level: severityHigh, Color: colorHigh}
	default:
		return classification{Level: severityNone, Color: colorDefault, Skip: true}
	}
}
