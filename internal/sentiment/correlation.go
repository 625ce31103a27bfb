package sentiment

import (
	"fmt"
	"math"
)

// Strength labels for |r|.
const (
	StrengthNegligible = "negligible"
	StrengthWeak       = "weak"
	StrengthModerate   = "moderate"
	StrengthStrong     = "strong"
	StrengthVeryStrong = "very strong"
)

const (
	DirectionPositive = "positive"
	DirectionNegative = "negative"
)

// Correlation is the outcome of correlating sentiment with team score.
// R is nil when there was not enough data.
type Correlation struct {
	R           *float64 `json:"r" bson:"r"`
	N           int      `json:"n" bson:"n"`
	Strength    string   `json:"strength,omitempty" bson:"strength,omitempty"`
	Direction   string   `json:"direction,omitempty" bson:"direction,omitempty"`
	Explanation string   `json:"explanation" bson:"explanation"`
}

// Defined reports whether a coefficient was computed.
func (c Correlation) Defined() bool { return c.R != nil }

// usable drops points that carry no signal: both coordinates exactly zero.
func usable(points []AnalysisPoint) []AnalysisPoint {
	out := make([]AnalysisPoint, 0, len(points))
	for _, p := range points {
		if p.SentimentScore == 0 && p.TeamScore == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Pearson computes the sample correlation coefficient between sentiment
// (x) and team score (y). It returns the number of points used and
// ErrInsufficientData when fewer than two remain. A series without variance
// yields r = 0.
func Pearson(points []AnalysisPoint) (float64, int, error) {
	pts := usable(points)
	n := len(pts)
	if n < 2 {
		return 0, n, ErrInsufficientData
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	constX, constY := true, true
	for i, p := range pts {
		x, y := p.SentimentScore, p.TeamScore
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
		if i > 0 {
			constX = constX && x == pts[0].SentimentScore
			constY = constY && y == pts[0].TeamScore
		}
	}
	if constX || constY {
		return 0, n, nil
	}

	fn := float64(n)
	num := fn*sumXY - sumX*sumY
	den := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if den == 0 || math.IsNaN(den) {
		return 0, n, nil
	}
	r := num / den
	return math.Max(-1, math.Min(1, r)), n, nil
}

// StrengthOf classifies the magnitude of r.
func StrengthOf(r float64) string {
	a := math.Abs(r)
	switch {
	case a < 0.1:
		return StrengthNegligible
	case a < 0.3:
		return StrengthWeak
	case a < 0.5:
		return StrengthModerate
	case a < 0.7:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}

// DirectionOf is positive only for r > 0.
func DirectionOf(r float64) string {
	if r > 0 {
		return DirectionPositive
	}
	return DirectionNegative
}

// Correlate runs Pearson over points and labels the result.
func Correlate(points []AnalysisPoint) Correlation {
	r, n, err := Pearson(points)
	if err != nil {
		return Correlation{
			N: n,
			Explanation: fmt.Sprintf(
				"Not enough feedback with a sentiment or team score to measure a correlation (need at least 2, have %d).", n),
		}
	}
	strength, direction := StrengthOf(r), DirectionOf(r)
	return Correlation{
		R:         &r,
		N:         n,
		Strength:  strength,
		Direction: direction,
		Explanation: fmt.Sprintf(
			"r = %.2f across %d feedback entries: a %s %s correlation between feedback sentiment and team score.",
			r, n, strength, direction),
	}
}
