package freight

import "github.com/kargotakip/freightline/internal/models"

// confidenceWeights are the per-signal contributions to a ParsedMessage's
// confidence score, per spec §4.4.
const (
	weightOrigin      = 0.25
	weightDestination = 0.25
	weightVehicle     = 0.15
	weightPhone       = 0.15
	weightWeight      = 0.10
	weightCargo       = 0.10
)

// ScoreConfidence sums the present-signal weights and buckets the result
// into a ConfidenceLevel, recording which signals fired.
func ScoreConfidence(msg *models.ParsedMessage) (float64, models.ConfidenceLevel, []string) {
	var score float64
	var factors []string

	if msg.Origin != nil {
		score += weightOrigin
		factors = append(factors, "origin")
	}
	if msg.Destination != nil {
		score += weightDestination
		factors = append(factors, "destination")
	}
	if msg.Vehicle.VehicleType != "" || msg.Vehicle.BodyType != "" {
		score += weightVehicle
		factors = append(factors, "vehicle_or_body")
	}
	if len(msg.Phones) > 0 {
		score += weightPhone
		factors = append(factors, "phone")
	}
	if msg.Weight != nil {
		score += weightWeight
		factors = append(factors, "weight")
	}
	if msg.CargoType != "" {
		score += weightCargo
		factors = append(factors, "cargo")
	}

	var level models.ConfidenceLevel
	switch {
	case score >= 0.55:
		level = models.ConfidenceHigh
	case score >= 0.30:
		level = models.ConfidenceMedium
	default:
		level = models.ConfidenceLow
	}
	return score, level, factors
}
