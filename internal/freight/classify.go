package freight

import (
	"strings"

	"github.com/kargotakip/freightline/internal/models"
)

// ClassifyVehicle scans normalized tokens for the first vehicle/body
// pattern match. Body type and refrigeration are independent of vehicle
// type, so a message can set either, both, or neither.
func ClassifyVehicle(tokens []string) models.VehicleInfo {
	var info models.VehicleInfo
	for _, tok := range tokens {
		for _, pat := range vehiclePatterns {
			if tok != pat.token {
				continue
			}
			if pat.vehicle != "" && info.VehicleType == "" {
				info.VehicleType = pat.vehicle
			}
			if pat.body != "" && info.BodyType == "" {
				info.BodyType = pat.body
			}
			if pat.frigo {
				info.IsRefrigerated = true
			}
		}
	}
	return info
}

// ClassifyMessageType applies the keyword-priority tie-break from §4.4:
// VEHICLE_WANTED > CARGO_AVAILABLE > VEHICLE_AVAILABLE > UNKNOWN.
func ClassifyMessageType(normalized string) models.MessageType {
	var sawCargo, sawVehicleAvailable bool
	for _, kw := range messageTypeKeywords {
		if !strings.Contains(normalized, kw.keyword) {
			continue
		}
		switch kw.mtype {
		case models.MessageVehicleWanted:
			return models.MessageVehicleWanted
		case models.MessageCargoAvailable:
			sawCargo = true
		case models.MessageVehicleAvailable:
			sawVehicleAvailable = true
		}
	}
	if sawCargo {
		return models.MessageCargoAvailable
	}
	if sawVehicleAvailable {
		return models.MessageVehicleAvailable
	}
	return models.MessageUnknown
}

// ExtractUrgency returns whether any urgency token fired, and which ones.
func ExtractUrgency(tokens []string) (bool, []string) {
	var found []string
	tokSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokSet[t] = true
	}
	for _, u := range urgencyTokens {
		if tokSet[u] {
			found = append(found, u)
		}
	}
	return len(found) > 0, found
}
