package freight

import (
	"regexp"
	"strings"

	"github.com/kargotakip/freightline/internal/geo"
	"github.com/kargotakip/freightline/internal/models"
)

// routeSeparatorPattern matches "<word> <separator> <word>", where the
// separator is one of the hyphen-family characters or a slash, with or
// without surrounding whitespace. Run over normalized (ascii-folded,
// not-yet-tokenized) text so separators are still visible.
var routeSeparatorPattern = regexp.MustCompile(`([a-z]+)\s*[-–→/]\s*([a-z]+)`)

// ExtractAllRoutes implements the multi-route extractor from §4.4: it
// scans normalized text for "<provinceA> SEP <provinceB>" pairs, each
// optionally followed inline by a vehicle/body keyword, and returns a
// de-duplicated, order-preserving list.
func ExtractAllRoutes(normalized string) []models.Route {
	var routes []models.Route
	seen := make(map[string]bool)

	matches := routeSeparatorPattern.FindAllStringSubmatchIndex(normalized, -1)
	for _, m := range matches {
		originTok := normalized[m[2]:m[3]]
		destTok := normalized[m[4]:m[5]]

		originProvince, ok := geo.ResolveProvince(originTok)
		if !ok {
			continue
		}
		destProvince, ok := geo.ResolveProvince(destTok)
		if !ok {
			continue
		}

		key := originProvince.AsciiName + ">" + destProvince.AsciiName
		if seen[key] {
			continue
		}
		seen[key] = true

		route := models.Route{
			Origin:          originProvince.AsciiName,
			Destination:     destProvince.AsciiName,
			OriginCode:      originProvince.Code,
			DestinationCode: destProvince.Code,
		}
		route.Vehicle, route.BodyType = inlineVehicleAfter(normalized, m[5])
		routes = append(routes, route)
	}
	return routes
}

// inlineVehicleAfter looks at the handful of words following a route match
// for an immediate vehicle/body keyword, e.g. "antalya-istanbul tir".
func inlineVehicleAfter(normalized string, fromIdx int) (models.VehicleType, models.BodyType) {
	const lookaheadWords = 3
	tail := strings.Fields(normalized[fromIdx:])
	if len(tail) > lookaheadWords {
		tail = tail[:lookaheadWords]
	}
	info := ClassifyVehicle(tail)
	return info.VehicleType, info.BodyType
}
