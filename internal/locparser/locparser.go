// Package locparser implements the token-pipeline location parser (C3): it
// turns a single Turkish utterance into a models.ParsedLocations record by
// composing the normalizer (C2) over the geographic reference (C1).
package locparser

import (
	"strings"

	"github.com/kargotakip/freightline/internal/geo"
	"github.com/kargotakip/freightline/internal/models"
	"github.com/kargotakip/freightline/internal/normalize"
)

// resolution is one token's successful place-name resolution, before the
// residual-assignment pass decides whether it becomes origin, destination,
// or part of a multi-destination list.
type resolution struct {
	text          string
	provinceAscii string
	provinceCode  int
	districtAscii string
	isOrigin      bool
	isDestination bool
}

// Parse runs the full C3 algorithm over a single utterance. It is total:
// on no matches it returns a zero-value ParsedLocations, never an error.
func Parse(text string) models.ParsedLocations {
	var result models.ParsedLocations

	normalized := normalize.Preprocess(text)
	tokens := normalize.Tokenize(normalized)

	// Step 2: international sweep.
	for _, tok := range tokens {
		if internationalTerms[tok] || internationalTerms[normalize.StripSuffix(tok).Stem] {
			result.InternationalDestination = true
			break
		}
	}

	// Step 3: region sweep.
	sweepRegion(normalized, tokens, &result)

	// Step 4: Istanbul-side sweep.
	sweepIstanbulSide(tokens, &result)

	// Step 5: per-token resolution.
	var origin, destination *resolution
	var residuals []resolution

	for _, tok := range tokens {
		res, ok := resolveToken(tok)
		if !ok {
			continue
		}
		switch {
		case res.isOrigin && origin == nil:
			origin = res
		case res.isDestination && destination == nil:
			destination = res
		default:
			residuals = append(residuals, *res)
		}
	}

	// Step 7: residual assignment.
	applyResiduals(origin, destination, residuals, &result)

	if origin != nil {
		result.Origin = origin.text
		result.OriginProvince = origin.provinceAscii
		result.OriginDistrict = origin.districtAscii
	}
	if destination != nil {
		result.Destination = destination.text
		result.DestinationProvince = destination.provinceAscii
		result.DestinationDistrict = destination.districtAscii
	}

	// Step 8: same-province detection.
	if origin != nil && destination != nil &&
		origin.provinceAscii != "" && origin.provinceAscii == destination.provinceAscii &&
		origin.districtAscii != destination.districtAscii {
		result.SameProvinceSearch = true
	}

	// Step 9: cargo type.
	result.CargoType = matchCargoType(normalized)

	return result
}

// resolveToken implements step 5(a-d): skip vehicle/common-word stems,
// resolve the stripped stem, fall back to the unstripped token, and retry
// with shortest-first suffix candidates if the longest-first stem failed.
func resolveToken(tok string) (*resolution, bool) {
	stripped := normalize.StripSuffix(tok)

	if !isSkippable(stripped.Stem) {
		if loc, ok := resolvePlace(stripped.Stem); ok {
			return &resolution{
				text: stripped.Stem, provinceAscii: loc.provinceAscii, provinceCode: loc.provinceCode,
				districtAscii: loc.districtAscii, isOrigin: stripped.IsOrigin, isDestination: stripped.IsDestination,
			}, true
		}
	}

	// Unstripped fallback: if the stem didn't resolve but the raw token
	// does, use it with no direction (step 5c).
	if !isSkippable(tok) && tok != stripped.Stem {
		if loc, ok := resolvePlace(tok); ok {
			return &resolution{text: tok, provinceAscii: loc.provinceAscii, provinceCode: loc.provinceCode, districtAscii: loc.districtAscii}, true
		}
	}

	// Shortest-first retry only applies when a suffix was actually
	// stripped off in the first place (step 5d).
	if stripped.IsOrigin || stripped.IsDestination {
		for _, cand := range normalize.StripSuffixShortestFirst(tok) {
			if isSkippable(cand.Stem) {
				continue
			}
			if loc, ok := resolvePlace(cand.Stem); ok {
				return &resolution{
					text: cand.Stem, provinceAscii: loc.provinceAscii, provinceCode: loc.provinceCode,
					districtAscii: loc.districtAscii, isOrigin: cand.IsOrigin, isDestination: cand.IsDestination,
				}, true
			}
		}
	}

	return nil, false
}

func isSkippable(stem string) bool {
	return vehicleTermsNotLocations[stem] || commonWordsNotLocations[stem]
}

type placeMatch struct {
	provinceAscii string
	provinceCode  int
	districtAscii string
}

// resolvePlace tries the district table first (more specific; first match
// wins when a name is ambiguous across provinces, per spec §8 scenario 6),
// then falls back to a direct province/alias lookup.
func resolvePlace(stem string) (placeMatch, bool) {
	if districts := geo.ResolveDistricts(stem); len(districts) > 0 {
		d := districts[0]
		if p, ok := geo.ProvinceByCode(d.ParentProvinceCode); ok {
			return placeMatch{provinceAscii: p.AsciiName, provinceCode: p.Code, districtAscii: d.AsciiName}, true
		}
	}
	if p, ok := geo.ResolveProvince(stem); ok {
		return placeMatch{provinceAscii: p.AsciiName, provinceCode: p.Code}, true
	}
	return placeMatch{}, false
}

// applyResiduals implements step 7's three residual-assignment patterns.
func applyResiduals(origin, destination *resolution, residuals []resolution, result *models.ParsedLocations) {
	switch {
	case origin != nil && destination == nil && len(residuals) >= 2:
		for _, r := range residuals {
			result.Destinations = append(result.Destinations, r.text)
		}
	case origin == nil && destination == nil && len(residuals) >= 3:
		origin = &residuals[0]
		for _, r := range residuals[1:] {
			result.Destinations = append(result.Destinations, r.text)
		}
		result.Origin = origin.text
		result.OriginProvince = origin.provinceAscii
		result.OriginDistrict = origin.districtAscii
	default:
		if origin == nil && len(residuals) > 0 {
			origin = &residuals[0]
			result.Origin = origin.text
			result.OriginProvince = origin.provinceAscii
			result.OriginDistrict = origin.districtAscii
			residuals = residuals[1:]
		}
		if destination == nil && len(residuals) > 0 {
			destination = &residuals[0]
			result.Destination = destination.text
			result.DestinationProvince = destination.provinceAscii
			result.DestinationDistrict = destination.districtAscii
		}
	}
}

// sweepRegion implements §4.3 step 3 by sliding a 1-to-3 token window over
// the utterance and testing each window against the known region aliases
// (geo.ResolveRegionAlias expects an exact, already-normalized phrase).
func sweepRegion(normalized string, tokens []string, result *models.ParsedLocations) {
	_ = normalized
	const maxWindow = 3
	for size := 1; size <= maxWindow; size++ {
		for start := 0; start+size <= len(tokens); start++ {
			window := strings.Join(tokens[start:start+size], " ")
			regionKey, ok := geo.ResolveRegionAlias(window)
			if !ok {
				continue
			}
			if isOriginLikeContext(tokens, start+size) {
				result.OriginRegion = regionKey
			} else {
				result.DestinationRegion = regionKey
				result.Destinations = append(result.Destinations, geo.RegionProvinces(regionKey)...)
			}
			return
		}
	}
}

// isOriginLikeContext checks the token immediately following the matched
// region window for an origin suffix, approximating "nearest suffix
// context" from §4.3 step 3 without a full dependency parse.
func isOriginLikeContext(tokens []string, afterIndex int) bool {
	if afterIndex >= len(tokens) {
		return false
	}
	return normalize.StripSuffix(tokens[afterIndex]).IsOrigin
}

func sweepIstanbulSide(tokens []string, result *models.ParsedLocations) {
	hasAvrupa, hasAnadolu, hasYaka := false, false, false
	for _, tok := range tokens {
		switch {
		case tok == "avrupa":
			hasAvrupa = true
		case tok == "anadolu":
			hasAnadolu = true
		case strings.HasPrefix(tok, "yaka"):
			hasYaka = true
		}
	}
	switch {
	case hasAvrupa && hasYaka:
		result.IstanbulSide = models.IstanbulEuropean
	case hasAnadolu && hasYaka:
		result.IstanbulSide = models.IstanbulAsian
	}
}
