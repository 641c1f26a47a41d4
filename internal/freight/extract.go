package freight

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kargotakip/freightline/internal/geo"
	"github.com/kargotakip/freightline/internal/models"
	"github.com/kargotakip/freightline/internal/normalize"
)

var weightPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(ton|kg)`)

// ExtractWeight finds the first weight reading in normalized text. A kg
// reading of 1000 or more is folded into tons (divided by 1000) only when
// no explicit ton reading exists anywhere in the text, per spec §4.4.
func ExtractWeight(normalized string) *models.Weight {
	matches := weightPattern.FindAllStringSubmatch(normalized, -1)
	if len(matches) == 0 {
		return nil
	}

	hasTonReading := false
	for _, m := range matches {
		if m[2] == "ton" {
			hasTonReading = true
			break
		}
	}

	first := matches[0]
	value, err := strconv.ParseFloat(strings.ReplaceAll(first[1], ",", "."), 64)
	if err != nil {
		return nil
	}
	unit := models.WeightUnitTon
	if first[2] == "kg" {
		unit = models.WeightUnitKg
		if !hasTonReading && value >= 1000 {
			value = value / 1000
			unit = models.WeightUnitTon
		}
	}
	return &models.Weight{Value: value, Unit: unit}
}

var phoneDigitsPattern = regexp.MustCompile(`\d{10,}`)

// ExtractPhones pulls digit runs of length >= 10 out of the original
// (non-ascii-folded) text, since phone digits are unaffected by Turkish
// case-folding but punctuation inside a number must survive stripping.
func ExtractPhones(originalText string) []models.Phone {
	cleaned := stripPhonePunctuation(originalText)
	raw := phoneDigitsPattern.FindAllString(cleaned, -1)
	phones := make([]models.Phone, 0, len(raw))
	for _, r := range raw {
		phones = append(phones, models.Phone{Original: r, Normalized: normalizePhone(r)})
	}
	return phones
}

// stripPhonePunctuation removes every space, paren, dash and dot from the
// whole string so "0532 111 22 33" collapses to one digit run before the
// regex scans for it.
func stripPhonePunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '-', '(', ')', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizePhone strips the country-code/trunk prefix to produce a bare
// 5XXXXXXXXX mobile key.
func normalizePhone(digits string) string {
	switch {
	case strings.HasPrefix(digits, "90") && len(digits) >= 12:
		return digits[2:]
	case strings.HasPrefix(digits, "0") && len(digits) >= 11:
		return digits[1:]
	default:
		if len(digits) > 10 {
			return digits[len(digits)-10:]
		}
		return digits
	}
}

// ExtractCargoType delegates to the shared cargo-type table also used by
// the location parser (spec §4.3 step 9 / §4.4).
func ExtractCargoType(normalized string) string {
	return matchCargoType(normalized)
}

// IsLikelyLogisticsMessage is the cheap pre-filter from §4.4 that lets the
// ingestion consumer discard chatter before running the full parse.
func IsLikelyLogisticsMessage(normalized string) bool {
	tokens := strings.Fields(normalized)
	for _, tok := range tokens {
		for _, pat := range vehiclePatterns {
			if tok == pat.token {
				return true
			}
		}
	}
	if phoneDigitsPattern.MatchString(stripPhonePunctuation(normalized)) {
		return true
	}
	for _, tok := range tokens {
		stripped := normalize.StripSuffix(tok)
		if stripped.IsOrigin || stripped.IsDestination {
			return true
		}
		if _, ok := geo.ResolveProvince(stripped.Stem); ok {
			return true
		}
		if districts := geo.ResolveDistricts(stripped.Stem); len(districts) > 0 {
			return true
		}
	}
	return false
}
