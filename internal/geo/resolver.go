package geo

import "strings"

// districtIndex maps a district ascii name to every province it belongs to.
// Built once at init time from districtSeed; len > 1 marks an ambiguous name
// (e.g. "edremit" resolves to both Balikesir and Van).
var districtIndex map[string][]District

// ambiguousDistricts is the set of district names with more than one owning
// province, derived from districtIndex.
var ambiguousDistricts map[string]bool

// provinceByAscii and aliasIndex back resolveProvince/alias lookup.
var provinceByAscii map[string]Province
var provinceByCode map[int]Province
var aliasIndex map[string]string

// istanbulSideByDistrict assigns Istanbul's intra-city districts to the side
// of the Bosphorus they sit on. Districts of other provinces, and any
// Istanbul district not listed, resolve to IstanbulSideUnknown.
var istanbulSideByDistrict = map[string]string{
	"besiktas": IstanbulSideEuropean, "sisli": IstanbulSideEuropean, "fatih": IstanbulSideEuropean,
	"bakirkoy": IstanbulSideEuropean, "beyoglu": IstanbulSideEuropean, "zeytinburnu": IstanbulSideEuropean,
	"gaziosmanpasa": IstanbulSideEuropean, "bagcilar": IstanbulSideEuropean, "bahcelievler": IstanbulSideEuropean,
	"kucukcekmece": IstanbulSideEuropean, "esenyurt": IstanbulSideEuropean, "silivri": IstanbulSideEuropean,
	"catalca": IstanbulSideEuropean, "avcilar": IstanbulSideEuropean, "beylikduzu": IstanbulSideEuropean,
	"arnavutkoy": IstanbulSideEuropean, "basaksehir": IstanbulSideEuropean, "eyupsultan": IstanbulSideEuropean,
	"gungoren": IstanbulSideEuropean, "kagithane": IstanbulSideEuropean,

	"kadikoy": IstanbulSideAsian, "uskudar": IstanbulSideAsian, "maltepe": IstanbulSideAsian,
	"kartal": IstanbulSideAsian, "pendik": IstanbulSideAsian, "tuzla": IstanbulSideAsian,
	"umraniye": IstanbulSideAsian, "atasehir": IstanbulSideAsian, "sancaktepe": IstanbulSideAsian,
	"sultanbeyli": IstanbulSideAsian, "sile": IstanbulSideAsian, "cekmekoy": IstanbulSideAsian,
	"beykoz": IstanbulSideAsian, "adalar": IstanbulSideAsian,
}

func init() {
	provinceByAscii = make(map[string]Province, len(provinceSeed))
	provinceByCode = make(map[int]Province, len(provinceSeed))
	aliasIndex = make(map[string]string)
	for _, p := range provinceSeed {
		provinceByAscii[p.AsciiName] = p
		provinceByCode[p.Code] = p
		for _, alias := range p.Aliases {
			aliasIndex[alias] = p.AsciiName
		}
	}

	districtIndex = make(map[string][]District)
	for _, p := range provinceSeed {
		for _, d := range districtSeed[p.AsciiName] {
			districtIndex[d] = append(districtIndex[d], District{AsciiName: d, ParentProvinceCode: p.Code})
		}
	}

	ambiguousDistricts = make(map[string]bool)
	for name, owners := range districtIndex {
		if len(owners) > 1 {
			ambiguousDistricts[name] = true
		}
	}
}

// ResolveProvince looks up a province by its ascii name or a known alias.
// Returns false if the name (after ascii-fold and alias resolution) does not
// match any of the 81 provinces.
func ResolveProvince(ascii string) (Province, bool) {
	ascii = strings.TrimSpace(ascii)
	if p, ok := provinceByAscii[ascii]; ok {
		return p, true
	}
	if canonical, ok := aliasIndex[ascii]; ok {
		return provinceByAscii[canonical], true
	}
	return Province{}, false
}

// ResolveDistricts returns every district entry matching the given ascii
// name, across all owning provinces. Most names return exactly one; an
// ambiguous name (see IsAmbiguousDistrict) returns more than one, ordered
// by provinceSeed's position (a fixed slice, not map iteration), which is
// why callers that want "the first resolution" (spec §8 scenario 6) can
// deterministically take index 0.
func ResolveDistricts(ascii string) []District {
	ascii = strings.TrimSpace(ascii)
	matches := districtIndex[ascii]
	out := make([]District, len(matches))
	copy(out, matches)
	return out
}

// ProvinceByCode looks up a province by its plate code (1..81).
func ProvinceByCode(code int) (Province, bool) {
	p, ok := provinceByCode[code]
	return p, ok
}

// IsAmbiguousDistrict reports whether a district ascii name belongs to more
// than one province.
func IsAmbiguousDistrict(ascii string) bool {
	return ambiguousDistricts[strings.TrimSpace(ascii)]
}

// IstanbulSideOf reports which side of the Bosphorus an Istanbul district
// sits on. Districts outside Istanbul, and unrecognized names, resolve to
// IstanbulSideUnknown.
func IstanbulSideOf(districtAscii string) string {
	side, ok := istanbulSideByDistrict[strings.TrimSpace(districtAscii)]
	if !ok {
		return IstanbulSideUnknown
	}
	return side
}

// IstanbulSide string values, mirrored from models.IstanbulSide so this
// package has no import dependency on models.
const (
	IstanbulSideEuropean = "european"
	IstanbulSideAsian    = "asian"
	IstanbulSideUnknown  = "unknown"
)
