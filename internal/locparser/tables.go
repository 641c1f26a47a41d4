package locparser

// vehicleTermsNotLocations are ascii stems that look like place names in
// isolation but are actually vehicle/body vocabulary; they must never
// resolve to a province or district.
var vehicleTermsNotLocations = map[string]bool{
	"arac": true, "kamyon": true, "tir": true, "dorse": true,
	"kasa": true, "kas": true, "kapali": true, "kapal": true,
	"tenteli": true, "damperli": true, "frigo": true, "panelvan": true,
	"treyler": true, "tanker": true, "lowbed": true, "mega": true,
	"jumbo": true, "konteyner": true,
}

// commonWordsNotLocations are frequent Turkish words whose ascii form
// happens to collide with a district or province alias.
var commonWordsNotLocations = map[string]bool{
	"olur": true, "var": true, "yok": true, "alan": true,
	"bey": true, "ova": true,
}

// internationalTerms triggers internationalDestination when present as a
// token: named neighboring/trade countries plus the two generic terms.
var internationalTerms = map[string]bool{
	"almanya": true, "bulgaristan": true, "yunanistan": true, "gurcistan": true,
	"iran": true, "irak": true, "suriye": true, "azerbaycan": true,
	"rusya": true, "italya": true, "fransa": true, "hollanda": true,
	"polonya": true, "romanya": true, "avusturya": true,
	"yurtdisi": true, "ihracat": true,
}

// cargoTypePatterns is the domain vocabulary table for freight content,
// used by both the location parser (cargo-type step) and the
// freight-posting parser.
var cargoTypePatterns = []struct {
	keywords []string
	cargo    string
}{
	{[]string{"parsiyel", "parca"}, "parsiyel"},
	{[]string{"komple", "full"}, "komple"},
	{[]string{"palet"}, "palet"},
	{[]string{"demir", "celik", "profil"}, "demir"},
	{[]string{"tekstil", "kumas"}, "tekstil"},
	{[]string{"gida", "yiyecek"}, "gida"},
	{[]string{"mobilya"}, "mobilya"},
	{[]string{"insaat", "cimento"}, "insaat"},
	{[]string{"makine", "ekipman"}, "makine"},
}

// matchCargoType scans normalized text for the first cargo pattern whose
// keyword occurs as a substring, returning "" if nothing matches.
func matchCargoType(normalized string) string {
	for _, pat := range cargoTypePatterns {
		for _, kw := range pat.keywords {
			if containsWord(normalized, kw) {
				return pat.cargo
			}
		}
	}
	return ""
}

func containsWord(haystack, needle string) bool {
	return indexOf(haystack, needle) >= 0
}

func indexOf(s, substr string) int {
	n, m := len(s), len(substr)
	if m == 0 || m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == substr {
			return i
		}
	}
	return -1
}
