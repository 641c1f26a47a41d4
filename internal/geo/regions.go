package geo

// Region keys for the seven standard Turkish geographic regions (spec §6.2).
const (
	RegionMarmara           = "marmara"
	RegionEge               = "ege"
	RegionAkdeniz           = "akdeniz"
	RegionIcAnadolu         = "ic_anadolu"
	RegionKaradeniz         = "karadeniz"
	RegionDoguAnadolu       = "dogu_anadolu"
	RegionGuneydoguAnadolu  = "guneydogu_anadolu"
)

// regionAliases lets the region sweep (C3 step 3) recognize the common
// ascii-folded names and colloquial spellings drivers actually type.
var regionAliases = map[string]string{
	"marmara":               RegionMarmara,
	"marmara bolgesi":       RegionMarmara,
	"ege":                   RegionEge,
	"ege bolgesi":           RegionEge,
	"akdeniz":               RegionAkdeniz,
	"akdeniz bolgesi":       RegionAkdeniz,
	"ic anadolu":            RegionIcAnadolu,
	"icanadolu":             RegionIcAnadolu,
	"ic anadolu bolgesi":    RegionIcAnadolu,
	"karadeniz":             RegionKaradeniz,
	"karadeniz bolgesi":     RegionKaradeniz,
	"dogu anadolu":          RegionDoguAnadolu,
	"doguanadolu":           RegionDoguAnadolu,
	"dogu anadolu bolgesi":  RegionDoguAnadolu,
	"guneydogu":             RegionGuneydoguAnadolu,
	"guneydogu anadolu":     RegionGuneydoguAnadolu,
	"guneydoguanadolu":      RegionGuneydoguAnadolu,
	"guneydogu anadolu bolgesi": RegionGuneydoguAnadolu,
}

// RegionProvinces returns the ascii province names that belong to a region.
// O(1): backed by a precomputed map built in init().
func RegionProvinces(regionKey string) []string {
	out := regionProvinceIndex[regionKey]
	cp := make([]string, len(out))
	copy(cp, out)
	return cp
}

// ResolveRegionAlias maps free text (already normalized) to a region key, if
// the text names a region at all.
func ResolveRegionAlias(normalizedText string) (string, bool) {
	region, ok := regionAliases[normalizedText]
	return region, ok
}

var regionProvinceIndex map[string][]string

func init() {
	regionProvinceIndex = make(map[string][]string)
	for _, p := range provinceSeed {
		regionProvinceIndex[p.Region] = append(regionProvinceIndex[p.Region], p.AsciiName)
	}
}
