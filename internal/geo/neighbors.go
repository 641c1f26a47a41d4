package geo

// neighborEdges is the authoritative edge list of the province-adjacency
// graph (spec §6.2: "Neighbor graph per province, symmetric"). A few pairs
// appear in both orders; init() mirrors every pair into neighborIndex,
// skipping duplicates, so neighbors() is a
// simple O(1) map lookup in both directions, the same precompute-once
// pattern used for regionProvinceIndex.
var neighborEdges = [][2]string{
	{"adana", "mersin"}, {"adana", "nigde"}, {"adana", "kayseri"}, {"adana", "kahramanmaras"}, {"adana", "osmaniye"}, {"adana", "hatay"},
	{"adiyaman", "malatya"}, {"adiyaman", "kahramanmaras"}, {"adiyaman", "gaziantep"}, {"adiyaman", "sanliurfa"}, {"adiyaman", "diyarbakir"},
	{"afyonkarahisar", "kutahya"}, {"afyonkarahisar", "eskisehir"}, {"afyonkarahisar", "konya"}, {"afyonkarahisar", "isparta"}, {"afyonkarahisar", "usak"}, {"afyonkarahisar", "denizli"},
	{"agri", "kars"}, {"agri", "ardahan"}, {"agri", "igdir"}, {"agri", "van"}, {"agri", "bitlis"}, {"agri", "mus"}, {"agri", "erzurum"},
	{"amasya", "tokat"}, {"amasya", "corum"}, {"amasya", "samsun"},
	{"ankara", "cankiri"}, {"ankara", "kirikkale"}, {"ankara", "kayseri"}, {"ankara", "aksaray"}, {"ankara", "konya"}, {"ankara", "eskisehir"}, {"ankara", "bolu"}, {"ankara", "kirsehir"},
	{"antalya", "mugla"}, {"antalya", "burdur"}, {"antalya", "isparta"}, {"antalya", "konya"}, {"antalya", "karaman"}, {"antalya", "mersin"},
	{"artvin", "rize"}, {"artvin", "erzurum"}, {"artvin", "ardahan"},
	{"aydin", "izmir"}, {"aydin", "mugla"}, {"aydin", "denizli"}, {"aydin", "manisa"},
	{"balikesir", "canakkale"}, {"balikesir", "bursa"}, {"balikesir", "kutahya"}, {"balikesir", "manisa"}, {"balikesir", "izmir"},
	{"bilecik", "kocaeli"}, {"bilecik", "sakarya"}, {"bilecik", "bursa"}, {"bilecik", "kutahya"}, {"bilecik", "eskisehir"},
	{"bingol", "erzurum"}, {"bingol", "mus"}, {"bingol", "diyarbakir"}, {"bingol", "elazig"}, {"bingol", "bitlis"}, {"bingol", "tunceli"},
	{"bitlis", "van"}, {"bitlis", "siirt"}, {"bitlis", "batman"}, {"bitlis", "mus"},
	{"bolu", "duzce"}, {"bolu", "zonguldak"}, {"bolu", "eskisehir"}, {"bolu", "kastamonu"}, {"bolu", "cankiri"}, {"bolu", "karabuk"},
	{"burdur", "isparta"}, {"burdur", "denizli"}, {"burdur", "mugla"},
	{"bursa", "yalova"}, {"bursa", "kocaeli"}, {"bursa", "kutahya"},
	{"cankiri", "kastamonu"}, {"cankiri", "corum"}, {"cankiri", "yozgat"}, {"cankiri", "kirikkale"}, {"cankiri", "karabuk"},
	{"corum", "samsun"}, {"corum", "tokat"}, {"corum", "yozgat"}, {"corum", "kastamonu"},
	{"denizli", "usak"}, {"denizli", "mugla"},
	{"diyarbakir", "mardin"}, {"diyarbakir", "mus"}, {"diyarbakir", "elazig"}, {"diyarbakir", "sanliurfa"}, {"diyarbakir", "batman"},
	{"edirne", "kirklareli"}, {"edirne", "tekirdag"},
	{"elazig", "erzincan"}, {"elazig", "tunceli"}, {"elazig", "malatya"},
	{"erzincan", "gumushane"}, {"erzincan", "bayburt"}, {"erzincan", "erzurum"}, {"erzincan", "tunceli"}, {"erzincan", "sivas"},
	{"erzurum", "bayburt"}, {"erzurum", "kars"}, {"erzurum", "ardahan"},
	{"eskisehir", "konya"}, {"eskisehir", "sakarya"},
	{"gaziantep", "kahramanmaras"}, {"gaziantep", "sanliurfa"}, {"gaziantep", "kilis"}, {"gaziantep", "osmaniye"}, {"gaziantep", "hatay"},
	{"giresun", "trabzon"}, {"giresun", "gumushane"}, {"giresun", "sivas"}, {"giresun", "ordu"},
	{"gumushane", "trabzon"}, {"gumushane", "bayburt"}, {"gumushane", "sivas"},
	{"hakkari", "van"}, {"hakkari", "sirnak"},
	{"hatay", "osmaniye"},
	{"igdir", "kars"}, {"igdir", "ardahan"},
	{"isparta", "konya"},
	{"istanbul", "kocaeli"}, {"istanbul", "tekirdag"}, {"istanbul", "yalova"},
	{"izmir", "manisa"},
	{"kahramanmaras", "kayseri"}, {"kahramanmaras", "sivas"}, {"kahramanmaras", "malatya"}, {"kahramanmaras", "osmaniye"},
	{"karabuk", "bartin"}, {"karabuk", "kastamonu"}, {"karabuk", "zonguldak"},
	{"karaman", "konya"}, {"karaman", "mersin"},
	{"kars", "ardahan"},
	{"kastamonu", "sinop"}, {"kastamonu", "samsun"}, {"kastamonu", "bartin"},
	{"kayseri", "sivas"}, {"kayseri", "yozgat"}, {"kayseri", "kirsehir"}, {"kayseri", "nigde"}, {"kayseri", "nevsehir"}, {"kayseri", "malatya"}, {"kayseri", "kirikkale"},
	{"kirikkale", "corum"}, {"kirikkale", "yozgat"}, {"kirikkale", "kirsehir"},
	{"kirklareli", "tekirdag"},
	{"kirsehir", "yozgat"}, {"kirsehir", "nevsehir"}, {"kirsehir", "aksaray"},
	{"kilis", "hatay"},
	{"kocaeli", "sakarya"}, {"kocaeli", "yalova"},
	{"konya", "nigde"}, {"konya", "aksaray"}, {"konya", "mersin"},
	{"kutahya", "usak"},
	{"malatya", "sivas"}, {"malatya", "erzincan"},
	{"manisa", "kutahya"}, {"manisa", "usak"},
	{"mardin", "batman"}, {"mardin", "sirnak"}, {"mardin", "sanliurfa"},
	{"mersin", "nigde"},
	{"mugla", "denizli"},
	{"mus", "diyarbakir"},
	{"nevsehir", "aksaray"}, {"nevsehir", "nigde"},
	{"nigde", "aksaray"},
	{"ordu", "sivas"}, {"ordu", "tokat"}, {"ordu", "samsun"},
	{"rize", "trabzon"}, {"rize", "erzurum"}, {"rize", "bayburt"},
	{"sakarya", "bolu"}, {"sakarya", "duzce"},
	{"samsun", "sinop"}, {"samsun", "tokat"},
	{"sanliurfa", "mardin"},
	{"siirt", "sirnak"}, {"siirt", "batman"}, {"siirt", "mardin"}, {"siirt", "van"},
	{"sirnak", "van"},
	{"sivas", "yozgat"}, {"sivas", "tokat"},
	{"tekirdag", "canakkale"},
	{"tokat", "yozgat"},
	{"trabzon", "bayburt"},
	{"tunceli", "mus"},
	{"usak", "kutahya"},
	{"van", "mus"},
	{"yozgat", "amasya"},
	{"zonguldak", "duzce"}, {"zonguldak", "bartin"},
	{"aksaray", "ankara"},
	{"batman", "siirt"},
	{"duzce", "kastamonu"},
	{"ardahan", "kars"},
}

var neighborIndex map[string]map[string]bool

func init() {
	neighborIndex = make(map[string]map[string]bool)
	for _, p := range provinceSeed {
		neighborIndex[p.AsciiName] = make(map[string]bool)
	}
	for _, edge := range neighborEdges {
		a, b := edge[0], edge[1]
		if _, ok := neighborIndex[a]; !ok {
			continue
		}
		if _, ok := neighborIndex[b]; !ok {
			continue
		}
		if a == b {
			continue
		}
		neighborIndex[a][b] = true
		neighborIndex[b][a] = true
	}
}

// Neighbors returns the ascii names of provinces that share a border with
// provinceAscii, in no particular order. Used for the nearby-search
// suggestion when a query returns zero results (spec §6.3).
func Neighbors(provinceAscii string) []string {
	set, ok := neighborIndex[provinceAscii]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	return out
}

// AreNeighbors reports whether two provinces share a border.
func AreNeighbors(a, b string) bool {
	set, ok := neighborIndex[a]
	if !ok {
		return false
	}
	return set[b]
}
