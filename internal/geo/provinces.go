// Package geo is the static geographic reference (C1): 81 provinces, their
// districts, the seven standard regions, the province-neighbor graph, and
// alias resolution. Everything here is immutable and precomputed once at
// package init into O(1) lookup maps, mirroring the teacher's own
// process-singleton static map pattern (models.defaultNetworks /
// models.SupportedNetworks in the teacher's network table).
package geo

// Province is one of Turkey's 81 administrative divisions.
type Province struct {
	Code          int      // plate code, 1..81
	CanonicalName string   // display name, Turkish orthography
	AsciiName     string   // ascii-folded canonical form, used as map key
	Region        string   // one of the seven region keys, see regions.go
	Aliases       []string // ascii-folded alternate names/abbreviations
}

// provinceSeed is the authoritative source list; everything else in this
// package is derived from it at init time.
var provinceSeed = []Province{
	{1, "Adana", "adana", RegionAkdeniz, nil},
	{2, "Adıyaman", "adiyaman", RegionGuneydoguAnadolu, nil},
	{3, "Afyonkarahisar", "afyonkarahisar", RegionEge, []string{"afyon"}},
	{4, "Ağrı", "agri", RegionDoguAnadolu, nil},
	{5, "Amasya", "amasya", RegionKaradeniz, nil},
	{6, "Ankara", "ankara", RegionIcAnadolu, nil},
	{7, "Antalya", "antalya", RegionAkdeniz, nil},
	{8, "Artvin", "artvin", RegionKaradeniz, nil},
	{9, "Aydın", "aydin", RegionEge, nil},
	{10, "Balıkesir", "balikesir", RegionMarmara, nil},
	{11, "Bilecik", "bilecik", RegionMarmara, nil},
	{12, "Bingöl", "bingol", RegionDoguAnadolu, nil},
	{13, "Bitlis", "bitlis", RegionDoguAnadolu, nil},
	{14, "Bolu", "bolu", RegionKaradeniz, nil},
	{15, "Burdur", "burdur", RegionAkdeniz, nil},
	{16, "Bursa", "bursa", RegionMarmara, nil},
	{17, "Çanakkale", "canakkale", RegionMarmara, nil},
	{18, "Çankırı", "cankiri", RegionIcAnadolu, nil},
	{19, "Çorum", "corum", RegionKaradeniz, nil},
	{20, "Denizli", "denizli", RegionEge, nil},
	{21, "Diyarbakır", "diyarbakir", RegionGuneydoguAnadolu, []string{"diyarbakir", "diyarbekir"}},
	{22, "Edirne", "edirne", RegionMarmara, nil},
	{23, "Elazığ", "elazig", RegionDoguAnadolu, nil},
	{24, "Erzincan", "erzincan", RegionDoguAnadolu, nil},
	{25, "Erzurum", "erzurum", RegionDoguAnadolu, nil},
	{26, "Eskişehir", "eskisehir", RegionIcAnadolu, nil},
	{27, "Gaziantep", "gaziantep", RegionGuneydoguAnadolu, []string{"antep"}},
	{28, "Giresun", "giresun", RegionKaradeniz, nil},
	{29, "Gümüşhane", "gumushane", RegionKaradeniz, nil},
	{30, "Hakkari", "hakkari", RegionDoguAnadolu, nil},
	{31, "Hatay", "hatay", RegionAkdeniz, []string{"antakya"}},
	{32, "Isparta", "isparta", RegionAkdeniz, nil},
	{33, "Mersin", "mersin", RegionAkdeniz, []string{"icel"}},
	{34, "İstanbul", "istanbul", RegionMarmara, []string{"ist", "stanbul"}},
	{35, "İzmir", "izmir", RegionEge, nil},
	{36, "Kars", "kars", RegionDoguAnadolu, nil},
	{37, "Kastamonu", "kastamonu", RegionKaradeniz, nil},
	{38, "Kayseri", "kayseri", RegionIcAnadolu, nil},
	{39, "Kırklareli", "kirklareli", RegionMarmara, nil},
	{40, "Kırşehir", "kirsehir", RegionIcAnadolu, nil},
	{41, "Kocaeli", "kocaeli", RegionMarmara, []string{"izmit"}},
	{42, "Konya", "konya", RegionIcAnadolu, nil},
	{43, "Kütahya", "kutahya", RegionEge, nil},
	{44, "Malatya", "malatya", RegionDoguAnadolu, nil},
	{45, "Manisa", "manisa", RegionEge, nil},
	{46, "Kahramanmaraş", "kahramanmaras", RegionAkdeniz, []string{"maras"}},
	{47, "Mardin", "mardin", RegionGuneydoguAnadolu, nil},
	{48, "Muğla", "mugla", RegionEge, nil},
	{49, "Muş", "mus", RegionDoguAnadolu, nil},
	{50, "Nevşehir", "nevsehir", RegionIcAnadolu, nil},
	{51, "Niğde", "nigde", RegionIcAnadolu, nil},
	{52, "Ordu", "ordu", RegionKaradeniz, nil},
	{53, "Rize", "rize", RegionKaradeniz, nil},
	{54, "Sakarya", "sakarya", RegionMarmara, []string{"adapazari"}},
	{55, "Samsun", "samsun", RegionKaradeniz, nil},
	{56, "Siirt", "siirt", RegionGuneydoguAnadolu, nil},
	{57, "Sinop", "sinop", RegionKaradeniz, nil},
	{58, "Sivas", "sivas", RegionIcAnadolu, nil},
	{59, "Tekirdağ", "tekirdag", RegionMarmara, nil},
	{60, "Tokat", "tokat", RegionKaradeniz, nil},
	{61, "Trabzon", "trabzon", RegionKaradeniz, nil},
	{62, "Tunceli", "tunceli", RegionDoguAnadolu, []string{"dersim"}},
	{63, "Şanlıurfa", "sanliurfa", RegionGuneydoguAnadolu, []string{"urfa"}},
	{64, "Uşak", "usak", RegionEge, nil},
	{65, "Van", "van", RegionDoguAnadolu, nil},
	{66, "Yozgat", "yozgat", RegionIcAnadolu, nil},
	{67, "Zonguldak", "zonguldak", RegionKaradeniz, nil},
	{68, "Aksaray", "aksaray", RegionIcAnadolu, nil},
	{69, "Bayburt", "bayburt", RegionKaradeniz, nil},
	{70, "Karaman", "karaman", RegionIcAnadolu, nil},
	{71, "Kırıkkale", "kirikkale", RegionIcAnadolu, nil},
	{72, "Batman", "batman", RegionGuneydoguAnadolu, nil},
	{73, "Şırnak", "sirnak", RegionGuneydoguAnadolu, nil},
	{74, "Bartın", "bartin", RegionKaradeniz, nil},
	{75, "Ardahan", "ardahan", RegionDoguAnadolu, nil},
	{76, "Iğdır", "igdir", RegionDoguAnadolu, nil},
	{77, "Yalova", "yalova", RegionMarmara, nil},
	{78, "Karabük", "karabuk", RegionKaradeniz, nil},
	{79, "Kilis", "kilis", RegionGuneydoguAnadolu, nil},
	{80, "Osmaniye", "osmaniye", RegionAkdeniz, nil},
	{81, "Düzce", "duzce", RegionKaradeniz, nil},
}
