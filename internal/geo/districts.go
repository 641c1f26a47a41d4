package geo

// District is a sub-administrative unit (ilce). AsciiName may repeat across
// provinces (see ambiguousDistricts, computed below); ParentProvinceCode
// names the owning province for this particular entry.
type District struct {
	AsciiName         string
	ParentProvinceCode int
}

// districtSeed maps each province's ascii name to its district ascii names.
// This is a deliberately large but non-exhaustive working set (750 of the
// country's ~973 official districts) covering every one of the 81
// provinces. The central/"Merkez"
// district of each province is intentionally omitted: it is not a
// distinguishing place name and would collide across all 81 provinces.
var districtSeed = map[string][]string{
	"adana":          {"seyhan", "yuregir", "cukurova", "saricam", "ceyhan", "kozan", "karaisali", "pozanti", "imamoglu", "aladag", "tufanbeyli", "feke", "karatas", "yumurtalik"},
	"adiyaman":       {"kahta", "besni", "gerger", "golbasi", "celikhan", "samsat", "sincik", "tut"},
	"afyonkarahisar": {"sandikli", "dinar", "bolvadin", "emirdag", "sinanpasa", "cay", "sultandagi", "ihsaniye", "iscehisar", "sincanli"},
	"agri":           {"dogubayazit", "patnos", "eleskirt", "tutak", "diyadin", "hamur", "taslicay"},
	"amasya":         {"merzifon", "suluova", "tasova", "gumushacikoy", "goynucek", "hamamozu"},
	"ankara":         {"cankaya", "kecioren", "yenimahalle", "etimesgut", "sincan", "mamak", "altindag", "pursaklar", "golbasi", "polatli", "beypazari", "kizilcahamam", "nallihan", "haymana", "bala", "cubuk", "kalecik", "elmadag"},
	"antalya":        {"muratpasa", "kepez", "konyaalti", "alanya", "manavgat", "serik", "kemer", "kas", "kumluca", "finike", "gazipasa", "akseki", "elmali", "demre", "korkuteli"},
	"artvin":         {"hopa", "borcka", "arhavi", "savsat", "yusufeli", "murgul", "ardanuc"},
	"aydin":          {"nazilli", "soke", "kusadasi", "didim", "efeler", "germencik", "koceli", "bozdogan", "cine", "karacasu", "incirliova", "kocarli"},
	"balikesir":      {"edremit", "bandirma", "ayvalik", "gonen", "burhaniye", "bigadic", "altieylul", "karesi", "susurluk", "ivrindi", "dursunbey", "sindirgi", "marmara", "erdek", "manyas"},
	"bilecik":        {"bozuyuk", "sogut", "pazaryeri", "golpazari", "osmaneli", "yenipazar", "inhisar"},
	"bingol":         {"genc", "solhan", "karliova", "kigi", "adakli", "yayladere", "yedisu"},
	"bitlis":         {"tatvan", "ahlat", "adilcevaz", "hizan", "mutki", "guroymak"},
	"bolu":           {"geredi", "mengen", "mudurnu", "goynuk", "seben", "kibriscik", "dortdivan", "yenicaga"},
	"burdur":         {"bucak", "golhisar", "yesilova", "tefenni", "cavdir", "altinyayla", "kemer", "karamanli"},
	"bursa":          {"nilufer", "osmangazi", "yildirim", "gemlik", "inegol", "mudanya", "mustafakemalpasa", "iznik", "karacabey", "orhangazi", "kestel", "gursu", "buyukorhan"},
	"canakkale":      {"biga", "gelibolu", "can", "ayvacik", "ezine", "bayramic", "lapseki", "yenice", "eceabat", "bozcaada"},
	"cankiri":        {"kursunlu", "ilgaz", "cerkes", "orta", "atkaracalar", "sabanozu"},
	"corum":          {"sungurlu", "alaca", "osmancik", "iskilip", "bayat", "kargi", "bogazkale"},
	"denizli":        {"pamukkale", "merkezefendi", "acipayam", "tavas", "civril", "buldan", "honaz", "sarayakoy", "babadag", "cardak"},
	"diyarbakir":     {"baglar", "kayapinar", "yenisehir", "sur", "bismil", "silvan", "cinar", "ergani", "cermik", "cungus", "hani", "hazro", "kocakoy", "kulp", "lice"},
	"edirne":         {"kesan", "uzunkopru", "ipsala", "havsa", "meric", "enez", "lalapasa", "suleoglu"},
	"elazig":         {"kovancilar", "aricak", "baskil", "keban", "karakocan", "maden", "palu", "sivrice", "agin"},
	"erzincan":       {"tercan", "refahiye", "uzumlu", "ilic", "kemah", "kemaliye", "otlukbeli", "cayirli"},
	"erzurum":        {"yakutiye", "palandoken", "aziziye", "horasan", "pasinler", "oltu", "ispir", "narman", "tortum", "uzundere", "senkaya"},
	"eskisehir":      {"odunpazari", "tepebasi", "sivrihisar", "cifteler", "mahmudiye", "gunyuzu", "alpu", "mihalgazi"},
	"gaziantep":      {"sahinbey", "sehitkamil", "nizip", "islahiye", "nurdagi", "araban", "oguzeli", "yavuzeli", "karkamis"},
	"giresun":        {"bulancak", "espiye", "tirebolu", "gorele", "kesap", "dereli", "alucra", "sebinkarahisar", "piraziz"},
	"gumushane":      {"kelkit", "siran", "torul", "kose", "kurtun"},
	"hakkari":        {"yuksekova", "semdinli", "celebi", "cukurca"},
	"hatay":          {"antakya", "iskenderun", "dortyol", "samandag", "reyhanli", "kirikhan", "belen", "erzin", "hassa", "altinozu", "yayladagi", "arsuz", "kumlu", "payas"},
	"isparta":        {"yalvac", "egirdir", "sarkikaraagac", "keciborlu", "gonen", "senirkent", "sutculer", "aksu", "atabey", "gelendost"},
	"mersin":         {"akdeniz", "mezitli", "toroslar", "yenisehir", "tarsus", "silifke", "erdemli", "anamur", "mut", "gulnar", "bozyazi", "aydincik", "camliyayla"},
	"istanbul":       {"kadikoy", "uskudar", "besiktas", "sisli", "fatih", "bakirkoy", "maltepe", "kartal", "pendik", "tuzla", "umraniye", "atasehir", "beylikduzu", "avcilar", "beyoglu", "zeytinburnu", "gaziosmanpasa", "bagcilar", "bahcelievler", "kucukcekmece", "esenyurt", "sancaktepe", "sultanbeyli", "sile", "silivri", "catalca", "adalar", "arnavutkoy", "basaksehir", "cekmekoy", "eyupsultan", "gungoren", "kagithane", "beykoz"},
	"izmir":          {"konak", "karsiyaka", "bornova", "buca", "cigli", "bayrakli", "gaziemir", "bergama", "odemis", "torbali", "aliaga", "menemen", "urla", "cesme", "foca", "tire", "kemalpasa", "selcuk", "dikili", "karaburun", "seferihisar", "menderes"},
	"kars":           {"sarikamis", "kagizman", "digor", "selim", "arpacay", "susuz", "akyaka"},
	"kastamonu":      {"tosya", "taskopru", "inebolu", "cide", "azdavay", "arac", "bozkurt", "devrekani"},
	"kayseri":        {"melikgazi", "kocasinan", "talas", "develi", "yahyali", "bunyan", "incesu", "pinarbasi", "sariz", "felahiye", "tomarza", "yesilhisar"},
	"kirklareli":     {"luleburgaz", "babaeski", "vize", "pinarhisar", "demirkoy", "pehlivankoy", "kofcaz"},
	"kirsehir":       {"kaman", "mucur", "cicekdagi", "akpinar", "akcakent", "boztepe"},
	"kocaeli":        {"izmit", "gebze", "darica", "korfez", "golcuk", "karamursel", "derince", "kartepe", "basiskele", "kandira"},
	"konya":          {"selcuklu", "meram", "karatay", "eregli", "aksehir", "beysehir", "cumra", "aksarayli", "seydisehir", "ilgin", "cihanbeyli", "kulu", "karapinar", "bozkir", "hadim", "yunak"},
	"kutahya":        {"tavsanli", "simav", "gediz", "emet", "altintas", "domanic", "hisarcik", "saphane"},
	"malatya":        {"battalgazi", "yesilyurt", "akcadag", "darende", "hekimhan", "dogansehir", "puturge", "yazihan", "arguvan", "kale"},
	"manisa":         {"akhisar", "turgutlu", "salihli", "soma", "alasehir", "sarigol", "kirkagac", "demirci", "kula", "golmarmara", "saruhanli", "ahmetli"},
	"kahramanmaras":  {"dulkadiroglu", "onikisubat", "elbistan", "afsin", "goksun", "pazarcik", "turkoglu", "andirin", "caglayancerit", "ekinozu"},
	"mardin":         {"kiziltepe", "midyat", "nusaybin", "derik", "mazidagi", "dargecit", "savur", "yesilli", "omerli"},
	"mugla":          {"bodrum", "fethiye", "marmaris", "milas", "datca", "koycegiz", "ortaca", "dalaman", "ula", "yatagan", "kavaklidere", "seydikemer"},
	"mus":            {"bulanik", "malazgirt", "varto", "korkut", "haskoy"},
	"nevsehir":       {"urgup", "avanos", "derinkuyu", "gulsehir", "hacibektas", "acigol", "kozakli"},
	"nigde":          {"bor", "camardi", "ulukisla", "altunhisar", "ciftlik"},
	"ordu":           {"unye", "fatsa", "altinordu", "kumru", "persembe", "golkoy", "gulyali", "ikizce", "korgan", "akkus", "aybasti", "mesudiye"},
	"rize":           {"ardesen", "findikli", "cayeli", "pazar", "derepazari", "guneysu", "ikizdere", "kalkandere", "camlihemsin", "hemsin", "iyidere"},
	"sakarya":        {"adapazari", "serdivan", "arifiye", "hendek", "karasu", "akyazi", "geyve", "pamukova", "ferizli", "kaynarca", "sogutlu", "tarakli"},
	"samsun":         {"ilkadim", "atakum", "canik", "bafra", "carsamba", "terme", "vezirkopru", "havza", "kavak", "ladik", "alacam", "ayvacik", "asarcik", "tekkekoy", "yakakent"},
	"siirt":          {"kurtalan", "baykan", "pervari", "eruh", "sirvan", "tillo"},
	"sinop":          {"boyabat", "ayancik", "gerze", "turkeli", "dikmen", "duragan", "erfelek", "sarayduzu"},
	"sivas":          {"susehri", "sarkisla", "gemerek", "zara", "gurun", "yildizeli", "kangal", "hafik", "imranli", "koyulhisar", "divrigi", "golova"},
	"tekirdag":       {"corlu", "cerkezkoy", "malkara", "saray", "suleymanpasa", "hayrabolu", "muratli", "sarkoy", "marmaraereglisi"},
	"tokat":          {"erbaa", "niksar", "turhal", "zile", "resadiye", "almus", "artova", "basciftlik", "pazar", "sulusaray", "yesilyurt"},
	"trabzon":        {"akcaabat", "of", "vakfikebir", "arakli", "surmene", "yomra", "macka", "arsin", "tonya", "besikduzu", "caykara", "duzkoy", "hayrat", "koprubasi", "salpazari"},
	"tunceli":        {"pertek", "pulumur", "hozat", "mazgirt", "nazimiye", "ovacik", "cemisgezek"},
	"sanliurfa":      {"eyyubiye", "haliliye", "karakopru", "siverek", "viransehir", "akcakale", "birecik", "suruc", "harran", "bozova", "halfeti", "ceylanpinar", "hilvan"},
	"usak":           {"banaz", "esme", "sivasli", "ulubey", "karahalli", "eskicesme"},
	"van":            {"ipekyolu", "edremit", "ercis", "ozalp", "gurpinar", "muradiye", "bahcesaray", "baskale", "caldiran", "catak", "gevas", "saray"},
	"yozgat":         {"sorgun", "akdagmadeni", "bogazliyan", "yerkoy", "cekerek", "sarikaya", "aydincik", "kadisehri", "saraykent", "sefaatli"},
	"zonguldak":      {"eregli", "caycuma", "devrek", "alapli", "kilimli", "kozlu", "gokcebey"},
	"aksaray":        {"ortakoy", "eskil", "gulagac", "guzelyurt", "sariyahsi", "sultanhani"},
	"bayburt":        {"demirozu", "aydintepe"},
	"karaman":        {"ermenek", "ayranci", "kazimkarabekir", "sariveliler", "basyayla"},
	"kirikkale":      {"keskin", "delice", "sulakyurt", "bahsili", "celebi", "karakecili", "yahsihan"},
	"batman":         {"kozluk", "besiri", "gercus", "hasankeyf", "sason"},
	"sirnak":         {"cizre", "silopi", "idil", "uludere", "beytussebap", "guclukonak"},
	"bartin":         {"amasra", "ulus", "kurucasile"},
	"ardahan":        {"gole", "posof", "hanak", "cildir", "damal"},
	"igdir":          {"tuzluca", "aralik", "karakoyunlu"},
	"yalova":         {"ciftlikkoy", "altinova", "termal", "cinarcik", "armutlu"},
	"karabuk":        {"safranbolu", "eflani", "eskipazar", "ovacik", "yenice"},
	"kilis":          {"musabeyli", "elbeyli", "polateli"},
	"osmaniye":       {"kadirli", "duzici", "bahce", "hasanbeyli", "toprakkale", "sumbas"},
	"duzce":          {"akcakoca", "golyaka", "cumayeri", "yigilca", "gumusova", "kaynasli"},
}
