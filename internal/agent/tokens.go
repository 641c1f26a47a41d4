package agent

import "strings"

// greetingTokens are exact-match tokens for spec §4.7 step 1. "sa" is the
// common Turkish chat abbreviation for "selamunaleykum"; the canonical
// reply abbreviation is "as" ("aleykumselam").
var greetingTokens = map[string]bool{
	"sa": true, "selam": true, "merhaba": true, "naber": true, "nasilsin": true,
	"iyi gunler": true, "iyi aksamlar": true, "hey": true, "hi": true, "hello": true,
}

var farewellTokens = map[string]bool{
	"gule gule": true, "hosca kal": true, "bb": true, "bye": true, "kolay gelsin": true,
}

var thanksTokens = map[string]bool{
	"tesekkurler": true, "tesekkur ederim": true, "sagol": true, "eyvallah": true, "thanks": true,
}

var profanityTokens = map[string]bool{
	"amk": true, "siktir": true, "orospu": true, "yarrak": true, "pic": true,
}

// continuationTokens are the ambiguous step-4 continuation phrases.
var continuationTokens = map[string]bool{
	"tum isler": true, "peki": true, "takip et": true,
}

// confirmationTokens match a driver accepting a pending suggestion (step 5).
var confirmationTokens = map[string]bool{
	"evet": true, "olur": true, "tamam": true, "ok": true, "tabii": true,
}

// paginationTokens request more of an open result set (step 7).
var paginationTokens = map[string]bool{
	"devam": true, "daha": true, "sonraki": true, "goster": true, "kalanlar": true, "devam et": true,
}

// herYereTokens request a Turkey-wide search from a single origin (step 8).
var herYereTokens = []string{"her yere", "tum iller", "turkiye geneli", "her yere yuk"}

func matchesAny(normalized string, set map[string]bool) bool {
	return set[normalized]
}

func containsAny(normalized string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if strings.Contains(normalized, p) {
			return p, true
		}
	}
	return "", false
}

// intraCityTokens (step 10) signal a driver looking for work inside one city.
var intraCityTokens = []string{"icinde", "icinden", "ici"}
