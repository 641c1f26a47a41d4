package agent

import "strings"

// faqEntry is one FAQ table row. Matching is longest-specific-first: the
// table is already ordered that way, and matchFAQ returns the first hit.
type faqEntry struct {
	keywords []string
	reply    string
}

// jobPriceKeywords must be checked before the generic pricing entry so a
// driver asking what a posting pays doesn't get the app-subscription reply.
var jobPriceKeywords = []string{"navlun", "yuk fiyat", "kac para"}

var faqTable = []faqEntry{
	{
		keywords: []string{"deneme suresi", "ucretsiz deneme", "trial"},
		reply:    "deneme suresi 14 gun, kredi karti bilgisi istemiyoruz.",
	},
	{
		keywords: []string{"yukumluluk", "taahhut", "sozlesme var mi"},
		reply:    "hicbir yukumluluk yok, istediginiz zaman birakabilirsiniz.",
	},
	{
		keywords: []string{"bildirim", "haber ver", "uyari al"},
		reply:    "yeni ilan bildirimi su an sohbet uzerinden kurulamiyor; is bulamadiginiz bir rotayi daha sonra tekrar sorabilirsiniz.",
	},
	{
		keywords: []string{"nasil kullanilir", "nasil ariyorum", "nasil is bulurum"},
		reply:    "\"sehir - sehir\" seklinde yazmaniz yeterli, ornek: \"ankara istanbul tir ariyorum\".",
	},
	{
		keywords: []string{"nerede is var", "nerelerde calisiyorsunuz", "hangi sehirler"},
		reply:    "turkiye genelindeki grup mesajlarindan toplanan ilanlari tariyorum, 81 ilin tamamini kapsiyorum.",
	},
	{
		keywords: jobPriceKeywords,
		reply:    "navlun fiyatini ilan sahibiyle gorusmeniz gerekiyor, bu bilgiyi ben tutmuyorum.",
	},
	{
		keywords: []string{"fiyat", "ucret", "ne kadar"},
		reply:    "uygulama kullanimi ucretsizdir, abonelik gerektirmez.",
	},
}

// matchFAQ returns the first matching FAQ reply for a normalized utterance,
// checking job-price keywords ahead of the generic pricing entry per
// spec §4.7 step 6.
func matchFAQ(normalized string) (string, bool) {
	for _, entry := range faqTable {
		for _, kw := range entry.keywords {
			if strings.Contains(normalized, kw) {
				return entry.reply, true
			}
		}
	}
	return "", false
}
