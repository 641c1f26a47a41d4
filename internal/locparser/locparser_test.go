package locparser

import "testing"

func TestParse_SuffixGrammar(t *testing.T) {
	got := Parse("Kayseri'den İstanbul'a")
	if got.OriginProvince != "kayseri" {
		t.Errorf("OriginProvince = %q, want kayseri", got.OriginProvince)
	}
	if got.DestinationProvince != "istanbul" {
		t.Errorf("DestinationProvince = %q, want istanbul", got.DestinationProvince)
	}
}

func TestParse_MultiDestination(t *testing.T) {
	got := Parse("Samsundan istanbul ankara izmir varmi")
	if got.OriginProvince != "samsun" {
		t.Errorf("OriginProvince = %q, want samsun", got.OriginProvince)
	}
	want := map[string]bool{"istanbul": false, "ankara": false, "izmir": false}
	for _, d := range got.Destinations {
		if _, ok := want[d]; ok {
			want[d] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Destinations = %v, missing %q", got.Destinations, name)
		}
	}
}

func TestParse_AmbiguousDistrict(t *testing.T) {
	got := Parse("Edremit")
	if got.OriginProvince != "balikesir" {
		t.Errorf("OriginProvince = %q, want balikesir (first resolution)", got.OriginProvince)
	}
}

func TestParse_VehicleTermNotParsedAsLocation(t *testing.T) {
	got := Parse("panel van ariyorum")
	if got.Origin != "" || got.Destination != "" {
		t.Errorf("Parse(panel van) = %+v, want no location hit", got)
	}
}

func TestParse_EmptyOnNoMatch(t *testing.T) {
	got := Parse("merhaba nasilsin")
	if !got.IsEmpty() {
		t.Errorf("Parse(merhaba nasilsin) = %+v, want IsEmpty", got)
	}
}

func TestParse_InternationalDestination(t *testing.T) {
	got := Parse("Almanyaya yuk")
	if !got.InternationalDestination {
		t.Errorf("Parse(Almanyaya yuk).InternationalDestination = false, want true")
	}
}

func TestParse_HatayRecoveredByShortestFirstSuffix(t *testing.T) {
	got := Parse("Ankaradan hataya yuk")
	if got.DestinationProvince != "hatay" {
		t.Errorf("DestinationProvince = %q, want hatay", got.DestinationProvince)
	}
}
