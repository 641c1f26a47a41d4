package agent

import "testing"

func TestMatchFAQ_JobPriceBeatsGenericPricing(t *testing.T) {
	reply, ok := matchFAQ("bu yuk icin navlun ne kadar")
	if !ok {
		t.Fatal("expected a match")
	}
	if reply != "navlun fiyatini ilan sahibiyle gorusmeniz gerekiyor, bu bilgiyi ben tutmuyorum." {
		t.Fatalf("expected job-price reply, got %q", reply)
	}
}

func TestMatchFAQ_GenericPricingFallsThrough(t *testing.T) {
	reply, ok := matchFAQ("uygulama ucreti ne kadar")
	if !ok {
		t.Fatal("expected a match")
	}
	if reply != "uygulama kullanimi ucretsizdir, abonelik gerektirmez." {
		t.Fatalf("expected generic pricing reply, got %q", reply)
	}
}

func TestMatchFAQ_NoMatch(t *testing.T) {
	if _, ok := matchFAQ("istanbuldan ankaraya tir ariyorum"); ok {
		t.Fatal("expected no FAQ match for a search utterance")
	}
}
