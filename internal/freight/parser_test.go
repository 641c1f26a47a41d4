package freight

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kargotakip/freightline/internal/models"
)

func TestParseMessage_FullPosting(t *testing.T) {
	parser := NewParser(zerolog.Nop())
	msg, err := parser.ParseMessage(context.Background(), "ANTALYA - ISTANBUL 20 ton demir yük var TIR ARANIYOR 0532 111 22 33 acil")
	if err != nil {
		t.Fatalf("ParseMessage returned error: %v", err)
	}
	if msg.MessageType != models.MessageVehicleWanted {
		t.Errorf("MessageType = %v, want VEHICLE_WANTED", msg.MessageType)
	}
	if msg.Origin == nil || msg.Origin.ProvinceName != "antalya" {
		t.Errorf("Origin = %+v, want antalya", msg.Origin)
	}
	if msg.Destination == nil || msg.Destination.ProvinceName != "istanbul" {
		t.Errorf("Destination = %+v, want istanbul", msg.Destination)
	}
	if msg.Vehicle.VehicleType != models.VehicleTIR {
		t.Errorf("VehicleType = %v, want TIR", msg.Vehicle.VehicleType)
	}
	if msg.Weight == nil || msg.Weight.Value != 20 {
		t.Errorf("Weight = %+v, want 20 ton", msg.Weight)
	}
	if len(msg.Phones) == 0 || msg.Phones[0].Normalized != "5321112233" {
		t.Errorf("Phones = %+v, want normalized 5321112233", msg.Phones)
	}
	if !msg.IsUrgent {
		t.Errorf("IsUrgent = false, want true")
	}
	if msg.ConfidenceLevel != models.ConfidenceHigh {
		t.Errorf("ConfidenceLevel = %v, want HIGH", msg.ConfidenceLevel)
	}
}

func TestScoreConfidence_Buckets(t *testing.T) {
	msg := &models.ParsedMessage{}
	_, level, _ := ScoreConfidence(msg)
	if level != models.ConfidenceLow {
		t.Errorf("empty message level = %v, want LOW", level)
	}
}

func TestExtractWeight_KgFoldedToTon(t *testing.T) {
	w := ExtractWeight("2500 kg yuk")
	if w == nil || w.Unit != models.WeightUnitTon || w.Value != 2.5 {
		t.Errorf("ExtractWeight(2500 kg) = %+v, want 2.5 ton", w)
	}
}

func TestExtractWeight_KgKeptWhenBelowThousand(t *testing.T) {
	w := ExtractWeight("500 kg yuk")
	if w == nil || w.Unit != models.WeightUnitKg || w.Value != 500 {
		t.Errorf("ExtractWeight(500 kg) = %+v, want 500 kg", w)
	}
}

func TestIsLikelyLogisticsMessage(t *testing.T) {
	if !IsLikelyLogisticsMessage("tir ariyoruz ankaradan") {
		t.Errorf("expected true for a vehicle-term message")
	}
	if IsLikelyLogisticsMessage("gunaydin arkadaslar") {
		t.Errorf("expected false for unrelated chatter")
	}
}
