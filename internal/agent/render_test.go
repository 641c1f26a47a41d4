package agent

import (
	"strings"
	"testing"

	"github.com/kargotakip/freightline/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestFormatJobLine_DropsTrailingZerosInWeight(t *testing.T) {
	j := models.Job{
		OriginProvince:      "istanbul",
		DestinationProvince: "ankara",
		Weight:              floatPtr(8.5),
		WeightUnit:          models.WeightUnitTon,
		VehicleType:         models.VehicleTIR,
		ContactPhone:        "5551112233",
	}
	line := FormatJobLine(j)
	if !strings.Contains(line, "8.5 ton") {
		t.Fatalf("expected 8.5 ton in line, got %q", line)
	}

	j.Weight = floatPtr(8.0)
	line = FormatJobLine(j)
	if !strings.Contains(line, "8 ton") {
		t.Fatalf("expected trailing zero dropped, got %q", line)
	}
}

func TestFormatJobLine_OmitsAbsentFields(t *testing.T) {
	j := models.Job{OriginProvince: "izmir", DestinationProvince: "bursa"}
	line := FormatJobLine(j)
	if strings.Contains(line, "tel:") {
		t.Fatalf("expected no phone segment, got %q", line)
	}
	if line != "izmir - bursa" {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestFormatJobLine_IncludesDistrictAndFlags(t *testing.T) {
	j := models.Job{
		OriginProvince:      "istanbul",
		OriginDistrict:      "kadikoy",
		DestinationProvince: "izmir",
		IsRefrigerated:      true,
		IsUrgent:            true,
	}
	line := FormatJobLine(j)
	if !strings.HasPrefix(line, "istanbul/kadikoy - izmir") {
		t.Fatalf("expected district segment, got %q", line)
	}
	if !strings.Contains(line, "frigorifik") || !strings.Contains(line, "acil") {
		t.Fatalf("expected frigorifik and acil flags, got %q", line)
	}
}

func TestFormatResults_AppendsPaginationHintWhenMoreRemain(t *testing.T) {
	jobs := []models.Job{jobFixture("istanbul", "ankara")}
	out := FormatResults(jobs, 5, 0)
	if !strings.Contains(out, "hint:") {
		t.Fatalf("expected pagination hint, got %q", out)
	}
}

func TestFormatResults_NoHintWhenAllShown(t *testing.T) {
	jobs := []models.Job{jobFixture("istanbul", "ankara")}
	out := FormatResults(jobs, 1, 0)
	if strings.Contains(out, "hint:") {
		t.Fatalf("unexpected pagination hint in %q", out)
	}
}

func TestFormatResults_EmptyJobsReturnsEmptyString(t *testing.T) {
	if out := FormatResults(nil, 0, 0); out != "" {
		t.Fatalf("expected empty string, got %q", out)
	}
}

func TestFormatNoResults_IncludesFilters(t *testing.T) {
	out := FormatNoResults("istanbul", "ankara", jobFilterSummary{VehicleType: models.VehicleTIR, IsRefrigerated: true})
	if !strings.Contains(out, "tir") || !strings.Contains(out, "frigorifik") {
		t.Fatalf("expected filters described, got %q", out)
	}
}
