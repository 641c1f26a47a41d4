package agent

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/kargotakip/freightline/internal/models"
)

// FormatJobLine renders one posting per spec §6.3:
//
//	<origin[/district]> - <destination[/district]>, <w> <unit>, <cargo>, <vehicle>, <body>, frigorifik?, acil?, tel: <phone>
//
// Absent fields are omitted; everything is lowercased; weight drops
// trailing zeros (8.5 ton, 8 ton).
func FormatJobLine(j models.Job) string {
	var b strings.Builder

	b.WriteString(locationSegment(j.OriginProvince, j.OriginDistrict))
	b.WriteString(" - ")
	b.WriteString(locationSegment(j.DestinationProvince, j.DestinationDistrict))

	var parts []string
	if j.Weight != nil {
		unit := string(j.WeightUnit)
		if unit == "" {
			unit = string(models.WeightUnitTon)
		}
		parts = append(parts, fmt.Sprintf("%s %s", humanize.Ftoa(*j.Weight), unit))
	}
	if j.CargoType != "" {
		parts = append(parts, j.CargoType)
	}
	if j.VehicleType != "" {
		parts = append(parts, strings.ToLower(string(j.VehicleType)))
	}
	if j.BodyType != "" {
		parts = append(parts, strings.ToLower(string(j.BodyType)))
	}
	if j.IsRefrigerated {
		parts = append(parts, "frigorifik")
	}
	if j.IsUrgent {
		parts = append(parts, "acil")
	}
	if j.ContactPhone != "" {
		parts = append(parts, "tel: "+j.ContactPhone)
	}

	for _, p := range parts {
		b.WriteString(", ")
		b.WriteString(p)
	}

	return strings.ToLower(b.String())
}

func locationSegment(province, district string) string {
	if district == "" {
		return province
	}
	return province + "/" + district
}

// FormatResults joins job lines and appends the pagination hint line when
// more results exist beyond what was shown.
func FormatResults(jobs []models.Job, total, offset int) string {
	if len(jobs) == 0 {
		return ""
	}
	lines := make([]string, 0, len(jobs)+1)
	for _, j := range jobs {
		lines = append(lines, FormatJobLine(j))
	}
	shown := offset + len(jobs)
	if shown < total {
		lines = append(lines, fmt.Sprintf(
			`hint: toplamda %d is var, %d tane gosteriyorum. "devam" yaz daha fazla gosteririm.`,
			total, shown))
	}
	return strings.Join(lines, "\n")
}

// FormatNoResults builds the spec §4.7 "zero results" message naming the
// filters and route, for when a search comes back empty.
func FormatNoResults(origin, destination string, filters jobFilterSummary) string {
	route := origin
	if destination != "" {
		route += " - " + destination
	}
	msg := fmt.Sprintf("%s icin is bulamadim", route)
	if extra := filters.describe(); extra != "" {
		msg += " (" + extra + ")"
	}
	return strings.ToLower(msg + ".")
}

// jobFilterSummary names the active filters for the no-results message.
type jobFilterSummary struct {
	VehicleType    models.VehicleType
	BodyType       models.BodyType
	CargoType      string
	IsRefrigerated bool
}

func (f jobFilterSummary) describe() string {
	var parts []string
	if f.VehicleType != "" {
		parts = append(parts, string(f.VehicleType))
	}
	if f.BodyType != "" {
		parts = append(parts, string(f.BodyType))
	}
	if f.CargoType != "" {
		parts = append(parts, f.CargoType)
	}
	if f.IsRefrigerated {
		parts = append(parts, "frigorifik")
	}
	return strings.ToLower(strings.Join(parts, ", "))
}

// ParsiyelDisclaimer is prepended when the parsiyel fallback (spec §4.7,
// scenario 10) re-queries without the cargo filter.
const ParsiyelDisclaimer = "not: parsiyel icin lutfen ilan sahibini arayip teyit edin.\n"
