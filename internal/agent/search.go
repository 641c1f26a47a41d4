package agent

import (
	"context"

	"github.com/kargotakip/freightline/internal/geo"
	"github.com/kargotakip/freightline/internal/jobstore"
	"github.com/kargotakip/freightline/internal/models"
)

// JobSearcher is the query surface the agent needs from jobstore.Store,
// narrowed to an interface so the controller can be tested without a real
// database.
type JobSearcher interface {
	Search(ctx context.Context, p jobstore.SearchParams) (jobstore.SearchResult, error)
}

// runSearch executes params against searcher, applies the Istanbul-side
// filter when one endpoint is Istanbul and istanbulSide is set (spec §4.7
// post-query behavior), and reports whether the parsiyel fallback fired.
func runSearch(ctx context.Context, searcher JobSearcher, params jobstore.SearchParams, istanbulSide models.IstanbulSide) (jobstore.SearchResult, bool, error) {
	result, err := searcher.Search(ctx, params)
	if err != nil {
		return jobstore.SearchResult{}, false, ErrAgentToolFail
	}

	if istanbulSide != "" && istanbulSide != models.IstanbulUnknown {
		result.Jobs = filterByIstanbulSide(result.Jobs, params.Origin, params.Destination, istanbulSide)
	}

	parsiyelFallback := false
	if params.CargoType == "parsiyel" && len(result.Jobs) == 0 {
		withoutCargo := params
		withoutCargo.CargoType = ""
		fallback, err := searcher.Search(ctx, withoutCargo)
		if err == nil && len(fallback.Jobs) > 0 {
			result = fallback
			parsiyelFallback = true
		}
	}

	return result, parsiyelFallback, nil
}

// filterByIstanbulSide keeps only jobs whose Istanbul endpoint's district
// falls on istanbulSide. Per spec §9, when neither endpoint is Istanbul the
// filter is a documented no-op (left as-is, flagged for review).
func filterByIstanbulSide(jobs []models.Job, origin, destination string, side models.IstanbulSide) []models.Job {
	out := jobs[:0]
	for _, j := range jobs {
		district := ""
		switch {
		case j.OriginProvince == "istanbul":
			district = j.OriginDistrict
		case j.DestinationProvince == "istanbul":
			district = j.DestinationDistrict
		default:
			out = append(out, j)
			continue
		}
		if district == "" || geo.IstanbulSideOf(district) == string(side) {
			out = append(out, j)
		}
	}
	return out
}

// neighborSuggestion picks up to limit neighbor provinces of origin to
// offer as a nearby-search suggestion after a zero-result search (spec
// §4.7, §9 neighbor suggestion limit tunable).
func neighborSuggestion(origin string, limit int) []string {
	if origin == "" {
		return nil
	}
	neighbors := geo.Neighbors(origin)
	if len(neighbors) > limit {
		neighbors = neighbors[:limit]
	}
	return neighbors
}

// applyKamyonetCap caps maxWeight at maxTons whenever the search is
// restricted to kamyonet, per spec §4.7's auto-cap rule.
func applyKamyonetCap(params *jobstore.SearchParams, maxTons float64) {
	if params.VehicleType == models.VehicleKamyonet {
		if params.MaxWeight == 0 || params.MaxWeight > maxTons {
			params.MaxWeight = maxTons
		}
	}
}
