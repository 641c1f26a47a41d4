// Package agent implements the conversational agent controller (C7):
// a fixed-order chain of deterministic handlers over one driver utterance,
// falling back to a location-grounded search with an optional LLM intent
// hint, per spec §4.7. The controller never lets a tool failure escape as
// an exception — every path returns a user-visible reply (spec §7).
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kargotakip/freightline/internal/config"
	"github.com/kargotakip/freightline/internal/freight"
	"github.com/kargotakip/freightline/internal/geo"
	"github.com/kargotakip/freightline/internal/jobstore"
	"github.com/kargotakip/freightline/internal/llmhint"
	"github.com/kargotakip/freightline/internal/locparser"
	"github.com/kargotakip/freightline/internal/models"
	"github.com/kargotakip/freightline/internal/normalize"
	"github.com/kargotakip/freightline/internal/telemetry"
)

const searchPageSize = 10
const groupedSearchLimit = 3
const maxGroupedDestinations = 5

// ConversationStore is the narrow conversation-state surface the
// controller needs from internal/store.
type ConversationStore interface {
	GetConversation(ctx context.Context, userID string) (models.Conversation, error)
	AddMessage(ctx context.Context, userID string, msg models.ConversationMessage, contextPatch map[string]interface{}) error
}

// PendingNotifier is the narrow standing-notification surface the
// controller needs from internal/store.
type PendingNotifier interface {
	UpsertPendingNotification(ctx context.Context, pn models.PendingNotification) error
}

// Hinter is the narrow LLM-hint surface the controller needs from
// internal/llmhint.
type Hinter interface {
	Classify(ctx context.Context, utterance string) (llmhint.Hint, error)
}

// Controller wires the conversation store, job search, pending
// notifications, and the optional LLM hint into the §4.7 handler chain.
type Controller struct {
	convos   ConversationStore
	searcher JobSearcher
	pending  PendingNotifier
	hinter   Hinter
	cfg      *config.Config
	log      zerolog.Logger
	tracer   *telemetry.StageTracer
}

// New builds a Controller. tracer may be nil, in which case turns run
// untraced.
func New(convos ConversationStore, searcher JobSearcher, pending PendingNotifier, hinter Hinter, cfg *config.Config, tracer *telemetry.StageTracer, logger zerolog.Logger) *Controller {
	if tracer == nil {
		tracer = telemetry.NewStageTracer(nil, "agent", false)
	}
	return &Controller{convos: convos, searcher: searcher, pending: pending, hinter: hinter, cfg: cfg, tracer: tracer, log: logger}
}

// HandleTurn runs one driver utterance through the handler chain and
// returns the reply text. It always returns a reply; err is non-nil only
// for unrecoverable infrastructure failures the caller should log.
func (c *Controller) HandleTurn(ctx context.Context, userID, text string) (string, error) {
	conv, err := c.convos.GetConversation(ctx, userID)
	if err != nil {
		return "uzgunum, su an yardimci olamiyorum, birazdan tekrar deneyin.", fmt.Errorf("agent: loading conversation: %w", err)
	}

	normalized := normalize.Preprocess(text)
	firstContact := len(conv.Messages) == 0

	var reply string
	var patch map[string]interface{}
	_ = c.tracer.Stage(ctx, "turn", []attribute.KeyValue{attribute.String("user_id", userID)}, func(ctx context.Context) error {
		reply, patch = c.decide(ctx, conv.Context, normalized, text, firstContact)
		return nil
	})

	now := time.Now().UTC()
	if err := c.convos.AddMessage(ctx, userID, models.ConversationMessage{Role: models.RoleUser, Content: text, At: now}, patch); err != nil {
		c.log.Warn().Err(err).Str("user_id", userID).Msg("agent: failed to persist user turn")
	}
	if err := c.convos.AddMessage(ctx, userID, models.ConversationMessage{Role: models.RoleAssistant, Content: reply, At: now}, nil); err != nil {
		c.log.Warn().Err(err).Str("user_id", userID).Msg("agent: failed to persist assistant turn")
	}

	return reply, nil
}

// decide runs the fixed-order handler chain (spec §4.7 steps 1-15) and
// returns the reply plus the context patch to shallow-merge afterward.
func (c *Controller) decide(ctx context.Context, cc models.ConversationContext, normalized, rawText string, firstContact bool) (string, map[string]interface{}) {
	if matchesAny(normalized, greetingTokens) {
		if firstContact {
			return "merhaba! ben kargo takip asistaniyim. hangi sehirden hangi sehre yuk ariyorsunuz?", nil
		}
		return "merhaba, nasil yardimci olabilirim?", nil
	}

	if containsProfanity(normalized) {
		return "lutfen kibar bir dil kullanalim, size yardimci olmak istiyorum.", nil
	}

	if matchesAny(normalized, farewellTokens) {
		return "gorusmek uzere, iyi yolculuklar!", nil
	}
	if matchesAny(normalized, thanksTokens) {
		return "rica ederim, baska bir sey lazim olursa yazabilirsiniz.", nil
	}

	if matchesAny(normalized, continuationTokens) {
		if cc.LastOrigin != "" && cc.LastShownCount < cc.LastTotalCount {
			return c.paginate(ctx, cc)
		}
		if cc.LastOrigin != "" {
			return "su an icin baska ilan yok, yeni bir rota sorabilirsiniz.", nil
		}
		return "hangi sehirden hangi sehre yuk ariyorsunuz?", nil
	}

	if (cc.PendingVehicleSuggestion || cc.PendingNearbySuggestion != "") && matchesAny(normalized, confirmationTokens) {
		return c.resolvePendingConfirmation(ctx, cc)
	}

	if reply, ok := matchFAQ(normalized); ok {
		return reply, nil
	}

	if matchesAny(normalized, paginationTokens) {
		if cc.LastOrigin == "" {
			return "once bir rota aramalisiniz, hangi sehirden hangi sehre yuk ariyorsunuz?", nil
		}
		return c.paginate(ctx, cc)
	}

	if phrase, ok := containsAny(normalized, herYereTokens); ok {
		return c.searchHerYere(ctx, normalized, phrase, cc)
	}

	parsed := locparser.Parse(rawText)

	if parsed.InternationalDestination {
		return "su an sadece turkiye icindeki ilanlari gosterebiliyorum.", nil
	}

	if phrase, ok := containsAny(normalized, intraCityTokens); ok {
		_ = phrase
		return c.searchIntraCity(ctx, parsed, cc)
	}

	if parsed.SameProvinceSearch {
		return c.searchIntraCity(ctx, parsed, cc)
	}

	if parsed.DestinationRegion != "" && len(parsed.Destinations) > 0 {
		return c.searchGroupedDestinations(ctx, parsed.Origin, parsed.Destinations, cc)
	}

	if parsed.OriginRegion != "" {
		origins := geo.RegionProvinces(parsed.OriginRegion)
		return c.searchGroupedOrigins(ctx, origins, parsed.Destination, cc)
	}

	if parsed.Origin != "" && len(parsed.Destinations) >= 2 {
		return c.searchGroupedDestinations(ctx, parsed.Origin, parsed.Destinations, cc)
	}

	return c.normalSearch(ctx, parsed, normalized, rawText, cc)
}

func containsProfanity(normalized string) bool {
	for tok := range profanityTokens {
		if strings.Contains(normalized, tok) {
			return true
		}
	}
	return false
}

func (c *Controller) paginate(ctx context.Context, cc models.ConversationContext) (string, map[string]interface{}) {
	offset := cc.LastOffset + cc.LastShownCount
	if offset >= cc.LastTotalCount {
		return "gosterecek baska ilan kalmadi.", nil
	}
	params := jobstore.SearchParams{Origin: cc.LastOrigin, Destination: cc.LastDestination, Limit: searchPageSize, Offset: offset}
	result, _, err := runSearch(ctx, c.searcher, params, "")
	if err != nil {
		return "uzgunum, su an arama yapamiyorum, birazdan tekrar deneyin.", nil
	}
	reply := FormatResults(result.Jobs, result.Total, offset)
	if reply == "" {
		reply = "gosterecek baska ilan kalmadi."
	}
	patch := map[string]interface{}{
		"last_offset":      offset,
		"last_shown_count": len(result.Jobs),
		"last_total_count": result.Total,
	}
	return reply, patch
}

func (c *Controller) resolvePendingConfirmation(ctx context.Context, cc models.ConversationContext) (string, map[string]interface{}) {
	if cc.PendingNearbySuggestion != "" {
		params := jobstore.SearchParams{Origin: cc.PendingNearbySuggestion, Destination: cc.LastDestination, Limit: searchPageSize}
		result, _, err := runSearch(ctx, c.searcher, params, "")
		if err != nil {
			return "uzgunum, su an arama yapamiyorum, birazdan tekrar deneyin.", nil
		}
		reply := FormatResults(result.Jobs, result.Total, 0)
		if reply == "" {
			reply = FormatNoResults(cc.PendingNearbySuggestion, cc.LastDestination, jobFilterSummary{})
		}
		patch := map[string]interface{}{
			"pending_nearby_suggestion": "",
			"last_origin":               cc.PendingNearbySuggestion,
			"last_offset":               0,
			"last_shown_count":          len(result.Jobs),
			"last_total_count":          result.Total,
		}
		return reply, patch
	}
	if cc.PendingVehicleSuggestion {
		params := jobstore.SearchParams{Origin: cc.LastOrigin, Destination: cc.LastDestination, VehicleType: cc.PreferredVehicle, Limit: searchPageSize}
		result, _, err := runSearch(ctx, c.searcher, params, "")
		if err != nil {
			return "uzgunum, su an arama yapamiyorum, birazdan tekrar deneyin.", nil
		}
		reply := FormatResults(result.Jobs, result.Total, 0)
		if reply == "" {
			reply = FormatNoResults(cc.LastOrigin, cc.LastDestination, jobFilterSummary{VehicleType: cc.PreferredVehicle})
		}
		patch := map[string]interface{}{
			"pending_vehicle_suggestion": false,
			"last_offset":                0,
			"last_shown_count":           len(result.Jobs),
			"last_total_count":           result.Total,
		}
		return reply, patch
	}
	return "tamam.", nil
}

func (c *Controller) searchHerYere(ctx context.Context, normalized, phrase string, cc models.ConversationContext) (string, map[string]interface{}) {
	origin := extractOriginBeforePhrase(normalized, phrase)
	if origin == "" {
		origin = cc.LastOrigin
	}
	if origin == "" {
		return "hangi sehirden yuk ariyorsunuz?", nil
	}
	params := jobstore.SearchParams{Origin: origin, Limit: searchPageSize}
	result, _, err := runSearch(ctx, c.searcher, params, "")
	if err != nil {
		return "uzgunum, su an arama yapamiyorum, birazdan tekrar deneyin.", nil
	}
	reply := FormatResults(result.Jobs, result.Total, 0)
	if reply == "" {
		reply = FormatNoResults(origin, "", jobFilterSummary{})
	}
	patch := map[string]interface{}{
		"last_origin":      origin,
		"last_destination": "",
		"last_offset":      0,
		"last_shown_count": len(result.Jobs),
		"last_total_count": result.Total,
	}
	return reply, patch
}

// extractOriginBeforePhrase grabs the token immediately preceding a
// "her yere"-style phrase, a rough but idiomatic heuristic given the
// parser doesn't special-case this construction itself.
func extractOriginBeforePhrase(normalized, phrase string) string {
	idx := strings.Index(normalized, phrase)
	if idx <= 0 {
		return ""
	}
	before := strings.TrimSpace(normalized[:idx])
	tokens := strings.Fields(before)
	if len(tokens) == 0 {
		return ""
	}
	return normalize.StripSuffix(tokens[len(tokens)-1]).Stem
}

func (c *Controller) searchIntraCity(ctx context.Context, parsed models.ParsedLocations, cc models.ConversationContext) (string, map[string]interface{}) {
	city := parsed.Origin
	if city == "" {
		city = parsed.Destination
	}
	if city == "" {
		city = cc.LastOrigin
	}
	if city == "" {
		return "hangi sehir icin bakiyorsunuz?", nil
	}

	params := jobstore.SearchParams{Origin: city, Destination: city, Limit: searchPageSize}
	result, _, err := runSearch(ctx, c.searcher, params, "")
	if err != nil {
		return "uzgunum, su an arama yapamiyorum, birazdan tekrar deneyin.", nil
	}
	if len(result.Jobs) == 0 {
		params = jobstore.SearchParams{Origin: city, Limit: searchPageSize}
		result, _, err = runSearch(ctx, c.searcher, params, "")
		if err != nil {
			return "uzgunum, su an arama yapamiyorum, birazdan tekrar deneyin.", nil
		}
	}
	if len(result.Jobs) == 0 {
		return FormatNoResults(city, "", jobFilterSummary{}), nil
	}

	reply := FormatResults(result.Jobs, result.Total, 0) + "\nnot: sehir ici tasima ilani nadirdir."
	patch := map[string]interface{}{
		"last_origin":      city,
		"last_destination": city,
		"last_offset":      0,
		"last_shown_count": len(result.Jobs),
		"last_total_count": result.Total,
	}
	return reply, patch
}

func (c *Controller) searchGroupedDestinations(ctx context.Context, origin string, destinations []string, cc models.ConversationContext) (string, map[string]interface{}) {
	if len(destinations) > maxGroupedDestinations {
		destinations = destinations[:maxGroupedDestinations]
	}
	var sections []string
	var empty []string
	totalShown := 0
	for _, dest := range destinations {
		params := jobstore.SearchParams{Origin: origin, Destination: dest, Limit: groupedSearchLimit}
		result, _, err := runSearch(ctx, c.searcher, params, "")
		if err != nil || len(result.Jobs) == 0 {
			empty = append(empty, dest)
			continue
		}
		totalShown += len(result.Jobs)
		sections = append(sections, fmt.Sprintf("%s:\n%s", dest, FormatResults(result.Jobs, result.Total, 0)))
	}
	var b strings.Builder
	b.WriteString(strings.Join(sections, "\n\n"))
	if len(empty) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("is bulunamayan sehirler: %s", strings.Join(empty, ", ")))
	}
	patch := map[string]interface{}{
		"last_origin":      origin,
		"last_destination": "",
		"last_offset":      0,
		"last_shown_count": totalShown,
		"last_total_count": totalShown,
	}
	return strings.ToLower(b.String()), patch
}

// searchGroupedOrigins is the symmetrical counterpart of
// searchGroupedDestinations for an origin-region match (spec §4.7 step 13):
// one fixed destination, several candidate origin provinces.
func (c *Controller) searchGroupedOrigins(ctx context.Context, origins []string, destination string, cc models.ConversationContext) (string, map[string]interface{}) {
	if len(origins) > maxGroupedDestinations {
		origins = origins[:maxGroupedDestinations]
	}
	var sections []string
	var empty []string
	totalShown := 0
	for _, origin := range origins {
		params := jobstore.SearchParams{Origin: origin, Destination: destination, Limit: groupedSearchLimit}
		result, _, err := runSearch(ctx, c.searcher, params, "")
		if err != nil || len(result.Jobs) == 0 {
			empty = append(empty, origin)
			continue
		}
		totalShown += len(result.Jobs)
		sections = append(sections, fmt.Sprintf("%s:\n%s", origin, FormatResults(result.Jobs, result.Total, 0)))
	}
	var b strings.Builder
	b.WriteString(strings.Join(sections, "\n\n"))
	if len(empty) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("is bulunamayan sehirler: %s", strings.Join(empty, ", ")))
	}
	patch := map[string]interface{}{
		"last_origin":      "",
		"last_destination": destination,
		"last_offset":      0,
		"last_shown_count": totalShown,
		"last_total_count": totalShown,
	}
	return strings.ToLower(b.String()), patch
}

// normalSearch implements spec §4.7 step 15: the fallback path once no
// earlier handler matched. Parsed locations win over an LLM hint, which
// wins over conversation context.
func (c *Controller) normalSearch(ctx context.Context, parsed models.ParsedLocations, normalized, rawText string, cc models.ConversationContext) (string, map[string]interface{}) {
	origin, destination := parsed.OriginProvince, parsed.DestinationProvince

	if origin == "" && destination == "" && c.hinter != nil {
		hint, err := c.hinter.Classify(ctx, rawText)
		if err == nil {
			if o := llmhint.ValidateAgainstUtterance(hint.Origin, normalized); o != "" {
				origin = o
			}
			if d := llmhint.ValidateAgainstUtterance(hint.Destination, normalized); d != "" {
				destination = d
			}
		}
	}

	if origin == "" && destination == "" {
		origin, destination = cc.LastOrigin, cc.LastDestination
	}
	if origin == "" && destination == "" {
		return "nerden nereye yuk ariyorsunuz?", nil
	}

	tokens := normalize.Tokenize(normalized)
	vehicleInfo := freight.ClassifyVehicle(tokens)
	cargoType := freight.ExtractCargoType(normalized)
	noNewFilters := vehicleInfo.VehicleType == "" && vehicleInfo.BodyType == "" && !vehicleInfo.IsRefrigerated && cargoType == ""

	sameRouteAsContext := origin == cc.LastOrigin && destination == cc.LastDestination
	userProvidedLocations := parsed.OriginProvince != "" || parsed.DestinationProvince != ""
	isNewSearch := userProvidedLocations && (!sameRouteAsContext || noNewFilters)

	params := jobstore.SearchParams{Origin: origin, Destination: destination, Limit: searchPageSize}
	filterPatch := map[string]interface{}{}

	if isNewSearch {
		params.VehicleType = vehicleInfo.VehicleType
		params.BodyType = vehicleInfo.BodyType
		params.CargoType = cargoType
		params.IsRefrigerated = vehicleInfo.IsRefrigerated
		filterPatch["last_vehicle_type"] = string(vehicleInfo.VehicleType)
		filterPatch["last_body_type"] = string(vehicleInfo.BodyType)
		filterPatch["last_cargo_type"] = cargoType
		filterPatch["last_is_refrigerated"] = vehicleInfo.IsRefrigerated
	} else {
		params.VehicleType = cc.LastVehicleType
		params.BodyType = cc.LastBodyType
		params.CargoType = cc.LastCargoType
		params.IsRefrigerated = cc.LastIsRefrigerated
	}
	applyKamyonetCap(&params, c.cfg.KamyonetMaxWeightTons)

	result, parsiyelFallback, err := runSearch(ctx, c.searcher, params, parsed.IstanbulSide)
	if err != nil {
		return "uzgunum, su an arama yapamiyorum, birazdan tekrar deneyin.", nil
	}

	patch := map[string]interface{}{
		"last_origin":      origin,
		"last_destination": destination,
		"last_offset":      0,
		"last_shown_count": len(result.Jobs),
		"last_total_count": result.Total,
	}
	for k, v := range filterPatch {
		patch[k] = v
	}

	if len(result.Jobs) == 0 {
		filters := jobFilterSummary{VehicleType: params.VehicleType, BodyType: params.BodyType, CargoType: params.CargoType, IsRefrigerated: params.IsRefrigerated}
		reply := FormatNoResults(origin, destination, filters)
		if neighbors := neighborSuggestion(origin, c.cfg.NeighborSuggestionLimit); len(neighbors) > 0 {
			reply += fmt.Sprintf(" yakin illerden %s icin de bakmami ister misiniz?", neighbors[0])
			patch["pending_nearby_suggestion"] = neighbors[0]
		}
		return reply, patch
	}

	reply := FormatResults(result.Jobs, result.Total, 0)
	if parsiyelFallback {
		reply = ParsiyelDisclaimer + reply
	}
	if cc.PreferredVehicle != "" && params.VehicleType == "" && len(result.Jobs) >= 5 {
		reply += fmt.Sprintf("\nnot: tercih ettiginiz arac tipi %s icin de filtrelemeyi ister misiniz?", strings.ToLower(string(cc.PreferredVehicle)))
		patch["pending_vehicle_suggestion"] = true
	}
	return reply, patch
}
