package freight

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kargotakip/freightline/internal/geo"
	"github.com/kargotakip/freightline/internal/locparser"
	"github.com/kargotakip/freightline/internal/models"
	"github.com/kargotakip/freightline/internal/normalize"
	"github.com/kargotakip/freightline/internal/pipeline"
)

// baggage keys shared across the extractor tools that make up Parser.
const (
	baggageRawText    = "raw_text"
	baggageNormalized = "normalized"
	baggageTokens     = "tokens"
	baggageParsed     = "parsed_message"
)

// Parser turns one raw broker message into a models.ParsedMessage by
// running the C2/C3-backed extractors over it as a pipeline.Pipeline of
// independent tools, matching the dependency-ordered processor pattern
// used throughout this module.
type Parser struct {
	p *pipeline.Pipeline
}

// NewParser builds the fixed tool chain: locations and vehicle/body/urgency
// run independently off the normalized tokens, then weight/phone/cargo
// run independently too, and the classifier + confidence scorer run last
// once every signal is in baggage.
func NewParser(logger zerolog.Logger) *Parser {
	p := pipeline.New(logger, false)
	_ = p.AddTool(&normalizeTool{})
	_ = p.AddTool(&locationTool{})
	_ = p.AddTool(&vehicleTool{})
	_ = p.AddTool(&weightPhoneTool{})
	_ = p.AddTool(&classifyTool{})
	return &Parser{p: p}
}

// ParseMessage runs the full extraction chain over one raw message text.
func (parser *Parser) ParseMessage(ctx context.Context, text string) (*models.ParsedMessage, error) {
	baggage := map[string]interface{}{baggageRawText: text}
	if err := parser.p.Execute(ctx, baggage); err != nil {
		return nil, err
	}
	msg, _ := baggage[baggageParsed].(*models.ParsedMessage)
	return msg, nil
}

// --- tools ---

type normalizeTool struct{}

func (normalizeTool) Name() string            { return "normalize" }
func (normalizeTool) Description() string     { return "ascii-folds and tokenizes the raw message text" }
func (normalizeTool) Dependencies() []string  { return nil }
func (normalizeTool) Process(_ context.Context, baggage map[string]interface{}) error {
	text, _ := baggage[baggageRawText].(string)
	normalized := normalize.Preprocess(text)
	baggage[baggageNormalized] = normalized
	baggage[baggageTokens] = normalize.Tokenize(normalized)
	return nil
}

type locationTool struct{}

func (locationTool) Name() string           { return "locations" }
func (locationTool) Description() string    { return "runs the C3 location parser over the normalized text" }
func (locationTool) Dependencies() []string { return []string{"normalize"} }
func (locationTool) Process(_ context.Context, baggage map[string]interface{}) error {
	text, _ := baggage[baggageRawText].(string)
	locations := locparser.Parse(text)
	msg := ensureParsedMessage(baggage)
	if locations.OriginProvince != "" {
		code := 0
		if p, ok := geo.ResolveProvince(locations.OriginProvince); ok {
			code = p.Code
		}
		msg.Origin = &models.LocationMention{OriginalText: locations.Origin, ProvinceCode: code, ProvinceName: locations.OriginProvince, DistrictName: locations.OriginDistrict}
	}
	if locations.DestinationProvince != "" {
		code := 0
		if p, ok := geo.ResolveProvince(locations.DestinationProvince); ok {
			code = p.Code
		}
		msg.Destination = &models.LocationMention{OriginalText: locations.Destination, ProvinceCode: code, ProvinceName: locations.DestinationProvince, DistrictName: locations.DestinationDistrict}
	}
	msg.Routes = ExtractAllRoutes(baggage[baggageNormalized].(string))
	return nil
}

type vehicleTool struct{}

func (vehicleTool) Name() string           { return "vehicle" }
func (vehicleTool) Description() string    { return "classifies vehicle and body type" }
func (vehicleTool) Dependencies() []string { return []string{"normalize"} }
func (vehicleTool) Process(_ context.Context, baggage map[string]interface{}) error {
	tokens, _ := baggage[baggageTokens].([]string)
	msg := ensureParsedMessage(baggage)
	msg.Vehicle = ClassifyVehicle(tokens)
	msg.IsUrgent, msg.UrgencyIndicators = ExtractUrgency(tokens)
	return nil
}

type weightPhoneTool struct{}

func (weightPhoneTool) Name() string           { return "weight_phone_cargo" }
func (weightPhoneTool) Description() string    { return "extracts weight, phone numbers, and cargo type" }
func (weightPhoneTool) Dependencies() []string { return []string{"normalize"} }
func (weightPhoneTool) Process(_ context.Context, baggage map[string]interface{}) error {
	normalized, _ := baggage[baggageNormalized].(string)
	text, _ := baggage[baggageRawText].(string)
	msg := ensureParsedMessage(baggage)
	msg.Weight = ExtractWeight(normalized)
	msg.Phones = ExtractPhones(text)
	msg.CargoType = ExtractCargoType(normalized)
	return nil
}

type classifyTool struct{}

func (classifyTool) Name() string { return "classify_and_score" }
func (classifyTool) Description() string {
	return "classifies message type and computes the final confidence score"
}
func (classifyTool) Dependencies() []string {
	return []string{"locations", "vehicle", "weight_phone_cargo"}
}
func (classifyTool) Process(_ context.Context, baggage map[string]interface{}) error {
	normalized, _ := baggage[baggageNormalized].(string)
	msg := ensureParsedMessage(baggage)
	msg.MessageType = ClassifyMessageType(normalized)
	msg.ConfidenceScore, msg.ConfidenceLevel, msg.ConfidenceFactors = ScoreConfidence(msg)
	return nil
}

func ensureParsedMessage(baggage map[string]interface{}) *models.ParsedMessage {
	if msg, ok := baggage[baggageParsed].(*models.ParsedMessage); ok {
		return msg
	}
	msg := &models.ParsedMessage{}
	baggage[baggageParsed] = msg
	return msg
}
