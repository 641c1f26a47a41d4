// Package models holds the data types shared across the ingestion pipeline
// and the conversational agent: the persisted records (RawMessage, Job,
// Conversation, PendingNotification) and the ephemeral per-call records
// produced by the parsers (ParsedLocations, ParsedMessage).
package models

import "time"

// VehicleType enumerates the trucker vehicle categories the freight-posting
// parser recognizes.
type VehicleType string

const (
	VehicleTIR       VehicleType = "TIR"
	VehicleKamyon    VehicleType = "KAMYON"
	VehicleKamyonet  VehicleType = "KAMYONET"
	VehicleDorse     VehicleType = "DORSE"
	VehicleTreyler   VehicleType = "TREYLER"
	VehicleTanker    VehicleType = "TANKER"
	VehicleLowbed    VehicleType = "LOWBED"
	VehicleMega      VehicleType = "MEGA"
	VehicleJumbo     VehicleType = "JUMBO"
	VehicleKonteyner VehicleType = "KONTEYNER"
)

// BodyType enumerates trailer/load-compartment types. Orthogonal to VehicleType.
type BodyType string

const (
	BodyFrigo    BodyType = "FRIGO"
	BodyDamperli BodyType = "DAMPERLI"
	BodyTenteli  BodyType = "TENTELI"
	BodyKapali   BodyType = "KAPALI"
	BodyAcik     BodyType = "ACIK"
	BodyLowbed   BodyType = "LOWBED"
	BodyPlatform BodyType = "PLATFORM"
	BodySacKasa  BodyType = "SAC_KASA"
)

// WeightUnit is the unit a parsed weight value was expressed in.
type WeightUnit string

const (
	WeightUnitTon WeightUnit = "ton"
	WeightUnitKg  WeightUnit = "kg"
)

// MessageType classifies what a broker-group message is advertising.
type MessageType string

const (
	MessageVehicleWanted    MessageType = "VEHICLE_WANTED"
	MessageCargoAvailable   MessageType = "CARGO_AVAILABLE"
	MessageVehicleAvailable MessageType = "VEHICLE_AVAILABLE"
	MessageUnknown          MessageType = "UNKNOWN"
)

// ConfidenceLevel buckets a ParsedMessage's confidence score.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "HIGH"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceLow    ConfidenceLevel = "LOW"
)

// IstanbulSide identifies which side of the Bosphorus a location falls on.
type IstanbulSide string

const (
	IstanbulEuropean IstanbulSide = "european"
	IstanbulAsian    IstanbulSide = "asian"
	IstanbulUnknown  IstanbulSide = "unknown"
)

// RawMessage is the durable record created at webhook admission. Processed
// flips at most once and is the idempotency anchor for the whole pipeline.
type RawMessage struct {
	MessageID       string     `json:"message_id"`
	GroupID         string     `json:"group_id"`
	SenderID        string     `json:"sender_id,omitempty"`
	SenderPhone     string     `json:"sender_phone,omitempty"`
	Text            string     `json:"text"`
	ArchiveRef      string     `json:"archive_ref"`
	ReceivedAt      time.Time  `json:"received_at"`
	SourceTimestamp *time.Time `json:"source_timestamp,omitempty"`
	Processed       bool       `json:"processed"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
}

// LocationMention is one resolved province/district hit, carried on both
// ParsedLocations and ParsedMessage.
type LocationMention struct {
	OriginalText string `json:"original_text"`
	ProvinceCode int    `json:"province_code"`
	ProvinceName string `json:"province_name"`
	DistrictName string `json:"district_name,omitempty"`
}

// ParsedLocations is the ephemeral output of the location parser (C3) for a
// single utterance — either a driver query or a broker posting.
type ParsedLocations struct {
	Origin                    string       `json:"origin,omitempty"`
	Destination               string       `json:"destination,omitempty"`
	OriginProvince            string       `json:"origin_province,omitempty"`
	OriginDistrict            string       `json:"origin_district,omitempty"`
	DestinationProvince       string       `json:"destination_province,omitempty"`
	DestinationDistrict       string       `json:"destination_district,omitempty"`
	Destinations              []string     `json:"destinations,omitempty"`
	OriginRegion              string       `json:"origin_region,omitempty"`
	DestinationRegion         string       `json:"destination_region,omitempty"`
	SameProvinceSearch        bool         `json:"same_province_search"`
	CargoType                 string       `json:"cargo_type,omitempty"`
	InternationalDestination  bool         `json:"international_destination"`
	IstanbulSide              IstanbulSide `json:"istanbul_side,omitempty"`
}

// IsEmpty reports whether the parser found nothing at all.
func (p *ParsedLocations) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Origin == "" && p.Destination == "" && len(p.Destinations) == 0 &&
		p.OriginRegion == "" && p.DestinationRegion == "" && !p.InternationalDestination
}

// VehicleInfo is the vehicle/body classification result for one message.
type VehicleInfo struct {
	VehicleType    VehicleType `json:"vehicle_type,omitempty"`
	BodyType       BodyType    `json:"body_type,omitempty"`
	IsRefrigerated bool        `json:"is_refrigerated"`
}

// Weight is a parsed weight reading, normalized toward tons where possible.
type Weight struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

// Phone is one phone number found in a message, in raw and normalized form.
type Phone struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"` // 5XXXXXXXXX
}

// Route is one origin/destination pair extracted from a multi-route posting.
type Route struct {
	Origin          string      `json:"origin"`
	Destination     string      `json:"destination"`
	OriginCode      int         `json:"origin_code"`
	DestinationCode int         `json:"destination_code"`
	Vehicle         VehicleType `json:"vehicle,omitempty"`
	BodyType        BodyType    `json:"body_type,omitempty"`
}

// ParsedMessage is the ephemeral, per-message output of the freight-posting
// parser (C4): everything extracted from one raw broker message plus a
// confidence score for whether it is trustworthy enough to materialize.
type ParsedMessage struct {
	Origin             *LocationMention  `json:"origin,omitempty"`
	Destination        *LocationMention  `json:"destination,omitempty"`
	Vehicle            VehicleInfo       `json:"vehicle"`
	Weight             *Weight           `json:"weight,omitempty"`
	Phones             []Phone           `json:"phones,omitempty"`
	ContactName        string            `json:"contact_name,omitempty"`
	CargoType          string            `json:"cargo_type,omitempty"`
	LoadType           string            `json:"load_type,omitempty"`
	MessageType        MessageType       `json:"message_type"`
	IsUrgent           bool              `json:"is_urgent"`
	UrgencyIndicators  []string          `json:"urgency_indicators,omitempty"`
	ConfidenceScore    float64           `json:"confidence_score"`
	ConfidenceLevel    ConfidenceLevel   `json:"confidence_level"`
	ConfidenceFactors  []string          `json:"confidence_factors,omitempty"`
	MentionedLocations []LocationMention `json:"mentioned_locations,omitempty"`
	Routes             []Route           `json:"routes,omitempty"`
}

// Job is the persisted, queryable projection of a ParsedMessage (§6.4).
type Job struct {
	ID                      int64           `json:"id"`
	MessageID               string          `json:"message_id"`
	SourceGroupID           string          `json:"source_group_id"`
	RawText                 string          `json:"raw_text"`
	MessageType             MessageType     `json:"message_type"`
	OriginMentioned         string          `json:"origin_mentioned,omitempty"`
	OriginProvince          string          `json:"origin_province,omitempty"`
	OriginProvinceCode      int             `json:"origin_province_code,omitempty"`
	OriginDistrict          string          `json:"origin_district,omitempty"`
	DestinationMentioned    string          `json:"destination_mentioned,omitempty"`
	DestinationProvince     string          `json:"destination_province,omitempty"`
	DestinationProvinceCode int             `json:"destination_province_code,omitempty"`
	DestinationDistrict     string          `json:"destination_district,omitempty"`
	VehicleType             VehicleType     `json:"vehicle_type,omitempty"`
	BodyType                BodyType        `json:"body_type,omitempty"`
	IsRefrigerated          bool            `json:"is_refrigerated"`
	ContactPhone            string          `json:"contact_phone,omitempty"`
	ContactPhoneNormalized  string          `json:"contact_phone_normalized,omitempty"`
	ContactName             string          `json:"contact_name,omitempty"`
	SenderJID               string          `json:"sender_jid,omitempty"`
	SenderPhone              string         `json:"sender_phone,omitempty"`
	Weight                   *float64       `json:"weight,omitempty"`
	WeightUnit               WeightUnit     `json:"weight_unit,omitempty"`
	CargoType                string         `json:"cargo_type,omitempty"`
	LoadType                 string         `json:"load_type,omitempty"`
	IsUrgent                 bool           `json:"is_urgent"`
	ConfidenceScore          float64        `json:"confidence_score"`
	ConfidenceLevel          ConfidenceLevel `json:"confidence_level"`
	RouteIndex               *int           `json:"route_index,omitempty"`
	TotalRoutes              *int           `json:"total_routes,omitempty"`
	PostedAt                 time.Time      `json:"posted_at"`
	CreatedAt                time.Time      `json:"created_at"`
	IsActive                 bool           `json:"is_active"`
}

// ConversationContext is the set of fields the agent carries between turns.
// An empty string on a "last*" field means the field holds no value; a
// context patch that sets it to "" clears it. The struct keeps no record
// of whether an empty field was explicitly cleared or never set.
type ConversationContext struct {
	LastOrigin               string      `json:"last_origin"`
	LastDestination          string      `json:"last_destination"`
	LastVehicleType          VehicleType `json:"last_vehicle_type"`
	LastBodyType             BodyType    `json:"last_body_type"`
	LastCargoType            string      `json:"last_cargo_type"`
	LastIsRefrigerated       bool        `json:"last_is_refrigerated"`
	LastOffset               int         `json:"last_offset"`
	LastShownCount           int         `json:"last_shown_count"`
	LastTotalCount           int         `json:"last_total_count"`
	LastJobIDs               []string    `json:"last_job_ids,omitempty"`
	PreferredVehicle         VehicleType `json:"preferred_vehicle,omitempty"`
	PendingVehicleSuggestion bool        `json:"pending_vehicle_suggestion"`
	PendingNearbySuggestion  string      `json:"pending_nearby_suggestion,omitempty"`
}

// ConversationRole identifies who produced a conversation message.
type ConversationRole string

const (
	RoleUser      ConversationRole = "user"
	RoleAssistant ConversationRole = "assistant"
	RoleSystem    ConversationRole = "system"
)

// ConversationMessage is one turn in a conversation's transcript.
type ConversationMessage struct {
	Role    ConversationRole `json:"role"`
	Content string           `json:"content"`
	At      time.Time        `json:"at"`
}

// Conversation is the full per-user conversation record (C6).
type Conversation struct {
	UserID   string                `json:"user_id"`
	Messages []ConversationMessage `json:"messages"`
	Context  ConversationContext   `json:"context"`
}

// NotificationFilters narrows a PendingNotification beyond origin/destination.
type NotificationFilters struct {
	VehicleType VehicleType `json:"vehicle_type,omitempty"`
	BodyType    BodyType    `json:"body_type,omitempty"`
	CargoType   string      `json:"cargo_type,omitempty"`
}

// PendingNotification is a standing "notify me" request left by a driver
// whose search came up empty (C6, spec §8 scenario 9).
type PendingNotification struct {
	UserID           string              `json:"user_id"`
	OriginAscii      string              `json:"origin_ascii"`
	DestinationAscii string              `json:"destination_ascii,omitempty"`
	Filters          NotificationFilters `json:"filters"`
	CreatedAt        time.Time           `json:"created_at"`
	TTLExpiresAt     time.Time           `json:"ttl_expires_at"`
}

// RouteKey returns the reverse-lookup key used to index pending
// notifications by route, per spec §3 ("Indexed by (originAscii,
// destinationAscii?)").
func (p *PendingNotification) RouteKey() string {
	return RouteKey(p.OriginAscii, p.DestinationAscii)
}

// RouteKey builds the canonical (origin, destination?) index key. An empty
// destination is represented as a wildcard segment so a notification that
// only cares about the origin still indexes deterministically.
func RouteKey(originAscii, destinationAscii string) string {
	if destinationAscii == "" {
		return originAscii + "|*"
	}
	return originAscii + "|" + destinationAscii
}
