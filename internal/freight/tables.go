package freight

import "github.com/kargotakip/freightline/internal/models"

// vehiclePatterns maps an ascii token to the vehicle/body classification it
// signals. A token may set only one of VehicleType/BodyType, or both, per
// spec §4.4.
var vehiclePatterns = []struct {
	token   string
	vehicle models.VehicleType
	body    models.BodyType
	frigo   bool
}{
	{"tir", models.VehicleTIR, "", false},
	{"kamyon", models.VehicleKamyon, "", false},
	{"kamyonet", models.VehicleKamyonet, "", false},
	{"dorse", models.VehicleDorse, "", false},
	{"treyler", models.VehicleTreyler, "", false},
	{"tanker", models.VehicleTanker, "", false},
	{"lowbed", models.VehicleLowbed, models.BodyLowbed, false},
	{"mega", models.VehicleMega, "", false},
	{"jumbo", models.VehicleJumbo, "", false},
	{"konteyner", models.VehicleKonteyner, "", false},

	{"frigo", "", models.BodyFrigo, true},
	{"frigorifik", "", models.BodyFrigo, true},
	{"termokin", "", models.BodyFrigo, true},
	{"sogutuculu", "", models.BodyFrigo, true},
	{"sogutucu", "", models.BodyFrigo, true},
	{"soguk", "", models.BodyFrigo, true},
	{"damperli", "", models.BodyDamperli, false},
	{"tenteli", "", models.BodyTenteli, false},
	{"kapali", "", models.BodyKapali, false},
	{"acik", "", models.BodyAcik, false},
	{"platform", "", models.BodyPlatform, false},
	{"sackasa", "", models.BodySacKasa, false},
}

var messageTypeKeywords = []struct {
	keyword string
	mtype   models.MessageType
}{
	{"araniyor", models.MessageVehicleWanted},
	{"lazim", models.MessageVehicleWanted},
	{"yukumuz var", models.MessageCargoAvailable},
	{"yuk var", models.MessageCargoAvailable},
	{"yuk", models.MessageCargoAvailable},
	{"bos arac", models.MessageVehicleAvailable},
	{"musait", models.MessageVehicleAvailable},
}

var urgencyTokens = []string{"acil", "hemen", "bugun", "ivedi", "derhal"}
