package schema

// Defaults substituted by the request decoder when a field is missing.
const (
	DefaultName    = "Unknown"
	DefaultElement = "Normal"
)

// CardRequest is the creature description submitted by the user.
// Values are kept exactly as decoded from JSON so they can be echoed back
// without coercion (a number sent as "name" comes back as a number).
type CardRequest struct {
	Name           any `json:"name"`
	Element        any `json:"element"`
	Description    any `json:"description"`
	SpecialAbility any `json:"special_ability"`
	Weakness       any `json:"weakness"`
}

// CardStats is the gameplay block produced by the text model.
type CardStats struct {
	HP                 int    `json:"hp" jsonschema:"minimum=30,maximum=300" jsonschema_description:"Hit points between 30 and 300"`
	Attack1Name        string `json:"attack1_name" jsonschema_description:"Name of the first attack"`
	Attack1Damage      int    `json:"attack1_damage" jsonschema_description:"Damage dealt by the first attack"`
	Attack1Description string `json:"attack1_description" jsonschema_description:"Short description of the first attack"`
	Attack2Name        string `json:"attack2_name" jsonschema_description:"Name of the second attack"`
	Attack2Damage      int    `json:"attack2_damage" jsonschema_description:"Damage dealt by the second attack"`
	Attack2Description string `json:"attack2_description" jsonschema_description:"Short description of the second attack"`
	RetreatCost        int    `json:"retreat_cost" jsonschema:"minimum=1,maximum=4" jsonschema_description:"Retreat cost between 1 and 4"`
	FlavorText         string `json:"flavor_text" jsonschema_description:"Short, funny flavor text"`
}

// StatFields lists the JSON keys every CardStats payload must carry.
var StatFields = []string{
	"hp",
	"attack1_name",
	"attack1_damage",
	"attack1_description",
	"attack2_name",
	"attack2_damage",
	"attack2_description",
	"retreat_cost",
	"flavor_text",
}

// CardArtwork is the raw illustration returned by the image model.
type CardArtwork struct {
	Data     []byte
	MIMEType string
}

// CardResult is the response body of POST /generate_card.
// The embedded structs flatten into a single JSON object.
type CardResult struct {
	CardRequest
	CardStats
	ImageB64 string `json:"image_b64,omitempty"`
}
