package schema

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatFieldsMatchStruct(t *testing.T) {
	typ := reflect.TypeOf(CardStats{})
	var tags []string
	for i := range typ.NumField() {
		tag := typ.Field(i).Tag.Get("json")
		tags = append(tags, strings.Split(tag, ",")[0])
	}
	assert.Equal(t, StatFields, tags)
}

func TestCardStatsSchema(t *testing.T) {
	s, ok := CardStatsSchema.(*jsonschema.Schema)
	require.True(t, ok, "unexpected schema type %T", CardStatsSchema)

	assert.ElementsMatch(t, StatFields, s.Required)
	for _, name := range StatFields {
		_, ok := s.Properties.Get(name)
		assert.True(t, ok, "missing property %s", name)
	}

	hp, _ := s.Properties.Get("hp")
	require.NotNil(t, hp)
	assert.Equal(t, json.Number("30"), hp.Minimum)
	assert.Equal(t, json.Number("300"), hp.Maximum)
}

func TestStatsResponseFormat(t *testing.T) {
	f := StatsResponseFormat()
	require.NotNil(t, f.OfJSONSchema)
	assert.Equal(t, "card_stats", f.OfJSONSchema.JSONSchema.Name)
	assert.True(t, f.OfJSONSchema.JSONSchema.Strict.Value)
}

func TestCardResultFlattens(t *testing.T) {
	res := CardResult{
		CardRequest: CardRequest{Name: "Blazefin", Element: "Fire", Description: "", SpecialAbility: "", Weakness: ""},
		CardStats:   CardStats{HP: 120, RetreatCost: 2},
	}
	b, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "Blazefin", m["name"])
	assert.Equal(t, float64(120), m["hp"])
	assert.NotContains(t, m, "image_b64")
	assert.NotContains(t, m, "CardRequest")
	assert.Len(t, m, 14)
}
