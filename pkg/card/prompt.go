package card

import (
	"encoding/json"
	"fmt"

	"cardsmith/pkg/schema"
)

const statPromptTemplate = `You are a creative designer of Pokémon-style trading cards.
Create the stats for a collectible card with the following details:

Name: %s
Element/Type: %s
Description: %s
Special ability: %s
Weakness: %s

Respond ONLY with a single valid JSON object (no Markdown code blocks) with exactly these fields:
{
  "hp": <number 30-300>,
  "attack1_name": "<string>",
  "attack1_damage": <number>,
  "attack1_description": "<short description>",
  "attack2_name": "<string>",
  "attack2_damage": <number>,
  "attack2_description": "<short description>",
  "retreat_cost": <number 1-4>,
  "flavor_text": "<short, funny flavor text>"
}
`

const imagePromptTemplate = `Create a vibrant, detailed illustration for a Pokémon-style trading card.
The creature is called "%s". It is of type "%s".
Description: %s
The art style should be colorful, dynamic, anime-inspired, similar to official Pokémon card illustrations, and match the "%s" type.
Show ONLY the creature, no text, no card borders, no UI elements. Full-body portrait on a simple
background that matches the element type.`

// BuildPrompts renders the stat prompt and the image prompt for a request.
// Values are interpolated verbatim; the destination is a model, not a parser.
func BuildPrompts(req schema.CardRequest) (statPrompt, imagePrompt string) {
	name, element, description := promptValue(req.Name), promptValue(req.Element), promptValue(req.Description)

	statPrompt = fmt.Sprintf(statPromptTemplate,
		name,
		element,
		description,
		promptValue(req.SpecialAbility),
		promptValue(req.Weakness),
	)
	imagePrompt = fmt.Sprintf(imagePromptTemplate, name, element, description, element)
	return statPrompt, imagePrompt
}

func promptValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
