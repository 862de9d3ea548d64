package card_test

import (
	"context"
	"sync"

	"cardsmith/pkg/schema"
)

// mockInferencer is a test double for inference.Inferencer.
type mockInferencer struct {
	mu      sync.Mutex
	prompts []string
	inferFn func(ctx context.Context, prompt string) (string, error)
}

func (m *mockInferencer) Infer(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.inferFn != nil {
		return m.inferFn(ctx, prompt)
	}
	return "", nil
}

// mockIllustrator is a test double for inference.Illustrator.
type mockIllustrator struct {
	mu           sync.Mutex
	prompts      []string
	illustrateFn func(ctx context.Context, prompt string) (*schema.CardArtwork, error)
}

func (m *mockIllustrator) Illustrate(ctx context.Context, prompt string) (*schema.CardArtwork, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.illustrateFn != nil {
		return m.illustrateFn(ctx, prompt)
	}
	return nil, nil
}

func (m *mockIllustrator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

const validStats = `{
  "hp": 120,
  "attack1_name": "Ember Snap",
  "attack1_damage": 30,
  "attack1_description": "A quick bite wreathed in flame.",
  "attack2_name": "Magma Roll",
  "attack2_damage": 80,
  "attack2_description": "Rolls over the foe in molten rock.",
  "retreat_cost": 2,
  "flavor_text": "It naps in volcanoes and snores smoke rings."
}`

var validStatsParsed = schema.CardStats{
	HP:                 120,
	Attack1Name:        "Ember Snap",
	Attack1Damage:      30,
	Attack1Description: "A quick bite wreathed in flame.",
	Attack2Name:        "Magma Roll",
	Attack2Damage:      80,
	Attack2Description: "Rolls over the foe in molten rock.",
	RetreatCost:        2,
	FlavorText:         "It naps in volcanoes and snores smoke rings.",
}
