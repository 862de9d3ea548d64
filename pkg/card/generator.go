package card

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"cardsmith/pkg/inference"
	"cardsmith/pkg/schema"
	"cardsmith/pkg/utils"
)

type Options struct {
	// TextTimeout and ImageTimeout bound each outbound call. Zero means no limit.
	TextTimeout  time.Duration
	ImageTimeout time.Duration

	// WebP re-encodes artwork before it is returned.
	WebP bool
}

// Generator turns a card request into a complete card.
// It holds no per-request state and is safe for concurrent use.
type Generator struct {
	stats       inference.Inferencer
	illustrator inference.Illustrator
	opts        Options
}

func NewGenerator(stats inference.Inferencer, illustrator inference.Illustrator, opts Options) *Generator {
	return &Generator{
		stats:       stats,
		illustrator: illustrator,
		opts:        opts,
	}
}

// Generate builds both prompts, generates the stats (required) and then the
// artwork (best-effort) and merges the result.
func (g *Generator) Generate(ctx context.Context, req schema.CardRequest) (*schema.CardResult, error) {
	statPrompt, imagePrompt := BuildPrompts(req)

	stats, err := g.generateStats(ctx, statPrompt)
	if err != nil {
		return nil, err
	}

	artwork := g.generateArtwork(ctx, imagePrompt)
	return Compose(req, stats, artwork), nil
}

func (g *Generator) generateStats(ctx context.Context, prompt string) (schema.CardStats, error) {
	ctx, cancel := withTimeout(ctx, g.opts.TextTimeout)
	defer cancel()

	raw, err := g.stats.Infer(ctx, prompt)
	if err != nil {
		return schema.CardStats{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	stats, err := ParseStats(raw)
	if err != nil {
		log.Debug("unparseable card stats", "output", utils.LimitStr(raw, 512))
		return schema.CardStats{}, err
	}
	return stats, nil
}

// generateArtwork never fails: a card without artwork is still a card.
func (g *Generator) generateArtwork(ctx context.Context, prompt string) *schema.CardArtwork {
	if g.illustrator == nil {
		return nil
	}

	ctx, cancel := withTimeout(ctx, g.opts.ImageTimeout)
	defer cancel()

	art, err := g.illustrator.Illustrate(ctx, prompt)
	if err != nil {
		log.Warn("image generation failed (non-fatal)", "error", err)
		return nil
	}
	if art == nil || len(art.Data) == 0 {
		log.Warn("image generation returned no image (non-fatal)")
		return nil
	}

	if g.opts.WebP {
		converted, err := utils.ToWebP(art.Data)
		if err != nil {
			log.Warn("webp conversion failed, keeping original image", "mime", art.MIMEType, "error", err)
			return art
		}
		return &schema.CardArtwork{Data: converted, MIMEType: "image/webp"}
	}
	return art
}

// Compose merges the request, the stats and the optional artwork.
func Compose(req schema.CardRequest, stats schema.CardStats, artwork *schema.CardArtwork) *schema.CardResult {
	result := &schema.CardResult{
		CardRequest: req,
		CardStats:   stats,
	}
	if artwork != nil && len(artwork.Data) > 0 {
		result.ImageB64 = base64.StdEncoding.EncodeToString(artwork.Data)
	}
	return result
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
