package inference

import (
	"context"

	"cardsmith/pkg/schema"
)

// Inferencer sends a single prompt to a text model and returns its raw output.
type Inferencer interface {
	Infer(ctx context.Context, prompt string) (string, error)
}

// Illustrator renders a prompt into an image.
type Illustrator interface {
	Illustrate(ctx context.Context, prompt string) (*schema.CardArtwork, error)
}
