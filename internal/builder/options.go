package builder

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formdoc/internal/casing"
)

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/builder and passed into New.
type Options struct {
	// Labeler turns property names and enum values into labels.
	Labeler func(string) string
	// SubmitLabel appends a submit button with this label when non-empty.
	SubmitLabel string
	Logger      *zap.SugaredLogger
}

func defaultOptions() Options {
	return Options{
		Labeler: casing.Humanize,
		Logger:  zap.NewNop().Sugar(),
	}
}
