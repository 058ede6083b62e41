package definition

import "go.uber.org/zap"

// Option configures Parse, LoadFile and LoadFS.
type Option func(*config)

type config struct {
	sanitize bool
	logger   *zap.SugaredLogger
}

func newConfig(options []Option) config {
	cfg := config{logger: zap.NewNop().Sugar()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop().Sugar()
	}
	return cfg
}

// WithSanitizer strips markup from human readable text: labels, descriptions,
// placeholders, titles, item labels and the label dictionary.
func WithSanitizer(enabled bool) Option {
	return func(cfg *config) {
		cfg.sanitize = enabled
	}
}

// WithLogger receives diagnostics such as alias use or attributes that do not
// apply to a field type.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
