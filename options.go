package cubeplay

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Cube or a Player.
type Option func(*config)

type config struct {
	logger *logrus.Logger
	pacer  Pacer
}

func defaultConfig() *config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &config{
		logger: l,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used for move and playback tracing.
// Moves are logged at debug level. The default logger discards everything.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPacer installs a Pacer that a Player calls after every move it
// commits during PlayRange, Play and Rewind. A renderer uses it to run the
// turn animation before the next move is applied.
func WithPacer(p Pacer) Option {
	return func(c *config) {
		c.pacer = p
	}
}
