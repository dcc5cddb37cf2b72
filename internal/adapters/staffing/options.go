package staffing

import "github.com/okian/teamboard/pkg/logger"

// Option configures a Client.
type Option func(*Client)

// WithCompleter replaces the Anthropic backend, mostly for tests.
func WithCompleter(c Completer) Option {
	return func(cl *Client) {
		if c != nil {
			cl.completer = c
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l logger.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// WithIDGenerator overrides proposal ID generation.
func WithIDGenerator(gen func() string) Option {
	return func(cl *Client) {
		if gen != nil {
			cl.newID = gen
		}
	}
}
