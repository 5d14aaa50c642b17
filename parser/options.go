package parser

import (
	"log/slog"

	"minilang/config"
)

type Option func(*Parser)

// WithLogger routes the parser's debug output to logger. Without it the
// parser logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithConfig(cfg config.Parser) Option {
	return func(p *Parser) {
		p.cfg = cfg
	}
}
