package services

import (
	"github.com/subhashitt/LogPiolt/pkg/parser"
)

// newTestParser returns a parser with default wiring. Tests that need a
// deterministic clock feed lines that carry their own timestamps.
func newTestParser() *parser.Parser {
	return parser.NewParser()
}
