package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/bowling-cli/internal/game"
)

// Shorthand accepted in place of a pin count
const (
	StrikeToken = "X"
	SpareToken  = "/"
)

// ErrInvalidInputSyntax is returned for text that is not a pin count or a
// shorthand valid for the ball being entered.
var ErrInvalidInputSyntax = errors.New("session: invalid input syntax")

// ParseRoll translates a line of input into a pin count for a ball facing
// rack. X is only accepted against a full rack and / only against a rack
// that has already been bowled at.
func ParseRoll(input string, rack game.Rack) (int, error) {
	token := strings.TrimSpace(input)

	switch {
	case strings.EqualFold(token, StrikeToken):
		if !rack.Fresh {
			return 0, fmt.Errorf("%w: strike needs a full rack", ErrInvalidInputSyntax)
		}
		return game.MaxPins, nil
	case token == SpareToken:
		if rack.Fresh {
			return 0, fmt.Errorf("%w: spare needs a ball already thrown", ErrInvalidInputSyntax)
		}
		return rack.Standing, nil
	}

	pins, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInputSyntax, token)
	}
	if pins < 0 || pins > game.MaxPins {
		return 0, fmt.Errorf("%w: %d", game.ErrInvalidPinCount, pins)
	}
	return pins, nil
}
