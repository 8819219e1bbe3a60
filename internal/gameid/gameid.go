// Package gameid generates sortable identifiers for games so that log lines
// from one session can be correlated.
package gameid

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator creates game IDs from a clock and a source of randomness
type Generator struct {
	clock  quartz.Clock
	random io.Reader
}

// NewGenerator creates a generator. A nil clock uses the real clock and a nil
// reader uses crypto/rand.
func NewGenerator(clock quartz.Clock, random io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if random == nil {
		random = rand.Reader
	}
	return &Generator{clock: clock, random: random}
}

// Generate creates a new game ID using the real clock
func Generate() (string, error) {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a UUIDv7 stamped with the generator's clock, encoded as a
// 26-character base32 string. IDs sort by creation time.
func (g *Generator) Generate() (string, error) {
	var id uuid.UUID

	// 48-bit millisecond timestamp, then random bits
	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}
	if _, err := io.ReadFull(g.random, id[6:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encoding.EncodeToString(id[:]), nil
}

// Parse decodes a game ID back into its UUID
func Parse(s string) (uuid.UUID, error) {
	if len(s) != Length {
		return uuid.Nil, fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(s))
	}

	raw, err := encoding.DecodeString(strings.ToLower(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid game ID %q: %w", s, err)
	}

	id, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid game ID %q: %w", s, err)
	}
	if id.Version() != 7 {
		return uuid.Nil, fmt.Errorf("game ID %q is not a version 7 UUID", s)
	}
	return id, nil
}

// Time returns the creation time embedded in a game ID
func Time(s string) (time.Time, error) {
	id, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec), nil
}
