package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Character class alphabets. The symbol alphabet sticks to printable
// ASCII symbols that survive shells, URLs, and config files poorly
// enough that some sites reject more exotic choices.
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// DefaultLength is the generated password length when none is given.
// 16 characters from a 4-class alphabet lands well past the highest
// entropy tier.
const DefaultLength = 16

// Generation errors.
var (
	// ErrInvalidLength is returned when the requested length is not positive.
	ErrInvalidLength = errors.New("invalid length: must be positive")

	// ErrEmptyCharset is returned when every character class is disabled.
	ErrEmptyCharset = errors.New("empty charset: at least one character class must be enabled")
)

// Generator produces random passwords with crypto/rand.
// The zero-option Generator from New() uses all four character classes.
type Generator struct {
	useLower   bool
	useUpper   bool
	useDigits  bool
	useSymbols bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithoutUpper disables uppercase letters.
func WithoutUpper() Option {
	return func(g *Generator) {
		g.useUpper = false
	}
}

// WithoutDigits disables digits.
func WithoutDigits() Option {
	return func(g *Generator) {
		g.useDigits = false
	}
}

// WithoutSymbols disables symbols.
func WithoutSymbols() Option {
	return func(g *Generator) {
		g.useSymbols = false
	}
}

// WithoutLower disables lowercase letters.
func WithoutLower() Option {
	return func(g *Generator) {
		g.useLower = false
	}
}

// New creates a Generator with all character classes enabled.
func New(opts ...Option) *Generator {
	g := &Generator{
		useLower:   true,
		useUpper:   true,
		useDigits:  true,
		useSymbols: true,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// alphabet assembles the combined alphabet from the enabled classes.
func (g *Generator) alphabet() string {
	var combined string
	if g.useLower {
		combined += lowerChars
	}
	if g.useUpper {
		combined += upperChars
	}
	if g.useDigits {
		combined += digitChars
	}
	if g.useSymbols {
		combined += symbolChars
	}
	return combined
}

// classes returns the enabled class alphabets individually.
func (g *Generator) classes() []string {
	var out []string
	if g.useLower {
		out = append(out, lowerChars)
	}
	if g.useUpper {
		out = append(out, upperChars)
	}
	if g.useDigits {
		out = append(out, digitChars)
	}
	if g.useSymbols {
		out = append(out, symbolChars)
	}
	return out
}

// Generate produces a random password of the given length.
// Characters are sampled uniformly from the combined alphabet via
// crypto/rand. When the length allows it, every enabled class is
// guaranteed to appear at least once so the generated password audits
// at full charset variety.
func (g *Generator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	combined := g.alphabet()
	if combined == "" {
		return "", ErrEmptyCharset
	}

	password := make([]byte, length)
	for i := range password {
		c, err := randomChar(combined)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	// Guarantee class coverage by overwriting distinct random
	// positions, one per enabled class. Skipped when the password is
	// too short to hold one character of each class.
	classes := g.classes()
	if length >= len(classes) {
		positions, err := distinctPositions(length, len(classes))
		if err != nil {
			return "", err
		}
		for i, class := range classes {
			c, err := randomChar(class)
			if err != nil {
				return "", err
			}
			password[positions[i]] = c
		}
	}

	return string(password), nil
}

// randomChar picks one uniformly random byte from the alphabet.
func randomChar(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return alphabet[n.Int64()], nil
}

// distinctPositions picks count distinct indices in [0, length) via a
// partial Fisher-Yates shuffle driven by crypto/rand.
func distinctPositions(length, count int) ([]int, error) {
	indices := make([]int, length)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < count; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(length-i)))
		if err != nil {
			return nil, fmt.Errorf("failed to read random source: %w", err)
		}
		j := i + int(n.Int64())
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices[:count], nil
}
