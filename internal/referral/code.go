// Package referral builds the invite codes players share with friends.
package referral

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
)

const (
	prefixLen   = 3
	placeholder = "USR"
)

// Prefix is the first three characters of the transliterated name in upper case,
// with every character that is not an ASCII letter replaced by USR.
func Prefix(name string) string {
	ascii := []rune(strings.ToUpper(unidecode.Unidecode(name)))
	if len(ascii) > prefixLen {
		ascii = ascii[:prefixLen]
	}

	var b strings.Builder
	for _, r := range ascii {
		if r <= unicode.MaxASCII && unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString(placeholder)
	}
	if b.Len() == 0 {
		return placeholder
	}
	return b.String()
}

// Code joins the prefix with a four digit suffix in [1000, 9999].
func Code(name string, suffix int) string {
	return Prefix(name) + strconv.Itoa(suffix)
}

// Generator produces codes with random suffixes.
type Generator struct {
	intN func(n int) int
}

func NewGenerator() *Generator {
	return &Generator{intN: rand.IntN}
}

func (g *Generator) New(name string) string {
	return Code(name, 1000+g.intN(9000))
}
