package recipe

import (
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"

	"github.com/zeebo/blake3"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a recipe id from a title: "Crème Brûlée" -> "creme-brulee",
// "Grandma's Cookies" -> "grandmas-cookies".
func Slugify(title string) string {
	// transformers carry state, so each call builds its own chain
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(stripMarks, title)
	if err != nil {
		s = title
	}
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// VersionHash returns the hex BLAKE3-256 digest of a recipe source. It changes
// if and only if the source text changes.
func VersionHash(source string) string {
	sum := blake3.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
