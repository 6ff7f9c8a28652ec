package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"site-service/internal/apperr"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// decomposer splits accented characters into base letter plus combining
// marks and drops the marks, so "café" normalizes to "cafe".
var decomposer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSlug converts free text into a URL-safe slug: lowercase,
// dash-separated, containing only [a-z0-9-], with no leading, trailing or
// doubled dashes. Blank input is rejected. If nothing survives
// normalization a timestamp-based slug is synthesized, so the result is
// always non-empty but that last resort is not deterministic.
func NormalizeSlug(text string) (string, error) {
	return normalizeSlug(text, time.Now)
}

// GenerateSlug derives a slug from a site name when the caller supplied none
func GenerateSlug(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", apperr.New(apperr.InvalidInput, "text cannot be null or blank")
	}
	return normalizeSlug(name, time.Now)
}

func normalizeSlug(text string, now func() time.Time) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperr.New(apperr.InvalidInput, "slug cannot be null or blank")
	}

	decomposed, _, err := transform.String(decomposer, text)
	if err != nil {
		// Malformed input falls through untransformed; the character filter
		// below drops anything unusable anyway.
		decomposed = text
	}

	var b strings.Builder
	dash := true // swallow leading dashes
	for _, r := range strings.ToLower(decomposed) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case unicode.IsSpace(r) || r == '-':
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		slug = fmt.Sprintf("site-%d", now().UnixMilli())
	}
	return slug, nil
}
