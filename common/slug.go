package common

import (
	"errors"
	"regexp"
	"strings"
)

// MaxSlugLength is the longest slug the organizations table accepts.
const MaxSlugLength = 100

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Slugify lowercases input and collapses every run of other characters into
// a single hyphen, falling back to fallback when nothing usable remains. The
// result is capped at maxLen characters (MaxSlugLength when maxLen <= 0).
func Slugify(input, fallback string, maxLen int) (string, error) {
	if maxLen <= 0 || maxLen > MaxSlugLength {
		maxLen = MaxSlugLength
	}

	slug := slugify(input, maxLen)
	if slug == "" {
		slug = slugify(fallback, maxLen)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// IsValidSlug reports whether s is 1-100 characters of lowercase letters,
// digits and hyphens.
func IsValidSlug(s string) bool {
	return len(s) <= MaxSlugLength && slugPattern.MatchString(s)
}

func slugify(s string, maxLen int) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := strings.Trim(nonSlugChars.ReplaceAllString(lower, "-"), "-")
	if len(slug) > maxLen {
		slug = strings.TrimRight(slug[:maxLen], "-")
	}
	return slug
}
