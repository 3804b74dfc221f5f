package dex

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	slugStripRe  = regexp.MustCompile(`[^a-z0-9-]`)
	nonAlnumRe   = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// LearnsetSlug builds the path segment used to fetch a species' learnset:
// lower-cased display name, whitespace runs replaced by dashes, anything
// outside [a-z0-9-] removed. An empty result falls back to the lower-cased
// key.
func LearnsetSlug(key, name string) string {
	slug := whitespaceRe.ReplaceAllString(strings.ToLower(name), "-")
	slug = slugStripRe.ReplaceAllString(slug, "")
	if slug == "" {
		return strings.ToLower(key)
	}
	return slug
}

// RouteSlug is the slug used for page routes. Unlike LearnsetSlug it keeps
// the gender sign of names like Nidoran♀ as a trailing letter.
func RouteSlug(name string) string {
	slug := whitespaceRe.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.NewReplacer("♂", "m", "♀", "f").Replace(slug)
	return slugStripRe.ReplaceAllString(slug, "")
}

// MoveKeyFromName maps an upstream move name ("vine-whip") to a local move
// key ("vinewhip").
func MoveKeyFromName(name string) string {
	return strings.ToLower(nonAlnumRe.ReplaceAllString(name, ""))
}
