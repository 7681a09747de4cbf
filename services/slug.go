package services

import (
	"regexp"
	"strconv"
	"strings"
)

const maxSlugLength = 140

var slugInvalidRunes = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from free text: lowercase, runs of
// anything outside [a-z0-9] collapsed to a single hyphen, edge hyphens
// stripped, truncated to 140 characters.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugInvalidRunes.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return slug
}

// AllocateSlug returns the base slug if free, otherwise base-1, base-2, …
// up to the first gap. Allocation is not atomic against concurrent callers
// deriving the same base; the store's unique constraint settles that race
// and the loser sees a conflict.
func AllocateSlug(base string, exists func(slug string) (bool, error)) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(counter)
	}
}
