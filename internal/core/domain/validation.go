package domain

import (
	"fmt"
	"regexp"
	"time"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// expiryLayout is the only accepted expiry format: millisecond-precision
// UTC ISO-8601, e.g. 2026-09-01T12:00:00.000Z.
const expiryLayout = "2006-01-02T15:04:05.000Z"

// ValidateSlug checks that a slug contains only lowercase letters, digits
// and hyphens.
func ValidateSlug(slug string) error {
	if slug == "" {
		return E(KindInvalidInput, "slug is required")
	}
	if !slugRegex.MatchString(slug) {
		return E(KindInvalidInput, "slug must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// ValidateSiteName checks a site name. Names appear in URL paths, so the
// same shape as slugs is enforced.
func ValidateSiteName(name string) error {
	if name == "" {
		return E(KindInvalidInput, "site name is required")
	}
	if !slugRegex.MatchString(name) {
		return E(KindInvalidInput, "site name must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD display date of an article.
func ValidateDate(date string) error {
	if !dateRegex.MatchString(date) {
		return E(KindInvalidInput, "date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return E(KindInvalidInput, fmt.Sprintf("invalid date %q", date))
	}
	return nil
}

// ValidateLanguage checks a language tag against the supported set.
func ValidateLanguage(lang Language) error {
	switch lang {
	case LangEN, LangZHCN:
		return nil
	}
	return E(KindInvalidInput, fmt.Sprintf("unsupported language %q", lang))
}

// ValidateStatus checks an article status value.
func ValidateStatus(status ArticleStatus) error {
	switch status {
	case StatusDraft, StatusPublished:
		return nil
	}
	return E(KindInvalidInput, fmt.Sprintf("invalid status %q", status))
}

// ParseExpiry parses a key expiry timestamp. The format is strict: anything
// other than millisecond-precision UTC ISO-8601 is rejected, and the instant
// must be in the future relative to now.
func ParseExpiry(value string, now time.Time) (time.Time, error) {
	t, err := time.Parse(expiryLayout, value)
	if err != nil {
		return time.Time{}, E(KindInvalidInput, "expiresAt must be a UTC ISO-8601 timestamp with millisecond precision, e.g. 2026-09-01T12:00:00.000Z")
	}
	if !t.After(now) {
		return time.Time{}, E(KindInvalidInput, "expiresAt must be in the future")
	}
	return t, nil
}
