package domain

import (
	"testing"
	"time"
)

func TestValidateSlug(t *testing.T) {
	valid := []string{"hello", "hello-world", "post-123", "a", "2024-review"}
	for _, s := range valid {
		if err := ValidateSlug(s); err != nil {
			t.Errorf("expected %q to be valid, got %v", s, err)
		}
	}

	invalid := []string{"", "Hello", "hello world", "hello_world", "héllo", "hello/world", "HELLO"}
	for _, s := range invalid {
		err := ValidateSlug(s)
		if err == nil {
			t.Errorf("expected %q to be rejected", s)
			continue
		}
		e, ok := AsError(err)
		if !ok || e.Kind != KindInvalidInput {
			t.Errorf("expected KindInvalidInput for %q, got %v", s, err)
		}
	}
}

func TestValidateSiteName(t *testing.T) {
	if err := ValidateSiteName("blog-a"); err != nil {
		t.Errorf("expected blog-a to be valid, got %v", err)
	}
	for _, s := range []string{"", "Blog", "my blog"} {
		if err := ValidateSiteName(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2026-08-29"); err != nil {
		t.Errorf("expected 2026-08-29 to be valid, got %v", err)
	}

	invalid := []string{"", "2026-8-29", "29-08-2026", "2026/08/29", "2026-13-01", "2026-02-30", "2026-08-29T00:00:00Z"}
	for _, d := range invalid {
		if err := ValidateDate(d); err == nil {
			t.Errorf("expected %q to be rejected", d)
		}
	}
}

func TestValidateLanguage(t *testing.T) {
	if err := ValidateLanguage(LangEN); err != nil {
		t.Errorf("expected en to be valid, got %v", err)
	}
	if err := ValidateLanguage(LangZHCN); err != nil {
		t.Errorf("expected zh-CN to be valid, got %v", err)
	}
	for _, l := range []Language{"", "fr", "EN", "zh-cn"} {
		if err := ValidateLanguage(l); err == nil {
			t.Errorf("expected %q to be rejected", l)
		}
	}
}

func TestValidateStatus(t *testing.T) {
	if err := ValidateStatus(StatusDraft); err != nil {
		t.Errorf("expected draft to be valid, got %v", err)
	}
	if err := ValidateStatus(StatusPublished); err != nil {
		t.Errorf("expected published to be valid, got %v", err)
	}
	for _, s := range []ArticleStatus{"", "archived", "Draft", "PUBLISHED"} {
		if err := ValidateStatus(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestParseExpiry(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		got, err := ParseExpiry("2026-09-01T12:00:00.000Z", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("StrictFormat", func(t *testing.T) {
		rejected := []string{
			"2026-09-01T12:00:00Z",          // no milliseconds
			"2026-09-01T12:00:00.000+00:00", // numeric offset instead of Z
			"2026-09-01T12:00:00.000000Z",   // too many fractional digits
			"2026-09-01 12:00:00.000Z",      // space separator
			"2026-09-01",                    // date only
			"not-a-date",
			"",
		}
		for _, v := range rejected {
			if _, err := ParseExpiry(v, now); err == nil {
				t.Errorf("expected %q to be rejected", v)
			}
		}
	})

	t.Run("MustBeFuture", func(t *testing.T) {
		for _, v := range []string{"2026-08-29T12:00:00.000Z", "2026-08-29T11:59:59.999Z", "2020-01-01T00:00:00.000Z"} {
			_, err := ParseExpiry(v, now)
			if err == nil {
				t.Errorf("expected %q to be rejected as not in the future", v)
				continue
			}
			e, ok := AsError(err)
			if !ok || e.Kind != KindInvalidInput {
				t.Errorf("expected KindInvalidInput for %q, got %v", v, err)
			}
		}
	})
}
