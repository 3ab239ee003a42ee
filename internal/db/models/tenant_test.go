package models

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"simple", "Kimuraya", "kimuraya"},
		{"spaces", "Kimuraya Honten", "kimuraya-honten"},
		{"punctuation collapsed", "Bistro -- du : Coin", "bistro-du-coin"},
		{"leading and trailing junk", "  (Sakura)  ", "sakura"},
		{"digits kept", "Cafe 24/7", "cafe-24-7"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.out {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestValidSlug(t *testing.T) {
	valid := []string{"kimuraya", "kimuraya-honten", "cafe-24-7", "a"}
	for _, s := range valid {
		if !ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "Kimuraya", "kimuraya--honten", "-kimuraya", "kimuraya-", "kimu raya"}
	for _, s := range invalid {
		if ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true, want false", s)
		}
	}
}

func TestArticlePubliclyVisible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		status      ArticleStatus
		publishedAt *time.Time
		want        bool
	}{
		{"published in the past", ArticleStatusPublished, &past, true},
		{"published exactly now", ArticleStatusPublished, &now, true},
		{"published in the future", ArticleStatusPublished, &future, false},
		{"published without timestamp", ArticleStatusPublished, nil, false},
		{"draft", ArticleStatusDraft, &past, false},
		{"private", ArticleStatusPrivate, &past, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Article{Status: tc.status, PublishedAt: tc.publishedAt}
			if got := a.PubliclyVisible(now); got != tc.want {
				t.Fatalf("PubliclyVisible() = %v, want %v", got, tc.want)
			}
		})
	}
}
