package i18n

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		key  string
		lang Lang
		want string
	}{
		{"known key with translation", "nav.menu", LangEN, "Menu"},
		{"known key in japanese", "nav.menu", LangJA, "お品書き"},
		{"missing language falls back to japanese", "section.courses", LangKO, "コース料理"},
		{"unknown key returns the key", "nav.does-not-exist", LangEN, "nav.does-not-exist"},
		{"unknown key in japanese returns the key", "bogus", LangJA, "bogus"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lookup(tc.key, tc.lang); got != tc.want {
				t.Fatalf("Lookup(%q, %q) = %q, want %q", tc.key, tc.lang, got, tc.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for _, code := range []string{"ja", "en", "ko", "zh"} {
		if !Supported(code) {
			t.Errorf("Supported(%q) = false, want true", code)
		}
	}

	for _, code := range []string{"", "fr", "JA", "jp"} {
		if Supported(code) {
			t.Errorf("Supported(%q) = true, want false", code)
		}
	}
}
