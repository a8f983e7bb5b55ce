package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Unknown").Name; got != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula (fallback)", got)
	}
}

func TestThemesDefineEveryBadge(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, kind := range []string{BadgeType, BadgeWFH, BadgeStipend, BadgeSkill} {
			if th.BadgeColors[kind] == "" {
				t.Fatalf("%s theme has no %s badge color", name, kind)
			}
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghijklmnop", 9, "abc...nop"},
		{"/very/long/path/to/data/internships.json", 24, "/very/lo...ernships.json"},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range cases {
		if got := truncateMiddle(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncateMiddle(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestNonEmpty(t *testing.T) {
	got := nonEmpty("Mumbai", "  ", "", "3 Months")
	if len(got) != 2 || got[0] != "Mumbai" || got[1] != "3 Months" {
		t.Fatalf("nonEmpty() = %v, want [Mumbai 3 Months]", got)
	}
}
