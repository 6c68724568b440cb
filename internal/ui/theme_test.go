package ui

import (
	"reflect"
	"testing"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Kanto", "Lavender", "Slate"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Kanto"); got != "Lavender" {
		t.Fatalf("NextTheme(Kanto) = %q, want Lavender", got)
	}
	if got := NextTheme("Slate"); got != "Kanto" {
		t.Fatalf("NextTheme(Slate) = %q, want Kanto", got)
	}
	if got := NextTheme("bogus"); got != "Kanto" {
		t.Fatalf("NextTheme(bogus) = %q, want first theme", got)
	}
}

func TestGetTheme_FallsBackToDefault(t *testing.T) {
	th := GetTheme("does-not-exist")
	if th.Name != "Kanto" {
		t.Fatalf("GetTheme fallback = %q, want Kanto", th.Name)
	}
}

func TestThemes_AllComplete(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Text == "" || th.Accent == "" || th.Danger == "" || th.Muted == "" {
			t.Errorf("theme %q has empty core colors: %#v", name, th)
		}
	}
}
