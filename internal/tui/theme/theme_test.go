package theme

import "testing"

func TestIndex(t *testing.T) {
	if got := Themes[Index("ORANGE")].Name; got != "orange" {
		t.Fatalf("expected orange, got %s", got)
	}
	if got := Themes[Index(" SkyBlue ")].Name; got != "skyblue" {
		t.Fatalf("expected skyblue, got %s", got)
	}
	if got := Themes[Index("plaid")].Name; got != DefaultName {
		t.Fatalf("unknown theme should fall back to %s, got %s", DefaultName, got)
	}
}

func TestCycleWraps(t *testing.T) {
	last := len(Themes) - 1
	if got := Cycle(last, 1); got != 0 {
		t.Fatalf("forward wrap: got %d", got)
	}
	if got := Cycle(0, -1); got != last {
		t.Fatalf("backward wrap: got %d", got)
	}
	if got := Cycle(3, 1); got != 4 {
		t.Fatalf("step: got %d", got)
	}
}

func TestColor(t *testing.T) {
	if got := Themes[Index("orange")].Color(); got != "#ffa500" {
		t.Fatalf("orange color mismatch: %s", got)
	}
}

func TestThemeCount(t *testing.T) {
	if len(Themes) != 13 {
		t.Fatalf("expected 13 themes, got %d", len(Themes))
	}
}
