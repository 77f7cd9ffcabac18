package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadEmployerIDs(t *testing.T) {
	input := strings.Join([]string{
		"# employers to track",
		"1740   Yandex",
		"",
		"   3529\tSber",
		"#80 disabled",
		"78638",
		"   ",
	}, "\n")

	got, err := ReadEmployerIDs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadEmployerIDs: %v", err)
	}

	want := []string{"1740", "3529", "78638"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadEmployerIDsFallsBackWhenMissing(t *testing.T) {
	fallback := []string{"1740", "3529"}

	got, found, err := LoadEmployerIDs(filepath.Join(t.TempDir(), "employers.txt"), fallback)
	if err != nil {
		t.Fatalf("LoadEmployerIDs: %v", err)
	}
	if found {
		t.Fatal("reported missing file as found")
	}
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("got %v", got)
	}

	got[0] = "mutated"
	if fallback[0] != "1740" {
		t.Fatal("fallback slice was aliased")
	}
}

func TestLoadEmployerIDsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employers.txt")
	if err := os.WriteFile(path, []byte("15478 VK\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, found, err := LoadEmployerIDs(path, []string{"1740"})
	if err != nil || !found {
		t.Fatalf("LoadEmployerIDs = (%v, %v, %v)", got, found, err)
	}
	if !reflect.DeepEqual(got, []string{"15478"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSplitList(t *testing.T) {
	tests := map[string][]string{
		"Yandex, VK,,  Ozon ": {"Yandex", "VK", "Ozon"},
		"":                    nil,
		" , ":                 nil,
		"X5 Group":            {"X5 Group"},
	}

	for in, want := range tests {
		if got := SplitList(in); !reflect.DeepEqual(got, want) {
			t.Fatalf("SplitList(%q) = %v, want %v", in, got, want)
		}
	}
}
