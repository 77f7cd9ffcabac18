package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadCatalogMissingFileUsesDefaults(t *testing.T) {
	cat, err := LoadCatalog(filepath.Join(t.TempDir(), "catalog.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if !reflect.DeepEqual(cat, DefaultCatalog()) {
		t.Fatalf("expected default catalog, got %+v", cat)
	}
	if ids := cat.EmployerIDs(); len(ids) != 10 || ids[0] != "1740" {
		t.Fatalf("EmployerIDs = %v", ids)
	}
}

func TestLoadCatalogOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
aliases:
  - name: тинькофф
    id: "78638"
  - name: yandex
    id: "42"
employers:
  - name: Tinkoff
    id: "78638"
  - name: Broken
host_overrides:
  "78638": hh.ru
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if id, ok := cat.Aliases.Lookup("Тинькофф Банк"); !ok || id != "78638" {
		t.Fatalf("file alias not applied: (%q, %v)", id, ok)
	}
	if id, _ := cat.Aliases.Lookup("Yandex"); id != "42" {
		t.Fatalf("file alias should win over built-in, got %q", id)
	}
	if id, _ := cat.Aliases.Lookup("VK"); id != "15478" {
		t.Fatalf("built-in alias lost, got %q", id)
	}
	if ids := cat.EmployerIDs(); !reflect.DeepEqual(ids, []string{"78638"}) {
		t.Fatalf("EmployerIDs = %v", ids)
	}
	if cat.HostOverrides["78638"] != "hh.ru" || cat.HostOverrides["39305"] != "hh.ru" {
		t.Fatalf("HostOverrides = %v", cat.HostOverrides)
	}
}

func TestLoadCatalogInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("aliases: [oops"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected parse error")
	}
}
