package hh

import "testing"

func TestAliasTableLookup(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		wantID string
		wantOK bool
	}{
		{name: "exact latin", query: "Yandex", wantID: "1740", wantOK: true},
		{name: "cyrillic", query: "Яндекс", wantID: "1740", wantOK: true},
		{name: "substring of longer name", query: "Yandex Cloud", wantID: "1740", wantOK: true},
		{name: "sber short form", query: "SBER", wantID: "3529", wantOK: true},
		{name: "sberbank", query: "Sberbank", wantID: "3529", wantOK: true},
		{name: "x5 group", query: "X5 Group", wantID: "6093775", wantOK: true},
		{name: "gazprom", query: "Газпром нефть", wantID: "39305", wantOK: true},
		{name: "vk", query: "VK", wantID: "15478", wantOK: true},
		{name: "unknown", query: "Tinkoff", wantOK: false},
		{name: "blank", query: "   ", wantOK: false},
	}

	table := DefaultAliases()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := table.Lookup(tt.query)
			if ok != tt.wantOK || id != tt.wantID {
				t.Fatalf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.query, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestAliasTableFirstMatchWins(t *testing.T) {
	table := AliasTable{
		{Name: "bank", ID: "1"},
		{Name: "sberbank", ID: "2"},
	}

	if id, _ := table.Lookup("Sberbank"); id != "1" {
		t.Fatalf("expected first entry to win, got %q", id)
	}
}

func TestAliasTableMergePrecedence(t *testing.T) {
	merged := DefaultAliases().Merge(AliasTable{{Name: "yandex", ID: "999"}})

	if id, _ := merged.Lookup("Yandex"); id != "999" {
		t.Fatalf("expected override to win, got %q", id)
	}
	if id, _ := merged.Lookup("VK"); id != "15478" {
		t.Fatalf("expected defaults to survive merge, got %q", id)
	}
}

func TestAliasTableSkipsIncompleteEntries(t *testing.T) {
	table := AliasTable{{Name: "", ID: "1"}, {Name: "acme", ID: ""}, {Name: "acme", ID: "7"}}

	if id, ok := table.Lookup("Acme Corp"); !ok || id != "7" {
		t.Fatalf("Lookup = (%q, %v)", id, ok)
	}
}
