package hh

import "strings"

// Alias maps a well-known employer name fragment to its id
type Alias struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// AliasTable is consulted in order; the first entry whose name is a
// case-insensitive substring of the query wins.
type AliasTable []Alias

// Lookup resolves name without touching the network
func (t AliasTable) Lookup(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	for _, a := range t {
		key := strings.ToLower(strings.TrimSpace(a.Name))
		if key == "" || a.ID == "" {
			continue
		}
		if strings.Contains(needle, key) {
			return a.ID, true
		}
	}

	return "", false
}

// Merge returns a table where extra entries take precedence over t
func (t AliasTable) Merge(extra AliasTable) AliasTable {
	out := make(AliasTable, 0, len(extra)+len(t))
	out = append(out, extra...)
	return append(out, t...)
}

// DefaultAliases lists employers whose free-text search is ambiguous
func DefaultAliases() AliasTable {
	return AliasTable{
		{Name: "яндекс", ID: "1740"},
		{Name: "yandex", ID: "1740"},
		{Name: "сбербанк", ID: "3529"},
		{Name: "sberbank", ID: "3529"},
		{Name: "sber", ID: "3529"},
		{Name: "газпром", ID: "39305"},
		{Name: "gazprom", ID: "39305"},
		{Name: "x5 group", ID: "6093775"},
		{Name: "x5", ID: "6093775"},
		{Name: "лср", ID: "1473868"},
		{Name: "lsr", ID: "1473868"},
		{Name: "vk", ID: "15478"},
		{Name: "вконтакте", ID: "15478"},
	}
}

// DefaultHostOverrides lists employers whose listings are only served for a specific host
func DefaultHostOverrides() map[string]string {
	return map[string]string{
		"39305": "hh.ru",
	}
}
