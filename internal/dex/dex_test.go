package dex

import (
	"encoding/json"
	"testing"
)

func TestLearnsetSlug(t *testing.T) {
	tests := []struct {
		key, name, want string
	}{
		{"bulbasaur", "Bulbasaur", "bulbasaur"},
		{"mrmime", "Mr. Mime", "mr-mime"},
		{"farfetchd", "Farfetch’d", "farfetchd"},
		{"nidoranf", "Nidoran♀", "nidoran"},
		{"mimejr", "Mime   Jr.", "mime-jr"},
		{"Porygon", "???", "porygon"},
		{"missingno", "", "missingno"},
	}
	for _, tt := range tests {
		if got := LearnsetSlug(tt.key, tt.name); got != tt.want {
			t.Errorf("LearnsetSlug(%q, %q) = %q, want %q", tt.key, tt.name, got, tt.want)
		}
	}
}

func TestRouteSlug(t *testing.T) {
	tests := map[string]string{
		"Nidoran♀":   "nidoranf",
		"Nidoran♂":   "nidoranm",
		"Mr. Mime":   "mr-mime",
		"Farfetch’d": "farfetchd",
	}
	for name, want := range tests {
		if got := RouteSlug(name); got != want {
			t.Errorf("RouteSlug(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestMoveKeyFromName(t *testing.T) {
	tests := map[string]string{
		"vine-whip":   "vinewhip",
		"Double-Edge": "doubleedge",
		"soft-boiled": "softboiled",
		"":            "",
	}
	for name, want := range tests {
		if got := MoveKeyFromName(name); got != want {
			t.Errorf("MoveKeyFromName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestLookupRoute(t *testing.T) {
	for _, slug := range []string{"mr-mime", "mrmime", "nidoranf"} {
		if _, ok := LookupRoute(slug); !ok {
			t.Errorf("LookupRoute(%q) not found", slug)
		}
	}
	if key, _ := LookupRoute("mr-mime"); key != "mrmime" {
		t.Errorf("LookupRoute(mr-mime) = %q, want mrmime", key)
	}
	if _, ok := LookupRoute("agumon"); ok {
		t.Error("LookupRoute(agumon) should not resolve")
	}
}

func TestPokemonTable(t *testing.T) {
	keys := PokemonKeys()
	if len(keys) < 151 {
		t.Fatalf("catalogue has %d entries, want at least 151", len(keys))
	}
	if keys[0] != "bulbasaur" || keys[150] != "mew" {
		t.Errorf("unexpected dex order: first=%q 151st=%q", keys[0], keys[150])
	}
	if n, _ := DexNumber("pikachu"); n != 25 {
		t.Errorf("DexNumber(pikachu) = %d, want 25", n)
	}

	// Every base evolution must itself be catalogued and unevolved.
	for _, key := range keys {
		base, ok := BaseEvolution(key)
		if !ok {
			continue
		}
		if _, known := PokemonName(base); !known {
			t.Errorf("%s: base evolution %q is not catalogued", key, base)
		}
		if _, nested := BaseEvolution(base); nested {
			t.Errorf("%s: base evolution %q is itself evolved", key, base)
		}
	}
	if _, ok := BaseEvolution("bulbasaur"); ok {
		t.Error("bulbasaur should have no base evolution")
	}
	if base, _ := BaseEvolution("venusaur"); base != "bulbasaur" {
		t.Errorf("BaseEvolution(venusaur) = %q, want bulbasaur", base)
	}
}

func TestTypesOrderAndParse(t *testing.T) {
	types := Types()
	if len(types) != 18 || types[0] != Normal || types[17] != Fairy {
		t.Fatalf("Types() = %v", types)
	}
	types[0] = Fire
	if Types()[0] != Normal {
		t.Error("Types() must return a copy")
	}
	if typ, ok := ParseType(" Grass "); !ok || typ != Grass {
		t.Errorf("ParseType(Grass) = %q, %v", typ, ok)
	}
	if _, ok := ParseType("shadow"); ok {
		t.Error("ParseType(shadow) should fail")
	}
}

func TestGenerationForVersionGroup(t *testing.T) {
	tests := map[string]Generation{
		"red-blue":        1,
		"crystal":         2,
		"emerald":         3,
		"platinum":        4,
		"black-2-white-2": 5,
		"x-y":             6,
		"sun-moon":        7,
		"legends-arceus":  8,
		"scarlet-violet":  9,
	}
	for vg, want := range tests {
		got, ok := GenerationForVersionGroup(vg)
		if !ok || got != want {
			t.Errorf("GenerationForVersionGroup(%q) = %d, %v; want %d", vg, got, ok, want)
		}
	}
	if _, ok := GenerationForVersionGroup("colosseum"); ok {
		t.Error("colosseum should not resolve")
	}
}

func TestLearnMethodPriority(t *testing.T) {
	order := []LearnMethod{LevelUp, Machine, Tutor, Egg}
	for i := 1; i < len(order); i++ {
		if order[i-1].Priority() <= order[i].Priority() {
			t.Errorf("%s should outrank %s", order[i-1], order[i])
		}
	}
	if _, ok := ParseLearnMethod("form-change"); ok {
		t.Error("form-change should not parse")
	}
	if m, ok := ParseLearnMethod("machine"); !ok || m != Machine {
		t.Errorf("ParseLearnMethod(machine) = %q, %v", m, ok)
	}
}

func TestAccuracyJSON(t *testing.T) {
	b, err := json.Marshal([]Accuracy{Always, Percent(85)})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[true,85]" {
		t.Errorf("marshal = %s", b)
	}

	var got []Accuracy
	if err := json.Unmarshal([]byte("[true, 70]"), &got); err != nil {
		t.Fatal(err)
	}
	if !got[0].NeverMisses || got[1].Value != 70 {
		t.Errorf("unmarshal = %+v", got)
	}
	var bad Accuracy
	if err := json.Unmarshal([]byte("false"), &bad); err == nil {
		t.Error("false should be rejected")
	}
}

func TestMoveTable(t *testing.T) {
	info, ok := Move("vinewhip")
	if !ok || info.Name != "Vine Whip" || info.Type != Grass {
		t.Errorf("Move(vinewhip) = %+v, %v", info, ok)
	}
	if _, ok := Move("vine-whip"); ok {
		t.Error("move keys are alphanumeric only")
	}
	keys := MoveKeys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("MoveKeys not sorted at %d: %q >= %q", i, keys[i-1], keys[i])
		}
	}
}
