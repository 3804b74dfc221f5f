package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/albapepper/monsters/internal/dex"
	"github.com/albapepper/monsters/internal/matchup"
	"github.com/albapepper/monsters/internal/moveset"
	"github.com/albapepper/monsters/internal/species"
)

func TestTypeLabels(t *testing.T) {
	if got := typeLabels([]dex.Type{dex.Grass, dex.Poison}); got != "Grass/Poison" {
		t.Errorf("typeLabels = %q", got)
	}
	if got := typeLabels(nil); got != "" {
		t.Errorf("typeLabels(nil) = %q", got)
	}
}

func TestPrintMoveset(t *testing.T) {
	var buf bytes.Buffer
	printMoveset(&buf, moveset.Moveset{
		2: {{Name: "Toxic", Type: dex.Poison, Category: dex.Status, Method: dex.Machine}},
		1: {{Name: "Tackle", Type: dex.Normal, Category: dex.Physical, Power: 40, Method: dex.LevelUp}},
	})
	out := buf.String()
	if strings.Index(out, "Generation 1") > strings.Index(out, "Generation 2") {
		t.Errorf("generations out of order:\n%s", out)
	}
	for _, want := range []string{"Tackle", "Level", "Machine", "Poison"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSpecies(t *testing.T) {
	var buf bytes.Buffer
	printSpecies(&buf, species.Species{
		Name:               "Bulbasaur",
		Num:                1,
		Types:              []dex.Type{dex.Grass, dex.Poison},
		BaseTotal:          318,
		EffectiveBaseTotal: 269,
		AttackerType:       species.SpecialAttacker,
		Efficiency:         species.Efficient,
		Abilities:          species.Abilities{First: species.Ability{Name: "Overgrow"}},
		BaseStats:          species.StatBlock{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45},
		Weaknesses:         matchup.Table{Double: []dex.Type{dex.Fire, dex.Flying}},
	})
	out := buf.String()
	for _, want := range []string{"#1 Bulbasaur (Grass/Poison)", "effective 269", "2x    Fire/Flying", "hp 45, attack 49, defense 49, specialattack 65, specialdefense 65, speed 45"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0x") {
		t.Errorf("empty buckets should be omitted:\n%s", out)
	}
}

func TestPrintChart(t *testing.T) {
	var buf bytes.Buffer
	printChart(&buf, matchup.Table{
		Quad:   []dex.Type{dex.Rock},
		Double: []dex.Type{dex.Water},
		Half:   []dex.Type{dex.Fighting},
		None:   []dex.Type{dex.Ground},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(dex.Types()) {
		t.Fatalf("chart has %d lines, want %d:\n%s", len(lines), len(dex.Types()), buf.String())
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "Normal") || !strings.HasSuffix(lines[0], " 1x") {
		t.Errorf("first line = %q, want neutral Normal", lines[0])
	}
	for _, want := range []string{"Rock      4x", "Water     2x", "Fighting  0.5x", "Ground    0x"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("chart missing %q:\n%s", want, buf.String())
		}
	}
}

func TestPrintMoveList(t *testing.T) {
	var buf bytes.Buffer
	printMoveList(&buf)
	out := buf.String()
	if n := strings.Count(out, "\n"); n != len(dex.MoveKeys()) {
		t.Errorf("listed %d moves, want %d", n, len(dex.MoveKeys()))
	}
	if !strings.Contains(out, "vinewhip") || !strings.Contains(out, "Vine Whip") {
		t.Errorf("vine whip missing:\n%s", out)
	}
}
