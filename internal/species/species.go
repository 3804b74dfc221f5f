// Package species turns upstream GraphQL payloads into the domain records
// served by the API: the full species record, dex list rows and move
// details. Every function here is pure and total.
package species

import (
	"github.com/samber/lo"

	"github.com/albapepper/monsters/internal/dex"
	"github.com/albapepper/monsters/internal/matchup"
)

const (
	spriteBase      = "https://play.pokemonshowdown.com/sprites/home-centered/"
	shinySpriteBase = "https://play.pokemonshowdown.com/sprites/home-centered-shiny/"

	noDescription = "No description exists."
	genderless    = "0%"
)

// Rarity tags a species as mythical or legendary. The zero value means
// neither.
type Rarity string

const (
	Mythical  Rarity = "mythical"
	Legendary Rarity = "legendary"
)

// StatBlock holds one value per stat. Field names match the upstream keys.
type StatBlock struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialattack"`
	SpecialDefense int `json:"specialdefense"`
	Speed          int `json:"speed"`
}

// Get returns the value for s, or 0 for an unknown stat.
func (b StatBlock) Get(s dex.Stat) int {
	switch s {
	case dex.HP:
		return b.HP
	case dex.Attack:
		return b.Attack
	case dex.Defense:
		return b.Defense
	case dex.SpecialAttack:
		return b.SpecialAttack
	case dex.SpecialDefense:
		return b.SpecialDefense
	case dex.Speed:
		return b.Speed
	}
	return 0
}

// Sum adds every stat.
func (b StatBlock) Sum() int {
	return b.HP + b.Attack + b.Defense + b.SpecialAttack + b.SpecialDefense + b.Speed
}

type Ability struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	ShortDesc string `json:"short_desc"`
}

type Abilities struct {
	First  Ability  `json:"first"`
	Second *Ability `json:"second,omitempty"`
	Hidden *Ability `json:"hidden,omitempty"`
}

// FlavorText is one game/flavor pair. It doubles as the upstream shape.
type FlavorText struct {
	Flavor string `json:"flavor"`
	Game   string `json:"game"`
}

// Gender holds the raw display percentages ("87.5%").
type Gender struct {
	Male   string `json:"male"`
	Female string `json:"female"`
}

type CatchRate struct {
	Base       int    `json:"base"`
	Percentage string `json:"percentage"`
}

// Species is the canonical record for one creature.
type Species struct {
	Key                string        `json:"key"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Abilities          Abilities     `json:"abilities"`
	AttackerType       AttackerType  `json:"attacker_type"`
	BaseStats          StatBlock     `json:"base_stats"`
	BaseTotal          int           `json:"base_total"`
	EffectiveBaseTotal int           `json:"effective_base_total"`
	Efficiency         Efficiency    `json:"efficiency"`
	EVYields           StatBlock     `json:"ev_yields"`
	FlavorText         *FlavorText   `json:"flavor_text,omitempty"`
	Gender             *Gender       `json:"gender,omitempty"`
	Height             float64       `json:"height"`
	Weight             float64       `json:"weight"`
	Num                int           `json:"num"`
	OtherFormes        []string      `json:"other_formes"`
	Sprite             string        `json:"sprite"`
	ShinySprite        string        `json:"shiny_sprite"`
	Weaknesses         matchup.Table `json:"weaknesses"`
	Rarity             Rarity        `json:"rarity,omitempty"`
	Types              []dex.Type    `json:"types"`
	CatchRate          CatchRate     `json:"catch_rate"`
}

// Normalize builds the species record from a getPokemon payload. properName
// is the display name from the static table; the upstream species name is
// used when it is empty. A nil payload yields the zero Species.
func Normalize(p *Payload, properName string) Species {
	if p == nil {
		return Species{}
	}

	name := properName
	if name == "" {
		name = p.Species
	}

	profile := Classify(p.BaseStats, p.BaseStatsTotal)

	s := Species{
		Key:                p.Key,
		Name:               name,
		Description:        p.Classification,
		Abilities:          normalizeAbilities(p.Abilities),
		AttackerType:       profile.AttackerType,
		BaseStats:          p.BaseStats,
		BaseTotal:          p.BaseStatsTotal,
		EffectiveBaseTotal: profile.EffectiveBaseTotal,
		Efficiency:         Rate(p.BaseStatsTotal, profile.EffectiveBaseTotal),
		EVYields:           p.EVYields,
		Height:             p.Height,
		Weight:             p.Weight,
		Num:                p.Num,
		OtherFormes:        p.OtherFormes,
		Sprite:             spriteBase + p.Key + ".png",
		ShinySprite:        shinySpriteBase + p.Key + ".png",
		Weaknesses:         matchup.Resolve(rawMatchups(p.Types)...),
		Rarity:             rarity(p.Mythical, p.Legendary),
		Types:              normalizeTypes(p.Types),
		CatchRate:          CatchRate{Base: p.CatchRate.Base, Percentage: p.CatchRate.Percentage},
	}
	if s.Description == "" {
		s.Description = noDescription
	}
	if s.Num == 0 {
		s.Num, _ = dex.DexNumber(p.Key)
	}
	if s.OtherFormes == nil {
		s.OtherFormes = []string{}
	}
	if len(p.FlavorTexts) > 0 {
		ft := p.FlavorTexts[0]
		s.FlavorText = &ft
	}
	if p.Gender.Male != genderless || p.Gender.Female != genderless {
		s.Gender = &Gender{Male: p.Gender.Male, Female: p.Gender.Female}
	}
	return s
}

func rarity(mythical, legendary bool) Rarity {
	switch {
	case mythical:
		return Mythical
	case legendary:
		return Legendary
	}
	return ""
}

func normalizeAbilities(a AbilitiesPayload) Abilities {
	var out Abilities
	if a.First != nil {
		out.First = Ability(*a.First)
	}
	if a.Second != nil {
		second := Ability(*a.Second)
		out.Second = &second
	}
	if a.Hidden != nil {
		hidden := Ability(*a.Hidden)
		out.Hidden = &hidden
	}
	return out
}

// usableTypes keeps at most two non-empty entries whose name is a known type.
func usableTypes(types []*TypePayload) []*TypePayload {
	out := lo.Filter(types, func(t *TypePayload, _ int) bool {
		if t == nil {
			return false
		}
		_, ok := dex.ParseType(t.Name)
		return ok
	})
	if len(out) > 2 {
		out = out[:2]
	}
	return out
}

func normalizeTypes(types []*TypePayload) []dex.Type {
	return lo.Map(usableTypes(types), func(t *TypePayload, _ int) dex.Type {
		typ, _ := dex.ParseType(t.Name)
		return typ
	})
}

func rawMatchups(types []*TypePayload) []matchup.Raw {
	return lo.Map(usableTypes(types), func(t *TypePayload, _ int) matchup.Raw {
		d := t.Matchup.Defending
		return matchup.Raw{
			Effective:  parseTypes(d.EffectiveTypes),
			Normal:     parseTypes(d.NormalTypes),
			Resisted:   parseTypes(d.ResistedTypes),
			Effectless: parseTypes(d.EffectlessTypes),
		}
	})
}

// parseTypes maps upstream type names to dex types, dropping unknown ones.
func parseTypes(names []string) []dex.Type {
	return lo.FilterMap(names, func(name string, _ int) (dex.Type, bool) {
		return dex.ParseType(name)
	})
}
