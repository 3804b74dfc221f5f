package species

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/albapepper/monsters/internal/dex"
)

const dexSpriteBase = "https://play.pokemonshowdown.com/sprites/dex/"

// Fragment is one row of the dex listing.
type Fragment struct {
	Key                string       `json:"key"`
	Name               string       `json:"name"`
	DexNumber          int          `json:"dex_number"`
	BaseTotal          int          `json:"base_total"`
	EffectiveBaseTotal int          `json:"effective_base_total"`
	AttackerType       AttackerType `json:"attacker_type"`
	Efficiency         Efficiency   `json:"efficiency"`
	Sprite             string       `json:"sprite"`
	Types              []dex.Type   `json:"types"`
}

// NormalizeFragments maps a getAllPokemon payload to listing rows. Entries
// whose key is not in the local catalogue are dropped. Upstream order is
// kept.
func NormalizeFragments(raw []FragmentPayload) []Fragment {
	return lo.FilterMap(raw, func(p FragmentPayload, _ int) (Fragment, bool) {
		name, ok := dex.PokemonName(p.Key)
		if !ok {
			return Fragment{}, false
		}
		profile := Classify(p.BaseStats, p.BaseStatsTotal)

		types := lo.FilterMap(p.Types, func(t TypeNamePayload, _ int) (dex.Type, bool) {
			return dex.ParseType(t.Name)
		})

		return Fragment{
			Key:                p.Key,
			Name:               name,
			DexNumber:          p.Num,
			BaseTotal:          p.BaseStatsTotal,
			EffectiveBaseTotal: profile.EffectiveBaseTotal,
			AttackerType:       profile.AttackerType,
			Efficiency:         Rate(p.BaseStatsTotal, profile.EffectiveBaseTotal),
			Sprite:             dexSpriteBase + p.Key + ".png",
			Types:              types,
		}, true
	})
}

// SortKey selects the column the dex listing is ordered by.
type SortKey string

const (
	SortByDex       SortKey = "dex"
	SortByName      SortKey = "name"
	SortByEffective SortKey = "effective"
	SortByBase      SortKey = "base"
)

// ParseSortKey accepts the four listing columns; empty means dex order.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortByDex, nil
	case SortByDex, SortByName, SortByEffective, SortByBase:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// SortFragments returns a sorted copy of list. Ties on the selected column
// fall back to dex number, in the same direction.
func SortFragments(list []Fragment, key SortKey, desc bool) []Fragment {
	out := slices.Clone(list)
	dir := 1
	if desc {
		dir = -1
	}
	slices.SortStableFunc(out, func(a, b Fragment) int {
		var res int
		switch key {
		case SortByName:
			res = strings.Compare(a.Name, b.Name)
		case SortByEffective:
			res = a.EffectiveBaseTotal - b.EffectiveBaseTotal
		case SortByBase:
			res = a.BaseTotal - b.BaseTotal
		}
		if res == 0 {
			res = a.DexNumber - b.DexNumber
		}
		return res * dir
	})
	return out
}
