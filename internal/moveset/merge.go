// Package moveset builds per-generation move lists for a creature from its
// own learnset and, when it has one, its base evolution's learnset.
package moveset

import (
	"slices"

	"github.com/albapepper/monsters/internal/dex"
)

// Fragment is one learnable move in one generation.
type Fragment struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Accuracy dex.Accuracy    `json:"accuracy"`
	Power    int             `json:"power"`
	Category dex.Category    `json:"category"`
	Type     dex.Type        `json:"type"`
	Method   dex.LearnMethod `json:"method"`
}

func newFragment(key string, info dex.MoveInfo, method dex.LearnMethod) Fragment {
	return Fragment{
		Key:      key,
		Name:     info.Name,
		Accuracy: info.Accuracy,
		Power:    info.Power,
		Category: info.Category,
		Type:     info.Type,
		Method:   method,
	}
}

// Moveset maps a generation to its moves in first-discovery order.
type Moveset map[dex.Generation][]Fragment

// Generations lists the generations present, ascending.
func (m Moveset) Generations() []dex.Generation {
	gens := make([]dex.Generation, 0, len(m))
	for g := range m {
		gens = append(gens, g)
	}
	slices.Sort(gens)
	return gens
}

// Merge combines per-species movesets in the order given. Within each
// generation the lists are concatenated and reduced to one fragment per
// move key: the one with the highest-priority learn method, the earliest
// on ties. Keys keep the position of their first appearance.
func Merge(sources ...Moveset) Moveset {
	out := make(Moveset)
	for _, src := range sources {
		for gen, list := range src {
			out[gen] = append(out[gen], list...)
		}
	}
	for gen, list := range out {
		out[gen] = dedupe(list)
	}
	return out
}

func dedupe(list []Fragment) []Fragment {
	out := make([]Fragment, 0, len(list))
	index := make(map[string]int, len(list))
	for _, f := range list {
		i, ok := index[f.Key]
		if !ok {
			index[f.Key] = len(out)
			out = append(out, f)
			continue
		}
		if f.Method.Priority() > out[i].Method.Priority() {
			out[i] = f
		}
	}
	return out
}
