package moveset

import "github.com/albapepper/monsters/internal/dex"

// --------------------------------------------------------------------------
// REST learnset schema
// --------------------------------------------------------------------------

// Learnset is the subset of the REST species document that carries moves.
type Learnset struct {
	Moves []LearnsetMove `json:"moves"`
}

type LearnsetMove struct {
	Move                NamedResource        `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

type VersionGroupDetail struct {
	VersionGroup    NamedResource `json:"version_group"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	LevelLearnedAt  int           `json:"level_learned_at"`
}

type NamedResource struct {
	Name string `json:"name"`
}

type learnKey struct {
	gen    dex.Generation
	key    string
	method dex.LearnMethod
}

// FromLearnset groups one species' learnset by generation. Moves missing
// from the local table, unknown version groups and unknown learn methods are
// dropped. Entries repeated across version groups of the same generation
// and method are kept once. A nil learnset yields an empty map.
func FromLearnset(l *Learnset) Moveset {
	out := make(Moveset)
	if l == nil {
		return out
	}

	seen := make(map[learnKey]struct{})
	for _, entry := range l.Moves {
		key := dex.MoveKeyFromName(entry.Move.Name)
		info, ok := dex.Move(key)
		if !ok {
			continue
		}
		for _, detail := range entry.VersionGroupDetails {
			gen, ok := dex.GenerationForVersionGroup(detail.VersionGroup.Name)
			if !ok {
				continue
			}
			method, ok := dex.ParseLearnMethod(detail.MoveLearnMethod.Name)
			if !ok {
				continue
			}
			lk := learnKey{gen: gen, key: key, method: method}
			if _, dup := seen[lk]; dup {
				continue
			}
			seen[lk] = struct{}{}
			out[gen] = append(out[gen], newFragment(key, info, method))
		}
	}
	return out
}
