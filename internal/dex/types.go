// Package dex holds the static reference tables: creature names, base
// evolutions, local move metadata, the type and stat lists, and the
// version-group to generation mapping.
//
// Tables are built once at package init and only exposed through lookups, so
// callers can never mutate them.
package dex

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for identities missing from the static tables.
var (
	ErrUnknownPokemon = errors.New("unknown pokemon")
	ErrUnknownMove    = errors.New("unknown move")
)

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// Type is one of the 18 elemental tags.
type Type string

const (
	Normal   Type = "normal"
	Fighting Type = "fighting"
	Flying   Type = "flying"
	Poison   Type = "poison"
	Ground   Type = "ground"
	Rock     Type = "rock"
	Bug      Type = "bug"
	Ghost    Type = "ghost"
	Steel    Type = "steel"
	Fire     Type = "fire"
	Water    Type = "water"
	Grass    Type = "grass"
	Electric Type = "electric"
	Psychic  Type = "psychic"
	Ice      Type = "ice"
	Dragon   Type = "dragon"
	Dark     Type = "dark"
	Fairy    Type = "fairy"
)

var allTypes = [...]Type{
	Normal, Fighting, Flying, Poison, Ground, Rock, Bug, Ghost, Steel,
	Fire, Water, Grass, Electric, Psychic, Ice, Dragon, Dark, Fairy,
}

// Types returns every type in declaration order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes[:])
	return out
}

// ParseType lower-cases s and reports whether it names a known type.
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// --------------------------------------------------------------------------
// Stats
// --------------------------------------------------------------------------

// Stat is one of the six base stat tags.
type Stat string

const (
	HP             Stat = "hp"
	Attack         Stat = "attack"
	Defense        Stat = "defense"
	SpecialAttack  Stat = "specialattack"
	SpecialDefense Stat = "specialdefense"
	Speed          Stat = "speed"
)

// Stats returns the six stats in display order.
func Stats() []Stat {
	return []Stat{HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed}
}

// --------------------------------------------------------------------------
// Moves
// --------------------------------------------------------------------------

// Category is the damage class of a move.
type Category string

const (
	Physical Category = "physical"
	Special  Category = "special"
	Status   Category = "status"
)

// Accuracy is a percentage, or NeverMisses for moves that skip the
// accuracy check. It encodes to JSON as a number or as true.
type Accuracy struct {
	Value       int
	NeverMisses bool
}

// Percent returns a fixed accuracy.
func Percent(v int) Accuracy { return Accuracy{Value: v} }

// Always is the sentinel for moves that never miss.
var Always = Accuracy{NeverMisses: true}

func (a Accuracy) String() string {
	if a.NeverMisses {
		return "∞"
	}
	return fmt.Sprintf("%d%%", a.Value)
}

// MarshalJSON implements json.Marshaler.
func (a Accuracy) MarshalJSON() ([]byte, error) {
	if a.NeverMisses {
		return []byte("true"), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Accuracy) UnmarshalJSON(b []byte) error {
	var flag bool
	if err := json.Unmarshal(b, &flag); err == nil {
		if !flag {
			return fmt.Errorf("accuracy: false is not a valid value")
		}
		*a = Always
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("accuracy: %w", err)
	}
	*a = Percent(n)
	return nil
}

// MoveInfo is the local metadata kept for every catalogued move.
type MoveInfo struct {
	Name     string   `json:"name"`
	Type     Type     `json:"type"`
	Category Category `json:"category"`
	Accuracy Accuracy `json:"accuracy"`
	Power    int      `json:"power"` // 0 = no direct damage
	PP       int      `json:"pp"`
	Priority int      `json:"priority"`
}

// --------------------------------------------------------------------------
// Learn methods
// --------------------------------------------------------------------------

// LearnMethod is how a creature acquires a move in a generation.
type LearnMethod string

const (
	LevelUp LearnMethod = "level-up"
	Machine LearnMethod = "machine"
	Tutor   LearnMethod = "tutor"
	Egg     LearnMethod = "egg"
)

// Priority ranks learn methods for merge conflicts. Higher wins.
func (m LearnMethod) Priority() int {
	switch m {
	case LevelUp:
		return 4
	case Machine:
		return 3
	case Tutor:
		return 2
	case Egg:
		return 1
	default:
		return 0
	}
}

// ParseLearnMethod maps an upstream method name to a LearnMethod.
func ParseLearnMethod(s string) (LearnMethod, bool) {
	m := LearnMethod(s)
	if m.Priority() == 0 {
		return "", false
	}
	return m, true
}
