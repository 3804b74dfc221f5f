package species

import (
	"strconv"
	"strings"

	"github.com/albapepper/monsters/internal/dex"
)

// Move is the detail record for one move.
type Move struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Accuracy    dex.Accuracy `json:"accuracy"`
	Power       int          `json:"power"`
	Category    dex.Category `json:"category"`
	Priority    int          `json:"priority"`
	PP          int          `json:"pp"`
	Type        dex.Type     `json:"type"`
	ZPower      int          `json:"z_power"`
	Target      string       `json:"target"`
	Description string       `json:"description"`
}

// NormalizeMove builds a move detail from a getMove payload. Accuracy is
// taken from the local move table since upstream reports it inconsistently.
// A basePower that is not a number counts as 0. A nil payload yields the
// zero Move.
func NormalizeMove(key string, accuracy dex.Accuracy, p *MovePayload) Move {
	if p == nil {
		return Move{}
	}
	power, err := strconv.Atoi(strings.TrimSpace(p.BasePower))
	if err != nil {
		power = 0
	}
	desc := p.Desc
	if desc == "" {
		desc = p.ShortDesc
	}
	return Move{
		Key:         key,
		Name:        p.Name,
		Accuracy:    accuracy,
		Power:       power,
		Category:    dex.Category(strings.ToLower(p.Category)),
		Priority:    p.Priority,
		PP:          p.PP,
		Type:        dex.Type(strings.ToLower(p.Type)),
		ZPower:      p.ZMovePower,
		Target:      p.Target,
		Description: desc,
	}
}
