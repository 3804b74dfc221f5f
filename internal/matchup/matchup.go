// Package matchup combines per-type defensive matchups into a weakness table.
//
// The upstream service reports, for every defending type, which attacking
// types hit it for 2x, 1x, 0.5x and 0x. A creature has one or two defending
// types; the combined multiplier for an attacking type is the product of the
// per-type multipliers, so only 4, 2, 1, 0.5, 0.25 and 0 are reachable.
package matchup

import "github.com/albapepper/monsters/internal/dex"

// Raw is one defending type's matchup as reported upstream.
type Raw struct {
	Effective  []dex.Type `json:"effective"`  // 2x
	Normal     []dex.Type `json:"normal"`     // 1x
	Resisted   []dex.Type `json:"resisted"`   // 0.5x
	Effectless []dex.Type `json:"effectless"` // 0x
}

// Table partitions every type into one of six multiplier buckets.
type Table struct {
	Quad    []dex.Type `json:"quad"`
	Double  []dex.Type `json:"double"`
	Normal  []dex.Type `json:"normal"`
	Half    []dex.Type `json:"half"`
	Quarter []dex.Type `json:"quarter"`
	None    []dex.Type `json:"none"`
}

// Per-type multipliers are kept in quarters so products stay exact integers:
// 0x=0, 0.5x=2, 1x=4, 2x=8.
const (
	qNone   = 0
	qHalf   = 2
	qNormal = 4
	qDouble = 8
)

// Resolve computes the weakness table for one or two defending types.
// Attacking types missing from every raw set count as neutral. Extra raws
// beyond the second are ignored; no raws at all yields an all-normal table.
func Resolve(raws ...Raw) Table {
	if len(raws) > 2 {
		raws = raws[:2]
	}

	factors := make([]map[dex.Type]int, len(raws))
	for i, raw := range raws {
		factors[i] = multipliers(raw)
	}

	t := Table{
		Quad:    []dex.Type{},
		Double:  []dex.Type{},
		Normal:  []dex.Type{},
		Half:    []dex.Type{},
		Quarter: []dex.Type{},
		None:    []dex.Type{},
	}

	for _, attacking := range dex.Types() {
		// product is the combined multiplier scaled by 4^len(factors)
		product, scale := 1, 1
		for _, f := range factors {
			m, ok := f[attacking]
			if !ok {
				m = qNormal
			}
			product *= m
			scale *= qNormal
		}
		t.add(attacking, product, scale)
	}
	return t
}

// multipliers maps every attacking type named in raw to its quarter-scaled
// multiplier. A type listed in several sets takes the last one in the order
// effective, normal, resisted, effectless.
func multipliers(raw Raw) map[dex.Type]int {
	m := make(map[dex.Type]int, len(raw.Effective)+len(raw.Normal)+len(raw.Resisted)+len(raw.Effectless))
	for _, t := range raw.Effective {
		m[t] = qDouble
	}
	for _, t := range raw.Normal {
		m[t] = qNormal
	}
	for _, t := range raw.Resisted {
		m[t] = qHalf
	}
	for _, t := range raw.Effectless {
		m[t] = qNone
	}
	return m
}

func (t *Table) add(typ dex.Type, product, scale int) {
	switch {
	case product == 0:
		t.None = append(t.None, typ)
	case product == 4*scale:
		t.Quad = append(t.Quad, typ)
	case product == 2*scale:
		t.Double = append(t.Double, typ)
	case product*2 == scale:
		t.Half = append(t.Half, typ)
	case product*4 == scale:
		t.Quarter = append(t.Quarter, typ)
	default:
		t.Normal = append(t.Normal, typ)
	}
}

// Multiplier returns the damage multiplier the table assigns to typ.
// Types absent from every bucket are treated as neutral.
func (t Table) Multiplier(typ dex.Type) float64 {
	buckets := []struct {
		types []dex.Type
		mult  float64
	}{
		{t.Quad, 4}, {t.Double, 2}, {t.Half, 0.5}, {t.Quarter, 0.25}, {t.None, 0},
	}
	for _, b := range buckets {
		for _, x := range b.types {
			if x == typ {
				return b.mult
			}
		}
	}
	return 1
}

// Multipliers returns the full type -> multiplier chart.
func (t Table) Multipliers() map[dex.Type]float64 {
	out := make(map[dex.Type]float64, 18)
	for _, typ := range dex.Types() {
		out[typ] = t.Multiplier(typ)
	}
	return out
}
