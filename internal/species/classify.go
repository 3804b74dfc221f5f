package species

// AttackerType says which offensive stat a creature is built around.
type AttackerType string

const (
	PhysicalAttacker AttackerType = "physical"
	SpecialAttacker  AttackerType = "special"
)

// Profile is the outcome of Classify.
type Profile struct {
	AttackerType       AttackerType `json:"attacker_type"`
	EffectiveBaseTotal int          `json:"effective_base_total"`
}

// Classify picks the attacker type and discounts the unused offensive stat
// from the base total. Ties go to special.
func Classify(stats StatBlock, baseTotal int) Profile {
	if stats.SpecialAttack >= stats.Attack {
		return Profile{AttackerType: SpecialAttacker, EffectiveBaseTotal: baseTotal - stats.Attack}
	}
	return Profile{AttackerType: PhysicalAttacker, EffectiveBaseTotal: baseTotal - stats.SpecialAttack}
}

// Efficiency rates how much of the base total is lost to the unused
// offensive stat.
type Efficiency string

const (
	Efficient Efficiency = "efficient"
	Wasteful  Efficiency = "wasteful"
	Mixed     Efficiency = "mixed"
)

// Rate buckets the gap between the base total and the effective total:
// up to 60 points is efficient, up to 100 wasteful, anything above mixed.
func Rate(baseTotal, effectiveTotal int) Efficiency {
	diff := baseTotal - effectiveTotal
	switch {
	case diff <= 60:
		return Efficient
	case diff <= 100:
		return Wasteful
	default:
		return Mixed
	}
}
