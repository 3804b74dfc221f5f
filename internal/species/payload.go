package species

// --------------------------------------------------------------------------
// Upstream GraphQL schema
//
// These mirror the fields the GraphQL service returns for getPokemon,
// getAllPokemon and getMove. They are decoded at the provider boundary and
// only ever read by the normalizers in this package.
// --------------------------------------------------------------------------

// Payload is the getPokemon response body.
type Payload struct {
	Key            string           `json:"key"`
	Abilities      AbilitiesPayload `json:"abilities"`
	BaseStats      StatBlock        `json:"baseStats"`
	BaseStatsTotal int              `json:"baseStatsTotal"`
	CatchRate      CatchRatePayload `json:"catchRate"`
	Classification string           `json:"classification"`
	EVYields       StatBlock        `json:"evYields"`
	FlavorTexts    []FlavorText     `json:"flavorTexts"`
	Gender         GenderPayload    `json:"gender"`
	Height         float64          `json:"height"`
	Weight         float64          `json:"weight"`
	Num            int              `json:"num"`
	OtherFormes    []string         `json:"otherFormes"`
	Species        string           `json:"species"`
	Types          []*TypePayload   `json:"types"`
	Mythical       bool             `json:"mythical"`
	Legendary      bool             `json:"legendary"`
}

type AbilitiesPayload struct {
	First  *AbilityPayload `json:"first"`
	Second *AbilityPayload `json:"second"`
	Hidden *AbilityPayload `json:"hidden"`
}

type AbilityPayload struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	ShortDesc string `json:"shortDesc"`
}

type CatchRatePayload struct {
	Base       int    `json:"base"`
	Percentage string `json:"percentageWithOrdinaryPokeballAtFullHealth"`
}

type GenderPayload struct {
	Male   string `json:"male"`
	Female string `json:"female"`
}

// TypePayload is one of the creature's types with its defensive matchup.
// Type names arrive capitalized ("Grass").
type TypePayload struct {
	Name    string `json:"name"`
	Matchup struct {
		Defending DefendingPayload `json:"defending"`
	} `json:"matchup"`
}

type DefendingPayload struct {
	EffectiveTypes  []string `json:"effectiveTypes"`
	NormalTypes     []string `json:"normalTypes"`
	ResistedTypes   []string `json:"resistedTypes"`
	EffectlessTypes []string `json:"effectlessTypes"`
}

// FragmentPayload is one element of the getAllPokemon response.
type FragmentPayload struct {
	Key            string            `json:"key"`
	BaseStatsTotal int               `json:"baseStatsTotal"`
	Num            int               `json:"num"`
	BaseStats      StatBlock         `json:"baseStats"` // attack and specialattack only
	Types          []TypeNamePayload `json:"types"`
}

type TypeNamePayload struct {
	Name string `json:"name"`
}

// MovePayload is the getMove response body.
type MovePayload struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	BasePower  string `json:"basePower"`
	Category   string `json:"category"`
	Desc       string `json:"desc"`
	ShortDesc  string `json:"shortDesc"`
	PP         int    `json:"pp"`
	Priority   int    `json:"priority"`
	Target     string `json:"target"`
	Type       string `json:"type"`
	ZMovePower int    `json:"zMovePower"`
}
