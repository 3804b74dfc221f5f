package graphql

// Query documents. %s is a catalogue key, already validated.

const pokemonQuery = `{
  getPokemon(pokemon: %s, reverseFlavorTexts: false) {
    key
    abilities {
      first { key name shortDesc }
      second { key name shortDesc }
      hidden { key name shortDesc }
    }
    baseStats { hp attack defense specialattack specialdefense speed }
    baseStatsTotal
    catchRate { base percentageWithOrdinaryPokeballAtFullHealth }
    classification
    evYields { hp attack defense specialattack specialdefense speed }
    flavorTexts { flavor game }
    gender { male female }
    height
    num
    otherFormes
    species
    types {
      name
      matchup {
        defending { effectiveTypes normalTypes resistedTypes effectlessTypes }
      }
    }
    weight
    mythical
    legendary
  }
}`

const moveQuery = `{
  getMove(move: %s) {
    key
    name
    basePower
    category
    desc
    shortDesc
    pp
    priority
    target
    type
    zMovePower
  }
}`

const allPokemonQuery = `{
  getAllPokemon {
    key
    num
    baseStatsTotal
    baseStats { attack specialattack }
    types { name }
  }
}`
