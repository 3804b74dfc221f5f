package dex

import (
	"fmt"
	"sort"
)

func mv(name string, typ Type, cat Category, acc Accuracy, power, pp, priority int) MoveInfo {
	return MoveInfo{Name: name, Type: typ, Category: cat, Accuracy: acc, Power: power, PP: pp, Priority: priority}
}

// Local move catalogue, keyed by move key. Covers the Kanto move pool.
var moveTable = map[string]MoveInfo{
	"absorb":       mv("Absorb", Grass, Special, Percent(100), 20, 25, 0),
	"acid":         mv("Acid", Poison, Special, Percent(100), 40, 30, 0),
	"acidarmor":    mv("Acid Armor", Poison, Status, Always, 0, 20, 0),
	"agility":      mv("Agility", Psychic, Status, Always, 0, 30, 0),
	"amnesia":      mv("Amnesia", Psychic, Status, Always, 0, 20, 0),
	"aurorabeam":   mv("Aurora Beam", Ice, Special, Percent(100), 65, 20, 0),
	"barrage":      mv("Barrage", Normal, Physical, Percent(85), 15, 20, 0),
	"barrier":      mv("Barrier", Psychic, Status, Always, 0, 20, 0),
	"bide":         mv("Bide", Normal, Physical, Always, 0, 10, 1),
	"bind":         mv("Bind", Normal, Physical, Percent(85), 15, 20, 0),
	"bite":         mv("Bite", Dark, Physical, Percent(100), 60, 25, 0),
	"blizzard":     mv("Blizzard", Ice, Special, Percent(70), 110, 5, 0),
	"bodyslam":     mv("Body Slam", Normal, Physical, Percent(100), 85, 15, 0),
	"boneclub":     mv("Bone Club", Ground, Physical, Percent(85), 65, 20, 0),
	"bonemerang":   mv("Bonemerang", Ground, Physical, Percent(90), 50, 10, 0),
	"bubble":       mv("Bubble", Water, Special, Percent(100), 40, 30, 0),
	"bubblebeam":   mv("Bubble Beam", Water, Special, Percent(100), 65, 20, 0),
	"clamp":        mv("Clamp", Water, Physical, Percent(85), 35, 15, 0),
	"cometpunch":   mv("Comet Punch", Normal, Physical, Percent(85), 18, 15, 0),
	"confuseray":   mv("Confuse Ray", Ghost, Status, Percent(100), 0, 10, 0),
	"confusion":    mv("Confusion", Psychic, Special, Percent(100), 50, 25, 0),
	"constrict":    mv("Constrict", Normal, Physical, Percent(100), 10, 35, 0),
	"conversion":   mv("Conversion", Normal, Status, Always, 0, 30, 0),
	"counter":      mv("Counter", Fighting, Physical, Percent(100), 0, 20, -5),
	"crabhammer":   mv("Crabhammer", Water, Physical, Percent(90), 100, 10, 0),
	"cut":          mv("Cut", Normal, Physical, Percent(95), 50, 30, 0),
	"defensecurl":  mv("Defense Curl", Normal, Status, Always, 0, 40, 0),
	"dig":          mv("Dig", Ground, Physical, Percent(100), 80, 10, 0),
	"disable":      mv("Disable", Normal, Status, Percent(100), 0, 20, 0),
	"dizzypunch":   mv("Dizzy Punch", Normal, Physical, Percent(100), 70, 10, 0),
	"doubleedge":   mv("Double-Edge", Normal, Physical, Percent(100), 120, 15, 0),
	"doublekick":   mv("Double Kick", Fighting, Physical, Percent(100), 30, 30, 0),
	"doubleslap":   mv("Double Slap", Normal, Physical, Percent(85), 15, 10, 0),
	"doubleteam":   mv("Double Team", Normal, Status, Always, 0, 15, 0),
	"dragonrage":   mv("Dragon Rage", Dragon, Special, Percent(100), 0, 10, 0),
	"dreameater":   mv("Dream Eater", Psychic, Special, Percent(100), 100, 15, 0),
	"drillpeck":    mv("Drill Peck", Flying, Physical, Percent(100), 80, 20, 0),
	"earthquake":   mv("Earthquake", Ground, Physical, Percent(100), 100, 10, 0),
	"eggbomb":      mv("Egg Bomb", Normal, Physical, Percent(75), 100, 10, 0),
	"ember":        mv("Ember", Fire, Special, Percent(100), 40, 25, 0),
	"explosion":    mv("Explosion", Normal, Physical, Percent(100), 250, 5, 0),
	"fireblast":    mv("Fire Blast", Fire, Special, Percent(85), 110, 5, 0),
	"firepunch":    mv("Fire Punch", Fire, Physical, Percent(100), 75, 15, 0),
	"firespin":     mv("Fire Spin", Fire, Special, Percent(85), 35, 15, 0),
	"fissure":      mv("Fissure", Ground, Physical, Percent(30), 0, 5, 0),
	"flamethrower": mv("Flamethrower", Fire, Special, Percent(100), 90, 15, 0),
	"flash":        mv("Flash", Normal, Status, Percent(100), 0, 20, 0),
	"fly":          mv("Fly", Flying, Physical, Percent(95), 90, 15, 0),
	"focusenergy":  mv("Focus Energy", Normal, Status, Always, 0, 30, 0),
	"furyattack":   mv("Fury Attack", Normal, Physical, Percent(85), 15, 20, 0),
	"furyswipes":   mv("Fury Swipes", Normal, Physical, Percent(80), 18, 15, 0),
	"glare":        mv("Glare", Normal, Status, Percent(100), 0, 30, 0),
	"growl":        mv("Growl", Normal, Status, Percent(100), 0, 40, 0),
	"growth":       mv("Growth", Normal, Status, Always, 0, 20, 0),
	"guillotine":   mv("Guillotine", Normal, Physical, Percent(30), 0, 5, 0),
	"gust":         mv("Gust", Flying, Special, Percent(100), 40, 35, 0),
	"harden":       mv("Harden", Normal, Status, Always, 0, 30, 0),
	"haze":         mv("Haze", Ice, Status, Always, 0, 30, 0),
	"headbutt":     mv("Headbutt", Normal, Physical, Percent(100), 70, 15, 0),
	"highjumpkick": mv("High Jump Kick", Fighting, Physical, Percent(90), 130, 10, 0),
	"hornattack":   mv("Horn Attack", Normal, Physical, Percent(100), 65, 25, 0),
	"horndrill":    mv("Horn Drill", Normal, Physical, Percent(30), 0, 5, 0),
	"hydropump":    mv("Hydro Pump", Water, Special, Percent(80), 110, 5, 0),
	"hyperbeam":    mv("Hyper Beam", Normal, Special, Percent(90), 150, 5, 0),
	"hyperfang":    mv("Hyper Fang", Normal, Physical, Percent(90), 80, 15, 0),
	"hypnosis":     mv("Hypnosis", Psychic, Status, Percent(60), 0, 20, 0),
	"icebeam":      mv("Ice Beam", Ice, Special, Percent(100), 90, 10, 0),
	"icepunch":     mv("Ice Punch", Ice, Physical, Percent(100), 75, 15, 0),
	"jumpkick":     mv("Jump Kick", Fighting, Physical, Percent(95), 100, 10, 0),
	"karatechop":   mv("Karate Chop", Fighting, Physical, Percent(100), 50, 25, 0),
	"kinesis":      mv("Kinesis", Psychic, Status, Percent(80), 0, 15, 0),
	"leechlife":    mv("Leech Life", Bug, Physical, Percent(100), 80, 10, 0),
	"leechseed":    mv("Leech Seed", Grass, Status, Percent(90), 0, 10, 0),
	"leer":         mv("Leer", Normal, Status, Percent(100), 0, 30, 0),
	"lick":         mv("Lick", Ghost, Physical, Percent(100), 30, 30, 0),
	"lightscreen":  mv("Light Screen", Psychic, Status, Always, 0, 30, 0),
	"lovelykiss":   mv("Lovely Kiss", Normal, Status, Percent(75), 0, 10, 0),
	"lowkick":      mv("Low Kick", Fighting, Physical, Percent(100), 0, 20, 0),
	"meditate":     mv("Meditate", Psychic, Status, Always, 0, 40, 0),
	"megadrain":    mv("Mega Drain", Grass, Special, Percent(100), 40, 15, 0),
	"megakick":     mv("Mega Kick", Normal, Physical, Percent(75), 120, 5, 0),
	"megapunch":    mv("Mega Punch", Normal, Physical, Percent(85), 80, 20, 0),
	"metronome":    mv("Metronome", Normal, Status, Always, 0, 10, 0),
	"mimic":        mv("Mimic", Normal, Status, Always, 0, 10, 0),
	"minimize":     mv("Minimize", Normal, Status, Always, 0, 10, 0),
	"mirrormove":   mv("Mirror Move", Flying, Status, Always, 0, 20, 0),
	"mist":         mv("Mist", Ice, Status, Always, 0, 30, 0),
	"nightshade":   mv("Night Shade", Ghost, Special, Percent(100), 0, 15, 0),
	"payday":       mv("Pay Day", Normal, Physical, Percent(100), 40, 20, 0),
	"peck":         mv("Peck", Flying, Physical, Percent(100), 35, 35, 0),
	"petaldance":   mv("Petal Dance", Grass, Special, Percent(100), 120, 10, 0),
	"pinmissile":   mv("Pin Missile", Bug, Physical, Percent(95), 25, 20, 0),
	"poisongas":    mv("Poison Gas", Poison, Status, Percent(90), 0, 40, 0),
	"poisonpowder": mv("Poison Powder", Poison, Status, Percent(75), 0, 35, 0),
	"poisonsting":  mv("Poison Sting", Poison, Physical, Percent(100), 15, 35, 0),
	"pound":        mv("Pound", Normal, Physical, Percent(100), 40, 35, 0),
	"psybeam":      mv("Psybeam", Psychic, Special, Percent(100), 65, 20, 0),
	"psychic":      mv("Psychic", Psychic, Special, Percent(100), 90, 10, 0),
	"psywave":      mv("Psywave", Psychic, Special, Percent(100), 0, 15, 0),
	"quickattack":  mv("Quick Attack", Normal, Physical, Percent(100), 40, 30, 1),
	"rage":         mv("Rage", Normal, Physical, Percent(100), 20, 20, 0),
	"razorleaf":    mv("Razor Leaf", Grass, Physical, Percent(95), 55, 25, 0),
	"razorwind":    mv("Razor Wind", Normal, Special, Percent(100), 80, 10, 0),
	"recover":      mv("Recover", Normal, Status, Always, 0, 5, 0),
	"reflect":      mv("Reflect", Psychic, Status, Always, 0, 20, 0),
	"rest":         mv("Rest", Psychic, Status, Always, 0, 5, 0),
	"roar":         mv("Roar", Normal, Status, Always, 0, 20, -6),
	"rockslide":    mv("Rock Slide", Rock, Physical, Percent(90), 75, 10, 0),
	"rockthrow":    mv("Rock Throw", Rock, Physical, Percent(90), 50, 15, 0),
	"rollingkick":  mv("Rolling Kick", Fighting, Physical, Percent(85), 60, 15, 0),
	"sandattack":   mv("Sand Attack", Ground, Status, Percent(100), 0, 15, 0),
	"scratch":      mv("Scratch", Normal, Physical, Percent(100), 40, 35, 0),
	"screech":      mv("Screech", Normal, Status, Percent(85), 0, 40, 0),
	"seismictoss":  mv("Seismic Toss", Fighting, Physical, Percent(100), 0, 20, 0),
	"selfdestruct": mv("Self-Destruct", Normal, Physical, Percent(100), 200, 5, 0),
	"sharpen":      mv("Sharpen", Normal, Status, Always, 0, 30, 0),
	"sing":         mv("Sing", Normal, Status, Percent(55), 0, 15, 0),
	"skullbash":    mv("Skull Bash", Normal, Physical, Percent(100), 130, 10, 0),
	"skyattack":    mv("Sky Attack", Flying, Physical, Percent(90), 140, 5, 0),
	"slam":         mv("Slam", Normal, Physical, Percent(75), 80, 20, 0),
	"slash":        mv("Slash", Normal, Physical, Percent(100), 70, 20, 0),
	"sleeppowder":  mv("Sleep Powder", Grass, Status, Percent(75), 0, 15, 0),
	"sludge":       mv("Sludge", Poison, Special, Percent(100), 65, 20, 0),
	"smog":         mv("Smog", Poison, Special, Percent(70), 30, 20, 0),
	"smokescreen":  mv("Smokescreen", Normal, Status, Percent(100), 0, 20, 0),
	"softboiled":   mv("Soft-Boiled", Normal, Status, Always, 0, 5, 0),
	"solarbeam":    mv("Solar Beam", Grass, Special, Percent(100), 120, 10, 0),
	"sonicboom":    mv("Sonic Boom", Normal, Special, Percent(90), 0, 20, 0),
	"spikecannon":  mv("Spike Cannon", Normal, Physical, Percent(100), 20, 15, 0),
	"splash":       mv("Splash", Normal, Status, Always, 0, 40, 0),
	"spore":        mv("Spore", Grass, Status, Percent(100), 0, 15, 0),
	"stomp":        mv("Stomp", Normal, Physical, Percent(100), 65, 20, 0),
	"strength":     mv("Strength", Normal, Physical, Percent(100), 80, 15, 0),
	"stringshot":   mv("String Shot", Bug, Status, Percent(95), 0, 40, 0),
	"struggle":     mv("Struggle", Normal, Physical, Always, 50, 1, 0),
	"stunspore":    mv("Stun Spore", Grass, Status, Percent(75), 0, 30, 0),
	"submission":   mv("Submission", Fighting, Physical, Percent(80), 80, 20, 0),
	"substitute":   mv("Substitute", Normal, Status, Always, 0, 10, 0),
	"superfang":    mv("Super Fang", Normal, Physical, Percent(90), 0, 10, 0),
	"supersonic":   mv("Supersonic", Normal, Status, Percent(55), 0, 20, 0),
	"surf":         mv("Surf", Water, Special, Percent(100), 90, 15, 0),
	"swift":        mv("Swift", Normal, Special, Always, 60, 20, 0),
	"swordsdance":  mv("Swords Dance", Normal, Status, Always, 0, 20, 0),
	"tackle":       mv("Tackle", Normal, Physical, Percent(100), 40, 35, 0),
	"tailwhip":     mv("Tail Whip", Normal, Status, Percent(100), 0, 30, 0),
	"takedown":     mv("Take Down", Normal, Physical, Percent(85), 90, 20, 0),
	"teleport":     mv("Teleport", Psychic, Status, Always, 0, 20, -6),
	"thrash":       mv("Thrash", Normal, Physical, Percent(100), 120, 10, 0),
	"thunder":      mv("Thunder", Electric, Special, Percent(70), 110, 10, 0),
	"thunderbolt":  mv("Thunderbolt", Electric, Special, Percent(100), 90, 15, 0),
	"thunderpunch": mv("Thunder Punch", Electric, Physical, Percent(100), 75, 15, 0),
	"thundershock": mv("Thunder Shock", Electric, Special, Percent(100), 40, 30, 0),
	"thunderwave":  mv("Thunder Wave", Electric, Status, Percent(90), 0, 20, 0),
	"toxic":        mv("Toxic", Poison, Status, Percent(90), 0, 10, 0),
	"transform":    mv("Transform", Normal, Status, Always, 0, 10, 0),
	"triattack":    mv("Tri Attack", Normal, Special, Percent(100), 80, 10, 0),
	"twineedle":    mv("Twineedle", Bug, Physical, Percent(100), 25, 20, 0),
	"visegrip":     mv("Vise Grip", Normal, Physical, Percent(100), 55, 30, 0),
	"vinewhip":     mv("Vine Whip", Grass, Physical, Percent(100), 45, 25, 0),
	"watergun":     mv("Water Gun", Water, Special, Percent(100), 40, 25, 0),
	"waterfall":    mv("Waterfall", Water, Physical, Percent(100), 80, 15, 0),
	"whirlwind":    mv("Whirlwind", Normal, Status, Always, 0, 20, -6),
	"wingattack":   mv("Wing Attack", Flying, Physical, Percent(100), 60, 35, 0),
	"withdraw":     mv("Withdraw", Water, Status, Always, 0, 40, 0),
	"wrap":         mv("Wrap", Normal, Physical, Percent(90), 15, 20, 0),
}

func init() {
	for key, info := range moveTable {
		if _, ok := ParseType(string(info.Type)); !ok {
			panic(fmt.Sprintf("dex: move %q has unknown type %q", key, info.Type))
		}
	}
}

// Move returns the local metadata for a move key.
func Move(key string) (MoveInfo, bool) {
	info, ok := moveTable[key]
	return info, ok
}

// MoveKeys returns every catalogued move key, sorted.
func MoveKeys() []string {
	keys := make([]string, 0, len(moveTable))
	for k := range moveTable {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
