package cloudfx

import "strings"

// Skill represents a skill.
type Skill int

// SkillNone is returned when no skill matches.
const SkillNone Skill = -1

const (
	SkillFighting Skill = iota
	SkillShortBlades
	SkillLongBlades
	SkillAxes
	SkillMacesFlails
	SkillPolearms
	SkillStaves
	SkillRanged
	SkillThrowing
	SkillArmour
	SkillDodging
	SkillStealth
	SkillShields
	SkillUnarmedCombat
	SkillSpellcasting
	SkillConjurations
	SkillHexes
	SkillSummonings
	SkillNecromancy
	SkillTranslocations
	SkillFireMagic
	SkillIceMagic
	SkillAirMagic
	SkillEarthMagic
	SkillAlchemy
	SkillInvocations
	SkillEvocations
	SkillShapeshifting
	NSkills
)

var skillNames = [NSkills]string{
	SkillFighting:       "Fighting",
	SkillShortBlades:    "Short Blades",
	SkillLongBlades:     "Long Blades",
	SkillAxes:           "Axes",
	SkillMacesFlails:    "Maces & Flails",
	SkillPolearms:       "Polearms",
	SkillStaves:         "Staves",
	SkillRanged:         "Ranged Weapons",
	SkillThrowing:       "Throwing",
	SkillArmour:         "Armour",
	SkillDodging:        "Dodging",
	SkillStealth:        "Stealth",
	SkillShields:        "Shields",
	SkillUnarmedCombat:  "Unarmed Combat",
	SkillSpellcasting:   "Spellcasting",
	SkillConjurations:   "Conjurations",
	SkillHexes:          "Hexes",
	SkillSummonings:     "Summonings",
	SkillNecromancy:     "Necromancy",
	SkillTranslocations: "Translocations",
	SkillFireMagic:      "Fire Magic",
	SkillIceMagic:       "Ice Magic",
	SkillAirMagic:       "Air Magic",
	SkillEarthMagic:     "Earth Magic",
	SkillAlchemy:        "Alchemy",
	SkillInvocations:    "Invocations",
	SkillEvocations:     "Evocations",
	SkillShapeshifting:  "Shapeshifting",
}

func (sk Skill) String() string {
	if sk < 0 || sk >= NSkills {
		return "no skill"
	}
	return skillNames[sk]
}

// SkillFromName returns the skill whose name contains s, ignoring case. A
// match at the start of a name wins; otherwise the last match in the list
// does. It returns SkillNone if nothing matches.
func SkillFromName(s string) Skill {
	s = strings.ToLower(s)
	skill := SkillNone
	for sk := range NSkills {
		i := strings.Index(strings.ToLower(skillNames[sk]), s)
		if i < 0 {
			continue
		}
		skill = sk
		if i == 0 {
			// We prefer prefixes over partial matches.
			break
		}
	}
	return skill
}
