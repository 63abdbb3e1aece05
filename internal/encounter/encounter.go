// Package encounter generates random river encounters with separate player
// and GM text, so the table result can go to the channel while the mechanics
// go to the game master.
package encounter

import (
	"github.com/ostland/riverwarden/internal/dice"
)

// Encounter is one rolled table entry.
type Encounter struct {
	Roll   int    `json:"roll"`
	Title  string `json:"title"`
	Player string `json:"player"` // safe to post publicly
	GM     string `json:"gm"`     // mechanics and hidden intent
}

type entry struct {
	min, max int
	title    string
	player   string
	gm       string
}

// table covers 1–100 with no gaps. Low rolls are trouble, high rolls are
// color and good fortune.
var table = []entry{
	{1, 5, "River Pirates",
		"A low barge shadows you from astern, lanterns doused.",
		"Pirate cutter, 2d10 crew. They close after dusk; Perception -10 in failing light. Fight, flee (opposed Sail/Row), or parley (Bribery)."},
	{6, 12, "Snag",
		"Something long and dark rolls under the bow wake.",
		"Submerged tree. Helmsman makes a Challenging (+0) Sail/Row test or the hull takes 1d10 damage and springs a slow leak."},
	{13, 20, "Toll Post",
		"A chain spans the river at a wooden watchtower flying provincial colors.",
		"Road wardens collect 2/- per passenger, 5/- per ton of cargo. Forged papers need an Opposed Deceive test. Smugglers will be searched."},
	{21, 30, "Fog Bank",
		"A wall of grey swallows the river ahead.",
		"Visibility drops to a boat length for 1d10 hours. Navigation tests at -20; moving at speed risks collision (Challenging Sail test)."},
	{31, 40, "Floating Wreck",
		"Splintered planking and a torn sail drift past on the current.",
		"Wreck of a grain barge, one day old. Searching finds 1d10 GC of salvage and a survivor clinging to a cask - or something feeding."},
	{41, 55, "Trading Barge",
		"A broad-beamed barge hails you, her master waving a bottle in greeting.",
		"Honest merchant family. Will trade news, rations, and small goods at fair prices. A good source of rumors for the next leg."},
	{56, 65, "Riverside Shrine",
		"A weathered shrine to Manann stands on the bank, hung with votive ribbons.",
		"An offering (1/- or better) grants +10 to the next Sail test within a day. Despoiling it invites the river's displeasure at GM discretion."},
	{66, 75, "Fisherfolk",
		"Skiffs dot the shallows, nets strung between them.",
		"Local fishers. They know every sandbar for ten miles; a friendly crew (Charm) marks safe passage, negating the next navigation mishap."},
	{76, 85, "River Patrol",
		"A sleek patrol boat signals you to heave to.",
		"Excise cutter checking manifests. Contraband aboard means trouble; otherwise a routine inspection costs an hour and some patience."},
	{86, 93, "Fair Current",
		"The river runs clean and quick, the boat riding it like a gull.",
		"Favorable current. Add 25% to today's distance; the crew's mood lifts. No test required."},
	{94, 100, "Strange Lights",
		"Pale lights bob over the marshes along the far bank, keeping pace.",
		"Ghost lights. Following them leads into the fen and a Lost condition; ignoring them passes the night uneasily (sleep counts as interrupted)."},
}

// Generate rolls once on the encounter table.
func Generate(src dice.Source) Encounter {
	roll := dice.D100(src)
	return At(roll)
}

// At returns the table entry covering the given roll. Out-of-range rolls
// are a programming error.
func At(roll int) Encounter {
	for _, e := range table {
		if roll >= e.min && roll <= e.max {
			return Encounter{Roll: roll, Title: e.title, Player: e.player, GM: e.gm}
		}
	}
	panic("encounter: roll out of range")
}
