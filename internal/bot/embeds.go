package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/ostland/riverwarden/internal/dice"
	"github.com/ostland/riverwarden/internal/encounter"
	"github.com/ostland/riverwarden/internal/store"
	"github.com/ostland/riverwarden/internal/weather"
)

const (
	colorWeather = 0x3B6EA5
	colorEvent   = 0xB5432E
	colorDice    = 0x6A8A3C
	colorError   = 0x8A2F2F
)

func journeyStartedEmbed(j *store.Journey) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "The journey begins",
		Description: fmt.Sprintf("Travelling through **%s** in **%s**. Use `/journey day` to break camp.",
			title(string(j.Province)), string(j.Season)),
		Color: colorWeather,
	}
}

// snapshotEmbed renders one day of weather. Detailed mode adds the full
// wind timeline and effect list; simple mode keeps the headline.
func snapshotEmbed(snap *weather.Snapshot, mode store.DisplayMode) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Day %d — %s", snap.Day, title(string(snap.Type))),
		Description: snap.Description,
		Color:       colorWeather,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Temperature",
				Value: fmt.Sprintf("%d°C (feels like %d°C) — %s",
					snap.Temperature.Actual, snap.Temperature.Perceived, title(string(snap.Temperature.Category))),
			},
		},
	}

	if snap.Event.Active() {
		embed.Color = colorEvent
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: title(string(snap.Event.Type)),
			Value: fmt.Sprintf("%s of %d days",
				humanize.Ordinal(snap.Event.TotalDuration-snap.Event.DaysRemaining+1), snap.Event.TotalDuration),
		})
	}

	if mode == store.DisplayDetailed {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Wind",
			Value: windTimeline(snap.Wind),
		})
		if len(snap.Effects) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Effects",
				Value: "• " + strings.Join(snap.Effects, "\n• "),
			})
		}
	} else {
		dawn := snap.Wind[0]
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Wind at dawn",
			Value: windLine(dawn),
		})
	}

	return embed
}

// stageEmbeds renders a generated stage, one embed per day.
func stageEmbeds(days []*weather.Snapshot, mode store.DisplayMode) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(days))
	for _, snap := range days {
		embeds = append(embeds, snapshotEmbed(snap, mode))
	}
	return embeds
}

func statusEmbed(j *store.Journey) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Journey status",
		Color: colorWeather,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Route", Value: fmt.Sprintf("%s, %s", title(string(j.Province)), string(j.Season)), Inline: true},
			{Name: "Day", Value: fmt.Sprintf("%s day on the river", humanize.Ordinal(j.CurrentDay)), Inline: true},
			{Name: "Stage", Value: fmt.Sprintf("%d (%d days, %s)", j.CurrentStage, j.StageDuration, j.StageDisplayMode), Inline: true},
		},
	}
}

func testEmbed(name string, r dice.TestResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       name,
		Description: r.String(),
		Color:       colorDice,
	}
}

func boatTestEmbed(r weather.BoatTestResult, slot weather.TimeOfDay) *discordgo.MessageEmbed {
	embed := testEmbed("Boat Handling", r.TestResult)
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:  fmt.Sprintf("Wind (%s)", slot),
			Value: fmt.Sprintf("%s — test modifier %+d", windLine(r.Wind), r.WindModifier),
		},
	}
	return embed
}

func encounterPlayerEmbed(e encounter.Encounter) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Player,
		Color:       colorWeather,
	}
}

func encounterGMEmbed(e encounter.Encounter) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s (GM, rolled %d)", e.Title, e.Roll),
		Description: e.GM,
		Color:       colorEvent,
	}
}

// windTimeline renders all four slots, one line each.
func windTimeline(timeline [4]weather.WindCondition) string {
	slots := weather.TimeSlots()
	lines := make([]string, 0, len(slots))
	for idx, name := range slots {
		lines = append(lines, fmt.Sprintf("**%s**: %s", name, windLine(timeline[idx])))
	}
	return strings.Join(lines, "\n")
}

func windLine(c weather.WindCondition) string {
	line := fmt.Sprintf("%s %s (%+d%%)", title(string(c.Strength)), string(c.Direction), c.Modifier)
	if c.Notes != "" {
		line += " — " + c.Notes
	}
	return line
}

// title uppercases the first letter and swaps underscores for spaces.
func title(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
