package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/ostland/riverwarden/internal/weather"
)

// commands returns the full slash-command tree.
func commands() []*discordgo.ApplicationCommand {
	minDay := 1.0
	minDuration := 1.0
	maxDuration := 10.0

	return []*discordgo.ApplicationCommand{
		{
			Name:        "journey",
			Description: "Manage the guild's river journey",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new journey (destroys any current one)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "season",
							Description: "Season of travel",
							Required:    true,
							Choices:     seasonChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "province",
							Description: "Province the river runs through",
							Required:    true,
							Choices:     provinceChoices(),
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "day",
					Description: "Advance one day and post the weather",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stage",
					Description: "Advance a full stage of days",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "Look up an earlier day's weather",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "day",
							Description: "Day number",
							Required:    true,
							MinValue:    &minDay,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the journey summary",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "config",
					Description: "Configure stage length and display mode",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "duration",
							Description: "Days per stage (1-10)",
							MinValue:    &minDuration,
							MaxValue:    maxDuration,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mode",
							Description: "Stage display mode",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "simple", Value: "simple"},
								{Name: "detailed", Value: "detailed"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the journey and clear its archive",
				},
			},
		},
		{
			Name:        "roll",
			Description: "Roll a WFRP skill test",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "target",
					Description: "Skill value to test against",
					Required:    true,
				},
			},
		},
		{
			Name:        "boattest",
			Description: "Roll a boat-handling test against today's wind",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "skill",
					Description: "Sail or Row skill value",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "slot",
					Description: "Time of day (default dawn)",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "dawn", Value: "dawn"},
						{Name: "midday", Value: "midday"},
						{Name: "dusk", Value: "dusk"},
						{Name: "midnight", Value: "midnight"},
					},
				},
			},
		},
		{
			Name:        "encounter",
			Description: "Roll a river encounter",
		},
	}
}

func seasonChoices() []*discordgo.ApplicationCommandOptionChoice {
	seasons := weather.Seasons()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(seasons))
	for _, s := range seasons {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(s),
			Value: string(s),
		})
	}
	return choices
}

func provinceChoices() []*discordgo.ApplicationCommandOptionChoice {
	provinces := weather.Provinces()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(provinces))
	for _, p := range provinces {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(p),
			Value: string(p),
		})
	}
	return choices
}
