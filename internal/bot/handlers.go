package bot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/ostland/riverwarden/internal/dice"
	"github.com/ostland/riverwarden/internal/encounter"
	"github.com/ostland/riverwarden/internal/journey"
	"github.com/ostland/riverwarden/internal/store"
	"github.com/ostland/riverwarden/internal/weather"
)

// optionMap indexes interaction options by name.
func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (b *Bot) handleJourney(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) error {
	if len(data.Options) == 0 {
		return errors.New("missing subcommand")
	}
	sub := data.Options[0]
	guildID := i.GuildID
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "start":
		season := weather.Season(opts["season"].StringValue())
		province := weather.Province(opts["province"].StringValue())
		j, err := b.journey.Start(guildID, season, province)
		if err != nil {
			return err
		}
		return b.replyEmbed(s, i, journeyStartedEmbed(j))

	case "day":
		snap, err := b.journey.AdvanceDay(guildID)
		if err != nil {
			return err
		}
		return b.replyEmbed(s, i, snapshotEmbed(snap, store.DisplayDetailed))

	case "stage":
		j, err := b.journey.Status(guildID)
		if err != nil {
			return err
		}
		days, err := b.journey.AdvanceStage(guildID)
		if len(days) == 0 && err != nil {
			return err
		}
		embeds := stageEmbeds(days, j.StageDisplayMode)
		if err != nil {
			// Partial progress is kept; report the days that did generate.
			embeds = append(embeds, &discordgo.MessageEmbed{
				Title:       "Stage interrupted",
				Description: fmt.Sprintf("Generated %d days before a storage error: %v", len(days), err),
				Color:       colorError,
			})
		}
		return b.replyEmbeds(s, i, embeds)

	case "view":
		day := int(opts["day"].IntValue())
		snap, err := b.journey.ViewDay(guildID, day)
		if err != nil {
			return err
		}
		return b.replyEmbed(s, i, snapshotEmbed(snap, store.DisplayDetailed))

	case "status":
		j, err := b.journey.Status(guildID)
		if err != nil {
			return err
		}
		return b.replyEmbed(s, i, statusEmbed(j))

	case "config":
		var duration *int
		var mode *store.DisplayMode
		if o, ok := opts["duration"]; ok {
			d := int(o.IntValue())
			duration = &d
		}
		if o, ok := opts["mode"]; ok {
			m := store.DisplayMode(o.StringValue())
			mode = &m
		}
		j, err := b.journey.ConfigureStage(guildID, duration, mode)
		if err != nil {
			return err
		}
		return b.replyContent(s, i, fmt.Sprintf("Stage configured: %d days, %s display.", j.StageDuration, j.StageDisplayMode))

	case "end":
		days, err := b.journey.End(guildID)
		if err != nil {
			return err
		}
		return b.replyContent(s, i, fmt.Sprintf("Journey ended after %d days. The archive has been cleared.", days))
	}

	return fmt.Errorf("unknown subcommand %q", sub.Name)
}

func (b *Bot) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) error {
	opts := optionMap(data.Options)
	target := int(opts["target"].IntValue())
	result := dice.SkillTest(b.src, target)
	return b.replyEmbed(s, i, testEmbed("Skill Test", result))
}

func (b *Bot) handleBoatTest(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) error {
	opts := optionMap(data.Options)
	skill := int(opts["skill"].IntValue())

	slot := weather.Dawn
	if o, ok := opts["slot"]; ok {
		slot = weather.TimeOfDay(o.StringValue())
	}

	j, err := b.journey.Status(i.GuildID)
	if err != nil {
		return err
	}
	snap, err := b.journey.ViewDay(i.GuildID, j.CurrentDay)
	if err != nil {
		return err
	}

	wind := windAt(snap, slot)
	result := weather.BoatHandlingTest(b.src, skill, wind)
	return b.replyEmbed(s, i, boatTestEmbed(result, slot))
}

// handleEncounter posts the player text publicly and the GM mechanics as an
// ephemeral follow-up to the invoker. A followup failure is only logged:
// the interaction is already acknowledged by the public reply, so a second
// InteractionRespond from the error path could not reach the user anyway.
func (b *Bot) handleEncounter(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	enc := encounter.Generate(b.src)

	if err := b.replyEmbed(s, i, encounterPlayerEmbed(enc)); err != nil {
		return err
	}

	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{encounterGMEmbed(enc)},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		slog.Error("gm followup failed", "roll", enc.Roll, "error", err)
	}
	return nil
}

// windAt picks a timeline slot by name.
func windAt(snap *weather.Snapshot, slot weather.TimeOfDay) weather.WindCondition {
	for idx, name := range weather.TimeSlots() {
		if name == slot {
			return snap.Wind[idx]
		}
	}
	return snap.Wind[0]
}

// userMessage translates errors into wording fit for the channel.
func userMessage(err error) string {
	var noJourney *journey.NoJourneyError
	var dayNotFound *journey.DayNotFoundError
	var validation *journey.ValidationError

	switch {
	case errors.As(err, &noJourney):
		return "No journey is underway. Start one with `/journey start`."
	case errors.As(err, &dayNotFound):
		return fmt.Sprintf("No weather has been recorded for day %d.", dayNotFound.Day)
	case errors.As(err, &validation):
		return "That doesn't work: " + validation.Error()
	default:
		return "Something went wrong below decks. Try again, or check the logs."
	}
}

func (b *Bot) replyEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return b.replyEmbeds(s, i, []*discordgo.MessageEmbed{embed})
}

func (b *Bot) replyEmbeds(s *discordgo.Session, i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: embeds},
	})
}

func (b *Bot) replyContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}
