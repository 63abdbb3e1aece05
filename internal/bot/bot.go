// Package bot wires the journey service, dice, and encounter tables to
// Discord slash commands. It carries no game logic of its own: handlers
// validate input, call into the services, and render embeds.
package bot

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/ostland/riverwarden/internal/dice"
	"github.com/ostland/riverwarden/internal/journey"
)

// Bot is the Discord-facing surface of the application.
type Bot struct {
	session *discordgo.Session
	journey *journey.Service
	src     dice.Source

	// guildID scopes command registration during development; empty means
	// global registration.
	guildID    string
	registered []*discordgo.ApplicationCommand
}

// New creates a bot bound to the given services.
func New(token string, svc *journey.Service, src dice.Source, guildID string) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{
		session: session,
		journey: svc,
		src:     src,
		guildID: guildID,
	}, nil
}

// Start opens the gateway connection and registers slash commands.
func (b *Bot) Start() error {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("connected to discord", "user", r.User.Username)
	})
	b.session.AddHandler(b.handleInteraction)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}

	for _, cmd := range commands() {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd)
		if err != nil {
			return fmt.Errorf("register command %s: %w", cmd.Name, err)
		}
		b.registered = append(b.registered, created)
	}

	slog.Info("slash commands registered", "count", len(b.registered), "guild", b.guildID)
	return nil
}

// Close disconnects from the gateway.
func (b *Bot) Close() error {
	return b.session.Close()
}

// handleInteraction dispatches slash commands to their handlers.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	var err error
	switch data.Name {
	case "journey":
		err = b.handleJourney(s, i, data)
	case "roll":
		err = b.handleRoll(s, i, data)
	case "boattest":
		err = b.handleBoatTest(s, i, data)
	case "encounter":
		err = b.handleEncounter(s, i)
	default:
		return
	}

	if err != nil {
		slog.Error("command failed", "command", data.Name, "error", err)
		b.replyError(s, i, err)
	}
}

// replyError renders an error to the invoking user. Typed journey errors
// get specific wording; anything else is reported as an internal fault.
func (b *Bot) replyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	content := userMessage(err)
	respErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if respErr != nil {
		slog.Error("error reply failed", "error", respErr)
	}
}
