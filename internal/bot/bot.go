package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"slashbot/internal/commands"
	"slashbot/internal/config"
	"slashbot/internal/metrics"
	"slashbot/internal/scheduler"
)

// Bot represents the Discord bot
type Bot struct {
	session              *discordgo.Session
	config               *config.Config
	commandModuleHandler *commands.ModuleHandler
	scheduler            *scheduler.Scheduler
	metricsServer        *metrics.Server
	ready                atomic.Bool // guards interaction handling until startup completes
}

// New creates a new Bot instance
func New(cfg *config.Config) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.GetBotToken())
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	bot := &Bot{
		session:              session,
		config:               cfg,
		commandModuleHandler: commands.NewModuleHandler(cfg),
		scheduler:            scheduler.NewScheduler(cfg),
	}

	// Slash commands need no privileged intents
	session.Identify.Intents = discordgo.IntentsGuilds

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onInteractionCreate)

	return bot, nil
}

// Start starts the bot and blocks until SIGINT or SIGTERM
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening Discord connection: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			b.config.Logger.Warn("error closing Discord session:", "err", err)
		}
	}()

	appID := b.session.State.User.ID
	guildID := b.config.GetGuildID()

	if err := b.commandModuleHandler.RegisterCommands(b.session, appID, guildID); err != nil {
		return fmt.Errorf("error registering commands: %w", err)
	}

	if err := b.scheduler.RegisterFunc("@hourly", "log-pruning", b.config.PruneOldLogFiles); err != nil {
		b.config.Logger.Errorf("Failed to register log pruning: %v", err)
	}
	b.scheduler.Start()
	defer b.scheduler.Stop()

	if addr := b.config.GetMetricsAddr(); addr != "" {
		b.metricsServer = metrics.NewServer(addr, b.config.Logger)
		b.metricsServer.Start()
		defer b.stopMetrics()
	}

	b.ready.Store(true)
	b.config.Logger.Info("Initialization complete; interactions enabled")
	b.config.Logger.Info("slashbot is now running. Press CTRL+C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	b.config.Logger.Info("Shutdown signal received")
	b.ready.Store(false)

	if b.config.GetUnregisterCommands() {
		b.commandModuleHandler.UnregisterCommands(b.session, appID, guildID)
	}

	return nil
}

func (b *Bot) stopMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.metricsServer.Shutdown(ctx); err != nil {
		b.config.Logger.Warnf("error stopping metrics server: %v", err)
	}
}

// onReady handles the ready event
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.config.Logger.Infof("Bot received ready signal! Logged in as: %s#%s", r.User.Username, r.User.Discriminator)
}

// onInteractionCreate handles slash command interactions
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.routeInteraction(s, i, func(i *discordgo.InteractionCreate) {
		b.commandModuleHandler.HandleInteraction(s, i)
	})
}

// routeInteraction answers interactions that arrive before startup finishes and
// forwards slash commands to handle once the bot is ready.
func (b *Bot) routeInteraction(r responder, i *discordgo.InteractionCreate, handle func(*discordgo.InteractionCreate)) {
	if !b.ready.Load() {
		var resp *discordgo.InteractionResponse
		switch i.Type {
		case discordgo.InteractionApplicationCommandAutocomplete:
			// Autocomplete must return an autocomplete result type, empty list is fine while starting up.
			resp = &discordgo.InteractionResponse{
				Type: discordgo.InteractionApplicationCommandAutocompleteResult,
				Data: &discordgo.InteractionResponseData{Choices: []*discordgo.ApplicationCommandOptionChoice{}},
			}
		case discordgo.InteractionPing:
			resp = &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}
		default:
			resp = &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: "⏳ Bot is starting up, try again in a few seconds.",
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			}
		}
		if err := r.InteractionRespond(i.Interaction, resp); err != nil {
			b.config.Logger.Warnf("Failed to answer interaction during startup: %v", err)
		}
		return
	}

	if i.Type == discordgo.InteractionApplicationCommand {
		handle(i)
	}
}

type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}
