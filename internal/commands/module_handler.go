package commands

import (
	"context"
	"errors"
	"time"

	"slashbot/internal/commands/modules/help"
	"slashbot/internal/commands/modules/ping"
	"slashbot/internal/commands/types"
	"slashbot/internal/config"
	"slashbot/internal/metrics"
	"slashbot/internal/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
)

const (
	// responseWindow is how long Discord waits for the initial interaction response
	responseWindow = 3 * time.Second
	// minResponseBudget keeps a skewed local clock from expiring invocations on arrival
	minResponseBudget = time.Second
)

// ModuleHandler manages command modules and routes interactions.
// Its command map is the registry handed to every invocation.
type ModuleHandler struct {
	commands map[string]*types.Command
	config   *config.Config
	deps     *types.Dependencies
}

type namedModule struct {
	name   string
	module types.CommandModule
}

// NewModuleHandler creates a new module-based command handler
func NewModuleHandler(cfg *config.Config) *ModuleHandler {
	deps := &types.Dependencies{Config: cfg}
	return newModuleHandler(cfg, deps,
		namedModule{"help", help.New(deps)},
		namedModule{"ping", ping.New(deps)},
	)
}

func newModuleHandler(cfg *config.Config, deps *types.Dependencies, modules ...namedModule) *ModuleHandler {
	h := &ModuleHandler{
		commands: make(map[string]*types.Command),
		config:   cfg,
		deps:     deps,
	}

	for _, m := range modules {
		registered := make(map[string]*types.Command)
		m.module.Register(registered, h.deps)
		for name, cmd := range registered {
			if _, exists := h.commands[name]; exists {
				h.config.Logger.Warnf("Module %s overrides command %s", m.name, name)
			}
			h.commands[name] = cmd
		}
	}

	return h
}

// Commands implements types.Registry
func (h *ModuleHandler) Commands() []*types.Command {
	cmds := make([]*types.Command, 0, len(h.commands))
	for _, c := range h.commands {
		cmds = append(cmds, c)
	}
	return cmds
}

// RegisterCommands registers all slash commands with Discord.
// An empty guildID registers them globally.
func (h *ModuleHandler) RegisterCommands(s CommandSession, appID, guildID string) error {
	existingCommands, err := s.ApplicationCommands(appID, guildID)
	if err != nil {
		h.config.Logger.Warnf("Error fetching existing commands: %v", err)
		return err
	}

	existingByName := make(map[string]*discordgo.ApplicationCommand)
	for _, ec := range existingCommands {
		existingByName[ec.Name] = ec
	}

	for _, c := range h.commands {
		if existing := existingByName[c.Name()]; existing != nil {
			cmd, err := s.ApplicationCommandEdit(appID, guildID, existing.ID, c.ApplicationCommand)
			if err != nil {
				return err
			}
			c.ApplicationCommand.ID = cmd.ID
			h.config.Logger.Infof("Updated command: %s", cmd.Name)
		} else {
			cmd, err := s.ApplicationCommandCreate(appID, guildID, c.ApplicationCommand)
			if err != nil {
				return err
			}
			c.ApplicationCommand.ID = cmd.ID
			h.config.Logger.Infof("Registered command: %s", cmd.Name)
		}
	}

	return nil
}

// UnregisterCommands removes this handler's commands from Discord
func (h *ModuleHandler) UnregisterCommands(s CommandSession, appID, guildID string) {
	existingCommands, err := s.ApplicationCommands(appID, guildID)
	if err != nil {
		h.config.Logger.Warnf("Error fetching existing commands: %v", err)
		return
	}

	for _, existingCmd := range existingCommands {
		if _, exists := h.commands[existingCmd.Name]; !exists {
			continue
		}
		if err := s.ApplicationCommandDelete(appID, guildID, existingCmd.ID); err != nil {
			h.config.Logger.Warnf("Error deleting command %s: %v", existingCmd.Name, err)
		} else {
			h.config.Logger.Infof("Unregistered command: %s", existingCmd.Name)
		}
	}
}

// HandleInteraction routes slash command interactions to appropriate handlers
func (h *ModuleHandler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	_ = h.dispatch(i, &sessionReply{s: s, interaction: i.Interaction}, SessionLatency{Session: s}, s)
}

// dispatch runs the named command once. Handler errors are logged, counted and
// mirrored to the log channel, then returned for tests; nothing is retried.
func (h *ModuleHandler) dispatch(i *discordgo.InteractionCreate, reply types.ReplyChannel, latency types.LatencySource, logSender utils.ChannelEmbedSender) error {
	name := i.ApplicationCommandData().Name
	cmd, ok := h.commands[name]
	if !ok {
		h.config.Logger.Warn("No handler found for command", "command", name)
		return nil
	}

	ctx, cancel := context.WithDeadline(context.Background(), responseDeadline(i.ID, time.Now()))
	defer cancel()

	inv := &types.Invocation{
		Interaction: i,
		Command:     cmd,
		Registry:    h,
		Latency:     latency,
		Reply:       reply,
	}

	metrics.CommandsInvoked.WithLabelValues(name).Inc()
	start := time.Now()
	err := cmd.HandlerFunc(ctx, inv)
	metrics.CommandDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err == nil {
		h.config.Logger.Debug("Command served", "command", name, "took", time.Since(start))
		return nil
	}

	var deliveryErr *types.ReplyDeliveryError
	if errors.As(err, &deliveryErr) {
		metrics.ReplyDeliveryFailures.WithLabelValues(name).Inc()
	}

	userID := ""
	if u := inv.Invoker(); u != nil {
		userID = u.ID
	}
	h.config.Logger.Error("Command failed", "command", name, "user", userID, "err", err)

	if logErr := utils.LogToChannel(h.config, logSender, "Command failed", err.Error()); logErr != nil && !errors.Is(logErr, utils.ErrNoLogChannel) {
		h.config.Logger.Warnf("Failed to mirror command failure to log channel: %v", logErr)
	}

	return err
}

// responseDeadline derives the invocation deadline from the interaction's creation
// time, bounded to [now+minResponseBudget, now+responseWindow].
func responseDeadline(interactionID string, now time.Time) time.Time {
	latest := now.Add(responseWindow)

	id, err := snowflake.Parse(interactionID)
	if err != nil {
		return latest
	}

	deadline := id.Time().Add(responseWindow)
	if earliest := now.Add(minResponseBudget); deadline.Before(earliest) {
		return earliest
	}
	if deadline.After(latest) {
		return latest
	}
	return deadline
}
