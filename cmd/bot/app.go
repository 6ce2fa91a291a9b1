package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/Jacobbrewer1/discordgo"
	botcfg "github.com/devmofizur/ticketbot/cmd/bot/config"
	"github.com/devmofizur/ticketbot/cmd/bot/monitoring"
	"github.com/devmofizur/ticketbot/pkg/dataaccess"
	"github.com/devmofizur/ticketbot/pkg/logging"
	"github.com/devmofizur/ticketbot/pkg/request"
	"github.com/devmofizur/ticketbot/pkg/ticket"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// PathMetrics is the path for metrics.
	PathMetrics = "/metrics"

	// PathHealth is the path for the health check.
	PathHealth = "/health"
)

// IApp is the interface for the application.
type IApp interface {
	// Session returns the discord session.
	Session() *discordgo.Session

	// Log returns the application logger.
	Log() *slog.Logger

	// ConfigDal returns the guild configuration data access layer.
	ConfigDal() dataaccess.ConfigDal

	// CounterDal returns the ticket counter data access layer.
	CounterDal() dataaccess.CounterDal

	// Lifecycle returns the ticket lifecycle.
	Lifecycle() *ticket.Lifecycle
}

type App struct {
	// l is the logger.
	l *slog.Logger

	// r is the router for the application.
	r *mux.Router

	// svr is the server for the application.
	svr *http.Server

	// s is the discord session.
	s *discordgo.Session

	// lifecycle is the ticket lifecycle driven by the interaction handlers.
	lifecycle *ticket.Lifecycle

	// eventNotifier is the channel for notifying of events.
	eventNotifier chan any

	// registeredCommands records the command IDs created per guild so they
	// can be removed again on shutdown.
	registeredCommands map[string][]string
}

// slashCommands are the application commands registered in every guild.
var slashCommands = []*discordgo.ApplicationCommand{
	setupCmd,
	categoryCmd,
	ticketMenuCmd,
	closeCmd,
	deleteCmd,
}

// NewApp creates a new instance of App.
func NewApp(l *slog.Logger, r *mux.Router) *App {
	return &App{
		l:                  l,
		r:                  r,
		registeredCommands: make(map[string][]string),
	}
}

func (a *App) Run() error {
	// Register bot.
	if err := a.RegisterBot(); err != nil {
		return fmt.Errorf("error registering bot: %w", err)
	}

	a.s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		a.l.Info(fmt.Sprintf("Logged in as %s#%s", r.User.Username, r.User.Discriminator))
	})

	// Register slash commands.
	if err := a.registerSlashCommands(); err != nil {
		return fmt.Errorf("error registering slash commands: %w", err)
	}

	if err := a.RegisterDiscordHandlers(); err != nil {
		return fmt.Errorf("error registering discord handlers: %w", err)
	}

	// Start event listener.
	go a.eventListener()

	// Open websocket.
	if err := a.s.Open(); err != nil {
		return fmt.Errorf("error opening connection to Discord: %w", err)
	}

	a.l.Info("Bot is now running.")

	a.generateServer()
	a.setupRoutes()
	a.runServer()

	// Register listener for shutdown signal.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	// Process shutdown signal.
	for sig := range c {
		a.l.Info("Received shutdown signal", slog.String("signal", sig.String()))
		if err := a.ShutdownHook(); err != nil {
			a.l.Error("Error shutting down application", slog.String(logging.KeyError, err.Error()))
		}
		os.Exit(0)
	}
	return nil
}

func (a *App) ShutdownHook() error {
	// Reset the total number of guilds to 0.
	monitoring.TotalDiscordGuilds.Set(0)

	// Unregister slash commands.
	if err := a.unregisterSlashCommands(); err != nil {
		return fmt.Errorf("error unregistering slash commands: %w", err)
	}

	// Close the connection to Discord.
	if err := a.s.Close(); err != nil {
		return fmt.Errorf("error closing connection to Discord: %w", err)
	}
	return nil
}

func (a *App) RegisterBot() error {
	// Default the number of guilds to 0.
	monitoring.TotalDiscordGuilds.Set(0)

	dg, err := discordgo.New("Bot " + botcfg.BotToken)
	if err != nil {
		return fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsAll)

	if a.eventNotifier == nil {
		// Create event notifier. This is used to runServer events. It is buffered to prevent blocking.
		a.eventNotifier = make(chan any, 100)
	}

	dg.SetEventNotifier(a.eventNotifier)

	a.s = dg
	a.lifecycle = ticket.NewLifecycle(a.l, newSessionGateway(dg), a.ConfigDal(), a.CounterDal())
	return nil
}

func (a *App) runServer() {
	go func() {
		a.l.Info("Starting monitoring server")
		if err := a.svr.ListenAndServe(); err != nil {
			a.l.Error("Error starting monitoring server", slog.String(logging.KeyError, err.Error()))
			a.l.Warn("Monitoring server will not be available")
		}
	}()
}

func (a *App) setupRoutes() {
	// PathMetrics is the path for metrics.
	a.r.HandleFunc(PathMetrics, promhttp.Handler().ServeHTTP).Methods(http.MethodGet)

	// PathHealth is the path for health check.
	a.r.HandleFunc(PathHealth, middlewareHttp(a.healthCheck(), a)).Methods(http.MethodGet)

	// NotFoundHandler is the handler for 404.
	a.r.NotFoundHandler = request.NotFoundHandler(a.l)

	// MethodNotAllowedHandler is the handler for 405.
	a.r.MethodNotAllowedHandler = request.MethodNotAllowedHandler(a.l)
}

func (a *App) generateServer() {
	a.svr = &http.Server{
		Addr:    ":" + botcfg.MonitoringPort,
		Handler: a.r,
	}
}

func (a *App) GetJoinedGuilds() ([]*discordgo.UserGuild, error) {
	guilds, err := a.s.UserGuilds(0, "", "")
	if err != nil {
		return nil, fmt.Errorf("error getting guilds: %w", err)
	}
	return guilds, nil
}

func (a *App) RegisterDiscordHandlers() error {
	// Bot joined guild.
	a.s.AddHandler(guildJoinedHandler(a))

	// Bot left guild.
	a.s.AddHandler(guildLeaveHandler(a))

	// Interaction create handler.
	a.s.AddHandler(interactionHandler(a,
		// Slash command processors.
		map[string]commandProcessor{
			SetupCmdName:      setupCmdProcessor,
			CategoryCmdName:   categoryCmdProcessor,
			TicketMenuCmdName: ticketMenuCmdProcessor,
			CloseCmdName:      closeTicketHandler,
			DeleteCmdName:     deleteTicketHandler,
		},
		// Button processors.
		map[string]commandProcessor{
			ticket.CreateButtonID: createTicketHandler,
			ticket.CloseButtonID:  closeTicketHandler,
			ticket.ReopenButtonID: reopenTicketHandler,
			ticket.DeleteButtonID: deleteTicketHandler,
		}))
	return nil
}

func (a *App) eventListener() {
	for e := range a.eventNotifier {
		switch t := e.(type) {
		case *discordgo.Event:
			if t.Type != "" {
				monitoring.TotalDiscordEvents.WithLabelValues(t.Type).Inc()
			} else {
				// If there is no type, then use the operation name.
				monitoring.TotalDiscordEvents.WithLabelValues(strings.ToUpper(t.Operation.String())).Inc()
			}
		default:
			a.l.Error("Unknown event type", slog.String("type", fmt.Sprintf("%T", e)))
			monitoring.TotalDiscordEvents.WithLabelValues("UNKNOWN").Inc()
		}
	}
}

func (a *App) registerSlashCommands() error {
	// Get all guilds the bot is in.
	guilds, err := a.GetJoinedGuilds()
	if err != nil {
		return fmt.Errorf("error getting guilds: %w", err)
	}

	// Register slash commands for each guild, recording the created IDs so
	// they can be unregistered on shutdown.
	for _, g := range guilds {
		for _, cmd := range slashCommands {
			created, err := a.Session().ApplicationCommandCreate(botcfg.ApplicationId, g.ID, cmd)
			if err != nil {
				return fmt.Errorf("error creating %s command for guild %s: %w", cmd.Name, g.ID, err)
			}
			a.registeredCommands[g.ID] = append(a.registeredCommands[g.ID], created.ID)
		}
	}
	return nil
}

func (a *App) unregisterSlashCommands() error {
	for guildID, cmdIDs := range a.registeredCommands {
		for _, cmdID := range cmdIDs {
			if err := a.s.ApplicationCommandDelete(botcfg.ApplicationId, guildID, cmdID); err != nil {
				return fmt.Errorf("error deleting command %s for guild %s: %w", cmdID, guildID, err)
			}
		}
	}
	return nil
}

func (a *App) Session() *discordgo.Session {
	return a.s
}

func (a *App) Log() *slog.Logger {
	return a.l
}

func (a *App) ConfigDal() dataaccess.ConfigDal {
	return dataaccess.NewConfigDal()
}

func (a *App) CounterDal() dataaccess.CounterDal {
	return dataaccess.NewCounterDal()
}

func (a *App) Lifecycle() *ticket.Lifecycle {
	return a.lifecycle
}
