package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/devmofizur/ticketbot/cmd/bot/monitoring"
	"github.com/devmofizur/ticketbot/pkg/logging"
	"github.com/devmofizur/ticketbot/pkg/messages"
	"github.com/devmofizur/ticketbot/pkg/request"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// commandProcessor handles a single slash command or button interaction.
type commandProcessor func(a IApp, i *discordgo.InteractionCreate) error

type Controller func(w http.ResponseWriter, r *http.Request)

func middlewareHttp(handler Controller, a IApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		cw := request.NewClientWriter(w)

		// Recover from any panics that occur in the handler.
		defer func() {
			if rec := recover(); rec != nil {
				a.Log().Error("Panic in handler",
					slog.String(logging.KeyError, fmt.Sprintf("%v", rec)),
					slog.String("stack", string(debug.Stack())),
				)
				cw.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(cw).Encode(request.NewMessage(request.ErrInternalServer.Error())); err != nil {
					a.Log().Error("Error encoding response", slog.String(logging.KeyError, err.Error()))
				}
			}
		}()

		var path string
		route := mux.CurrentRoute(r)
		if route != nil { // The route may be nil if the request is not routed.
			var err error
			path, err = route.GetPathTemplate()
			if err != nil {
				// An error here is only returned if the route does not define a path.
				a.Log().Error("Error getting path template", slog.String(logging.KeyError, err.Error()))
				path = r.URL.Path // If the route does not define a path, use the URL path.
			}
		} else {
			path = r.URL.Path // If the route is nil, use the URL path.
		}

		defer func() {
			// Run the deferred function after the request has been handled, as the status code will not be available until then.
			monitoring.HttpTotalRequests.WithLabelValues(path, r.Method, fmt.Sprintf("%d", cw.StatusCode())).Inc()
			monitoring.HttpRequestDuration.WithLabelValues(path, r.Method, fmt.Sprintf("%d", cw.StatusCode())).Observe(time.Since(now).Seconds())
		}()

		handler(cw, r)
	}
}

var (
	limitersMu   sync.Mutex
	userLimiters = make(map[string]*rate.Limiter)
)

// userLimiter returns the rate limiter for a user, creating it on first
// sight. Three interactions per second absorbs a double click on a button
// without letting anyone hammer the lifecycle.
func userLimiter(userID string) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	l, ok := userLimiters[userID]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Second), 3)
		userLimiters[userID] = l
	}
	return l
}

// interactionHandler dispatches interaction create events to the registered
// processor: slash commands by command name, buttons by custom ID.
func interactionHandler(a IApp, slashProcessors, buttonProcessors map[string]commandProcessor) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		var (
			name       string
			processors map[string]commandProcessor
		)
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			name = i.ApplicationCommandData().Name
			processors = slashProcessors
		case discordgo.InteractionMessageComponent:
			name = i.MessageComponentData().CustomID
			processors = buttonProcessors
		default:
			return
		}

		a.Log().Debug("Handling interaction " + name)

		// Interactions from DMs carry no member.
		if i.Member == nil || i.Member.User == nil {
			if err := respondEphemeral(a, i, messages.GuildOnly); err != nil {
				a.Log().Error("Error responding to interaction", slog.String(logging.KeyError, err.Error()))
			}
			return
		}

		if !userLimiter(i.Member.User.ID).Allow() {
			if err := respondEphemeral(a, i, messages.RateLimited); err != nil {
				a.Log().Error("Error responding to interaction", slog.String(logging.KeyError, err.Error()))
			}
			return
		}

		processor, ok := processors[name]
		if !ok {
			a.Log().Error("No processor found for interaction", slog.String("interaction", name))
			if err := respondError(a, i); err != nil {
				a.Log().Error("Error responding to interaction", slog.String(logging.KeyError, err.Error()))
			}
			return
		}

		t := prometheus.NewTimer(monitoring.DiscordCommandDuration.WithLabelValues(name))
		defer t.ObserveDuration()

		if err := processor(a, i); err != nil {
			a.Log().Error(fmt.Sprintf("Error processing interaction %s", name),
				slog.String(logging.KeyError, err.Error()))

			if err := respondError(a, i); err != nil {
				a.Log().Error("Error responding to interaction", slog.String(logging.KeyError, err.Error()))
			}
		}
	}
}
