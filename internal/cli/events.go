package cli

import (
	"go.uber.org/zap"

	"colorsearch/internal/eventbus"
)

// subscribeLogging records search and config events in the log file
func subscribeLogging(bus eventbus.EventBus, logger *zap.Logger) {
	log := logger.Named("events")

	bus.Subscribe(eventbus.EventSearchSubmitted, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchSubmittedEvent)
		log.Debug("search submitted",
			zap.Uint64("request_id", ev.RequestID),
			zap.String("query", ev.Query),
		)
	})

	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchCompletedEvent)
		log.Info("search completed",
			zap.Uint64("request_id", ev.RequestID),
			zap.String("query", ev.Query),
			zap.Int("count", ev.Count),
			zap.Duration("elapsed", ev.Elapsed),
		)
	})

	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchFailedEvent)
		log.Warn("search failed",
			zap.Uint64("request_id", ev.RequestID),
			zap.String("query", ev.Query),
			zap.String("error", ev.Message),
			zap.Duration("elapsed", ev.Elapsed),
		)
	})

	bus.Subscribe(eventbus.EventSearchDiscarded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchDiscardedEvent)
		log.Debug("stale response discarded",
			zap.Uint64("request_id", ev.RequestID),
			zap.String("query", ev.Query),
		)
	})

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ConfigLoadedEvent)
		log.Info("config loaded", zap.String("path", ev.Path), zap.String("base_url", ev.BaseURL))
	})

	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ConfigSavedEvent)
		log.Info("config saved", zap.String("path", ev.Path))
	})
}
