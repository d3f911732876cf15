package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.RoundStartedEvent:
		logEvent.
			Int("round", e.Round).
			Int("board_size", e.BoardSize).
			Int("ships", e.Ships)

	case *events.ShipPlacedEvent:
		logEvent.
			Str("side", e.Side.String()).
			Str("origin", e.Placement.Origin.Label()).
			Int("length", e.Placement.Length).
			Str("orientation", e.Placement.Orientation.String()).
			Int("remaining", e.Remaining)

	case *events.FleetPlacedEvent:
		logEvent.
			Str("side", e.Side.String()).
			Int("ships", e.Ships).
			Int("cells", e.Cells)

	case *events.ShotFiredEvent:
		logEvent.
			Str("shooter", e.Shooter.String()).
			Str("target", e.Target.Label()).
			Str("result", e.Result.String()).
			Int("shot_no", e.ShotNo)

	case *events.ActionRejectedEvent:
		logEvent.
			Str("action", e.Action).
			Str("reason", e.Reason)

	case *events.GameEndedEvent:
		logEvent.
			Str("winner", e.Winner.String()).
			Dur("duration", e.Duration).
			Int("human_shots", e.HumanShots).
			Int("computer_shots", e.ComputerShots).
			Int("human_wins", e.HumanWins).
			Int("computer_wins", e.ComputerWins)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
