package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/game/events"
	"github.com/mitchelldurbincs/Battleship/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/Battleship/internal/game/fleet"
	"github.com/mitchelldurbincs/Battleship/internal/game/rules"
	"github.com/mitchelldurbincs/Battleship/internal/game/states"
)

// SessionInitializer handles wiring a session's components together
type SessionInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewSessionInitializer creates a new session initializer
func NewSessionInitializer(cfg GameConfig) *SessionInitializer {
	logger := cfg.Logger.With().Str("component", "GameSession").Logger()
	return &SessionInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates a session with the computer fleet already placed and
// the human fleet waiting to be placed.
func (si *SessionInitializer) Initialize(ctx context.Context) (*Session, error) {
	select {
	case <-ctx.Done():
		si.logger.Error().Err(ctx.Err()).Msg("Session creation cancelled before it started")
		return nil, ctx.Err()
	default:
	}

	si.config.setupDefaults()
	if err := si.config.validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	gameID := uuid.NewString()
	session := si.createSession(gameID)
	si.setupEventHandling(session)

	r, err := session.prepareRound()
	if err != nil {
		return nil, fmt.Errorf("computer fleet placement failed: %w", err)
	}
	session.applyRound(gameID, r)

	si.logger.Info().
		Str("game_id", gameID).
		Int("board_size", si.config.BoardSize).
		Int("ships", r.fleet.Ships()).
		Msg("Session created successfully")

	return session, nil
}

// NewSession is shorthand for NewSessionInitializer(cfg).Initialize(ctx).
func NewSession(ctx context.Context, cfg GameConfig) (*Session, error) {
	return NewSessionInitializer(cfg).Initialize(ctx)
}

func (si *SessionInitializer) createSession(gameID string) *Session {
	cfg := si.config

	eventBus := cfg.EventBus
	if eventBus == nil {
		eventBus = events.NewEventBus(si.logger)
	}

	gameContext := states.NewGameContext(gameID, si.logger)
	stateMachine := states.NewStateMachine(gameContext, eventBus)

	return &Session{
		config:       cfg,
		eventBus:     eventBus,
		stateMachine: stateMachine,
		gameContext:  gameContext,
		placer: fleet.NewPlacer(
			fleet.PlacerConfig{MaxAttempts: cfg.PlacementAttempts},
			cfg.Rng,
			si.logger,
		),
		opponent:     NewComputerOpponent(cfg.Rng, cfg.ShotAttempts, si.logger),
		winCondition: rules.NewWinConditionChecker(si.logger),
		tally:        cfg.Tally,
	}
}

func (si *SessionInitializer) setupEventHandling(s *Session) {
	if !si.config.LogEvents {
		return
	}
	logSub := subscribers.NewLoggerSubscriber("session_logger", si.config.Logger, zerolog.DebugLevel)
	logSub.SetEventFilter(si.config.EventTypes)
	logSub.SetDevMode(si.config.EventDetails)
	s.eventBus.Subscribe(logSub)
}
