package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/Battleship/internal/game/events"
)

// State represents a game state with lifecycle callbacks
type State interface {
	// Phase returns the GamePhase this state represents
	Phase() GamePhase

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state can be entered given the context
	Validate(ctx *GameContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

// StateMachine manages phase transitions for one session and keeps the
// history of the current round.
type StateMachine struct {
	mu             sync.RWMutex
	currentPhase   GamePhase
	states         map[GamePhase]State
	context        *GameContext
	history        []Transition
	maxHistorySize int
	eventBus       events.Publisher
}

// NewStateMachine creates a new state machine in PhasePlacing
func NewStateMachine(ctx *GameContext, eventBus events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase:   PhasePlacing,
		states:         make(map[GamePhase]State),
		context:        ctx,
		history:        make([]Transition, 0, 4),
		maxHistorySize: 100,
		eventBus:       eventBus,
	}

	sm.RegisterState(NewPlacingState())
	sm.RegisterState(NewActiveState())
	sm.RegisterState(NewOverState())

	return sm
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

// CurrentPhase returns the current game phase
func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo attempts to transition to the specified phase. The transition
// event is published after the lock is released so handlers may query the
// machine.
func (sm *StateMachine) TransitionTo(targetPhase GamePhase, reason string) error {
	event, err := sm.transition(targetPhase, reason)
	if err != nil {
		return err
	}
	sm.publish(event)
	return nil
}

func (sm *StateMachine) transition(targetPhase GamePhase, reason string) (events.Event, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.currentPhase.CanTransitionTo(targetPhase) {
		return nil, fmt.Errorf("invalid transition from %s to %s", sm.currentPhase, targetPhase)
	}

	targetState, ok := sm.states[targetPhase]
	if !ok {
		return nil, fmt.Errorf("no state implementation for phase %s", targetPhase)
	}

	if err := targetState.Validate(sm.context); err != nil {
		return nil, fmt.Errorf("target state validation failed: %w", err)
	}

	return sm.enter(targetState, reason)
}

// enter exits the current state and enters target. Callers hold sm.mu.
func (sm *StateMachine) enter(target State, reason string) (events.Event, error) {
	if current, ok := sm.states[sm.currentPhase]; ok {
		if err := current.Exit(sm.context); err != nil {
			// Continue with transition despite exit error
			sm.context.Logger.Error().
				Err(err).
				Str("from_phase", sm.currentPhase.String()).
				Str("to_phase", target.Phase().String()).
				Msg("Error exiting state")
		}
	}

	previousPhase := sm.currentPhase
	sm.currentPhase = target.Phase()

	if err := target.Enter(sm.context); err != nil {
		sm.currentPhase = previousPhase
		return nil, fmt.Errorf("failed to enter state %s: %w", target.Phase(), err)
	}

	sm.addToHistory(Transition{
		From:      previousPhase,
		To:        target.Phase(),
		Timestamp: time.Now(),
		Reason:    reason,
	})

	sm.context.Logger.Debug().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", target.Phase().String()).
		Str("reason", reason).
		Msg("State transition completed")

	return events.NewStateTransitionEvent(
		sm.context.GameID,
		previousPhase.String(),
		target.Phase().String(),
		reason,
	), nil
}

// publish must be called without sm.mu held
func (sm *StateMachine) publish(event events.Event) {
	if sm.eventBus != nil {
		sm.eventBus.Publish(event)
	}
}

// addToHistory adds a transition to the history, maintaining max size
func (sm *StateMachine) addToHistory(transition Transition) {
	sm.history = append(sm.history, transition)

	if len(sm.history) > sm.maxHistorySize {
		sm.history = sm.history[len(sm.history)-sm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase GamePhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}

// Reset starts a new round under gameID: the context is cleared, the round
// counter advances, the history is dropped and the machine re-enters
// PhasePlacing from whatever phase it was in.
func (sm *StateMachine) Reset(gameID, reason string) error {
	event, err := sm.reset(gameID, reason)
	if err != nil {
		return err
	}
	sm.publish(event)
	return nil
}

func (sm *StateMachine) reset(gameID, reason string) (events.Event, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	placing, ok := sm.states[PhasePlacing]
	if !ok {
		return nil, fmt.Errorf("no state implementation for phase %s", PhasePlacing)
	}

	if current, ok := sm.states[sm.currentPhase]; ok {
		if err := current.Exit(sm.context); err != nil {
			sm.context.Logger.Error().Err(err).Msg("Error exiting state on reset")
		}
	}

	from := sm.currentPhase
	sm.context.reset(gameID, sm.context.Round+1)
	sm.history = sm.history[:0]
	sm.currentPhase = PhasePlacing

	if err := placing.Enter(sm.context); err != nil {
		return nil, fmt.Errorf("failed to enter state %s: %w", PhasePlacing, err)
	}

	sm.context.Logger.Info().
		Str("from_phase", from.String()).
		Str("reason", reason).
		Msg("Round reset")

	return events.NewStateTransitionEvent(gameID, from.String(), PhasePlacing.String(), reason), nil
}
