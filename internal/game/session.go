package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Battleship/internal/game/core"
	"github.com/mitchelldurbincs/Battleship/internal/game/events"
	"github.com/mitchelldurbincs/Battleship/internal/game/fleet"
	"github.com/mitchelldurbincs/Battleship/internal/game/rules"
	"github.com/mitchelldurbincs/Battleship/internal/game/states"
)

// Session runs rounds of human vs computer battleship. It owns both boards
// and the human's fleet. A Session is not safe for concurrent use; the
// shared Tally is.
type Session struct {
	config       GameConfig
	eventBus     *events.EventBus
	stateMachine *states.StateMachine
	gameContext  *states.GameContext
	placer       *fleet.Placer
	opponent     Opponent
	winCondition *rules.WinConditionChecker
	tally        *Tally

	gameID        string
	human         *core.Board
	computer      *core.Board
	fleet         *fleet.Fleet
	orientation   core.Orientation
	selected      int // 0 when no size is selected
	humanShots    int
	computerShots int
}

// round is the per-round state built before it replaces the current one
type round struct {
	human    *core.Board
	computer *core.Board
	fleet    *fleet.Fleet
	placed   []core.Placement
}

// Preview is the answer to "what would placing the selected ship here do"
type Preview struct {
	Placement core.Placement
	Cells     []core.Coordinate
	Valid     bool
	// Reason is nil when Valid
	Reason error
}

// prepareRound builds fresh boards and places the computer fleet. Nothing on
// the session changes until applyRound.
func (s *Session) prepareRound() (*round, error) {
	humanFleet, err := fleet.New(s.config.Fleet)
	if err != nil {
		return nil, err
	}
	computerFleet := humanFleet.Clone()

	computer := core.NewBoard(s.config.BoardSize)
	placed, err := s.placer.PlaceFleet(computer, computerFleet)
	if err != nil {
		return nil, err
	}

	return &round{
		human:    core.NewBoard(s.config.BoardSize),
		computer: computer,
		fleet:    humanFleet,
		placed:   placed,
	}, nil
}

func (s *Session) applyRound(gameID string, r *round) {
	s.gameID = gameID
	s.human = r.human
	s.computer = r.computer
	s.fleet = r.fleet
	s.orientation = core.Vertical
	s.selected = 0
	s.humanShots = 0
	s.computerShots = 0

	s.eventBus.Publish(events.NewRoundStartedEvent(gameID, s.gameContext.Round, s.config.BoardSize, r.fleet.Ships()))
	s.eventBus.Publish(events.NewFleetPlacedEvent(gameID, core.SideComputer, len(r.placed), r.computer.Count(core.CellShip)))
}

func (s *Session) logger() *zerolog.Logger {
	return &s.gameContext.Logger
}

func (s *Session) reject(action string, err error) (Outcome, error) {
	s.logger().Debug().Str("action", action).Err(err).Msg("Command rejected")
	s.eventBus.Publish(events.NewActionRejectedEvent(s.gameID, action, err.Error()))
	return rejected(err), err
}

// requirePhase rejects the command unless allowed accepts the current phase
func (s *Session) requirePhase(allowed func(states.GamePhase) bool) error {
	if current := s.Phase(); !allowed(current) {
		return fmt.Errorf("%w: %s", ErrWrongPhase, current)
	}
	return nil
}

// internalError reports a failure after part of the command already took
// effect. It is not a rejection: state has changed.
func (s *Session) internalError(outcome Outcome, action string, err error) (Outcome, error) {
	s.logger().Error().Str("action", action).Err(err).Msg("Command failed after taking effect")
	outcome.Result = ResultError
	outcome.Status = strings.TrimSpace(shotStatus(outcome.Shots) + " " + err.Error())
	return outcome, err
}

// SelectShipSize chooses the length of the next ship to place.
func (s *Session) SelectShipSize(size int) (Outcome, error) {
	if err := s.requirePhase(states.GamePhase.CanPlaceShips); err != nil {
		return s.reject("select", err)
	}
	if s.fleet.Remaining(size) == 0 {
		return s.reject("select", fmt.Errorf("size %d: %w", size, fleet.ErrNoShipsRemaining))
	}

	s.selected = size
	return Outcome{
		Result: ResultOK,
		Status: fmt.Sprintf("Selected %d-cell ship (%d left)", size, s.fleet.Remaining(size)),
	}, nil
}

// ToggleOrientation flips between vertical and horizontal placement.
func (s *Session) ToggleOrientation() (Outcome, error) {
	if err := s.requirePhase(states.GamePhase.CanPlaceShips); err != nil {
		return s.reject("rotate", err)
	}

	s.orientation = s.orientation.Toggle()
	return Outcome{
		Result: ResultOK,
		Status: fmt.Sprintf("Orientation: %s", s.orientation),
	}, nil
}

// PreviewAt reports the cells the selected ship would cover with its origin
// at (row, col) and whether that placement is legal. It never changes state.
func (s *Session) PreviewAt(row, col int) (Preview, error) {
	if err := s.requirePhase(states.GamePhase.CanPlaceShips); err != nil {
		return Preview{}, err
	}
	if s.selected == 0 {
		return Preview{}, ErrNoShipSelected
	}

	p := core.NewPlacement(row, col, s.selected, s.orientation)
	reason := fleet.Validate(s.human, p)
	return Preview{
		Placement: p,
		Cells:     p.Cells(),
		Valid:     reason == nil,
		Reason:    reason,
	}, nil
}

// PlaceAt places the selected ship with its origin at (row, col).
func (s *Session) PlaceAt(row, col int) (Outcome, error) {
	if err := s.requirePhase(states.GamePhase.CanPlaceShips); err != nil {
		return s.reject("place", err)
	}
	if s.selected == 0 {
		return s.reject("place", ErrNoShipSelected)
	}

	p := core.NewPlacement(row, col, s.selected, s.orientation)
	if err := s.human.PlaceShip(p); err != nil {
		return s.reject("place", err)
	}
	if err := s.fleet.Take(p.Length); err != nil {
		// Unreachable: selection is only accepted while ships remain
		return s.reject("place", err)
	}
	s.selected = 0

	s.eventBus.Publish(events.NewShipPlacedEvent(s.gameID, core.SideHuman, p, s.fleet.Ships()))

	status := fmt.Sprintf("Placed %d-cell ship at %s (%s)", p.Length, p.Origin.Label(), p.Orientation)
	if s.fleetComplete() {
		status += "; all ships placed"
	}
	return Outcome{Result: ResultOK, Status: status}, nil
}

// AutoPlace places every ship still waiting in the human fleet at random.
func (s *Session) AutoPlace() (Outcome, error) {
	if err := s.requirePhase(states.GamePhase.CanPlaceShips); err != nil {
		return s.reject("auto", err)
	}
	if s.fleet.Done() {
		return s.reject("auto", fmt.Errorf("fleet: %w", fleet.ErrNoShipsRemaining))
	}

	placed, err := s.placer.PlaceFleet(s.human, s.fleet)
	if err != nil {
		return s.reject("auto", err)
	}
	s.selected = 0

	for _, p := range placed {
		s.eventBus.Publish(events.NewShipPlacedEvent(s.gameID, core.SideHuman, p, s.fleet.Ships()))
	}
	s.fleetComplete()

	return Outcome{
		Result: ResultOK,
		Status: fmt.Sprintf("Placed %d ships at random; all ships placed", len(placed)),
	}, nil
}

// fleetComplete marks the fleet ready once the last ship is down.
func (s *Session) fleetComplete() bool {
	if !s.fleet.Done() {
		return false
	}
	if !s.gameContext.FleetReady {
		s.gameContext.FleetReady = true
		s.eventBus.Publish(events.NewFleetPlacedEvent(s.gameID, core.SideHuman, s.totalShips(), s.human.Count(core.CellShip)))
	}
	return true
}

// StartGame begins the battle once every human ship is placed.
func (s *Session) StartGame() (Outcome, error) {
	if err := s.requirePhase(states.GamePhase.CanPlaceShips); err != nil {
		return s.reject("start", err)
	}
	if !s.fleet.Done() {
		return s.reject("start", fmt.Errorf("%w: %d ships still to place", ErrWrongPhase, s.fleet.Ships()))
	}

	if err := s.stateMachine.TransitionTo(states.PhaseActive, "fleet placed"); err != nil {
		return s.reject("start", err)
	}
	s.eventBus.Publish(events.NewBattleStartedEvent(s.gameID))

	return Outcome{Result: ResultOK, Status: "Battle started; fire at will"}, nil
}

// ShootAt fires the human's shot at (row, col) on the computer board and,
// unless that sinks the last computer ship, answers with the computer's shot.
func (s *Session) ShootAt(row, col int) (Outcome, error) {
	if err := s.requirePhase(states.GamePhase.CanShoot); err != nil {
		return s.reject("fire", err)
	}

	target := core.NewCoordinate(row, col)
	result, err := s.computer.RecordShot(target)
	if err != nil {
		return s.reject("fire", err)
	}
	s.humanShots++
	s.eventBus.Publish(events.NewShotFiredEvent(s.gameID, core.SideHuman, target, result, s.humanShots))

	outcome := Outcome{
		Result: ResultOK,
		Shots:  []ShotReport{{Shooter: core.SideHuman, Target: target, Result: result}},
	}

	if over, winner := s.winCondition.CheckAfterShot(core.SideHuman, s.computer); over {
		return s.finish(outcome, winner)
	}

	// Both fleets are afloat here so an unshot cell always exists. A failure
	// is an internal error, not a rejection.
	reply, err := s.opponent.ChooseTarget(s.human)
	if err != nil {
		return s.internalError(outcome, "fire", fmt.Errorf("computer reply: %w", err))
	}
	replyResult, err := s.human.RecordShot(reply)
	if err != nil {
		return s.internalError(outcome, "fire", fmt.Errorf("computer reply at %s: %w", reply.Label(), err))
	}
	s.computerShots++
	s.eventBus.Publish(events.NewShotFiredEvent(s.gameID, core.SideComputer, reply, replyResult, s.computerShots))
	outcome.Shots = append(outcome.Shots, ShotReport{Shooter: core.SideComputer, Target: reply, Result: replyResult})

	if over, winner := s.winCondition.CheckAfterShot(core.SideComputer, s.human); over {
		return s.finish(outcome, winner)
	}

	outcome.Status = shotStatus(outcome.Shots)
	return outcome, nil
}

// finish moves the round to PhaseOver and credits the winner. PhaseOver is
// terminal, so a round is credited at most once.
func (s *Session) finish(outcome Outcome, winner core.Side) (Outcome, error) {
	s.gameContext.Winner = winner
	if err := s.stateMachine.TransitionTo(states.PhaseOver, fmt.Sprintf("%s fleet sunk", winner.Opponent())); err != nil {
		return s.internalError(outcome, "fire", err)
	}

	s.tally.Record(winner)
	tally := s.tally.Snapshot()
	s.eventBus.Publish(events.NewGameEndedEvent(
		s.gameID,
		winner,
		s.gameContext.GetElapsedTime(),
		s.humanShots,
		s.computerShots,
		tally.Human,
		tally.Computer,
	))

	outcome.Winner = winner
	if winner == core.SideHuman {
		outcome.Status = shotStatus(outcome.Shots) + " You sank the whole enemy fleet. You win!"
	} else {
		outcome.Status = shotStatus(outcome.Shots) + " Your fleet is sunk. The computer wins."
	}
	return outcome, nil
}

// Restart abandons the current round, whatever its phase, and starts a new
// one with fresh boards, fleet and computer placement. The tally is kept.
func (s *Session) Restart() (Outcome, error) {
	r, err := s.prepareRound()
	if err != nil {
		return s.reject("restart", err)
	}

	gameID := uuid.NewString()
	if err := s.stateMachine.Reset(gameID, "restart"); err != nil {
		return s.reject("restart", err)
	}
	s.applyRound(gameID, r)

	return Outcome{
		Result: ResultOK,
		Status: fmt.Sprintf("Round %d: place your fleet", s.gameContext.Round),
	}, nil
}

// ID returns the identifier of the current round.
func (s *Session) ID() string { return s.gameID }

// Round returns the 1-based number of the current round.
func (s *Session) Round() int { return s.gameContext.Round }

func (s *Session) Phase() states.GamePhase { return s.stateMachine.CurrentPhase() }

func (s *Session) Orientation() core.Orientation { return s.orientation }

// SelectedSize returns the selected ship length, if any.
func (s *Session) SelectedSize() (int, bool) { return s.selected, s.selected != 0 }

// FleetRemaining returns ship length -> count still to place.
func (s *Session) FleetRemaining() map[int]int { return s.fleet.Counts() }

// FleetLengths lists every ship length in the fleet, longest first, whether
// or not any remain.
func (s *Session) FleetLengths() []int {
	lengths := make([]int, 0, len(s.config.Fleet))
	for length := range s.config.Fleet {
		lengths = append(lengths, length)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	return lengths
}

// Winner is SideNone until the round is over.
func (s *Session) Winner() core.Side { return s.gameContext.Winner }

func (s *Session) Tally() TallySnapshot { return s.tally.Snapshot() }

// Shots returns the number of shots fired by each side this round.
func (s *Session) Shots() (human, computer int) { return s.humanShots, s.computerShots }

// HumanBoard is the human's own board, ships included.
func (s *Session) HumanBoard() [][]core.CellState { return s.human.Snapshot() }

// ComputerBoard is the enemy board as the human sees it: unshot ships are
// reported as empty water.
func (s *Session) ComputerBoard() [][]core.CellState { return s.computer.MaskedSnapshot() }

func (s *Session) totalShips() int {
	n := 0
	for _, count := range s.config.Fleet {
		n += count
	}
	return n
}

func (s *Session) BoardSize() int { return s.config.BoardSize }

// Events exposes the bus so front ends can follow the session.
func (s *Session) Events() events.Bus { return s.eventBus }

func shotStatus(shots []ShotReport) string {
	status := ""
	for i, shot := range shots {
		if i > 0 {
			status += " "
		}
		status += shot.String() + "."
	}
	return status
}
