package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"undercover/internal/domain"
)

// ErrSessionChanged is returned when a session was reset or left the phase
// while a generator request was running; the result is discarded.
var ErrSessionChanged = errors.New("session changed while the request was running")

// Materials supplies round materials and discussion prompts
type Materials interface {
	ForRound(ctx context.Context, req domain.MaterialsRequest) (domain.RoundMaterials, error)
	Hint(ctx context.Context, req domain.HintRequest) string
}

// ClientConnection represents a connected device
type ClientConnection interface {
	Send(event *domain.GameEvent) error
	GetClientID() string
	Close() error
}

// Options configures sessions created by the hub
type Options struct {
	Settings     domain.Settings
	RevealDelay  time.Duration
	TickInterval time.Duration
	Rand         domain.RandSource
}

// LoadingState reports which generator requests are in flight
type LoadingState struct {
	Round bool `json:"round"`
	Hint  bool `json:"hint"`
}

// Snapshot is the session view sent to clients
type Snapshot struct {
	SessionID string `json:"sessionId"`
	domain.View
	Loading LoadingState `json:"loading"`
}

// GameSession wraps a domain session so exactly one transition applies at a time,
// and drives the reveal delay, the countdown and asynchronous generator calls.
type GameSession struct {
	id        string
	session   *domain.Session
	materials Materials
	opts      Options
	mu        sync.Mutex
	logger    *slog.Logger

	createdAt  time.Time
	lastActive time.Time

	// Busy flags for generator calls, each owned by the epoch that raised it
	starting      bool
	startingEpoch uint64
	hinting       bool
	hintingEpoch  uint64

	// Timers
	revealTimer   *time.Timer
	countdownDone chan struct{}

	clients   map[string]ClientConnection
	clientsMu sync.RWMutex

	// Event channel for broadcasting
	events chan *domain.GameEvent
	done   chan struct{}
}

// NewGameSession creates a new game session
func NewGameSession(id string, materials Materials, opts Options, logger *slog.Logger) *GameSession {
	if opts.RevealDelay <= 0 {
		opts.RevealDelay = 2 * time.Second
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}

	now := time.Now()
	session := &GameSession{
		id:         id,
		session:    domain.NewSession(opts.Settings, opts.Rand),
		materials:  materials,
		opts:       opts,
		logger:     logger.With("sessionID", id),
		createdAt:  now,
		lastActive: now,
		clients:    make(map[string]ClientConnection),
		events:     make(chan *domain.GameEvent, 100),
		done:       make(chan struct{}),
	}

	go session.eventLoop()

	return session
}

// ID returns the session id
func (s *GameSession) ID() string {
	return s.id
}

// CreatedAt returns when the session was created
func (s *GameSession) CreatedAt() time.Time {
	return s.createdAt
}

// LastActive returns the time of the last applied transition
func (s *GameSession) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Phase returns the current phase
func (s *GameSession) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Phase
}

// RegisterClient registers a client connection
func (s *GameSession) RegisterClient(clientID string, client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[clientID] = client
}

// UnregisterClient removes a client connection
func (s *GameSession) UnregisterClient(clientID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, clientID)
}

// ClientCount returns the number of connected clients
func (s *GameSession) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Snapshot returns the current view
func (s *GameSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SelectMode chooses a mode and moves to setup
func (s *GameSession) SelectMode(mode domain.Mode) (Snapshot, error) {
	return s.apply(domain.CmdSelectMode{Mode: mode}, domain.EventStateChanged)
}

// BackToModes returns from setup to mode selection
func (s *GameSession) BackToModes() (Snapshot, error) {
	return s.applyUnlessStarting(domain.CmdBackToModes{})
}

// UpdateSetup changes setup fields; nothing changes if any field is invalid
func (s *GameSession) UpdateSetup(u domain.SetupUpdate) (Snapshot, error) {
	return s.applyUnlessStarting(domain.CmdUpdateSetup{Setup: u})
}

// Start validates setup and begins the round. Custom mode moves to word
// collection; other modes fetch materials with the lock released.
func (s *GameSession) Start(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if s.isStarting() {
		s.mu.Unlock()
		return Snapshot{}, domain.ErrBusy
	}

	step, err := s.session.Start()
	if err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}
	if step == domain.StepCollectCustomWords {
		defer s.mu.Unlock()
		s.afterTransition(domain.EventStateChanged, s.session.Epoch)
		return s.snapshotLocked(), nil
	}

	req := s.session.MaterialsRequest()
	epoch := s.session.Epoch
	s.starting, s.startingEpoch = true, epoch
	s.queueEvent(domain.NewEvent(domain.EventStateChanged, s.id, s.snapshotLocked()))
	s.mu.Unlock()

	s.logger.Debug("Fetching round materials", "mode", req.Mode, "category", req.Category, "difficulty", req.Difficulty)
	m, fetchErr := s.materials.ForRound(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startingEpoch == epoch {
		s.starting = false
	}

	if s.session.Epoch != epoch || s.session.Phase != domain.PhaseSetup {
		s.logger.Debug("Dropping round materials for a changed session")
		return s.snapshotLocked(), ErrSessionChanged
	}
	if fetchErr != nil {
		s.queueError(fetchErr)
		s.queueEvent(domain.NewEvent(domain.EventStateChanged, s.id, s.snapshotLocked()))
		return Snapshot{}, fetchErr
	}
	if err := s.session.InitializeRound(m); err != nil {
		s.queueError(err)
		return Snapshot{}, err
	}

	s.logger.Info("Round started", "mode", s.session.Mode, "players", s.session.PlayerCount)
	s.afterTransition(domain.EventRoundStarted, epoch)
	return s.snapshotLocked(), nil
}

// SubmitCustomWord records the current player's custom entry
func (s *GameSession) SubmitCustomWord(category, word string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	epoch := s.session.Epoch
	started, err := s.session.SubmitCustomWord(category, word)
	if err != nil {
		return Snapshot{}, err
	}

	eventType := domain.EventStateChanged
	if started {
		s.logger.Info("Custom round started", "players", s.session.PlayerCount)
		eventType = domain.EventRoundStarted
	}
	s.afterTransition(eventType, epoch)
	return s.snapshotLocked(), nil
}

// ConfirmPlayer leaves the pass screen for the reveal screen
func (s *GameSession) ConfirmPlayer() (Snapshot, error) {
	return s.apply(domain.CmdConfirmPlayer{}, domain.EventStateChanged)
}

// TapReveal starts decrypting the current card; it is revealed after the reveal delay
func (s *GameSession) TapReveal() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	generation, err := s.session.BeginReveal()
	if err != nil {
		return Snapshot{}, err
	}

	s.stopRevealTimer()
	s.revealTimer = time.AfterFunc(s.opts.RevealDelay, func() {
		s.completeReveal(generation)
	})

	s.afterTransition(domain.EventRevealStarted, s.session.Epoch)
	return s.snapshotLocked(), nil
}

// completeReveal runs when the reveal delay elapses
func (s *GameSession) completeReveal(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.CompleteReveal(generation) {
		s.logger.Debug("Ignoring stale reveal", "generation", generation)
		return
	}
	s.afterTransition(domain.EventRoleRevealed, s.session.Epoch)
}

// Advance moves past a revealed card
func (s *GameSession) Advance() (Snapshot, error) {
	return s.apply(domain.CmdAdvance{}, domain.EventStateChanged)
}

// RequestHint generates a discussion prompt with the lock released
func (s *GameSession) RequestHint(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if s.isHinting() {
		s.mu.Unlock()
		return Snapshot{}, domain.ErrBusy
	}
	req, err := s.session.HintRequest()
	if err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}
	epoch := s.session.Epoch
	s.hinting, s.hintingEpoch = true, epoch
	s.queueEvent(domain.NewEvent(domain.EventStateChanged, s.id, s.snapshotLocked()))
	s.mu.Unlock()

	hint := s.materials.Hint(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hintingEpoch == epoch {
		s.hinting = false
	}

	if s.session.Epoch != epoch || s.session.Phase != domain.PhaseGameActive {
		s.logger.Debug("Dropping hint for a changed session")
		return s.snapshotLocked(), ErrSessionChanged
	}
	if err := s.session.AddHint(hint); err != nil {
		return Snapshot{}, err
	}

	s.queueEvent(domain.NewEvent(domain.EventHintAdded, s.id, &domain.HintPayload{Hint: hint, Count: len(s.session.Hints)}))
	s.afterTransition(domain.EventStateChanged, epoch)
	return s.snapshotLocked(), nil
}

// OpenForgot opens the forgot-word modal
func (s *GameSession) OpenForgot() (Snapshot, error) {
	return s.apply(domain.CmdOpenForgot{}, domain.EventStateChanged)
}

// SelectForgot picks the player who forgot their word
func (s *GameSession) SelectForgot(playerID int) (Snapshot, error) {
	return s.apply(domain.CmdSelectForgot{PlayerID: playerID}, domain.EventStateChanged)
}

// ConfirmForgot shows the selected player's card again
func (s *GameSession) ConfirmForgot() (Snapshot, error) {
	return s.apply(domain.CmdConfirmForgot{}, domain.EventStateChanged)
}

// CloseForgot closes the forgot-word modal
func (s *GameSession) CloseForgot() (Snapshot, error) {
	return s.apply(domain.CmdCloseForgot{}, domain.EventStateChanged)
}

// RevealResults ends discussion and shows the outcome
func (s *GameSession) RevealResults() (Snapshot, error) {
	return s.apply(domain.CmdRevealResults{}, domain.EventStateChanged)
}

// Reset starts over from mode selection after the results screen
func (s *GameSession) Reset() (Snapshot, error) {
	return s.apply(domain.CmdPlayAgain{}, domain.EventSessionReset)
}

// RequestQuit asks for quit confirmation
func (s *GameSession) RequestQuit() (Snapshot, error) {
	return s.apply(domain.CmdRequestQuit{}, domain.EventStateChanged)
}

// ConfirmQuit abandons the session and resets it
func (s *GameSession) ConfirmQuit() (Snapshot, error) {
	return s.apply(domain.CmdConfirmQuit{}, domain.EventSessionReset)
}

// CancelQuit dismisses the quit confirmation
func (s *GameSession) CancelQuit() (Snapshot, error) {
	return s.apply(domain.CmdCancelQuit{}, domain.EventStateChanged)
}

// apply runs one synchronous command under the lock
func (s *GameSession) apply(cmd domain.Command, eventType domain.EventType) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(cmd, eventType)
}

// applyUnlessStarting rejects setup edits while round materials are being fetched
func (s *GameSession) applyUnlessStarting(cmd domain.Command) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isStarting() {
		return Snapshot{}, domain.ErrBusy
	}
	return s.applyLocked(cmd, domain.EventStateChanged)
}

func (s *GameSession) applyLocked(cmd domain.Command, eventType domain.EventType) (Snapshot, error) {
	epoch := s.session.Epoch
	if err := s.session.Apply(cmd); err != nil {
		s.logger.Debug("Command rejected", "command", domain.CommandName(cmd), "error", err)
		return Snapshot{}, err
	}
	s.afterTransition(eventType, epoch)
	return s.snapshotLocked(), nil
}

// isStarting reports a materials fetch that still belongs to the current
// epoch. A fetch abandoned by a reset does not block the next round.
func (s *GameSession) isStarting() bool {
	return s.starting && s.startingEpoch == s.session.Epoch
}

func (s *GameSession) isHinting() bool {
	return s.hinting && s.hintingEpoch == s.session.Epoch
}

// afterTransition syncs timers with the new state and broadcasts it (caller must hold lock)
func (s *GameSession) afterTransition(eventType domain.EventType, prevEpoch uint64) {
	s.lastActive = time.Now()

	if s.session.Epoch != prevEpoch {
		s.logger.Info("Session reset")
		s.stopRevealTimer()
		s.stopCountdown()
	}
	if s.session.Phase != domain.PhaseRevealRole {
		s.stopRevealTimer()
	}

	switch running := s.session.TimerRunning(); {
	case running && s.countdownDone == nil:
		s.countdownDone = make(chan struct{})
		go s.countdown(s.countdownDone)
	case !running && s.countdownDone != nil:
		s.stopCountdown()
	}

	s.queueEvent(domain.NewEvent(eventType, s.id, s.snapshotLocked()))
}

// countdown ticks the discussion timer until stopped or expired
func (s *GameSession) countdown(done chan struct{}) {
	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-s.done:
			return
		case <-ticker.C:
			if !s.tick(done) {
				return
			}
		}
	}
}

// tick applies one second; it reports whether the countdown should continue
func (s *GameSession) tick(done chan struct{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.countdownDone != done {
		return false
	}
	if !s.session.Tick() {
		s.stopCountdown()
		return false
	}

	expired := s.session.TimerExpired()
	s.queueEvent(domain.NewEvent(domain.EventTimerTick, s.id, &domain.TimerPayload{
		TimeLeft: s.session.TimeLeft,
		Expired:  expired,
	}))

	if expired {
		s.logger.Debug("Discussion timer expired")
		s.stopCountdown()
		s.queueEvent(domain.NewEvent(domain.EventTimerExpired, s.id, s.snapshotLocked()))
		return false
	}
	return true
}

// stopCountdown stops the countdown goroutine (caller must hold lock)
func (s *GameSession) stopCountdown() {
	if s.countdownDone != nil {
		close(s.countdownDone)
		s.countdownDone = nil
	}
}

// stopRevealTimer cancels a pending reveal completion (caller must hold lock)
func (s *GameSession) stopRevealTimer() {
	if s.revealTimer != nil {
		s.revealTimer.Stop()
		s.revealTimer = nil
	}
}

func (s *GameSession) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID: s.id,
		View:      s.session.View(),
		Loading:   LoadingState{Round: s.isStarting(), Hint: s.isHinting()},
	}
}

func (s *GameSession) queueError(err error) {
	s.queueEvent(domain.NewEvent(domain.EventError, s.id, &domain.ErrorPayload{
		Code:    ErrorCode(err),
		Message: err.Error(),
	}))
}

// queueEvent adds an event to the broadcast queue
func (s *GameSession) queueEvent(event *domain.GameEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("Event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop processes events and broadcasts to clients
func (s *GameSession) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to every connected client
func (s *GameSession) broadcastEvent(event *domain.GameEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for clientID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("Failed to send to client", "clientID", clientID, "error", err)
		}
	}
}

// Close shuts down the session
func (s *GameSession) Close() {
	select {
	case <-s.done:
		return
	default:
		close(s.done)
	}

	s.mu.Lock()
	s.stopRevealTimer()
	s.stopCountdown()
	s.mu.Unlock()

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clients = make(map[string]ClientConnection)
	s.clientsMu.Unlock()
}
