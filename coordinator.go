package main

import (
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	validTimeLimits  = []int{15, 30, 45}
	validRoundCounts = []int{3, 5, 7, 10}
)

// Coordinator owns all multiplayer room state. A single mutex
// serializes every mutating path - inbound messages, round timers,
// disconnects, and the idle reaper - so each message is handled
// atomically with respect to room state.
type Coordinator struct {
	mu    sync.Mutex
	cfg   *Config
	rooms *RoomStore
	conns *Registry
}

func newCoordinator(cfg *Config) *Coordinator {
	co := &Coordinator{
		cfg:   cfg,
		rooms: newRoomStore(),
		conns: newRegistry(),
	}
	if cfg.roomTimeout > 0 {
		go co.reaperLoop()
	}
	return co
}

// dispatch routes one decoded envelope to its handler. Undecodable
// payloads are logged and dropped; the connection stays open.
func (co *Coordinator) dispatch(c *Client, env envelope) {
	var err error

	switch env.Type {
	case msgCreateRoom:
		var req createRoomRequest
		if err = json.Unmarshal(env.Data, &req); err == nil {
			co.handleCreateRoom(c, req)
		}
	case msgJoinRoom:
		var req joinRoomRequest
		if err = json.Unmarshal(env.Data, &req); err == nil {
			co.handleJoinRoom(c, req)
		}
	case msgLeaveRoom:
		var req leaveRoomRequest
		if err = json.Unmarshal(env.Data, &req); err == nil {
			co.handleLeaveRoom(c, req)
		}
	case msgPlayerReady:
		var req playerReadyRequest
		if err = json.Unmarshal(env.Data, &req); err == nil {
			co.handlePlayerReady(c, req)
		}
	case msgSubmitAnswers:
		var req submitAnswersRequest
		if err = json.Unmarshal(env.Data, &req); err == nil {
			co.handleSubmitAnswers(c, req)
		}
	case msgStartGame:
		var req hostActionRequest
		if err = json.Unmarshal(env.Data, &req); err == nil {
			co.handleStartGame(c, req)
		}
	case msgNextRound:
		var req hostActionRequest
		if err = json.Unmarshal(env.Data, &req); err == nil {
			co.handleNextRound(c, req)
		}
	default:
		logf(co.cfg, "GAMES: Dropping message of unknown type %q", env.Type)
		return
	}

	if err != nil {
		logf(co.cfg, "GAMES: Dropping malformed %s payload: %v", env.Type, err)
	}
}

func (co *Coordinator) sendError(c *Client, message string) {
	co.conns.sendTo(c, newEvent(evtError, errorEvent{Message: message}))
}

func (co *Coordinator) handleCreateRoom(c *Client, req createRoomRequest) {
	co.mu.Lock()
	defer co.mu.Unlock()

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		co.sendError(c, "A player name is required.")
		return
	}
	if !slices.Contains(validTimeLimits, req.TimeLimit) {
		co.sendError(c, "Time limit must be 15, 30, or 45 seconds.")
		return
	}
	if !slices.Contains(validRoundCounts, req.TotalRounds) {
		co.sendError(c, "Round count must be 3, 5, 7, or 10.")
		return
	}

	host := newPlayer(name)
	room, err := co.rooms.Create(Settings{
		TimeLimit:   req.TimeLimit,
		TotalRounds: req.TotalRounds,
	}, host)
	if err != nil {
		co.sendError(c, "Could not allocate a room code. Please try again.")
		return
	}

	c.playerID = host.ID
	c.roomID = room.ID
	co.conns.register(host.ID, c)

	co.conns.send(host.ID, newEvent(evtRoomCreated, roomCreatedEvent{
		RoomID:   room.ID,
		PlayerID: host.ID,
		Room:     room,
	}))

	logf(co.cfg, "GAMES: Room %s created by %q", room.ID, name)
}

func (co *Coordinator) handleJoinRoom(c *Client, req joinRoomRequest) {
	co.mu.Lock()
	defer co.mu.Unlock()

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		co.sendError(c, "A player name is required.")
		return
	}

	// Room codes are case-insensitive on input.
	code := strings.ToUpper(strings.TrimSpace(req.RoomID))

	room, err := co.rooms.Get(code)
	if err != nil {
		co.sendError(c, "Room not found.")
		return
	}
	if room.Started {
		co.sendError(c, "Game already in progress.")
		return
	}

	player := newPlayer(name)
	if _, err := co.rooms.AddPlayer(code, player); err != nil {
		co.sendError(c, "Room not found.")
		return
	}

	c.playerID = player.ID
	c.roomID = room.ID
	co.conns.register(player.ID, c)
	room.lastActive = time.Now()

	co.conns.broadcast(room, newEvent(evtPlayerJoined, playerJoinedEvent{
		Player: player,
		Room:   room,
	}))

	logf(co.cfg, "GAMES: %q joined room %s", name, room.ID)
}

func (co *Coordinator) handlePlayerReady(c *Client, req playerReadyRequest) {
	co.mu.Lock()
	defer co.mu.Unlock()

	room, err := co.rooms.Get(strings.ToUpper(req.RoomID))
	if err != nil {
		co.sendError(c, "Room not found.")
		return
	}

	// Readiness only matters in the lobby.
	if room.Started {
		return
	}

	player, ok := room.Player(req.PlayerID)
	if !ok {
		return
	}

	player.Ready = req.IsReady
	room.lastActive = time.Now()

	co.conns.broadcast(room, newEvent(evtPlayerReadyUpdate, readyUpdateEvent{
		PlayerID: player.ID,
		IsReady:  player.Ready,
		AllReady: room.AllReady(),
		Room:     room,
	}))
}

func (co *Coordinator) handleStartGame(c *Client, req hostActionRequest) {
	co.mu.Lock()
	defer co.mu.Unlock()

	room, err := co.rooms.Get(strings.ToUpper(req.RoomID))
	if err != nil {
		co.sendError(c, "Room not found.")
		return
	}
	if req.PlayerID != room.HostID {
		co.sendError(c, "Only the host can start the game.")
		return
	}
	if room.Started {
		co.sendError(c, "Game already in progress.")
		return
	}
	if len(room.Players) < 2 {
		co.sendError(c, "At least two players are needed to start.")
		return
	}

	room.Started = true
	room.Game.CurrentRound = 1
	room.lastActive = time.Now()
	letter := co.beginRound(room)

	co.conns.broadcast(room, newEvent(evtGameStarted, gameStartedEvent{
		Room:   room,
		Letter: letter,
	}))

	logf(co.cfg, "GAMES: Room %s started round 1 with letter %s", room.ID, letter)
}

// beginRound picks the round letter, clears the resolved flag, and
// arms the deadline timer. Caller holds the lock and has already set
// CurrentRound.
func (co *Coordinator) beginRound(room *Room) string {
	letter, wrapped := chooseLetter(room.Game.UsedLetters)
	if wrapped {
		// All 26 letters were used this game; start over.
		room.Game.UsedLetters = room.Game.UsedLetters[:0]
	}
	room.Game.CurrentLetter = letter
	room.Game.UsedLetters = append(room.Game.UsedLetters, letter)
	room.resolved = false

	round := room.Game.CurrentRound
	room.timer = time.AfterFunc(time.Duration(room.Settings.TimeLimit)*time.Second, func() {
		co.roundTimeout(room.ID, round)
	})

	return letter
}

// roundTimeout fires when a round's deadline expires. The timer handle
// is scoped to (room, round); a stale fire against a resolved or
// since-advanced round is discarded.
func (co *Coordinator) roundTimeout(roomID string, round int) {
	co.mu.Lock()
	defer co.mu.Unlock()

	room, err := co.rooms.Get(roomID)
	if err != nil {
		return
	}
	if !room.Started || room.Game.Complete {
		return
	}
	if room.Game.CurrentRound != round || room.resolved {
		return
	}

	co.resolveRound(room, evtRoundTimeout)
}

func (co *Coordinator) handleSubmitAnswers(c *Client, req submitAnswersRequest) {
	co.mu.Lock()
	defer co.mu.Unlock()

	room, err := co.rooms.Get(strings.ToUpper(req.RoomID))
	if err != nil {
		co.sendError(c, "Room not found.")
		return
	}
	if !room.Started || room.Game.Complete || room.resolved {
		return
	}

	player, ok := room.Player(req.PlayerID)
	if !ok {
		return
	}

	if req.Answers == nil {
		req.Answers = Answers{}
	}
	player.Answers = req.Answers
	room.lastActive = time.Now()

	if allSubmitted(room.Players) {
		co.resolveRound(room, evtRoundComplete)
		return
	}

	co.conns.broadcast(room, newEvent(evtPlayerSubmitted, playerSubmittedEvent{
		PlayerID: player.ID,
		Room:     room,
	}))
}

// resolveRound scores the current round and broadcasts results. It is
// idempotent: the resolved flag is checked and set under the
// coordinator lock, so the deadline timer and the final submission can
// race without double-scoring. The pending timer is cancelled so it
// cannot fire against a later round.
func (co *Coordinator) resolveRound(room *Room, eventType string) {
	if room.resolved {
		return
	}
	room.resolved = true

	if room.timer != nil {
		room.timer.Stop()
		room.timer = nil
	}

	letter := room.Game.CurrentLetter
	results := make([]PlayerResult, 0, len(room.Players))
	for _, p := range room.Players {
		score, checks := scoreAnswers(p.Answers, letter)
		p.Score += score
		results = append(results, PlayerResult{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Answers:    checks,
			Score:      score,
			TotalScore: p.Score,
		})
	}

	room.lastActive = time.Now()

	co.conns.broadcast(room, newEvent(eventType, roundResultsEvent{
		Results: &RoundResults{
			Letter:      letter,
			RoundNumber: room.Game.CurrentRound,
			Results:     results,
		},
		Room: room,
	}))

	logf(co.cfg, "GAMES: Room %s resolved round %d (%s)", room.ID, room.Game.CurrentRound, eventType)
}

func (co *Coordinator) handleNextRound(c *Client, req hostActionRequest) {
	co.mu.Lock()
	defer co.mu.Unlock()

	room, err := co.rooms.Get(strings.ToUpper(req.RoomID))
	if err != nil {
		co.sendError(c, "Room not found.")
		return
	}
	if req.PlayerID != room.HostID {
		co.sendError(c, "Only the host can advance the round.")
		return
	}
	if !room.Started || room.Game.Complete {
		return
	}
	if !room.resolved {
		co.sendError(c, "The current round is still in progress.")
		return
	}

	room.lastActive = time.Now()

	if room.Game.CurrentRound >= room.Game.TotalRounds {
		room.Game.Complete = true
		co.conns.broadcast(room, newEvent(evtGameComplete, gameCompleteEvent{Room: room}))
		logf(co.cfg, "GAMES: Room %s finished after %d rounds", room.ID, room.Game.CurrentRound)
		return
	}

	room.Game.CurrentRound++
	for _, p := range room.Players {
		p.Answers = Answers{}
	}
	letter := co.beginRound(room)

	co.conns.broadcast(room, newEvent(evtNextRound, nextRoundEvent{
		Room:   room,
		Letter: letter,
	}))

	logf(co.cfg, "GAMES: Room %s advanced to round %d with letter %s", room.ID, room.Game.CurrentRound, letter)
}

func (co *Coordinator) handleLeaveRoom(c *Client, req leaveRoomRequest) {
	co.mu.Lock()
	defer co.mu.Unlock()

	// A connection may only remove itself.
	if c.playerID == "" || req.PlayerID != c.playerID {
		return
	}

	co.removePlayer(strings.ToUpper(req.RoomID), req.PlayerID)
}

// disconnect runs when a connection's read pump exits for any reason.
func (co *Coordinator) disconnect(c *Client) {
	co.mu.Lock()
	defer co.mu.Unlock()

	if c.playerID == "" {
		return
	}

	co.removePlayer(c.roomID, c.playerID)
}

// removePlayer takes a player out of its room, deleting an emptied
// room and otherwise transferring host authority in join order. Caller
// holds the lock.
func (co *Coordinator) removePlayer(roomID, playerID string) {
	co.conns.unregister(playerID)

	room, err := co.rooms.Get(roomID)
	if err != nil {
		return
	}
	if _, ok := room.Player(playerID); !ok {
		return
	}

	room, deleted, err := co.rooms.RemovePlayer(roomID, playerID)
	if err != nil {
		return
	}

	if deleted {
		if room.timer != nil {
			room.timer.Stop()
			room.timer = nil
		}
		logf(co.cfg, "ROOMS: Room %s closed (last player left)", roomID)
		return
	}

	room.lastActive = time.Now()

	co.conns.broadcast(room, newEvent(evtPlayerLeft, playerLeftEvent{
		PlayerID: playerID,
		Room:     room,
	}))
}

// roomExists is used by the QR handler to 404 unknown codes.
func (co *Coordinator) roomExists(roomID string) bool {
	co.mu.Lock()
	defer co.mu.Unlock()

	_, err := co.rooms.Get(strings.ToUpper(roomID))
	return err == nil
}

// reaperLoop periodically deletes rooms that have been idle longer
// than the configured timeout and disconnects their clients.
func (co *Coordinator) reaperLoop() {
	ticker := time.NewTicker(co.cfg.roomTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-co.cfg.roomTimeout)

		co.mu.Lock()
		for _, room := range co.rooms.Each() {
			if !room.lastActive.Before(cutoff) {
				continue
			}

			if room.timer != nil {
				room.timer.Stop()
				room.timer = nil
			}
			co.rooms.Delete(room.ID)
			for _, p := range room.Players {
				co.conns.closeConn(p.ID)
				co.conns.unregister(p.ID)
			}

			logf(co.cfg, "ROOMS: Reaped idle room %s", room.ID)
		}
		co.mu.Unlock()
	}
}
