package main

import (
	"encoding/json"
)

// Every websocket message, in either direction, is a JSON envelope of
// the form {"type": "...", "data": {...}}.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Client -> server message types.
const (
	msgCreateRoom    = "CREATE_ROOM"
	msgJoinRoom      = "JOIN_ROOM"
	msgLeaveRoom     = "LEAVE_ROOM"
	msgPlayerReady   = "PLAYER_READY"
	msgSubmitAnswers = "SUBMIT_ANSWERS"
	msgStartGame     = "START_GAME"
	msgNextRound     = "NEXT_ROUND"
)

// Server -> client event types.
const (
	evtRoomCreated       = "ROOM_CREATED"
	evtPlayerJoined      = "PLAYER_JOINED"
	evtPlayerLeft        = "PLAYER_LEFT"
	evtPlayerReadyUpdate = "PLAYER_READY_UPDATE"
	evtGameStarted       = "GAME_STARTED"
	evtPlayerSubmitted   = "PLAYER_SUBMITTED"
	evtRoundComplete     = "ROUND_COMPLETE"
	evtRoundTimeout      = "ROUND_TIMEOUT"
	evtNextRound         = "NEXT_ROUND"
	evtGameComplete      = "GAME_COMPLETE"
	evtError             = "ERROR"
)

func newEvent(eventType string, data any) envelope {
	raw, err := json.Marshal(data)
	if err != nil {
		// All event payloads are our own structs; this never fires.
		panic("unmarshalable event payload: " + err.Error())
	}
	return envelope{
		Type: eventType,
		Data: raw,
	}
}

type createRoomRequest struct {
	PlayerName  string `json:"playerName"`
	TimeLimit   int    `json:"timeLimit"`
	TotalRounds int    `json:"totalRounds"`
}

type joinRoomRequest struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type leaveRoomRequest struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type playerReadyRequest struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	IsReady  bool   `json:"isReady"`
}

type submitAnswersRequest struct {
	RoomID   string  `json:"roomId"`
	PlayerID string  `json:"playerId"`
	Answers  Answers `json:"answers"`
}

// hostActionRequest covers START_GAME and NEXT_ROUND, which share a shape.
type hostActionRequest struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type roomCreatedEvent struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	Room     *Room  `json:"gameRoom"`
}

type playerJoinedEvent struct {
	Player *Player `json:"player"`
	Room   *Room   `json:"gameRoom"`
}

type playerLeftEvent struct {
	PlayerID string `json:"playerId"`
	Room     *Room  `json:"gameRoom"`
}

type readyUpdateEvent struct {
	PlayerID string `json:"playerId"`
	IsReady  bool   `json:"isReady"`
	AllReady bool   `json:"allReady"`
	Room     *Room  `json:"gameRoom"`
}

type gameStartedEvent struct {
	Room   *Room  `json:"gameRoom"`
	Letter string `json:"letter"`
}

type playerSubmittedEvent struct {
	PlayerID string `json:"playerId"`
	Room     *Room  `json:"gameRoom"`
}

// roundResultsEvent carries the shared payload of ROUND_COMPLETE and
// ROUND_TIMEOUT.
type roundResultsEvent struct {
	Results *RoundResults `json:"roundResults"`
	Room    *Room         `json:"gameRoom"`
}

type nextRoundEvent struct {
	Room   *Room  `json:"gameRoom"`
	Letter string `json:"letter"`
}

type gameCompleteEvent struct {
	Room *Room `json:"gameRoom"`
}

type errorEvent struct {
	Message string `json:"message"`
}
