package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// Category is one of the four fixed answer slots in a wordparty round.
type Category string

const (
	CategoryName   Category = "name"
	CategoryPlace  Category = "place"
	CategoryAnimal Category = "animal"
	CategoryThing  Category = "thing"
)

var categories = [...]Category{CategoryName, CategoryPlace, CategoryAnimal, CategoryThing}

// Answers holds one raw answer per category.
type Answers map[Category]string

// Player is one connection's presence in a room. IDs are unique per
// connection and never reused.
type Player struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Score   int     `json:"score"`
	Answers Answers `json:"currentAnswers"`
	Ready   bool    `json:"isReady"`
}

func newPlayer(name string) *Player {
	return &Player{
		ID:      newPlayerID(),
		Name:    name,
		Answers: Answers{},
	}
}

// Settings are fixed at room creation.
type Settings struct {
	TimeLimit   int `json:"timeLimit"`
	TotalRounds int `json:"totalRounds"`
}

// GameState tracks round progress for one room.
type GameState struct {
	CurrentRound  int      `json:"currentRound"`
	TotalRounds   int      `json:"totalRounds"`
	TimeLimit     int      `json:"timeLimit"`
	CurrentLetter string   `json:"currentLetter"`
	UsedLetters   []string `json:"usedLetters"`
	Complete      bool     `json:"isGameComplete"`
}

// Room is a multiplayer session. Player order is join order, which
// also defines host succession.
type Room struct {
	ID       string     `json:"roomId"`
	HostID   string     `json:"hostId"`
	Players  []*Player  `json:"players"`
	Game     *GameState `json:"gameState"`
	Started  bool       `json:"isGameStarted"`
	Settings Settings   `json:"settings"`

	// Coordinator bookkeeping, never serialized.
	resolved   bool
	timer      *time.Timer
	lastActive time.Time
}

// Player returns the room member with the given ID, if present.
func (r *Room) Player(id string) (*Player, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// AllReady reports whether every room member has toggled ready.
func (r *Room) AllReady() bool {
	for _, p := range r.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

var (
	errRoomNotFound  = errors.New("room not found")
	errRoomCollision = errors.New("room code collision")
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6
)

// newRoomCode generates a crypto-random 6-character uppercase
// alphanumeric room code.
func newRoomCode() string {
	buf := make([]byte, roomCodeLength)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	out := make([]byte, roomCodeLength)
	for i := range out {
		out[i] = roomCodeAlphabet[int(buf[i])%len(roomCodeAlphabet)]
	}
	return string(out)
}

func newPlayerID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// RoomStore maps room codes to room state. It performs no locking of
// its own; the coordinator serializes all access.
type RoomStore struct {
	rooms map[string]*Room
}

func newRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*Room),
	}
}

// Create stores a new room under a freshly generated code, with the
// creator as host and sole member. Generated codes are re-checked
// against existing rooms; exhausting all retries on collisions is
// effectively impossible but surfaced rather than looped forever.
func (s *RoomStore) Create(settings Settings, host *Player) (*Room, error) {
	for range 10 {
		code := newRoomCode()
		if _, exists := s.rooms[code]; exists {
			continue
		}

		room := &Room{
			ID:      code,
			HostID:  host.ID,
			Players: []*Player{host},
			Game: &GameState{
				TotalRounds: settings.TotalRounds,
				TimeLimit:   settings.TimeLimit,
				UsedLetters: []string{},
			},
			Settings:   settings,
			lastActive: time.Now(),
		}
		s.rooms[code] = room

		return room, nil
	}

	return nil, errRoomCollision
}

// Get looks up a room by code.
func (s *RoomStore) Get(id string) (*Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, errRoomNotFound
	}
	return room, nil
}

// AddPlayer appends a player to a room, preserving join order.
func (s *RoomStore) AddPlayer(roomID string, p *Player) (*Room, error) {
	room, err := s.Get(roomID)
	if err != nil {
		return nil, err
	}

	room.Players = append(room.Players, p)

	return room, nil
}

// RemovePlayer removes a player from a room. An emptied room is
// deleted; if the departing player was host, the next player in join
// order inherits the role. The second return value reports deletion.
func (s *RoomStore) RemovePlayer(roomID, playerID string) (*Room, bool, error) {
	room, err := s.Get(roomID)
	if err != nil {
		return nil, false, err
	}

	dst := room.Players[:0]
	found := false
	for _, p := range room.Players {
		if p.ID == playerID {
			found = true
			continue
		}
		dst = append(dst, p)
	}
	room.Players = dst

	if !found {
		return room, false, nil
	}

	if len(room.Players) == 0 {
		delete(s.rooms, roomID)
		return room, true, nil
	}

	if room.HostID == playerID {
		room.HostID = room.Players[0].ID
	}

	return room, false, nil
}

// Delete drops a room outright (used by the idle reaper).
func (s *RoomStore) Delete(id string) {
	delete(s.rooms, id)
}

// Each returns a snapshot of all current rooms.
func (s *RoomStore) Each() []*Room {
	rooms := make([]*Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}
