package main

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		code := newRoomCode()
		assert.Regexp(t, roomCodePattern, code)
		seen[code] = struct{}{}
	}

	// 50 draws from a 36^6 space colliding would mean the generator
	// is broken, not unlucky.
	assert.Len(t, seen, 50)
}

func TestRoomStoreCreate(t *testing.T) {
	store := newRoomStore()
	host := newPlayer("Amy")

	room, err := store.Create(Settings{TimeLimit: 30, TotalRounds: 5}, host)
	require.NoError(t, err)

	assert.Regexp(t, roomCodePattern, room.ID)
	assert.Equal(t, host.ID, room.HostID)
	require.Len(t, room.Players, 1)
	assert.Same(t, host, room.Players[0])
	assert.False(t, room.Started)
	assert.Equal(t, 5, room.Game.TotalRounds)
	assert.Equal(t, 30, room.Game.TimeLimit)
	assert.Empty(t, room.Game.UsedLetters)

	got, err := store.Get(room.ID)
	require.NoError(t, err)
	assert.Same(t, room, got)
}

func TestRoomStoreGetUnknown(t *testing.T) {
	store := newRoomStore()

	_, err := store.Get("NOSUCH")

	assert.ErrorIs(t, err, errRoomNotFound)
}

func TestRoomStoreAddPlayer(t *testing.T) {
	store := newRoomStore()
	host := newPlayer("Amy")
	room, err := store.Create(Settings{TimeLimit: 30, TotalRounds: 5}, host)
	require.NoError(t, err)

	bo := newPlayer("Bo")
	_, err = store.AddPlayer(room.ID, bo)
	require.NoError(t, err)

	cal := newPlayer("Cal")
	_, err = store.AddPlayer(room.ID, cal)
	require.NoError(t, err)

	// Join order is preserved; host is unchanged.
	require.Len(t, room.Players, 3)
	assert.Equal(t, []string{"Amy", "Bo", "Cal"}, []string{
		room.Players[0].Name, room.Players[1].Name, room.Players[2].Name,
	})
	assert.Equal(t, host.ID, room.HostID)

	_, err = store.AddPlayer("NOSUCH", newPlayer("Dee"))
	assert.ErrorIs(t, err, errRoomNotFound)
}

func TestRoomStoreRemovePlayer(t *testing.T) {
	t.Run("host leaving promotes the next player in join order", func(t *testing.T) {
		store := newRoomStore()
		host := newPlayer("Amy")
		room, err := store.Create(Settings{TimeLimit: 30, TotalRounds: 5}, host)
		require.NoError(t, err)

		bo := newPlayer("Bo")
		_, err = store.AddPlayer(room.ID, bo)
		require.NoError(t, err)

		room, deleted, err := store.RemovePlayer(room.ID, host.ID)
		require.NoError(t, err)

		assert.False(t, deleted)
		assert.Equal(t, bo.ID, room.HostID)
		require.Len(t, room.Players, 1)
	})

	t.Run("last player leaving deletes the room", func(t *testing.T) {
		store := newRoomStore()
		host := newPlayer("Amy")
		room, err := store.Create(Settings{TimeLimit: 30, TotalRounds: 5}, host)
		require.NoError(t, err)

		_, deleted, err := store.RemovePlayer(room.ID, host.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = store.Get(room.ID)
		assert.ErrorIs(t, err, errRoomNotFound)
	})

	t.Run("unknown player is a no-op", func(t *testing.T) {
		store := newRoomStore()
		room, err := store.Create(Settings{TimeLimit: 30, TotalRounds: 5}, newPlayer("Amy"))
		require.NoError(t, err)

		got, deleted, err := store.RemovePlayer(room.ID, "nobody")
		require.NoError(t, err)

		assert.False(t, deleted)
		assert.Len(t, got.Players, 1)
	})
}

func TestRoomAllReady(t *testing.T) {
	room := &Room{Players: []*Player{
		{ID: "a", Ready: true},
		{ID: "b"},
	}}

	assert.False(t, room.AllReady())

	room.Players[1].Ready = true

	assert.True(t, room.AllReady())
}
