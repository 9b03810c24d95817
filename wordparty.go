// Wordhall Wordparty Game
//
// The classic name/place/animal/thing party game. A player creates a room
// and shares its 6-character code (or QR); friends join, toggle ready, and
// the host starts the game. Each round everyone races a shared letter and
// deadline to fill four categories; answers are scored server-side and the
// host advances rounds until the game completes.
//
// Features:
// - Single websocket endpoint at /wordparty/ws; JSON {type, data} envelopes
// - Rooms keyed by 6-char uppercase codes, collision-checked at creation
// - Host authority for starting games and advancing rounds, transferred in
//   join order when the host disconnects
// - Round deadline timers scoped to (room, round) and cancelled on early
//   resolution, so a stale timeout never touches a later round
// - Round resolution is idempotent under the timer/last-submission race
// - Letters never repeat within a game until the alphabet is exhausted,
//   then selection wraps back to the full alphabet
// - Rooms are deleted when the last player leaves, or reaped after the
//   configured idle timeout
// - In-browser QR button to share a room's join URL, backed by go-qrcode
// - Solo mode scored by /wordparty/solo endpoints with dictionary checks

package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// serveWordPartyWS upgrades the connection and hands it to the relay
// pumps.
func serveWordPartyWS(cfg *Config, co *Coordinator) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "GAMES: Websocket upgrade failed for %s: %v", realIP(r), err)
			return
		}

		client := newClient(conn)

		go client.writePump()
		client.readPump(cfg, co)
	}
}

// readPump decodes inbound envelopes and dispatches them to the
// coordinator. A malformed message is logged and dropped without
// closing the connection; a transport error ends the session and runs
// the disconnect path.
func (c *Client) readPump(cfg *Config, co *Coordinator) {
	defer func() {
		co.disconnect(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			logf(cfg, "GAMES: Dropping undecodable message from %s: %v", c.playerID, err)
			continue
		}

		co.dispatch(c, env)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// qrHandler generates a PNG QR code for a room's join URL.
func qrHandler(cfg *Config, path string, co *Coordinator) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		roomID := ps.ByName("roomid")
		if roomID == "" || !co.roomExists(roomID) {
			http.Error(w, "unknown room", http.StatusNotFound)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		url := scheme + "://" + r.Host + cfg.prefix + path + "?room=" + strings.ToUpper(roomID)

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}

// registerWordPartyGame sets up routes so that:
//   - $path                  → HTML client (solo + multiplayer)
//   - $path/ws               → shared websocket relay
//   - $path/room/:roomid/qr  → PNG QR code for a room's join URL
//   - $path/solo/letter      → solo letter selection
//   - $path/solo/score       → solo round scoring
func registerWordPartyGame(cfg *Config, path string, mux *httprouter.Router, errs chan<- error) {
	co := newCoordinator(cfg)

	mux.GET(cfg.prefix+path, serveGamePage(cfg, errs, "assets/wordparty/index.html"))

	mux.GET(cfg.prefix+path+"/ws", serveWordPartyWS(cfg, co))

	mux.GET(cfg.prefix+path+"/room/:roomid/qr", qrHandler(cfg, path, co))

	mux.GET(cfg.prefix+path+"/solo/letter", serveSoloLetter(cfg, errs))

	mux.POST(cfg.prefix+path+"/solo/score", serveSoloScore(cfg, errs))
}
