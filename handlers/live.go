// handlers/live.go - Live scoreboard stream
package handlers

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const (
	refreshPeriod  = 30 * time.Second
	sendBufferSize = 16
)

type liveMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type liveClient struct {
	conn *websocket.Conn
	send chan liveMessage
	done chan struct{}
}

func (c *liveClient) sendMessage(msgType string, payload interface{}) {
	select {
	case c.send <- liveMessage{Type: msgType, Payload: payload}:
	default:
		// Buffer full; the next refresh carries the same state anyway.
		log.Printf("Live scoreboard send buffer full, dropping %s", msgType)
	}
}

func (c *liveClient) writePump() {
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

var (
	liveMu      sync.RWMutex
	liveClients = make(map[uint]map[*liveClient]bool) // leagueID -> clients
	refresher   sync.Once
)

// WebSocketUpgrade rejects plain HTTP requests to websocket routes.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// LiveScoreboard streams a league's scoreboard over a websocket. The
// client gets a snapshot on connect and a refresh every poll period
// while any tournament is live; reconnecting is always safe because
// every frame is the full ranked board, never a delta.
var LiveScoreboard = websocket.New(func(conn *websocket.Conn) {
	leagueID64, err := strconv.ParseUint(conn.Params("leagueId"), 10, 32)
	if err != nil {
		conn.WriteJSON(liveMessage{Type: "error", Payload: fiber.Map{"error": "Invalid league id"}})
		conn.Close()
		return
	}
	leagueID := uint(leagueID64)

	client := &liveClient{
		conn: conn,
		send: make(chan liveMessage, sendBufferSize),
		done: make(chan struct{}),
	}

	liveMu.Lock()
	if liveClients[leagueID] == nil {
		liveClients[leagueID] = make(map[*liveClient]bool)
	}
	liveClients[leagueID][client] = true
	liveMu.Unlock()

	refresher.Do(func() { go refreshLoop() })

	go client.writePump()

	if payload, err := scoreboardPayload(leagueID); err == nil {
		client.sendMessage("scoreboard", payload)
	}

	// Read pump: the stream is one-way, reads only detect disconnect
	// and answer pings.
	for {
		var msg liveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		if msg.Type == "ping" {
			client.sendMessage("pong", fiber.Map{})
		}
	}

	liveMu.Lock()
	delete(liveClients[leagueID], client)
	if len(liveClients[leagueID]) == 0 {
		delete(liveClients, leagueID)
	}
	liveMu.Unlock()

	close(client.done)
	conn.Close()
})

// refreshLoop pushes a fresh scoreboard to every watched league on a
// fixed cadence. Leagues with no connected clients cost nothing.
func refreshLoop() {
	ticker := time.NewTicker(refreshPeriod)
	defer ticker.Stop()

	for range ticker.C {
		liveMu.RLock()
		leagueIDs := make([]uint, 0, len(liveClients))
		for id := range liveClients {
			leagueIDs = append(leagueIDs, id)
		}
		liveMu.RUnlock()

		for _, leagueID := range leagueIDs {
			payload, err := scoreboardPayload(leagueID)
			if err != nil {
				log.Printf("Live scoreboard refresh failed for league %d: %v", leagueID, err)
				continue
			}

			liveMu.RLock()
			for client := range liveClients[leagueID] {
				client.sendMessage("scoreboard", payload)
			}
			liveMu.RUnlock()
		}
	}
}

func scoreboardPayload(leagueID uint) (fiber.Map, error) {
	rows, err := leaderSvc.Leaderboard(leagueID)
	if err != nil {
		return nil, err
	}

	board := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		board = append(board, fiber.Map{
			"rank":             r.Rank,
			"name":             r.DisplayName,
			"score":            float64(r.TotalPoints) / 100,
			"league_member_id": r.LeagueMemberID,
			"wins":             r.Wins,
			"missed_picks":     r.MissedPicks,
		})
	}

	return fiber.Map{
		"league_id":   leagueID,
		"leaderboard": board,
		"as_of":       time.Now().UTC().Format(time.RFC3339),
	}, nil
}
