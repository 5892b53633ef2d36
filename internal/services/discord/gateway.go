// services/discord/gateway.go
package discord

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const gatewayURL = "wss://gateway.discord.gg/?v=10&encoding=json"

// gateway intents: GUILDS, GUILD_MESSAGES, DIRECT_MESSAGES, MESSAGE_CONTENT
const gatewayIntents = 1<<0 | 1<<9 | 1<<12 | 1<<15

// gateway opcodes
const (
	opDispatch       = 0
	opHeartbeat      = 1
	opIdentify       = 2
	opReconnect      = 7
	opInvalidSession = 9
	opHello          = 10
	opHeartbeatAck   = 11
)

// EventHandler receives the dispatches the bot cares about. Calls arrive
// from a single read loop, one at a time.
type EventHandler interface {
	OnReady()
	OnMessage(ev *MessageEvent)
	OnInteraction(ev *InteractionEvent)
}

// Gateway maintains the bot's websocket session: hello/identify handshake,
// heartbeat loop and event dispatch, reconnecting on any failure.
type Gateway struct {
	token   string
	handler EventHandler
	url     string

	mu   sync.Mutex // guards conn and seq
	conn *websocket.Conn
	seq  int64
}

func NewGateway(token string, handler EventHandler) *Gateway {
	return &Gateway{token: token, handler: handler, url: gatewayURL}
}

type gatewayPayload struct {
	Op int             `json:"op"`
	T  string          `json:"t,omitempty"`
	S  *int64          `json:"s,omitempty"`
	D  json.RawMessage `json:"d,omitempty"`
}

// Run connects and blocks forever, reconnecting with a flat delay whenever
// the session drops.
func (g *Gateway) Run() {
	for {
		if err := g.runSession(); err != nil {
			log.Printf("Gateway session ended: %v", err)
		}
		time.Sleep(5 * time.Second)
		log.Println("Reconnecting to gateway...")
	}
}

func (g *Gateway) runSession() error {
	conn, _, err := websocket.DefaultDialer.Dial(g.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// a previous session's heartbeat goroutine may still be mid-write
	g.mu.Lock()
	g.conn = conn
	g.seq = 0
	g.mu.Unlock()

	// hello comes first and carries the heartbeat interval
	var hello gatewayPayload
	if err := conn.ReadJSON(&hello); err != nil {
		return err
	}
	if hello.Op != opHello {
		return errors.New("expected hello from gateway")
	}
	var helloData struct {
		HeartbeatInterval int `json:"heartbeat_interval"`
	}
	if err := json.Unmarshal(hello.D, &helloData); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go g.heartbeatLoop(time.Duration(helloData.HeartbeatInterval)*time.Millisecond, done)

	if err := g.identify(); err != nil {
		return err
	}

	for {
		var payload gatewayPayload
		if err := conn.ReadJSON(&payload); err != nil {
			return err
		}

		switch payload.Op {
		case opDispatch:
			if payload.S != nil {
				g.mu.Lock()
				g.seq = *payload.S
				g.mu.Unlock()
			}
			g.dispatch(payload.T, payload.D)
		case opHeartbeat:
			g.sendHeartbeat()
		case opReconnect:
			return errors.New("gateway requested reconnect")
		case opInvalidSession:
			return errors.New("gateway invalidated the session")
		case opHeartbeatAck:
			// nothing to do
		}
	}
}

func (g *Gateway) identify() error {
	identify := map[string]interface{}{
		"op": opIdentify,
		"d": map[string]interface{}{
			"token":   g.token,
			"intents": gatewayIntents,
			"properties": map[string]string{
				"os":      "linux",
				"browser": "ponto_backendl",
				"device":  "ponto_backendl",
			},
		},
	}
	return g.writeJSON(identify)
}

func (g *Gateway) heartbeatLoop(interval time.Duration, done chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			g.sendHeartbeat()
		case <-done:
			return
		}
	}
}

func (g *Gateway) sendHeartbeat() {
	g.mu.Lock()
	seq := g.seq
	g.mu.Unlock()
	var d interface{}
	if seq > 0 {
		d = seq
	}
	if err := g.writeJSON(map[string]interface{}{"op": opHeartbeat, "d": d}); err != nil {
		log.Printf("WARN: heartbeat write failed: %v", err)
	}
}

func (g *Gateway) writeJSON(v interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.conn.WriteJSON(v)
}

func (g *Gateway) dispatch(event string, data json.RawMessage) {
	switch event {
	case "READY":
		log.Println("✅ Gateway ready")
		g.handler.OnReady()

	case "MESSAGE_CREATE":
		var ev MessageEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			log.Printf("Failed to decode MESSAGE_CREATE: %v", err)
			return
		}
		g.handler.OnMessage(&ev)

	case "INTERACTION_CREATE":
		var raw struct {
			ID        string `json:"id"`
			Token     string `json:"token"`
			Type      int    `json:"type"`
			GuildID   string `json:"guild_id"`
			ChannelID string `json:"channel_id"`
			Data      struct {
				CustomID string `json:"custom_id"`
			} `json:"data"`
			Member *struct {
				User User `json:"user"`
			} `json:"member"`
			User *User `json:"user"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			log.Printf("Failed to decode INTERACTION_CREATE: %v", err)
			return
		}
		ev := InteractionEvent{
			ID:        raw.ID,
			Token:     raw.Token,
			Type:      raw.Type,
			GuildID:   raw.GuildID,
			ChannelID: raw.ChannelID,
			CustomID:  raw.Data.CustomID,
		}
		if raw.Member != nil {
			ev.User = raw.Member.User
		} else if raw.User != nil {
			ev.User = *raw.User
		}
		g.handler.OnInteraction(&ev)
	}
}
