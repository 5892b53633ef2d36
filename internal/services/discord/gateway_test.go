package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	messages chan *MessageEvent
}

func (h *recordingHandler) OnReady()                        {}
func (h *recordingHandler) OnMessage(ev *MessageEvent)      { h.messages <- ev }
func (h *recordingHandler) OnInteraction(*InteractionEvent) {}

// fakeGatewayServer speaks the hello/identify handshake, delivers one
// MESSAGE_CREATE, waits for a heartbeat and then asks for a reconnect.
func fakeGatewayServer(t *testing.T, heartbeats chan struct{}) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()

		hello := map[string]interface{}{
			"op": opHello,
			"d":  map[string]int{"heartbeat_interval": 50},
		}
		assert.NoError(t, conn.WriteJSON(hello))

		var identify gatewayPayload
		if !assert.NoError(t, conn.ReadJSON(&identify)) {
			return
		}
		assert.Equal(t, opIdentify, identify.Op)
		var identifyData struct {
			Token   string `json:"token"`
			Intents int    `json:"intents"`
		}
		assert.NoError(t, json.Unmarshal(identify.D, &identifyData))
		assert.Equal(t, "test-token", identifyData.Token)
		assert.Equal(t, gatewayIntents, identifyData.Intents)

		seq := int64(1)
		dispatch := gatewayPayload{Op: opDispatch, T: "MESSAGE_CREATE", S: &seq}
		dispatch.D, _ = json.Marshal(map[string]interface{}{
			"id":         "m1",
			"channel_id": "c1",
			"content":    "FICHA CRIMINAL anexada",
			"author":     map[string]interface{}{"id": "u1", "username": "alpha"},
		})
		assert.NoError(t, conn.WriteJSON(dispatch))

		var hb gatewayPayload
		if assert.NoError(t, conn.ReadJSON(&hb)) {
			assert.Equal(t, opHeartbeat, hb.Op)
			heartbeats <- struct{}{}
		}

		assert.NoError(t, conn.WriteJSON(map[string]interface{}{"op": opReconnect}))

		// hold the socket open until the client hangs up
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func TestGatewaySessionHandshakeAndDispatch(t *testing.T) {
	heartbeats := make(chan struct{}, 1)
	srv := fakeGatewayServer(t, heartbeats)
	defer srv.Close()

	handler := &recordingHandler{messages: make(chan *MessageEvent, 1)}
	g := NewGateway("test-token", handler)
	g.url = "ws" + strings.TrimPrefix(srv.URL, "http")

	// the session ends when the server requests a reconnect
	err := g.runSession()
	require.Error(t, err)

	select {
	case ev := <-handler.messages:
		assert.Equal(t, "FICHA CRIMINAL anexada", ev.Content)
		assert.Equal(t, "u1", ev.Author.ID)
		assert.Equal(t, "c1", ev.ChannelID)
	default:
		t.Fatal("MESSAGE_CREATE was not dispatched to the handler")
	}

	select {
	case <-heartbeats:
	case <-time.After(time.Second):
		t.Fatal("no heartbeat reached the server")
	}
}
