package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"costr/internal/logger"
	"costr/internal/model"
	"costr/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func readEvent(t *testing.T, conn *websocket.Conn) map[string]json.RawMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(msg, &out); err != nil {
		t.Fatalf("invalid event %s: %v", msg, err)
	}
	return out
}

func TestHubReplaysThemeAndBroadcastsStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(logger.Discard())
	go hub.Run()

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { ServeWs(hub, c) })
	srv := httptest.NewServer(router)
	defer srv.Close()

	derived, err := theme.Derive(model.DefaultPrimaryColor, model.DefaultSecondaryColor)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	hub.ApplyTheme(derived)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	// The first message is the replayed theme, which also proves registration
	first := readEvent(t, conn)
	if string(first["event"]) != `"theme"` {
		t.Fatalf("expected theme event first, got %s", first["event"])
	}
	var data ThemeData
	if err := json.Unmarshal(first["data"], &data); err != nil {
		t.Fatalf("theme payload: %v", err)
	}
	if data.Colors != derived || data.Variables["--color-primary-light"] != derived.PrimaryLight {
		t.Fatalf("unexpected theme payload %+v", data)
	}

	hub.PublishStorageChange(model.KeyDocuments)
	next := readEvent(t, conn)
	if string(next["event"]) != `"storage"` || string(next["data"]) != `{"key":"documents"}` {
		t.Fatalf("unexpected storage event %v", next)
	}
}

func TestPublishDoesNotBlockWithoutRunLoop(t *testing.T) {
	hub := NewHub(logger.Discard())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.PublishStorageChange(model.KeyCustomers)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}
