package types

import (
	"encoding/json"
	"math"
	"sync"

	"github.com/gorilla/websocket"
)

// LyricsResponse is the payload returned by the lyrics API
type LyricsResponse struct {
	Status Truthy `json:"status"`
	Lyrics string `json:"lyrics"`
}

// Truthy decodes any JSON value with JavaScript truthiness: false, null,
// 0, NaN and "" are false, everything else is true.
type Truthy bool

func (t *Truthy) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*t = false
	case bool:
		*t = Truthy(x)
	case float64:
		*t = Truthy(x != 0 && !math.IsNaN(x))
	case string:
		*t = x != ""
	default:
		*t = true
	}
	return nil
}

// UIState mirrors the visibility flags of the page
type UIState struct {
	GenerateVisible bool   `json:"generateVisible"`
	LoadingVisible  bool   `json:"loadingVisible"`
	ResultVisible   bool   `json:"resultVisible"`
	AlertVisible    bool   `json:"alertVisible"`
	AlertText       string `json:"alertText,omitempty"`
	LyricsHTML      string `json:"lyricsHtml,omitempty"`
}

// WSMessage represents a message sent to a relay client
type WSMessage struct {
	Type    string   `json:"type"` // "state" or "error"
	State   *UIState `json:"state,omitempty"`
	Message string   `json:"message,omitempty"`
}

// WSClientMessage represents a message from a relay client
type WSClientMessage struct {
	Action string `json:"action"` // "generate" or "dismiss"
	Prompt string `json:"prompt,omitempty"`
}

// WSClient represents a WebSocket client connection
type WSClient struct {
	Conn *websocket.Conn
	Mu   sync.Mutex
}

// WriteJSON serialises writes on the connection
func (c *WSClient) WriteJSON(v interface{}) error {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	return c.Conn.WriteJSON(v)
}
