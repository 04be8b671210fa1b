package websocket

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"lyrics-server/internal/prompt"
	"lyrics-server/internal/state"
	"lyrics-server/internal/types"
	"lyrics-server/pkg/config"
)

// Handler returns the relay endpoint. Each connection drives its own UI
// surface through ctrl and receives a "state" message after every change.
// Generate requests run concurrently and are not ordered: a later prompt
// may render before an earlier one.
func Handler(ctrl *prompt.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upgrader := config.GetUpgrader()
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("Failed to upgrade WebSocket connection")
			return
		}

		client := &types.WSClient{Conn: conn}
		log := logrus.WithField("remote", r.RemoteAddr)
		log.Info("Relay client connected")

		ctx, cancel := context.WithCancel(context.Background())
		var inflight sync.WaitGroup
		defer func() {
			cancel()
			conn.Close()
			inflight.Wait()
			log.Info("Relay client disconnected")
		}()

		surface := state.NewSurface(func(st types.UIState) {
			send(client, types.WSMessage{Type: "state", State: &st})
		})

		initial := surface.Snapshot()
		send(client, types.WSMessage{Type: "state", State: &initial})

		for {
			var msg types.WSClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.WithError(err).Error("WebSocket error")
				}
				return
			}

			log.WithField("action", msg.Action).Debug("WebSocket message received")

			switch msg.Action {
			case "generate":
				inflight.Add(1)
				go func(raw string) {
					defer inflight.Done()
					outcome := ctrl.Generate(ctx, surface, raw)
					log.WithField("outcome", outcome.String()).Info("Relay generate finished")
				}(msg.Prompt)
			case "dismiss":
				ctrl.Dismiss(surface)
			default:
				send(client, types.WSMessage{Type: "error", Message: "unknown action: " + msg.Action})
			}
		}
	}
}

func send(client *types.WSClient, msg types.WSMessage) {
	if err := client.WriteJSON(msg); err != nil {
		logrus.WithError(err).WithField("message_type", msg.Type).Debug("Failed to send WebSocket message to client")
	}
}
