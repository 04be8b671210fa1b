package main

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"lyrics-server/internal/prompt"
	"lyrics-server/internal/types"
)

// generateViaRelay sends one generate action to a lyrics-server relay and
// replays the resulting state changes on view until the request settles.
func generateViaRelay(ctx context.Context, wsURL, raw string, view prompt.View) (prompt.Outcome, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return prompt.OutcomeFailed, fmt.Errorf("connect to relay: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if _, err := readState(conn); err != nil {
		return prompt.OutcomeFailed, err
	}

	if err := conn.WriteJSON(types.WSClientMessage{Action: "generate", Prompt: raw}); err != nil {
		return prompt.OutcomeFailed, fmt.Errorf("send generate: %w", err)
	}

	var prev types.UIState
	prev.GenerateVisible = true
	for {
		st, err := readState(conn)
		if err != nil {
			return prompt.OutcomeFailed, err
		}

		if st.LoadingVisible != prev.LoadingVisible {
			view.SetLoading(st.LoadingVisible)
		}
		if st.AlertVisible && (!prev.AlertVisible || st.AlertText != prev.AlertText) {
			view.ShowAlert(st.AlertText)
		}
		if st.ResultVisible && st.LyricsHTML != prev.LyricsHTML {
			view.ShowResult(st.LyricsHTML)
		}

		settled := !st.LoadingVisible && (prev.LoadingVisible || st.AlertVisible)
		prev = st
		if settled {
			return outcomeOf(st), nil
		}
	}
}

func readState(conn *websocket.Conn) (types.UIState, error) {
	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return types.UIState{}, fmt.Errorf("read relay message: %w", err)
		}
		switch msg.Type {
		case "state":
			if msg.State != nil {
				return *msg.State, nil
			}
		case "error":
			return types.UIState{}, fmt.Errorf("relay: %s", msg.Message)
		}
	}
}

func outcomeOf(st types.UIState) prompt.Outcome {
	if st.AlertVisible {
		switch st.AlertText {
		case prompt.MsgEmptyPrompt:
			return prompt.OutcomeEmpty
		case prompt.MsgRejected:
			return prompt.OutcomeRejected
		}
		return prompt.OutcomeFailed
	}
	return prompt.OutcomeRendered
}
