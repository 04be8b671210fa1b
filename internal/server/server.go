package server

import (
	"io/fs"
	"net/http"
	"os"

	"lyrics-server/internal/handlers"
	"lyrics-server/internal/lyrics"
	"lyrics-server/internal/middleware"
	"lyrics-server/internal/prompt"
	"lyrics-server/internal/websocket"
	"lyrics-server/pkg/config"
	"lyrics-server/web"
)

// NewRouter wires the routes for cfg. The inline resources take precedence
// over same-named files in the public directory.
func NewRouter(cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /style.css", handlers.StyleHandler)
	mux.HandleFunc("GET /script.js", handlers.ScriptHandler)

	ctrl := prompt.NewController(lyrics.NewClient(cfg.LyricsAPIURL))
	mux.HandleFunc("GET /ws", websocket.Handler(ctrl))

	mux.Handle("GET /", handlers.StaticHandler(publicFS(cfg)))

	return middleware.SecurityHeaders(middleware.Logging(mux))
}

func publicFS(cfg *config.Config) fs.FS {
	if cfg.PublicDir != "" {
		return os.DirFS(cfg.PublicDir)
	}
	return web.Public()
}
