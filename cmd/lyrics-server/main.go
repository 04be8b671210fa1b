package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"lyrics-server/internal/server"
	"lyrics-server/pkg/config"
)

func main() {
	// Configure logrus
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	logrus.SetLevel(cfg.LogLevel)

	logrus.WithFields(logrus.Fields{
		"publicDir": cfg.PublicDir,
		"lyricsApi": cfg.LyricsAPIURL,
	}).Debug("Configuration loaded")

	logrus.Infof("Server running on http://localhost:%d", cfg.Port)
	logrus.Fatal(http.ListenAndServe(cfg.Addr(), server.NewRouter(cfg)))
}
