package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var public embed.FS

// Inline payloads served by dedicated routes instead of the file server.
var (
	//go:embed assets/style.css
	StyleCSS string

	//go:embed assets/script.js
	ScriptJS string
)

// Public returns the embedded public directory rooted at its top level.
func Public() fs.FS {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		// "public" is a compile-time constant of the embed above
		panic(err)
	}
	return sub
}
