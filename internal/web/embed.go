package web

import (
	"embed"
	"io/fs"
	"path"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS hands the embedded template tree to the view engine, which
// resolves names relative to the templates root rather than the module root.
type templateEmbedFS struct {
	content embed.FS
}

// Open resolves name under the embedded templates directory.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join("templates", name))
}
