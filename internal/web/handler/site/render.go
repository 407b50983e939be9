package site

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"

	"github.com/garantico/feedsite/internal/db/models"
)

// sanitizer strips anything dangerous from authored HTML and rendered
// markdown before it reaches a template.
var sanitizer = bluemonday.UGCPolicy()

var markdown = goldmark.New()

// renderBlock converts one content block into safe HTML for the requested
// locale. Plain text is escaped, markdown is rendered then sanitized, HTML is
// sanitized as-is.
func renderBlock(block *models.PageContent, locale string) template.HTML {
	raw := block.Content(locale)

	switch block.Type {
	case models.ContentTypeHTML:
		return template.HTML(sanitizer.Sanitize(raw)) //nolint:gosec
	case models.ContentTypeMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(raw), &buf); err != nil {
			log.Warn().Err(err).Uint64("id", block.ID).Msg("markdown conversion failed, falling back to plain text")
			return template.HTML(template.HTMLEscapeString(raw)) //nolint:gosec
		}

		return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())) //nolint:gosec
	default:
		return template.HTML(template.HTMLEscapeString(raw)) //nolint:gosec
	}
}
