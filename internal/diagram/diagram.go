// Package diagram renders hand-authored SVG templates keyed off a
// free-text description. Generation never fails: any panic mid-render is
// swallowed and the fallback template is returned instead, so a broken
// diagram can never fail the surrounding analysis request.
package diagram

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

type kind int

const (
	kindStructure kind = iota
	kindStateTree
	kindAnalogy
	kindGeneric
)

// descriptionBudget caps how much of the description is interpolated into
// the template's caption text node.
const descriptionBudget = 80

func classify(description string) kind {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "project structure") || strings.Contains(d, "file organization"):
		return kindStructure
	case strings.Contains(d, "data flow") || strings.Contains(d, "state") || strings.Contains(d, "props"):
		return kindStateTree
	case strings.Contains(d, "analogies") || strings.Contains(d, "concepts"):
		return kindAnalogy
	default:
		return kindGeneric
	}
}

func truncate(description string) string {
	if len(description) <= descriptionBudget {
		return description
	}
	// Back up to a rune boundary so the cut never leaves invalid UTF-8
	// in the SVG text node.
	cut := descriptionBudget
	for cut > 0 && !utf8.RuneStart(description[cut]) {
		cut--
	}
	return description[:cut] + "..."
}

// Generate returns a base64 data URI for the template matching the
// description. The apiKey parameter mirrors the AI provider call shape and
// is not used by the renderer.
func Generate(description, apiKey string) string {
	_ = apiKey
	return generateWith(renderTemplate, description)
}

func generateWith(render func(kind, string) string, description string) (uri string) {
	defer func() {
		if r := recover(); r != nil {
			uri = encode(fallbackSVG)
		}
	}()
	return encode(render(classify(description), truncate(description)))
}

func encode(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
