// Package views builds the HTML template engine and its helper functions.
package views

import (
	"html/template"

	"github.com/gofiber/template/html/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// New creates the template engine for the templates under dir.
// Templates are re-parsed on every render when reload is set.
func New(dir string, reload bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Reload(reload)
	engine.AddFunc("formatCount", FormatCount)
	engine.AddFunc("css", CSS)
	return engine
}

// FormatCount renders n with thousands separators, e.g. 1245 as "1,245".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// CSS marks an operator-configured value, such as a chart colour, as safe to
// place in a style attribute.
func CSS(s string) template.CSS {
	return template.CSS(s)
}
