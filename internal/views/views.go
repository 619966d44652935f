// Package views builds the HTML template engine shared by the server and
// the handler tests.
package views

import (
	"github.com/gofiber/template/html/v3"
)

// Layout is the layout every page renders into.
const Layout = "layouts/main"

// New returns an html engine over dir with the template helpers the views
// rely on. Templates are re-parsed on every render when reload is set.
func New(dir string, reload bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Reload(reload)
	engine.AddFunc("inc", func(i int) int { return i + 1 })
	return engine
}
