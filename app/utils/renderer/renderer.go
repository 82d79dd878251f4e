package renderer

import (
	"github.com/unrolled/render"
)

// New builds the JSON renderer shared by all handlers. The UI shell is a
// separate client; this service only speaks JSON.
func New() *render.Render {
	return render.New(render.Options{
		IndentJSON: false,
	})
}
