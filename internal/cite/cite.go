package cite

import (
	"fmt"

	"github.com/dgallion1/citator/internal/locate"
	"github.com/dgallion1/citator/internal/play"
	"golang.org/x/net/html"
)

// Citation is a quoted excerpt with its position in the play.
type Citation struct {
	Quote string
	Act   int
	Scene int
	Lines locate.Range
	Found bool // false when the line range could not be located
}

// For locates quote in scene and returns the resulting citation.
func For(quote string, scene *play.Scene) Citation {
	c := Citation{Quote: quote, Act: scene.Act, Scene: scene.Number}
	c.Lines, c.Found = locate.Locate(quote, scene)
	return c
}

// Reference renders the position: "3.1.56-57", or "3.1" when the lines are
// unknown.
func (c Citation) Reference() string {
	if !c.Found {
		return fmt.Sprintf("%d.%d", c.Act, c.Scene)
	}
	return fmt.Sprintf("%d.%d.%s", c.Act, c.Scene, c.Lines)
}

// String renders the plain-text citation: "quote" (3.1.56-57).
func (c Citation) String() string {
	return `"` + c.Quote + `" (` + c.Reference() + ")"
}

// HTML renders the rich-text clipboard form with the quote escaped.
func (c Citation) HTML() string {
	return "<b>&quot;" + html.EscapeString(c.Quote) + "&quot; (" + c.Reference() + ")</b>"
}
