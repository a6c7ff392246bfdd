package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/pattern"
)

const exportName = "tokenlistooor-pattern.svg"

// saveDialog asks where to save the static pattern and writes it there.
func (g *Game) saveDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Background Pattern"),
		zenity.Filename(exportName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{
			{Name: "SVG image", Patterns: []string{"*.svg"}},
			{Name: "PNG image", Patterns: []string{"*.png"}},
			{Name: "Data URI", Patterns: []string{"*.uri"}},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if err := pattern.WriteFile(g.static(), filename); err != nil {
		return err
	}
	log.Printf("saved pattern to %s", filename)
	return nil
}
