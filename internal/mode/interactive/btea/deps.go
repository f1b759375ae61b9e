// ABOUTME: Dependency injection struct for the Bubble Tea list viewer
// ABOUTME: Bundles the loaded entries, their row catalog, settings and keybindings

package btea

import (
	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/source"
)

// AppDeps bundles all dependencies for the Bubble Tea viewer.
type AppDeps struct {
	Title    string
	Entries  []source.Entry
	Catalog  *source.Catalog
	Settings *config.Settings
	Keys     *config.Keybindings
}
