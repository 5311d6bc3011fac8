package optionsbar_test

import (
	"fmt"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar"
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/constants"
)

// Example demonstrates the caller-owned selection loop: the bar reports an
// accepted action through OnSelect, and the indicator only moves once the
// caller commits the new id back through SetConfig.
func Example() {
	cfg := optionsbar.Config[string]{
		Items:      []string{"Games", "Apps", "Settings"},
		SelectedID: "Games",
	}

	bar, err := optionsbar.New(cfg)
	if err != nil {
		fmt.Println("new:", err)
		return
	}
	defer bar.Destroy()

	cfg.OnSelect = func(id string) {
		fmt.Println("selected:", id)
		cfg.SelectedID = id
		_ = bar.SetConfig(cfg) // commit, starting the indicator slide
	}
	_ = bar.SetConfig(cfg)

	// One right press on the D-pad (or arrow key) moves the selection.
	bar.HandleButton(constants.VirtualButtonRight, true)
	bar.HandleButton(constants.VirtualButtonRight, false)

	fmt.Println("committed:", bar.SelectedID())

	// Output:
	// selected: Apps
	// committed: Apps
}

// Example_structItems shows a custom item type with resolver functions
// mapping each element to its stable id and display label.
func Example_structItems() {
	type Section struct {
		Key   string
		Title string
	}

	bar, err := optionsbar.New(optionsbar.Config[Section]{
		Items: []Section{
			{Key: "recent", Title: "Recently Played"},
			{Key: "favorites", Title: "Favorites"},
		},
		SelectedID:   "favorites",
		ResolveID:    func(s Section) string { return s.Key },
		ResolveLabel: func(s Section) string { return s.Title },
	})
	if err != nil {
		fmt.Println("new:", err)
		return
	}
	defer bar.Destroy()

	fmt.Println("committed:", bar.SelectedID())

	// Output:
	// committed: favorites
}
