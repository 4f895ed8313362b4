package search_test

import (
	"fmt"

	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/reservation"
	"github.com/katalvlaran/railplan/search"
)

// ExampleSearch shows a single agent crossing an open 1x3 corridor with no
// reservations in the way: the result is the direct three-cell path.
func ExampleSearch() {
	rail := core.NewOpenGridRail(3, 1)
	tab := reservation.New()

	path, reached := search.Search(search.Request{
		Rail:         rail,
		Reservation:  tab,
		Start:        core.Cell{Row: 0, Col: 0},
		StartHeading: core.East,
		Target:       core.Cell{Row: 0, Col: 2},
		Cmax:         1,
		TMax:         10,
	})
	fmt.Println(reached, path)
	// Output: true [{0 0} {0 1} {0 2}]
}
