package life

import (
	"fmt"
	"strings"
)

// PatternID names an initial configuration accepted by Reset.
type PatternID string

const (
	Random      PatternID = "random"
	Spaceships  PatternID = "spaceships"
	Oscillators PatternID = "oscillators"
)

// Pattern is an immutable set of live-cell offsets relative to an anchor.
type Pattern struct {
	Name  string
	Cells [][2]int
}

// Placement stamps a pattern with its top-left corner at (Row, Col).
type Placement struct {
	Pattern *Pattern
	Row     int
	Col     int
}

var (
	glider = &Pattern{Name: "glider", Cells: [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
	}}
	lwss = &Pattern{Name: "lwss", Cells: [][2]int{
		{0, 0}, {0, 3}, {1, 4}, {2, 0}, {2, 4}, {3, 1}, {3, 2}, {3, 3}, {3, 4},
	}}
	mwss = &Pattern{Name: "mwss", Cells: [][2]int{
		{0, 2}, {1, 0}, {1, 4}, {2, 5}, {3, 0}, {3, 5}, {4, 1}, {4, 2},
		{4, 3}, {4, 4}, {4, 5},
	}}
	hwss = &Pattern{Name: "hwss", Cells: [][2]int{
		{0, 2}, {0, 3}, {1, 0}, {1, 5}, {2, 6}, {3, 0}, {3, 6}, {4, 1},
		{4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6},
	}}

	block   = &Pattern{Name: "block", Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	beehive = &Pattern{Name: "beehive", Cells: [][2]int{
		{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2},
	}}
	loaf = &Pattern{Name: "loaf", Cells: [][2]int{
		{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 3}, {3, 2},
	}}
	boat = &Pattern{Name: "boat", Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 2}, {2, 1}}}
	tub  = &Pattern{Name: "tub", Cells: [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}}

	blinker = &Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}}
	toad    = &Pattern{Name: "toad", Cells: [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2},
	}}
	beacon = &Pattern{Name: "beacon", Cells: [][2]int{
		{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3},
	}}
	pulsar = &Pattern{Name: "pulsar", Cells: [][2]int{
		{0, 2}, {0, 3}, {0, 4}, {0, 8}, {0, 9}, {0, 10}, {2, 0}, {2, 5},
		{2, 7}, {2, 12}, {3, 0}, {3, 5}, {3, 7}, {3, 12}, {4, 0}, {4, 5},
		{4, 7}, {4, 12}, {5, 2}, {5, 3}, {5, 4}, {5, 8}, {5, 9}, {5, 10},
		{7, 2}, {7, 3}, {7, 4}, {7, 8}, {7, 9}, {7, 10}, {8, 0}, {8, 5},
		{8, 7}, {8, 12}, {9, 0}, {9, 5}, {9, 7}, {9, 12}, {10, 0}, {10, 5},
		{10, 7}, {10, 12}, {12, 2}, {12, 3}, {12, 4}, {12, 8}, {12, 9}, {12, 10},
	}}
	pentadecathlon = &Pattern{Name: "pentadecathlon", Cells: [][2]int{
		{0, 2}, {1, 1}, {1, 2}, {1, 3}, {2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
		{9, 0}, {9, 1}, {9, 2}, {9, 3}, {9, 4}, {10, 1}, {10, 2}, {10, 3}, {11, 2},
	}}
)

var presets = []*Pattern{
	glider, lwss, mwss, hwss,
	block, beehive, loaf, boat, tub,
	blinker, toad, beacon, pulsar, pentadecathlon,
}

// Preset returns a copy of the named built-in pattern. Changing the copy does
// not affect the layouts Reset stamps.
func Preset(name string) (Pattern, bool) {
	for _, p := range presets {
		if p.Name == name {
			return Pattern{Name: p.Name, Cells: append([][2]int(nil), p.Cells...)}, true
		}
	}
	return Pattern{}, false
}

// spaceshipLayout places each ship at a fixed anchor in column 2.
var spaceshipLayout = []Placement{
	{Pattern: glider, Row: 2, Col: 2},
	{Pattern: lwss, Row: 14, Col: 2},
	{Pattern: mwss, Row: 26, Col: 2},
	{Pattern: hwss, Row: 38, Col: 2},
}

// stillLifeLayout lines the still lifes up along row 10.
var stillLifeLayout = []Placement{
	{Pattern: block, Row: 10, Col: 28},
	{Pattern: beehive, Row: 10, Col: 36},
	{Pattern: loaf, Row: 10, Col: 45},
	{Pattern: boat, Row: 10, Col: 54},
	{Pattern: tub, Row: 10, Col: 63},
}

// oscillatorLayout stacks the small oscillators in column 15 with the pulsar
// and pentadecathlon to their right.
var oscillatorLayout = []Placement{
	{Pattern: blinker, Row: 11, Col: 15},
	{Pattern: toad, Row: 23, Col: 15},
	{Pattern: beacon, Row: 35, Col: 15},
	{Pattern: pulsar, Row: 24, Col: 34},
	{Pattern: pentadecathlon, Row: 24, Col: 61},
}

// Seeder populates a cleared engine grid.
type Seeder func(e *Engine) error

var (
	seeders = map[PatternID]Seeder{}
	order   []PatternID
)

// Register adds a seeder under id. Registration order is the menu order.
func Register(id PatternID, s Seeder) {
	if id == "" || s == nil {
		return
	}
	if _, dup := seeders[id]; !dup {
		order = append(order, id)
	}
	seeders[id] = s
}

// Patterns lists the registered pattern ids in menu order.
func Patterns() []PatternID {
	return append([]PatternID(nil), order...)
}

// ParsePattern resolves s to a registered id, ignoring case and surrounding
// whitespace.
func ParsePattern(s string) (PatternID, error) {
	id := PatternID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := seeders[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPattern, s)
	}
	return id, nil
}

func placeAll(layouts ...[]Placement) Seeder {
	return func(e *Engine) error {
		for _, layout := range layouts {
			for _, p := range layout {
				e.Place(p)
			}
		}
		return nil
	}
}

func init() {
	Register(Random, func(e *Engine) error { return e.randomize(0.5) })
	Register(Spaceships, placeAll(spaceshipLayout))
	Register(Oscillators, placeAll(stillLifeLayout, oscillatorLayout))
}
