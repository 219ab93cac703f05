package signals

import (
	"sort"
	"strings"

	"github.com/griddyn/griddyn/sampling"
)

// A Grid is a set of named buses. It builds sources from field expressions
// of the form [bus:]field, where field is a scalar field, "phases", or "all".
type Grid struct {
	buses map[string]*Bus
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{buses: make(map[string]*Bus)}
}

// AddBus creates a bus and adds it to the grid.
func (g *Grid) AddBus(name string) *Bus {
	b := NewBus(name)
	g.buses[name] = b

	return b
}

// Bus returns the named bus, or nil.
func (g *Grid) Bus(name string) *Bus {
	return g.buses[name]
}

// Buses returns all buses sorted by name.
func (g *Grid) Buses() []*Bus {
	buses := make([]*Bus, 0, len(g.buses))
	for _, b := range g.buses {
		buses = append(buses, b)
	}

	sort.Slice(buses, func(i, j int) bool {
		return buses[i].Name() < buses[j].Name()
	})

	return buses
}

// MakeSources resolves a field expression against target. A bus prefix
// overrides the target.
func (g *Grid) MakeSources(
	field string,
	target sampling.Target,
) []sampling.Source {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}

	bus, _ := target.(*Bus)
	if busName, f, found := strings.Cut(field, ":"); found {
		bus = g.buses[busName]
		field = f
	}

	switch {
	case field == "all":
		sources := make([]sampling.Source, 0, len(scalarFields))
		for _, f := range scalarFields {
			sources = append(sources, NewFieldSource(bus, f))
		}

		return sources
	case field == PhasesField:
		return []sampling.Source{NewPhaseSource(bus)}
	case isScalarField(field) || bus != nil:
		return []sampling.Source{NewFieldSource(bus, field)}
	}

	return nil
}

// MakeSourceAt returns the scalar field at a 1-based offset.
func (g *Grid) MakeSourceAt(
	offset int,
	target sampling.Target,
) sampling.Source {
	if offset < 1 || offset > len(scalarFields) {
		return nil
	}

	bus, _ := target.(*Bus)

	return NewFieldSource(bus, scalarFields[offset-1])
}
