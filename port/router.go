package port

import (
	"github.com/nanofcn/fcnpr/direction"
	"github.com/nanofcn/fcnpr/grid"
	"github.com/nanofcn/fcnpr/layout"
)

// RouteTile emits the PortList for tile t: ports for the vertex occupying
// t when t is a gate tile, or ports for every edge routed through t when t
// is a wire tile. Free tiles yield the empty List. Each cardinal bit of a
// direction mask consumes one slot of the size library, in the order the
// mask's edges are iterated; exceeding the library's slot count for a side
// returns an UnsupportedPortPatternError.
func RouteTile(size Size, l *layout.Layout, t grid.Tile) (List, error) {
	lib, err := libraryFor(size)
	if err != nil {
		return List{}, err
	}

	var result List
	occIn := map[direction.Set]int{}
	occOut := map[direction.Set]int{}

	appendPorts := func(dirs direction.Set, occ map[direction.Set]int, dst *[]Port) error {
		for _, bit := range direction.Bits(dirs) {
			p, ok := lib.lookup(bit, occ[bit])
			if !ok {
				return &UnsupportedPortPatternError{Tile: t}
			}
			*dst = append(*dst, p)
			occ[bit]++
		}
		return nil
	}

	if l.IsGateTile(t) {
		if err := appendPorts(l.TileInDirs(t), occIn, &result.Inp); err != nil {
			return List{}, err
		}
		if err := appendPorts(l.TileOutDirs(t), occOut, &result.Out); err != nil {
			return List{}, err
		}
		return result, nil
	}

	for _, e := range l.EdgesOn(t) {
		if err := appendPorts(l.WireInDirs(t, e), occIn, &result.Inp); err != nil {
			return List{}, err
		}
		if err := appendPorts(l.WireOutDirs(t, e), occOut, &result.Out); err != nil {
			return List{}, err
		}
	}
	return result, nil
}

// RouteLayout runs RouteTile over every gate or wire tile in l's grid,
// stopping at the first UnsupportedPortPatternError.
func RouteLayout(size Size, l *layout.Layout) (map[grid.Tile]List, error) {
	out := make(map[grid.Tile]List)
	x, y, z := l.Grid().Dims()
	for zz := 0; zz < z; zz++ {
		for yy := 0; yy < y; yy++ {
			for xx := 0; xx < x; xx++ {
				t := grid.Tile{X: xx, Y: yy, Z: zz}
				if l.IsFreeTile(t) {
					continue
				}
				ports, err := RouteTile(size, l, t)
				if err != nil {
					return nil, err
				}
				out[t] = ports
			}
		}
	}
	return out, nil
}
