package layout

import "github.com/nanofcn/fcnpr/grid"

// BoundingBox scans every layer and returns the minimum rectangle (in x,y)
// containing every non-free tile. ok is false if the layout is empty.
func (l *Layout) BoundingBox() (minX, minY, maxX, maxY int, ok bool) {
	first := true
	for t := range l.vertexOfTile {
		minX, minY, maxX, maxY = growBox(t, minX, minY, maxX, maxY, &first)
	}
	for t := range l.edgesOfTile {
		if len(l.edgesOfTile[t]) == 0 {
			continue
		}
		minX, minY, maxX, maxY = growBox(t, minX, minY, maxX, maxY, &first)
	}
	return minX, minY, maxX, maxY, !first
}

func growBox(t grid.Tile, minX, minY, maxX, maxY int, first *bool) (int, int, int, int) {
	if *first {
		*first = false
		return t.X, t.Y, t.X, t.Y
	}
	if t.X < minX {
		minX = t.X
	}
	if t.X > maxX {
		maxX = t.X
	}
	if t.Y < minY {
		minY = t.Y
	}
	if t.Y > maxY {
		maxY = t.Y
	}
	return minX, minY, maxX, maxY
}

// ShrinkToFit resizes the layout's grid to (maxX+1, maxY+1, z), the
// bounding box computed by BoundingBox, leaving z unchanged and the
// top-left corner fixed at (0,0,0) so no occupied tile's indices change.
// It is a no-op (returning ErrEmptyLayout) when the layout holds nothing.
func (l *Layout) ShrinkToFit() error {
	_, _, maxX, maxY, ok := l.BoundingBox()
	if !ok {
		return ErrEmptyLayout
	}
	_, _, z := l.g.Dims()
	ng, err := grid.New(maxX+1, maxY+1, z)
	if err != nil {
		return err
	}
	l.setGrid(ng)
	return nil
}
