// Package direction defines a four-way bitset over {North, East, South, West}
// used throughout fcnpr to describe which side of a tile information enters
// or leaves on.
//
// Set is a pure value type: every operation (Union, Intersect, Complement,
// Opposite, Has) is a constant-time bit operation, and encoding only matters
// at serialization/port-routing boundaries (see package port).
package direction
