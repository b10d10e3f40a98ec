package sheet

// Direction is a character facing. Its string value doubles as the name of
// the per-direction frame subdirectory on disk.
type Direction string

const (
	South     Direction = "south"
	SouthEast Direction = "south-east"
	East      Direction = "east"
	NorthEast Direction = "north-east"
	North     Direction = "north"
	NorthWest Direction = "north-west"
	West      Direction = "west"
	SouthWest Direction = "south-west"
)

// Directions lists all eight facings in spritesheet row order. The consumer
// maps row N of a sheet back to Directions[N]; do not reorder.
var Directions = [8]Direction{
	South,
	SouthEast,
	East,
	NorthEast,
	North,
	NorthWest,
	West,
	SouthWest,
}

// Row returns the spritesheet row index for the direction, or -1 if the
// direction is not one of the eight known facings.
func (d Direction) Row() int {
	for i, dir := range Directions {
		if d == dir {
			return i
		}
	}
	return -1
}
