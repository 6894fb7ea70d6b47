package core

// Size describes the dimensions of a terrain grid.
type Size struct {
	W int
	H int
}
