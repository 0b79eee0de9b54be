package model

// PlaceholderRequest controls how many skeleton blocks are rendered and
// which shape they take.
type PlaceholderRequest struct {
	Variant string
	Count   int
	Columns int
}
