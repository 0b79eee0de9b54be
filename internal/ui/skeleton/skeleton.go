package skeleton

import (
	"time"

	"github.com/nhle/trade-alerts/internal/model"
)

// Variant names a placeholder shape.
type Variant string

const (
	VariantCard  Variant = "card"
	VariantList  Variant = "list"
	VariantTable Variant = "table"
	VariantChart Variant = "chart"
	VariantStat  Variant = "stat"
	VariantText  Variant = "text"
	VariantAlert Variant = "alert"

	// VariantGeneric is used for any tag not listed above.
	VariantGeneric Variant = "generic"
)

// StaggerStep is the animation delay added per block index.
const StaggerStep = 100 * time.Millisecond

// shapes lists, per variant, the width of each bar as a percentage of the
// block width. A zero entry is a blank spacer row.
var shapes = map[Variant][]int{
	VariantCard:  {45, 0, 100, 100, 70},
	VariantList:  {90, 60},
	VariantTable: {100, 100, 100, 100},
	VariantChart: {30, 0, 100, 100, 100, 100, 100},
	VariantStat:  {35, 80},
	VariantText:  {100, 95, 100, 60},
	VariantAlert: {20, 75, 100},

	VariantGeneric: {100, 80},
}

// Block is a single placeholder.
type Block struct {
	Index   int
	Variant Variant
	Delay   time.Duration
}

// Rows returns the bar widths of the block's shape in percent.
func (b Block) Rows() []int {
	return Shape(b.Variant)
}

// Resolve maps a raw variant tag to a supported variant.
func Resolve(tag string) Variant {
	v := Variant(tag)
	if _, ok := shapes[v]; ok {
		return v
	}
	return VariantGeneric
}

// Shape returns a copy of the bar widths for v, falling back to the
// generic shape for unknown variants.
func Shape(v Variant) []int {
	rows, ok := shapes[v]
	if !ok {
		rows = shapes[VariantGeneric]
	}
	out := make([]int, len(rows))
	copy(out, rows)
	return out
}

// Generate returns req.Count blocks of the requested shape. A count of
// zero or less yields an empty slice.
func Generate(req model.PlaceholderRequest) []Block {
	if req.Count <= 0 {
		return []Block{}
	}

	v := Resolve(req.Variant)
	blocks := make([]Block, req.Count)
	for i := range blocks {
		blocks[i] = Block{
			Index:   i,
			Variant: v,
			Delay:   time.Duration(i) * StaggerStep,
		}
	}
	return blocks
}
