// Package layout splits a terminal screen into panes with a small flex
// model: a Column or Row of items, each with a min/max size along the main
// axis, optionally nesting another Flex.
package layout

type Point struct {
	X, Y int
}

// Dimensions of a resolved box.
type Dimensions struct {
	Origin        Point // TL corner
	Width, Height int
}

func (d Dimensions) Contains(p Point) bool {
	return p.X >= d.Origin.X && p.X < d.Origin.X+d.Width &&
		p.Y >= d.Origin.Y && p.Y < d.Origin.Y+d.Height
}

// Box draws itself into the area it was given.
type Box func(Dimensions)

func EmptyBox(Dimensions) {}

type Direction int

const (
	Y Direction = iota // items stacked top to bottom
	X                  // items side by side
)

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

type FlexItem struct {
	Box  Box
	Flex *Flex
	Size Constraint
}

// Item places box, and then flex inside the same area, if not nil.
func Item(box Box, size Constraint, flex *Flex) FlexItem {
	if box == nil {
		box = EmptyBox
	}
	return FlexItem{Box: box, Size: size, Flex: flex}
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

func Between(lo, hi Size) Constraint {
	return Constraint{Min: lo, Max: hi}
}

type Size struct {
	abs int     // absolute cells
	rel float64 // [0, 1] of the parent's main axis
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}
	return int(s.rel * float64(size))
}

// Apply lays the flex out over a width x height screen and calls every box.
func (f *Flex) Apply(width, height int) []Dimensions {
	return f.Layout(Dimensions{Width: width, Height: height})
}

// Layout resolves the items inside area, draws them in order and then
// descends into nested flexes. It returns the area given to each top-level
// item; items whose minimum size could not be met get a zero area and are
// not drawn.
func (f *Flex) Layout(area Dimensions) []Dimensions {
	total := area.Height
	if f.Dir == X {
		total = area.Width
	}
	sizes := f.distribute(total)

	placed := make([]Dimensions, len(f.Items))
	offset := 0
	for i, item := range f.Items {
		if sizes[i] < 0 {
			continue
		}
		dim := area
		if f.Dir == Y {
			dim.Origin.Y += offset
			dim.Height = sizes[i]
		} else {
			dim.Origin.X += offset
			dim.Width = sizes[i]
		}
		offset += sizes[i]
		placed[i] = dim
		item.Box(dim)
	}

	// nested flexes draw on top of their parent box
	for i, item := range f.Items {
		if item.Flex != nil && sizes[i] >= 0 {
			item.Flex.Layout(placed[i])
		}
	}
	return placed
}

// distribute returns the main-axis size of every item, -1 for items that
// do not fit. Every fitting item gets its minimum first; what is left is
// shared evenly among items still below their maximum.
func (f *Flex) distribute(total int) []int {
	n := len(f.Items)
	sizes := make([]int, n)
	maxs := make([]int, n)

	remaining := total
	for i, item := range f.Items {
		lo := item.Size.Min.toAbs(total)
		hi := max(item.Size.Max.toAbs(total), lo)
		if lo > remaining {
			sizes[i] = -1
			continue
		}
		sizes[i], maxs[i] = lo, hi
		remaining -= lo
	}

	for remaining > 0 {
		var open []int
		for i := range sizes {
			if sizes[i] >= 0 && sizes[i] < maxs[i] {
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			break
		}
		share := remaining / len(open)
		if share == 0 {
			for _, i := range open[:remaining] {
				sizes[i]++
			}
			break
		}
		for _, i := range open {
			add := min(share, maxs[i]-sizes[i])
			sizes[i] += add
			remaining -= add
		}
	}
	return sizes
}
