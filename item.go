package rtree

// Item is the opaque payload stored in the tree. The tree itself never
// inspects an Item beyond calling BoundsFunc and, on delete, EqualsFunc (or
// ==) against it; it exists purely as a caller-defined identity.
type Item interface{}

// BoundsFunc extracts the bounding rectangle under which an item should be
// indexed. It is supplied once, to New, and is assumed to be stable: Delete
// calls it again on the item it is given and searches under that rectangle
// for the entry stored by Insert.
type BoundsFunc func(item Item) Rectangle

// EqualsFunc reports whether two items represent the same stored payload.
// Delete accepts a nil EqualsFunc, in which case items are compared with
// Go's == operator.
type EqualsFunc func(a, b Item) bool

// entry is a leaf occupant: a bounding rectangle paired with the payload it
// indexes.
type entry struct {
	bbox    Rectangle
	payload Item
}

func (e entry) bounds() Rectangle { return e.bbox }
