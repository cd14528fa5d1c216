package order

// Patch describes a partial update of an order. A nil field means "do not
// touch"; there is no way to clear a field through a Patch, which keeps
// "explicitly cleared" and "not supplied" from being conflated.
//
// Items are merged by id against the existing items of the order: matching
// items get the new name and quantity, ids that do not match any existing
// item are silently ignored, and items absent from the patch are left
// untouched. A Patch never inserts or deletes items.
type Patch struct {
	Name        *string
	Description *string
	Status      *Status
	Items       []Item
}
