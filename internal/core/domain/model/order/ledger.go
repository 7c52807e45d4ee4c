package order

// Pure ledger functions deriving quantity totals from the allocation maps.
// The nested product->box->quantity map is the single source of truth; these
// derivations replace the parallel per-product and per-box caches the
// presentation layer would otherwise have to keep in sync.
//
// All functions treat missing or negative entries as 0 and never fail on
// well-typed input. Rejecting a negative quantity before it is stored is the
// caller's job; by the time an allocation map reaches the ledger it only
// contributes non-negative amounts to any total.

// TotalPackedForProduct sums the box quantities of one product's allocation map.
// The result is never negative.
func TotalPackedForProduct(allocations map[string]int) int {
	total := 0
	for _, quantity := range allocations {
		if quantity > 0 {
			total += quantity
		}
	}
	return total
}

// RemainingForProduct returns the line's available quantity minus its packed
// total. The result may be negative while a proposed allocation over-packs a
// line; validation turns that into an error before it can persist.
func RemainingForProduct(line *ProductLine) int {
	return line.QuantityAvailable() - TotalPackedForProduct(line.Allocations())
}

// TotalForBox sums, over all product lines, the quantity each allocates to the
// given box.
func TotalForBox(boxID string, lines []*ProductLine) int {
	total := 0
	for _, line := range lines {
		if quantity := line.AllocationFor(boxID); quantity > 0 {
			total += quantity
		}
	}
	return total
}

// IsBoxEmpty reports whether no product line allocates a positive quantity to
// the given box.
func IsBoxEmpty(boxID string, lines []*ProductLine) bool {
	return TotalForBox(boxID, lines) == 0
}
