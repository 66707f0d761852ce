package resource

// Amounts holds one non-negative quantity per resource kind.
// The zero value is "nothing of anything".
type Amounts [NumKinds]uint16

// Get returns the amount stored for k.
func (a Amounts) Get(k Kind) uint16 { return a[k] }

// IsZero reports whether every entry is zero.
func (a Amounts) IsZero() bool {
	return a == Amounts{}
}

// Covers reports whether a holds at least cost of every kind.
// A zero entry in cost is always satisfied.
//
// Complexity: O(NumKinds).
func (a Amounts) Covers(cost Amounts) bool {
	var k int
	for k = 0; k < NumKinds; k++ {
		if a[k] < cost[k] {
			return false
		}
	}

	return true
}

// Add returns the component-wise sum a+b.
// Callers are responsible for keeping the sum within uint16.
func (a Amounts) Add(b Amounts) Amounts {
	var k int
	for k = 0; k < NumKinds; k++ {
		a[k] += b[k]
	}

	return a
}

// Sub returns the component-wise difference a-cost.
// The caller must have checked a.Covers(cost); Sub never wraps around
// when that holds.
func (a Amounts) Sub(cost Amounts) Amounts {
	var k int
	for k = 0; k < NumKinds; k++ {
		a[k] -= cost[k]
	}

	return a
}
