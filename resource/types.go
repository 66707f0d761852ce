package resource

import "strconv"

// Kind identifies one resource (and the robot that produces it).
type Kind uint8

const (
	// Ore is produced by the robot every run starts with.
	Ore Kind = iota
	// Clay is an intermediate resource.
	Clay
	// Obsidian is an intermediate resource.
	Obsidian
	// Geode is the terminal resource.
	Geode
)

// NumKinds is the number of resource kinds. It sizes every Amounts vector.
const NumKinds = 4

// Terminal is the kind whose final stockpile is maximized.
const Terminal = Geode

var kindNames = [NumKinds]string{"ore", "clay", "obsidian", "geode"}

// Kinds returns all kinds in declaration order.
func Kinds() [NumKinds]Kind {
	return [NumKinds]Kind{Ore, Clay, Obsidian, Geode}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < NumKinds }

// Terminal reports whether k is the terminal kind.
func (k Kind) Terminal() bool { return k == Terminal }

// String returns the lower-case name of k, or "kind(N)" for unknown values.
func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Parse maps a lower-case kind name back to its Kind.
func Parse(name string) (Kind, bool) {
	var k Kind
	for k = 0; k < NumKinds; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}

	return 0, false
}
