package dip

// Person is a node in the relationship graph, identified by name only.
type Person struct {
	Name string
}

// NewPerson creates a Person.
func NewPerson(name string) Person {
	return Person{Name: name}
}

// Relationship is the kind of directed edge between two persons.
type Relationship int

const (
	Parent Relationship = iota
	Child
)

// String provides a string representation of Relationship for logging and narration.
func (r Relationship) String() string {
	switch r {
	case Parent:
		return "PARENT"
	case Child:
		return "CHILD"
	default:
		return "UNKNOWN"
	}
}
