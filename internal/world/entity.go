package world

// Ref is a database reference: a stable integer handle identifying one
// entity in the object store. Ref 0 means "the void" (no location).
type Ref int

// Nowhere is the void reference used for entities without a container.
const Nowhere Ref = 0

// Kind discriminates the entity variants in the object store.
type Kind int

const (
	KindUnknown Kind = iota
	KindRoom
	KindExit
	KindItem
	KindPlayer
	KindThing
)

var kindNames = map[Kind]string{
	KindRoom:   "room",
	KindExit:   "exit",
	KindItem:   "item",
	KindPlayer: "player",
	KindThing:  "thing",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromString resolves a record tag into the canonical Kind.
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindUnknown, false
}

// Entity holds the properties shared by every addressable world object.
// Variants embed it and add their own fields.
type Entity struct {
	// Id is assigned by the store and is immutable after registration.
	Id Ref

	Name        string
	Description string

	// Location is the ref of the containing entity, Nowhere for the void.
	// It is a weak reference: resolution happens lazily at traversal time.
	Location Ref

	Flags FlagSet
}

func (e *Entity) Base() *Entity {
	return e
}

// Object is implemented by every entity variant held in the store.
type Object interface {
	Base() *Entity
	Kind() Kind
	Record() (string, error)
}
