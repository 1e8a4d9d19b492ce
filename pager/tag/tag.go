package tag

import (
	"fmt"
	"reflect"

	"github.com/hnimtadd/pagingview/pager/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Tag identifies a family of interchangeable cells. Two cells can be reused
// for each other iff their tags are equal.
//
// A tag is a name plus an optional variant ID. The variant is derived by
// hashing an arbitrary descriptor value, so hosts can distinguish cells by
// structured configuration (layout options, nested maps, slices) while the
// tag itself stays comparable and usable as a map key.
type Tag struct {
	Name    string
	Variant uint64
}

// Default is the tag used for every index when the host does not choose one.
var Default = Named("default")

// Named returns a tag with no variant.
func Named(name string) Tag {
	return Tag{Name: name}
}

// New returns a tag whose variant is the structural hash of descriptor.
// Equal descriptors always produce equal tags, regardless of map ordering.
func New(name string, descriptor any) Tag {
	if descriptor == nil {
		return Named(name)
	}
	hashed, err := hashstructure.Hash(descriptor, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash tag descriptor: %v", err))
	return Tag{Name: name, Variant: hashed}
}

// For returns the tag named after the Go type T.
func For[T any]() Tag {
	return Named(reflect.TypeFor[T]().String())
}

// Of returns the tag named after the dynamic type of v.
func Of(v any) Tag {
	if v == nil {
		return Default
	}
	return Named(reflect.TypeOf(v).String())
}

func (t Tag) IsZero() bool {
	return t == Tag{}
}

func (t Tag) String() string {
	if t.Variant == 0 {
		return t.Name
	}
	return fmt.Sprintf("%s#%x", t.Name, t.Variant)
}
