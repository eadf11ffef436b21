package timing

import (
	"strings"

	"github.com/juju/errors"

	"github.com/ngicks/deque"
)

// Op names the deque operation timed by the harness.
type Op string

const (
	OpAddLast  Op = "addlast"
	OpAddFirst Op = "addfirst"
	// OpGet calls Get for every index of a deque filled beforehand.
	// Filling is not timed.
	OpGet Op = "get"
)

func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(s)); op {
	case OpAddLast, OpAddFirst, OpGet:
		return op, nil
	}
	return "", errors.NotSupportedf("op %q", s)
}

// Backings lists names accepted by Backing in a stable order.
var Backings = []string{"array", "linked", "ring"}

// Backing returns a constructor for the deque implementation named name.
func Backing(name string) (func() deque.Deque[int], error) {
	switch strings.ToLower(name) {
	case "array":
		return func() deque.Deque[int] { return deque.NewArrayDeque[int]() }, nil
	case "linked":
		return func() deque.Deque[int] { return deque.NewLinkedDeque[int]() }, nil
	case "ring":
		return func() deque.Deque[int] { return deque.NewRingDeque[int](0) }, nil
	}
	return nil, errors.NotSupportedf("deque implementation %q", name)
}
