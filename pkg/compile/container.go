package compile

import (
	"github.com/goliatone/go-fixturegen/pkg/constraint"
	"github.com/goliatone/go-fixturegen/pkg/envelope"
)

// Container compiles container-kind constraints. Size is the only bound
// source so the mapping is direct; NotEmpty travels as a flag for the caller
// to fold into the minimum before sampling.
func Container(set constraint.Set) *envelope.Container {
	notEmpty := constraint.Has[constraint.NotEmpty](set)

	var minSize, maxSize *int
	if size, ok := constraint.Find[constraint.Size](set); ok {
		minSize = intRef(size.Min)
		maxSize = intRef(size.Max)
	}

	if minSize == nil && maxSize == nil && !notEmpty {
		return nil
	}

	return &envelope.Container{
		MinSize:  minSize,
		MaxSize:  maxSize,
		NotEmpty: notEmpty,
	}
}
