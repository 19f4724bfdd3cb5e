package mysql

import (
	"github.com/google/uuid"
)

// IDGenerator returns the unique part of a new resource id.
type IDGenerator func() string

func NewIDGenerator() IDGenerator {
	return uuid.NewString
}

// next returns "<prefix>-<generated>", e.g. "thread-1b4e28ba-2fa1-11d2-883f-0016d3cca427".
func (g IDGenerator) next(prefix string) string {
	return prefix + "-" + g()
}
