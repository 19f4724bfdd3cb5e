package domain

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Payload is a raw, not yet validated mapping: a decoded request body or a
// flat storage row handed to an entity constructor.
type Payload map[string]any

type presence int8

const (
	// required properties must be present and non-zero
	required presence = iota
	// present properties must exist but may hold a zero value (likeCount: 0)
	present
	// optional properties may be absent
	optional
)

type kind int8

const (
	kindString kind = iota
	kindCount
	kindStatus
	kindReplies
	kindComments
)

type property struct {
	name     string
	kind     kind
	presence presence
}

func requiredString(name string) property {
	return property{name: name, kind: kindString, presence: required}
}

// verifyPayload checks presence of every property first and only then their
// types, so a payload that is both incomplete and mistyped reports the
// missing property.
func verifyPayload(entity string, p Payload, props ...property) error {
	rules := make(map[string]any, len(props))
	for _, prop := range props {
		switch prop.presence {
		case required:
			rules[prop.name] = "required"
		case present:
			if v, ok := p[prop.name]; !ok || v == nil {
				return NewValidationError(entity, codeMissingProperty)
			}
		}
	}
	if errs := validate.ValidateMap(p, rules); len(errs) > 0 {
		return NewValidationError(entity, codeMissingProperty)
	}

	for _, prop := range props {
		v, ok := p[prop.name]
		if !ok {
			continue
		}
		if !prop.kind.accepts(v) {
			return NewValidationError(entity, codeWrongDataType)
		}
	}
	return nil
}

func (k kind) accepts(v any) bool {
	switch k {
	case kindString:
		_, ok := v.(string)
		return ok
	case kindCount:
		_, ok := toCount(v)
		return ok
	case kindStatus:
		_, ok := v.(Status)
		return ok
	case kindReplies:
		_, ok := v.([]ReplyDetail)
		return ok
	case kindComments:
		_, ok := v.([]CommentDetail)
		return ok
	default:
		return false
	}
}

// toCount normalizes any numeric value to a non-negative int.
func toCount(v any) (int, bool) {
	var n float64
	switch x := v.(type) {
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case uint:
		n = float64(x)
	case uint32:
		n = float64(x)
	case uint64:
		n = float64(x)
	case float32:
		n = float64(x)
	case float64:
		n = x
	default:
		return 0, false
	}
	if n < 0 || n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

func (p Payload) str(name string) string {
	s, _ := p[name].(string)
	return s
}

func (p Payload) count(name string) int {
	n, _ := toCount(p[name])
	return n
}

func (p Payload) status() Status {
	s, _ := p["status"].(Status)
	return s
}
