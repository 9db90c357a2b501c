package mathutil

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched (via errors.Is) by every ArgumentError.
var ErrInvalidArgument = errors.New("mathutil: invalid argument type")

// ArgumentError reports an operand of a kind the operation does not accept.
type ArgumentError struct {
	Op   string // operation name, e.g. "scale"
	Want string // accepted kinds
	Got  any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("mathutil: %s needs %s, got %T", e.Op, e.Want, e.Got)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// ScaleFrom builds a scale matrix from a runtime-typed value: a number gives a
// uniform scale, a Vec3 (or 3-element numeric slice) a per-axis scale.
func ScaleFrom(s any) (Mat34, error) {
	if f, ok := toFloat(s); ok {
		return Mat34Scale(f), nil
	}
	if v, ok := toVec3(s); ok {
		return Mat34ScaleVec(v), nil
	}
	return Mat34{}, &ArgumentError{Op: "scale", Want: "a number or a Vec3", Got: s}
}

// RotationFrom builds Mat34Rotation from a Vec3 of radians.
func RotationFrom(r any) (Mat34, error) {
	if v, ok := toVec3(r); ok {
		return Mat34Rotation(v), nil
	}
	return Mat34{}, &ArgumentError{Op: "rotation", Want: "a Vec3", Got: r}
}

// TranslationFrom builds Mat34Translation from a Vec3.
func TranslationFrom(t any) (Mat34, error) {
	if v, ok := toVec3(t); ok {
		return Mat34Translation(v), nil
	}
	return Mat34{}, &ArgumentError{Op: "translation", Want: "a Vec3", Got: t}
}

// Multiply is the runtime-dispatched form of Mat34Mul and MulPoint. A Mat34
// operand yields a Mat34, a Vec3 operand yields a Vec3; anything else is an
// ArgumentError and no value.
func Multiply(m Mat34, operand any) (any, error) {
	switch o := operand.(type) {
	case Mat34:
		return Mat34Mul(m, o), nil
	case *Mat34:
		if o != nil {
			return Mat34Mul(m, *o), nil
		}
	case Vec3:
		return m.MulPoint(o), nil
	case *Vec3:
		if o != nil {
			return m.MulPoint(*o), nil
		}
	}
	return nil, &ArgumentError{Op: "multiply", Want: "a Mat34 or a Vec3", Got: operand}
}

func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toVec3 accepts Vec3 and the 3-element slices encoding/json produces.
func toVec3(x any) (Vec3, bool) {
	switch v := x.(type) {
	case Vec3:
		return v, true
	case *Vec3:
		if v != nil {
			return *v, true
		}
	case [3]float64:
		return Vec3(v), true
	case []float64:
		if len(v) == 3 {
			return Vec3{v[0], v[1], v[2]}, true
		}
	case []any:
		if len(v) != 3 {
			return Vec3{}, false
		}
		var out Vec3
		for i, c := range v {
			f, ok := toFloat(c)
			if !ok {
				return Vec3{}, false
			}
			out[i] = f
		}
		return out, true
	}
	return Vec3{}, false
}

// Vec3From converts a runtime-typed value (Vec3, [3]float64, or a 3-element
// numeric slice as decoded from JSON) to a Vec3.
func Vec3From(x any) (Vec3, error) {
	if v, ok := toVec3(x); ok {
		return v, nil
	}
	return Vec3{}, &ArgumentError{Op: "vector", Want: "a Vec3", Got: x}
}
