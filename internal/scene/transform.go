package scene

import (
	"errors"
	"fmt"

	"ringscan/internal/mathutil"
)

// ErrBadStep is returned for a transform step that does not name exactly
// one operation.
var ErrBadStep = errors.New("scene: transform step needs exactly one of scale, rotate, rotate_deg, translate")

// Step is one model transform, decoded from JSON. Values stay untyped until
// Build so that "scale" may be a number or a vector.
type Step struct {
	Scale     any `json:"scale,omitempty"`
	Rotate    any `json:"rotate,omitempty"`     // radians per axis
	RotateDeg any `json:"rotate_deg,omitempty"` // degrees per axis
	Translate any `json:"translate,omitempty"`
}

// Matrix returns the step's affine transform.
func (s Step) Matrix() (mathutil.Mat34, error) {
	set := 0
	for _, v := range []any{s.Scale, s.Rotate, s.RotateDeg, s.Translate} {
		if v != nil {
			set++
		}
	}
	if set != 1 {
		return mathutil.Mat34{}, ErrBadStep
	}

	switch {
	case s.Scale != nil:
		return mathutil.ScaleFrom(s.Scale)
	case s.Rotate != nil:
		return mathutil.RotationFrom(s.Rotate)
	case s.RotateDeg != nil:
		deg, err := mathutil.Vec3From(s.RotateDeg)
		if err != nil {
			return mathutil.Mat34{}, err
		}
		return mathutil.Mat34Rotation(mathutil.Deg2RadVec(deg)), nil
	default:
		return mathutil.TranslationFrom(s.Translate)
	}
}

// BuildModel composes steps in order (the first step is applied first).
// No steps gives the identity.
func BuildModel(steps []Step) (mathutil.Mat34, error) {
	model := mathutil.Mat34Identity()
	for i, s := range steps {
		m, err := s.Matrix()
		if err != nil {
			return mathutil.Mat34{}, fmt.Errorf("scene: transform %d: %w", i, err)
		}
		model = mathutil.Mat34Mul(m, model)
	}
	return model, nil
}
