package registry

import (
	"fmt"

	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/samber/lo"
)

// Env gives an evaluator read access to the values it declared as
// dependencies.
type Env struct {
	requester string
	deps      []string
	res       *Resolved
}

// Value returns the committed value of a declared dependency.
func (e *Env) Value(name string) (any, error) {
	if !lo.Contains(e.deps, name) {
		return nil, &UnknownNameError{Name: name, Requester: e.requester, Reason: "not a declared dependency"}
	}
	if _, ok := e.res.Kinds[name]; !ok {
		return nil, &UnknownNameError{Name: name, Requester: e.requester, Reason: "not evaluated yet"}
	}
	if face, ok := e.res.Faces[name]; ok {
		return face, nil
	}
	return e.res.Settings[name], nil
}

// Color returns a dependency holding a color name.
func (e *Env) Color(name string) (string, error) {
	v, err := e.Value(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %s is %T, not a color", e.requester, name, v)
	}
	return s, nil
}

// Float returns a numeric dependency.
func (e *Env) Float(name string) (float64, error) {
	v, err := e.Value(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%s: %s is %T, not a number", e.requester, name, v)
	}
	return f, nil
}

// Face returns a dependency holding a face.
func (e *Env) Face(name string) (style.Face, error) {
	v, err := e.Value(name)
	if err != nil {
		return style.Face{}, err
	}
	f, ok := v.(style.Face)
	if !ok {
		return style.Face{}, fmt.Errorf("%s: %s is %T, not a face", e.requester, name, v)
	}
	return f, nil
}
