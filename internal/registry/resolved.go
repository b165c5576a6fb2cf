package registry

import (
	"fmt"

	"github.com/lunit-heesungyang/facet/internal/style"
)

// Applier is the presentation layer that receives face specs.
type Applier interface {
	ApplyStyle(name string, face style.Face, priority style.Priority) error
}

// Resolved is the outcome of one reevaluation.
type Resolved struct {
	// Order lists every name in evaluation order.
	Order    []string
	Kinds    map[string]Kind
	Settings map[string]any
	Faces    map[string]style.Face
}

func newResolved(n int) *Resolved {
	return &Resolved{
		Order:    make([]string, 0, n),
		Kinds:    make(map[string]Kind, n),
		Settings: make(map[string]any),
		Faces:    make(map[string]style.Face),
	}
}

func (r *Resolved) commit(def Definition, value any) error {
	switch def.Kind {
	case StyleSpec:
		face, ok := value.(style.Face)
		if !ok {
			return &EvaluationError{Name: def.Name, Err: fmt.Errorf("face evaluator returned %T", value)}
		}
		r.Faces[def.Name] = face
	default:
		r.Settings[def.Name] = value
	}
	r.Kinds[def.Name] = def.Kind
	r.Order = append(r.Order, def.Name)
	return nil
}

// Names returns the names of kind in evaluation order.
func (r *Resolved) Names(kind Kind) []string {
	var names []string
	for _, name := range r.Order {
		if r.Kinds[name] == kind {
			names = append(names, name)
		}
	}
	return names
}

// Color returns a setting that holds a color.
func (r *Resolved) Color(name string) (string, bool) {
	v, ok := r.Settings[name].(string)
	return v, ok
}

// Apply sends every face, in evaluation order, to a at default priority.
// User-level overrides held by a are left in place.
func (r *Resolved) Apply(a Applier) error {
	for _, name := range r.Order {
		if r.Kinds[name] != StyleSpec {
			continue
		}
		if err := a.ApplyStyle(name, r.Faces[name], style.PriorityDefault); err != nil {
			return fmt.Errorf("applying %s: %w", name, err)
		}
	}
	return nil
}
