// Package registry keeps named derived values and recomputes them, in
// dependency order, from a palette.
package registry

import (
	"fmt"
	"sync"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lunit-heesungyang/facet/internal/log"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Kind distinguishes plain values from face specs.
type Kind int

const (
	// Setting is a plain value, usually a color.
	Setting Kind = iota
	// StyleSpec is a face applied to the presentation layer.
	StyleSpec
)

func (k Kind) String() string {
	switch k {
	case Setting:
		return "setting"
	case StyleSpec:
		return "face"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Evaluator computes a value from the palette and the declared
// dependencies, read through env. StyleSpec evaluators return a
// style.Face.
type Evaluator func(p model.Palette, env *Env) (any, error)

// Definition is a registered derived value.
type Definition struct {
	Name string
	Kind Kind
	Deps []string
	Eval Evaluator
}

// Registry is an ordered set of definitions. Register, Reset and
// Reevaluate are serialised so a run always sees one consistent set.
type Registry struct {
	mu    sync.Mutex
	defs  []Definition
	index map[string]int
}

// New creates an empty registry
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends def. Names must be unique.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("register: empty name")
	}
	if def.Eval == nil {
		return fmt.Errorf("register %s: nil evaluator", def.Name)
	}
	if def.Kind != Setting && def.Kind != StyleSpec {
		return fmt.Errorf("register %s: invalid %s", def.Name, def.Kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[def.Name]; ok {
		return &DuplicateRegistrationError{Name: def.Name}
	}
	def.Deps = lo.Uniq(def.Deps)
	r.index[def.Name] = len(r.defs)
	r.defs = append(r.defs, def)
	return nil
}

// Setting registers a plain derived value.
func (r *Registry) Setting(name string, deps []string, eval Evaluator) error {
	return r.Register(Definition{Name: name, Kind: Setting, Deps: deps, Eval: eval})
}

// Face registers a face spec.
func (r *Registry) Face(name string, deps []string, eval func(p model.Palette, env *Env) (style.Face, error)) error {
	return r.Register(Definition{
		Name: name,
		Kind: StyleSpec,
		Deps: deps,
		Eval: func(p model.Palette, env *Env) (any, error) {
			return eval(p, env)
		},
	})
}

// Reset removes every definition.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = nil
	r.index = make(map[string]int)
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.defs)
}

// Names returns definition names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo.Map(r.defs, func(d Definition, _ int) string { return d.Name })
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// suggest returns the registered name closest to name, or "". Callers
// hold r.mu.
func (r *Registry) suggest(name string) string {
	if len(r.defs) == 0 {
		return ""
	}
	best := lo.MinBy(r.defs, func(a, b Definition) bool {
		return levenshtein.Distance(name, a.Name) < levenshtein.Distance(name, b.Name)
	})
	// Suggestions further away than half the name are noise.
	if levenshtein.Distance(name, best.Name) > (len(name)+1)/2 {
		return ""
	}
	return best.Name
}

// Order returns the evaluation order: producers before consumers, ties
// broken by registration order.
func (r *Registry) Order() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, err := r.order()
	if err != nil {
		return nil, err
	}
	return lo.Map(order, func(i int, _ int) string { return r.defs[i].Name }), nil
}

// Reevaluate computes every definition from p. It does not touch the
// presentation layer; apply the result with Resolved.Apply.
func (r *Registry) Reevaluate(p model.Palette) (*Resolved, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	order, err := r.order()
	if err != nil {
		return nil, err
	}

	res := newResolved(len(order))
	for _, i := range order {
		def := r.defs[i]
		env := &Env{requester: def.Name, deps: def.Deps, res: res}

		value, err := def.Eval(p, env)
		if err != nil {
			return nil, &EvaluationError{Name: def.Name, Err: err}
		}
		if err := res.commit(def, value); err != nil {
			return nil, err
		}
	}

	log.WithFields(logrus.Fields{
		"values":   len(res.Order),
		"faces":    len(res.Faces),
		"duration": time.Since(start),
	}).Debug("reevaluated derived values")
	return res, nil
}
