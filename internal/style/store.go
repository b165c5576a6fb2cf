package style

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Priority orders the layers a face spec can be applied at.
type Priority int

const (
	// PriorityDefault is where computed theme specs go.
	PriorityDefault Priority = iota
	// PriorityUser holds user overrides, which win over defaults.
	PriorityUser
)

func (p Priority) String() string {
	switch p {
	case PriorityDefault:
		return "default"
	case PriorityUser:
		return "user"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// UnknownStyleError reports a lookup of a face nothing was applied to.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown face %q", e.Name)
}

// InheritanceCycleError reports a face that inherits from itself.
type InheritanceCycleError struct {
	Chain []string
}

func (e *InheritanceCycleError) Error() string {
	return fmt.Sprintf("face inheritance cycle: %s", strings.Join(e.Chain, " -> "))
}

type layers struct {
	specs [PriorityUser + 1]*Face
}

// Store is the presentation layer: it keeps the spec applied to each face
// name at every priority and resolves the effective attributes.
type Store struct {
	mu    sync.RWMutex
	faces map[string]*layers
	order []string
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{faces: make(map[string]*layers)}
}

// ApplyStyle replaces the spec of name at priority. Specs at other
// priorities are kept.
func (s *Store) ApplyStyle(name string, face Face, priority Priority) error {
	if name == "" {
		return fmt.Errorf("apply style: empty face name")
	}
	if priority < PriorityDefault || priority > PriorityUser {
		return fmt.Errorf("apply style %s: invalid %s", name, priority)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.faces[name]
	if !ok {
		l = &layers{}
		s.faces[name] = l
		s.order = append(s.order, name)
	}
	f := Merge(face)
	l.specs[priority] = &f
	return nil
}

// ClearUser drops the user override of name, if any.
func (s *Store) ClearUser(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.faces[name]; ok {
		l.specs[PriorityUser] = nil
	}
}

// Spec returns the spec applied to name at priority.
func (s *Store) Spec(name string, priority Priority) (Face, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.faces[name]
	if !ok || priority < PriorityDefault || priority > PriorityUser || l.specs[priority] == nil {
		return Face{}, false
	}
	return Merge(*l.specs[priority]), true
}

// Has reports whether anything was applied to name.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.faces[name]
	return ok
}

// Names returns face names in first-applied order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Resolve returns the effective attributes of name: its default spec
// with the user override on top, and inherited faces merged underneath in
// list order, so the rightmost parent wins among parents.
func (s *Store) Resolve(name string) (Face, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(name, nil)
}

func (s *Store) resolve(name string, chain []string) (Face, error) {
	if lo.Contains(chain, name) {
		return Face{}, &InheritanceCycleError{Chain: append(chain, name)}
	}
	l, ok := s.faces[name]
	if !ok {
		return Face{}, &UnknownStyleError{Name: name}
	}

	own := Face{}
	for _, spec := range l.specs {
		if spec != nil {
			own = Merge(own, *spec)
		}
	}

	chain = append(chain, name)
	inherited := Face{}
	for _, parent := range own.Inherit {
		pf, err := s.resolve(parent, chain)
		if err != nil {
			return Face{}, err
		}
		inherited = Merge(inherited, pf)
	}

	out := Merge(inherited, own)
	out.Inherit = nil
	return out, nil
}

// Render resolves name and converts it to a lipgloss style.
func (s *Store) Render(name string) (lipgloss.Style, error) {
	f, err := s.Resolve(name)
	if err != nil {
		return lipgloss.NewStyle(), err
	}
	return ToLipgloss(f), nil
}

// ToLipgloss converts resolved attributes to a lipgloss style. Inherit
// lists are ignored; resolve first.
func ToLipgloss(f Face) lipgloss.Style {
	st := lipgloss.NewStyle()
	if f.Foreground != "" {
		st = st.Foreground(lipgloss.Color(f.Foreground))
	}
	if f.Background != "" {
		st = st.Background(lipgloss.Color(f.Background))
	}
	switch f.Weight {
	case WeightBold:
		st = st.Bold(true)
	case WeightLight:
		st = st.Faint(true)
	}
	if f.Slant == SlantItalic {
		st = st.Italic(true)
	}
	if f.Underlined() {
		st = st.Underline(true)
	}
	if f.Box != nil {
		st = st.Border(border(f.Box.Style))
		if f.Box.Color != "" {
			st = st.BorderForeground(lipgloss.Color(f.Box.Color))
		}
	}
	return st
}

func border(name string) lipgloss.Border {
	switch name {
	case BoxRounded:
		return lipgloss.RoundedBorder()
	case BoxThick:
		return lipgloss.ThickBorder()
	}
	return lipgloss.NormalBorder()
}
