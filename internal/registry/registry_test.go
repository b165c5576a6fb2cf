package registry

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/lunit-heesungyang/facet/internal/key"
	"github.com/lunit-heesungyang/facet/internal/log"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	names      []string
	priorities []style.Priority
	fail       string
}

func (r *recorder) ApplyStyle(name string, face style.Face, priority style.Priority) error {
	if name == r.fail {
		return errors.New("boundary refused")
	}
	r.names = append(r.names, name)
	r.priorities = append(r.priorities, priority)
	return nil
}

func constant(v any) Evaluator {
	return func(model.Palette, *Env) (any, error) { return v, nil }
}

func TestRegister_Duplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.Setting("a", nil, constant("#000000")))

	err := r.Setting("a", nil, constant("#ffffff"))
	var dup *DuplicateRegistrationError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "a", dup.Name)
	assert.Equal(t, 1, r.Len())
}

func TestRegister_Invalid(t *testing.T) {
	r := New()
	assert.Error(t, r.Setting("", nil, constant(1.0)))
	assert.Error(t, r.Setting("a", nil, nil))
	assert.Error(t, r.Register(Definition{Name: "a", Kind: Kind(7), Eval: constant(1.0)}))
}

func TestReevaluate_ConsumerSeesProducer(t *testing.T) {
	for _, producerFirst := range []bool{true, false} {
		t.Run(fmt.Sprintf("producerFirst=%v", producerFirst), func(t *testing.T) {
			r := New()
			producer := func() error {
				return r.Setting("s1", nil, func(p model.Palette, _ *Env) (any, error) {
					return p.DefaultFG, nil
				})
			}
			consumer := func() error {
				return r.Setting("s2", []string{"s1"}, func(_ model.Palette, env *Env) (any, error) {
					v, err := env.Color("s1")
					return "seen " + v, err
				})
			}
			if producerFirst {
				require.NoError(t, producer())
				require.NoError(t, consumer())
			} else {
				require.NoError(t, consumer())
				require.NoError(t, producer())
			}

			res, err := r.Reevaluate(model.Palette{DefaultFG: "#123456"})
			require.NoError(t, err)
			assert.Equal(t, "seen #123456", res.Settings["s2"])
			assert.Equal(t, []string{"s1", "s2"}, res.Order)
		})
	}
}

func TestOrder_KeepsRegistrationOrderForIndependentValues(t *testing.T) {
	r := New()
	require.NoError(t, r.Setting("c", []string{"a"}, constant(1.0)))
	require.NoError(t, r.Setting("b", nil, constant(1.0)))
	require.NoError(t, r.Setting("a", nil, constant(1.0)))
	require.NoError(t, r.Setting("d", nil, constant(1.0)))

	order, err := r.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c", "d"}, order)
}

func TestReevaluate_Idempotent(t *testing.T) {
	r := New()
	require.NoError(t, r.Setting("fg", nil, func(p model.Palette, _ *Env) (any, error) { return p.DefaultFG, nil }))
	require.NoError(t, r.Face("face", []string{"fg"}, func(_ model.Palette, env *Env) (style.Face, error) {
		fg, err := env.Color("fg")
		return style.Face{Foreground: fg, Weight: style.WeightBold}, err
	}))

	p := model.DefaultPalette()
	first, err := r.Reevaluate(p)
	require.NoError(t, err)
	second, err := r.Reevaluate(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReevaluate_UnknownDependency(t *testing.T) {
	r := New()
	require.NoError(t, r.Setting("faded-fg", nil, constant("#999999")))
	require.NoError(t, r.Setting("b", []string{"faded-gf"}, constant(1.0)))

	_, err := r.Reevaluate(model.Palette{})
	var unknown *UnknownNameError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "faded-gf", unknown.Name)
	assert.Equal(t, "b", unknown.Requester)
	assert.Equal(t, "faded-fg", unknown.Suggestion)
	assert.Contains(t, err.Error(), "did you mean")
}

func TestReevaluate_UndeclaredRead(t *testing.T) {
	r := New()
	require.NoError(t, r.Setting("a", nil, constant("#000000")))
	require.NoError(t, r.Setting("b", nil, func(_ model.Palette, env *Env) (any, error) {
		return env.Color("a")
	}))

	_, err := r.Reevaluate(model.Palette{})
	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "b", evalErr.Name)

	var unknown *UnknownNameError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "a", unknown.Name)
}

func TestReevaluate_Cycle(t *testing.T) {
	r := New()
	require.NoError(t, r.Setting("root", nil, constant(1.0)))
	require.NoError(t, r.Setting("a", []string{"root", "c"}, constant(1.0)))
	require.NoError(t, r.Setting("b", []string{"a"}, constant(1.0)))
	require.NoError(t, r.Setting("c", []string{"b"}, constant(1.0)))

	_, err := r.Reevaluate(model.Palette{})
	var cycle *CyclicDependencyError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, []string{"a", "c", "b", "a"}, cycle.Cycle)
}

func TestReevaluate_SelfDependency(t *testing.T) {
	r := New()
	require.NoError(t, r.Setting("a", []string{"a"}, constant(1.0)))

	_, err := r.Order()
	var cycle *CyclicDependencyError
	require.True(t, errors.As(err, &cycle))
}

func TestReevaluate_FaceKindMismatch(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(Definition{Name: "f", Kind: StyleSpec, Eval: constant("#000000")}))

	_, err := r.Reevaluate(model.Palette{})
	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "f", evalErr.Name)
}

func TestResolved_Apply(t *testing.T) {
	r := New()
	require.NoError(t, r.Face("f2", []string{"f1"}, func(_ model.Palette, env *Env) (style.Face, error) {
		parent, err := env.Face("f1")
		return style.Merge(parent, style.Face{Weight: style.WeightBold}), err
	}))
	require.NoError(t, r.Setting("s", nil, constant("#000000")))
	require.NoError(t, r.Face("f1", []string{"s"}, func(_ model.Palette, env *Env) (style.Face, error) {
		fg, err := env.Color("s")
		return style.Face{Foreground: fg}, err
	}))

	res, err := r.Reevaluate(model.Palette{})
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2"}, res.Names(StyleSpec))
	assert.Equal(t, []string{"s"}, res.Names(Setting))
	assert.Equal(t, style.Face{Foreground: "#000000", Weight: style.WeightBold}, res.Faces["f2"])

	rec := &recorder{}
	require.NoError(t, res.Apply(rec))
	assert.Equal(t, []string{"f1", "f2"}, rec.names)
	assert.Equal(t, []style.Priority{style.PriorityDefault, style.PriorityDefault}, rec.priorities)

	assert.Error(t, res.Apply(&recorder{fail: "f2"}))
}

func TestReset(t *testing.T) {
	r := New()
	require.NoError(t, r.Setting("a", nil, constant(1.0)))
	r.Reset()
	assert.Equal(t, 0, r.Len())

	res, err := r.Reevaluate(model.Palette{})
	require.NoError(t, err)
	assert.Empty(t, res.Order)

	require.NoError(t, r.Setting("a", nil, constant(2.0)))
	res, err = r.Reevaluate(model.Palette{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Settings["a"])
}

func TestReevaluate_Logs(t *testing.T) {
	viper.Set(key.LogsLevel, "debug")
	t.Cleanup(viper.Reset)
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(log.Disable)

	r := New()
	require.NoError(t, r.Setting("a", nil, constant(1.0)))
	_, err := r.Reevaluate(model.Palette{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reevaluated derived values")
}
