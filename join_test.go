package modular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type joinValue struct {
	origin string
}

type joinOnlyLeft struct{}

type joinOnlyRight struct{}

func TestJoin_RightOperandWins(t *testing.T) {
	a := New()
	require.NoError(t, DeclareInstance(a, &joinValue{origin: "left"}))

	b := New()
	require.NoError(t, DeclareInstance(b, &joinValue{origin: "right"}))

	joined := Join(a, b)

	v, err := Resolve[*joinValue](joined)
	require.NoError(t, err)
	assert.Equal(t, "right", v.origin)
}

func TestJoin_FallbackCompleteness(t *testing.T) {
	a := New()
	require.NoError(t, DeclareInstance(a, &joinOnlyLeft{}))

	b := New()
	require.NoError(t, DeclareInstance(b, &joinOnlyRight{}))

	joined := Join(a, b)

	_, err := Resolve[*joinOnlyLeft](joined)
	assert.NoError(t, err)

	_, err = Resolve[*joinOnlyRight](joined)
	assert.NoError(t, err)
}

func TestJoin_MethodForm(t *testing.T) {
	a := New()
	require.NoError(t, DeclareInstance(a, &joinValue{origin: "left"}))

	b := New()
	require.NoError(t, DeclareInstance(b, &joinValue{origin: "right"}))

	v, err := Resolve[*joinValue](a.Join(b))
	require.NoError(t, err)
	assert.Equal(t, "right", v.origin)
}

func TestJoin_AssociativeRightBias(t *testing.T) {
	build := func(origin string) *Module {
		m := New()
		require.NoError(t, DeclareInstance(m, &joinValue{origin: origin}))

		return m
	}

	// ((a :: b) :: c) and (a :: (b :: c)) must both give c the last word.
	left := Join(Join(build("a"), build("b")), build("c"))
	right := Join(build("a"), Join(build("b"), build("c")))

	v, err := Resolve[*joinValue](left)
	require.NoError(t, err)
	assert.Equal(t, "c", v.origin)

	v, err = Resolve[*joinValue](right)
	require.NoError(t, err)
	assert.Equal(t, "c", v.origin)
}

func TestJoin_ChainedFallbackOrder(t *testing.T) {
	a := New()
	require.NoError(t, DeclareInstance(a, &joinValue{origin: "a"}))
	require.NoError(t, DeclareInstance(a, &joinOnlyLeft{}))

	b := New()
	require.NoError(t, DeclareInstance(b, &joinValue{origin: "b"}))

	c := New()
	require.NoError(t, DeclareInstance(c, &joinOnlyRight{}))

	joined := Join(a, Join(b, c))

	// c binds nothing for joinValue, so b's binding shadows a's.
	v, err := Resolve[*joinValue](joined)
	require.NoError(t, err)
	assert.Equal(t, "b", v.origin)

	// Every operand's bindings stay resolvable.
	_, err = Resolve[*joinOnlyLeft](joined)
	assert.NoError(t, err)

	_, err = Resolve[*joinOnlyRight](joined)
	assert.NoError(t, err)
}

func TestJoin_DoesNotCopyOrDropBindings(t *testing.T) {
	a := New()
	require.NoError(t, DeclareInstance(a, &joinOnlyLeft{}))

	b := New()
	require.NoError(t, DeclareInstance(b, &joinOnlyRight{}))

	joined := Join(a, b)

	// Local bindings of the joined module are exactly b's.
	assert.ElementsMatch(t, b.Keys(), joined.Keys())
	assert.Len(t, a.Keys(), 1)
}

func TestJoin_SingletonSharedAcrossChain(t *testing.T) {
	a := New()

	calls := 0
	require.NoError(t, DeclareSingleton(a, func(Resolver) (*joinValue, error) {
		calls++

		return &joinValue{origin: "a"}, nil
	}))

	joined := Join(a, New())

	first, err := Resolve[*joinValue](joined)
	require.NoError(t, err)

	second, err := Resolve[*joinValue](a)
	require.NoError(t, err)

	// Same binding, same cached instance, one factory run.
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}
