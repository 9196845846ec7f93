package modular

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type defaultTestValue struct {
	tag string
}

func resetDefault(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetDefault(nil)
	})
	SetDefault(nil)
}

func TestDefault_NeverNil(t *testing.T) {
	resetDefault(t)

	m := Default()
	require.NotNil(t, m)
	assert.Empty(t, m.Keys())
}

func TestDefault_UnsetResolutionFails(t *testing.T) {
	resetDefault(t)

	_, err := ResolveDefault[*defaultTestValue]()
	assert.ErrorIs(t, err, ErrBindingNotFoundSentinel)
}

func TestSetDefault_Replaces(t *testing.T) {
	resetDefault(t)

	first := New()
	require.NoError(t, DeclareInstance(first, &defaultTestValue{tag: "first"}))
	SetDefault(first)

	v, err := ResolveDefault[*defaultTestValue]()
	require.NoError(t, err)
	assert.Equal(t, "first", v.tag)

	// Replacement discards the previous default entirely.
	second := New()
	SetDefault(second)

	_, err = ResolveDefault[*defaultTestValue]()
	assert.ErrorIs(t, err, ErrBindingNotFoundSentinel)
}

func TestSetDefault_ConcurrentSwapAndRead(t *testing.T) {
	resetDefault(t)

	bound := New()
	require.NoError(t, DeclareInstance(bound, &defaultTestValue{tag: "bound"}))

	unbound := New()

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		for range 200 {
			SetDefault(bound)
			SetDefault(unbound)
		}
	}()

	go func() {
		defer wg.Done()

		for range 200 {
			// Readers must see a whole registry: either resolution
			// succeeds or it fails with a clean not-found.
			v, err := ResolveDefault[*defaultTestValue]()
			if err != nil {
				assert.ErrorIs(t, err, ErrBindingNotFoundSentinel)

				continue
			}

			assert.Equal(t, "bound", v.tag)
		}
	}()

	wg.Wait()
}
