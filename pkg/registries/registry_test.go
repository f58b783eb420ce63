package registries

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/registrygen/pkg/nsid"
)

type keyed struct {
	id nsid.ID
}

func (k *keyed) Key() nsid.ID { return k.id }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New("particles")
	flame := &keyed{id: nsid.MustParse("minecraft:flame")}
	smoke := &keyed{id: nsid.MustParse("minecraft:smoke")}

	require.NoError(t, r.Register(flame))
	require.NoError(t, r.Register(smoke))

	got, ok := r.Lookup(nsid.MustParse("minecraft:smoke"))
	require.True(t, ok)
	assert.Same(t, smoke, got)

	_, ok = r.Lookup(nsid.MustParse("minecraft:dust"))
	assert.False(t, ok)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []nsid.ID{flame.id, smoke.id}, r.Keys())
}

func TestRegistry_RejectsDuplicateKey(t *testing.T) {
	r := New("particles")
	require.NoError(t, r.Register(&keyed{id: nsid.MustParse("minecraft:flame")}))

	err := r.Register(&keyed{id: nsid.MustParse("minecraft:flame")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RejectsInvalidValues(t *testing.T) {
	r := New("particles")
	require.Error(t, r.Register(nil))
	require.Error(t, r.Register(&keyed{}))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	r := New("concurrent")
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := nsid.MustParse(fmt.Sprintf("test:entry_%d", i))
			assert.NoError(t, r.Register(&keyed{id: id}))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 64, r.Len())
	assert.Len(t, r.Keys(), 64)
}

func TestFor_ReturnsSameSink(t *testing.T) {
	a := For("registries_test_sink")
	b := For("registries_test_sink")
	c := For("registries_test_other")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "registries_test_sink", a.Name())
}
