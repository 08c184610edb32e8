package capability_test

import (
	"testing"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type simpleCap struct{}

type otherCap struct {
	label string
}

type describer interface {
	Describe() string
}

func (o *otherCap) Describe() string { return o.label }

func TestDeclare_AssignsIDAndDowncasts(t *testing.T) {
	var c capability.Capability = capability.Declare("test.simple", &simpleCap{})

	assert.Equal(t, "test.simple", c.ID())

	got, ok := capability.As[*simpleCap](c)
	assert.True(t, ok)
	assert.NotNil(t, got)
}

func TestDeclare_ValueType(t *testing.T) {
	c := capability.Declare("test.value", otherCap{label: "v"})

	got, ok := capability.As[otherCap](c)
	require.True(t, ok)
	assert.Equal(t, "v", got.label)
	assert.Equal(t, "v", c.Value().label)
}

func TestMarker(t *testing.T) {
	m := capability.Marker("test.marker")

	assert.Equal(t, "test.marker", m.ID())
	got, ok := capability.As[*capability.MarkerCapability](m)
	require.True(t, ok)
	assert.Same(t, m, got)
}

func TestAs(t *testing.T) {
	other := &otherCap{label: "other"}
	list := capability.List{
		capability.Declare("test.simple", &simpleCap{}),
		capability.Declare("test.other", other),
	}

	t.Run("mismatch yields absent", func(t *testing.T) {
		got, ok := capability.As[*otherCap](list[0])
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("nil capability yields absent", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_, ok := capability.As[*simpleCap](nil)
			assert.False(t, ok)
		})
	})

	t.Run("interface target", func(t *testing.T) {
		d, ok := capability.As[describer](list[1])
		require.True(t, ok)
		assert.Equal(t, "other", d.Describe())

		_, ok = capability.As[describer](list[0])
		assert.False(t, ok)
	})

	t.Run("same underlying value", func(t *testing.T) {
		got, ok := capability.As[*otherCap](list[1])
		require.True(t, ok)
		assert.Same(t, other, got)
	})
}

func TestList(t *testing.T) {
	list := capability.List{
		capability.Marker("a"),
		capability.Declare("b", &simpleCap{}),
		capability.Marker("a"),
	}

	t.Run("Find returns first match", func(t *testing.T) {
		c, ok := list.Find("a")
		require.True(t, ok)
		assert.Same(t, list[0], c)
	})

	t.Run("Find missing", func(t *testing.T) {
		c, ok := list.Find("missing")
		assert.False(t, ok)
		assert.Nil(t, c)
	})

	t.Run("Has", func(t *testing.T) {
		assert.True(t, list.Has("b"))
		assert.False(t, list.Has("c"))
	})

	t.Run("IDs keep order", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "a"}, list.IDs())
	})

	t.Run("Clone shares capabilities", func(t *testing.T) {
		clone := list.Clone()
		require.Len(t, clone, 3)
		assert.Same(t, list[1], clone[1])

		clone[0] = capability.Marker("z")
		assert.Equal(t, "a", list[0].ID())
	})

	t.Run("Clone of nil is empty", func(t *testing.T) {
		var empty capability.List
		assert.NotNil(t, empty.Clone())
		assert.Empty(t, empty.Clone())
	})
}

func TestFindAs(t *testing.T) {
	list := capability.List{
		capability.Marker("test.marker"),
		capability.Declare("test.simple", &simpleCap{}),
	}

	_, ok := capability.FindAs[*simpleCap](list, "test.simple")
	assert.True(t, ok)

	_, ok = capability.FindAs[*simpleCap](list, "test.marker")
	assert.False(t, ok)

	_, ok = capability.FindAs[*simpleCap](list, "missing")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	list := capability.List{
		capability.Declare("one", &otherCap{label: "1"}),
		capability.Marker("marker"),
		capability.Declare("two", &otherCap{label: "2"}),
	}

	got := capability.All[*otherCap](list)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].label)
	assert.Equal(t, "2", got[1].label)
}
