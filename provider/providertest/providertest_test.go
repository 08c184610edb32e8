package providertest

import (
	"testing"

	"github.com/reglet-dev/reglet-capability-sdk/capability"
	"github.com/reglet-dev/reglet-capability-sdk/capability/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New("dummy", WithCapabilities(capability.Marker(ids.Networked)))

	assert.Equal(t, "dummy", p.Name())
	assert.Equal(t, []string{ids.RequiresAPIKey, ids.Networked}, p.Capabilities().IDs())

	for _, c := range p.Capabilities() {
		assert.NotEmpty(t, c.ID())
	}
	assert.Equal(t, p.Capabilities().IDs(), p.Capabilities().IDs())
}

func TestBare(t *testing.T) {
	p := Bare("bare")
	require.NotNil(t, p.Capabilities())
	assert.Empty(t, p.Capabilities())
}

func TestNew_InvalidNamePanics(t *testing.T) {
	assert.Panics(t, func() { New("") })
}

func TestCapabilities_ReturnsCopy(t *testing.T) {
	p := New("copied")

	caps := p.Capabilities()
	caps[0] = capability.Marker(ids.Networked)

	assert.Equal(t, []string{ids.RequiresAPIKey}, p.Capabilities().IDs())
}
