package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttested(t *testing.T) {
	d := ClientAttested{}

	ok, err := d.Detect([]byte("capture"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Detect(nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
