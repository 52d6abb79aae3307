package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(Linux))
	assert.True(t, IsSupported(Windows))
	assert.False(t, IsSupported("plan9"))
	assert.False(t, IsSupported("darwin"))
}

func TestValidateSupport(t *testing.T) {
	err := ValidateSupport()
	switch runtime.GOOS {
	case "linux", "windows":
		assert.NoError(t, err)
	default:
		assert.ErrorContains(t, err, runtime.GOOS)
	}
}
