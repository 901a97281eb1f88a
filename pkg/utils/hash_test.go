package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(map[string]string{"contactName": "Jane"})
	require.NoError(t, err)
	b, err := Fingerprint(map[string]string{"contactName": "Jane"})
	require.NoError(t, err)
	c, err := Fingerprint(map[string]string{"contactName": "John"})
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFingerprint_Unencodable(t *testing.T) {
	_, err := Fingerprint(make(chan int))
	assert.Error(t, err)
}
