package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	secret := []byte("secret123")
	WipeByteArray(secret)
	require.Equal(t, make([]byte, len("secret123")), secret)
}

func TestWipeByteArray_Empty(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
