package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-auth-request/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestPtrValue(t *testing.T) {
	p := utils.Ptr("https://app.example.com/cb")
	require.Equal(t, "https://app.example.com/cb", utils.Value(p))

	var nilPtr *string
	require.Equal(t, "", utils.Value(nilPtr))
}
