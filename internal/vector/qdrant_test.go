package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitURL_ExplicitPort_IsKept(t *testing.T) {
	host, port, useTLS, err := splitURL("http://qdrant:6333")
	require.NoError(t, err)
	require.Equal(t, "qdrant", host)
	require.Equal(t, 6333, port)
	require.False(t, useTLS)
}

func TestSplitURL_NoPort_DefaultsToGRPCPort(t *testing.T) {
	host, port, _, err := splitURL("http://qdrant.internal")
	require.NoError(t, err)
	require.Equal(t, "qdrant.internal", host)
	require.Equal(t, 6334, port)
}

func TestSplitURL_HTTPSScheme_EnablesTLS(t *testing.T) {
	_, _, useTLS, err := splitURL("https://qdrant.example.com:6334")
	require.NoError(t, err)
	require.True(t, useTLS)
}

func TestSplitURL_MissingHost_ReturnsError(t *testing.T) {
	_, _, _, err := splitURL("not-a-url")
	require.Error(t, err)
}
