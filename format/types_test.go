package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_Classes(t *testing.T) {
	tests := []struct {
		kind      CompressionType
		opaque    bool
		preserved bool
	}{
		{CompressionNone, true, false},
		{CompressionDeleted, true, true},
		{CompressionStreamable, true, true},
		{CompressionRefPack, false, false},
		{CompressionZLib, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.True(t, tt.kind.IsValid())
			require.Equal(t, tt.opaque, tt.kind.IsOpaque())
			require.Equal(t, tt.preserved, tt.kind.IsPreserved())
		})
	}

	require.False(t, CompressionType(0x1234).IsValid())
}

func TestVersion_IsValid(t *testing.T) {
	require.True(t, VersionLegacy.IsValid())
	require.True(t, VersionCurrent.IsValid())
	require.True(t, Version{Major: 3, Minor: 0}.IsValid())
	require.False(t, Version{Major: 1, Minor: 3}.IsValid())
	require.False(t, Version{Major: 3, Minor: 1}.IsValid())
	require.False(t, Version{Major: 4, Minor: 0}.IsValid())
}
