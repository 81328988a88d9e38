package tgi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeCode_Known(t *testing.T) {
	t.Run("Known type", func(t *testing.T) {
		require.True(t, TypeDirectory.Known())
		require.Equal(t, uint32(0xE86B1EEF), TypeDirectory.Code())
		require.Equal(t, "DBPF Directory", TypeDirectory.Name())
		require.Equal(t, "DIR", TypeDirectory.Abbreviation())
		require.Equal(t, []string{"dir"}, TypeDirectory.Extensions())
		require.Equal(t, "dir", TypeDirectory.Extension())

		p, ok := TypeTextList.Properties()
		require.True(t, ok)
		require.True(t, p.EmbeddedFilename)
	})

	t.Run("Unknown type", func(t *testing.T) {
		c := TypeCode(0x8B0C79D6)
		require.False(t, c.Known())
		_, ok := c.Properties()
		require.False(t, ok)
		require.Equal(t, "8B0C79D6", c.Name())
		require.Equal(t, "8B0C79D6", c.Abbreviation())
		require.Equal(t, []string{"8B0C79D6"}, c.Extensions())
	})

	t.Run("Extension falls back to abbreviation", func(t *testing.T) {
		require.Equal(t, "BHAV", TypeSimanticsBehaviourFunction.Extension())
	})

	t.Run("Zero code is the user interface type", func(t *testing.T) {
		require.True(t, TypeCode(0).Known())
		require.Equal(t, TypeUserInterface, TypeCode(0))
	})
}

func TestTypeCode_ExtensionsAreCopies(t *testing.T) {
	exts := TypeGeometricDataContainer.Extensions()
	require.Equal(t, []string{"5gd", "gmdc"}, exts)
	exts[0] = "mutated"
	require.Equal(t, "5gd", TypeGeometricDataContainer.Extension())
}

func TestKnownTypes(t *testing.T) {
	codes := KnownTypes()
	require.Len(t, codes, 139)
	for i := 1; i < len(codes); i++ {
		require.Less(t, codes[i-1], codes[i])
	}
}

func TestTGI(t *testing.T) {
	a := New(TypePropertySet, 0x1C050000, 0xAABBCCDD11223344)
	require.Equal(t, uint32(0x11223344), a.InstanceLow())
	require.Equal(t, uint32(0xAABBCCDD), a.InstanceHigh())

	t.Run("Equality over raw code", func(t *testing.T) {
		b := TGI{Type: TypeCode(0xEBCF3E27), Group: 0x1C050000, Instance: 0xAABBCCDD11223344}
		require.Equal(t, a, b)

		m := map[TGI]int{a: 1}
		require.Equal(t, 1, m[b])
	})

	t.Run("Compare", func(t *testing.T) {
		require.Equal(t, 0, a.Compare(a))
		require.Equal(t, -1, New(1, 0, 0).Compare(New(2, 0, 0)))
		require.Equal(t, 1, New(1, 2, 0).Compare(New(1, 1, 0)))
		require.Equal(t, -1, New(1, 1, 1).Compare(New(1, 1, 2)))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "GZPS EBCF3E27:1C050000:AABBCCDD11223344", a.String())
	})
}
