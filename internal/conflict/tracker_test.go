package conflict

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/tgi"
)

var (
	bhav   = tgi.New(tgi.TypeSimanticsBehaviourFunction, 0x7F000001, 0x1001)
	objd   = tgi.New(tgi.TypeObjectData, 0x7F000001, 0x41A7)
	str    = tgi.New(tgi.TypeTextList, 0x7F000002, 0x0001)
	local  = tgi.New(tgi.TypeSimanticsBehaviourFunction, 0xFFFFFFFF, 0x1001)
	jpeg   = tgi.New(tgi.TypeJPEGImage1, 0x7F000001, 0x0001)
	hashed = func(key tgi.TGI, h uint64) Resource { return Resource{TGI: key, Hash: h, Hashed: true} }
)

func plain(keys ...tgi.TGI) []Resource {
	out := make([]Resource, len(keys))
	for i, key := range keys {
		out[i] = Resource{TGI: key}
	}

	return out
}

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(nil)

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.Empty(t, tracker.Conflicts())
}

func TestTracker_Track_NoConflict(t *testing.T) {
	tracker := NewTracker(nil)

	found, err := tracker.Track("a.package", plain(bhav, objd))
	require.NoError(t, err)
	require.Empty(t, found)

	found, err = tracker.Track("b.package", plain(str))
	require.NoError(t, err)
	require.Empty(t, found)
	require.Equal(t, 3, tracker.Count())
}

func TestTracker_Track_Conflict(t *testing.T) {
	tracker := NewTracker(nil)

	_, err := tracker.Track("a.package", plain(bhav, objd))
	require.NoError(t, err)
	_, err = tracker.Track("b.package", plain(str))
	require.NoError(t, err)

	found, err := tracker.Track("c.package", plain(objd, str, bhav))
	require.NoError(t, err)
	require.Equal(t, []Conflict{
		{Original: "a.package", New: "c.package", TGIs: []tgi.TGI{objd, bhav}},
		{Original: "b.package", New: "c.package", TGIs: []tgi.TGI{str}},
	}, found)
	require.Equal(t, found, tracker.Conflicts())

	owner, ok := tracker.Owner(bhav)
	require.True(t, ok)
	require.Equal(t, "c.package", owner)
}

func TestTracker_Track_LatestOwnerWins(t *testing.T) {
	tracker := NewTracker(nil)

	_, _ = tracker.Track("a.package", plain(bhav))
	_, _ = tracker.Track("b.package", plain(bhav))
	found, err := tracker.Track("c.package", plain(bhav))
	require.NoError(t, err)
	require.Equal(t, []Conflict{{Original: "b.package", New: "c.package", TGIs: []tgi.TGI{bhav}}}, found)
	require.Len(t, tracker.Conflicts(), 2)
}

func TestTracker_Track_Filter(t *testing.T) {
	t.Run("Default ignores local group and media types", func(t *testing.T) {
		tracker := NewTracker(nil)
		_, _ = tracker.Track("a.package", plain(local, jpeg))
		found, err := tracker.Track("b.package", plain(local, jpeg))
		require.NoError(t, err)
		require.Empty(t, found)
		require.Equal(t, 0, tracker.Count())
	})

	t.Run("All types", func(t *testing.T) {
		tracker := NewTracker(AllFilter)
		_, _ = tracker.Track("a.package", plain(local, jpeg))
		found, err := tracker.Track("b.package", plain(local, jpeg))
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, []tgi.TGI{local, jpeg}, found[0].TGIs)
	})
}

func TestTracker_Track_ContentHash(t *testing.T) {
	tracker := NewTracker(nil)

	_, err := tracker.Track("a.package", []Resource{hashed(bhav, 1), hashed(objd, 2)})
	require.NoError(t, err)

	found, err := tracker.Track("b.package", []Resource{hashed(bhav, 1), hashed(objd, 3)})
	require.NoError(t, err)
	require.Equal(t, []Conflict{{Original: "a.package", New: "b.package", TGIs: []tgi.TGI{objd}}}, found)

	found, err = tracker.Track("c.package", plain(bhav))
	require.NoError(t, err)
	require.Len(t, found, 1, "unhashed side is always a conflict")
}

func TestTracker_Track_DuplicateWithinSource(t *testing.T) {
	tracker := NewTracker(nil)

	found, err := tracker.Track("a.package", plain(bhav, bhav))
	require.NoError(t, err)
	require.Empty(t, found)
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Track_Errors(t *testing.T) {
	tracker := NewTracker(nil)

	_, err := tracker.Track("", plain(bhav))
	require.ErrorIs(t, err, errs.ErrInvalidSource)

	_, err = tracker.Track("a.package", plain(bhav))
	require.NoError(t, err)
	_, err = tracker.Track("a.package", plain(bhav))
	require.ErrorIs(t, err, errs.ErrSourceAlreadyTracked)
	require.Equal(t, 1, tracker.Count())
}

func TestConflict_String(t *testing.T) {
	c := Conflict{Original: "a.package", New: "b.package", TGIs: []tgi.TGI{bhav}}
	require.Equal(t, "a.package --> b.package\n"+bhav.String()+"\n", c.String())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker(nil)

	_, _ = tracker.Track("a.package", plain(bhav))
	_, _ = tracker.Track("b.package", plain(bhav))
	require.Equal(t, 1, tracker.Count())
	require.Len(t, tracker.Conflicts(), 1)

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.Empty(t, tracker.Conflicts())
	_, err := tracker.Track("a.package", plain(bhav))
	require.NoError(t, err)
}
