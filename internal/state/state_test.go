package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picsort/internal/config"
	"picsort/internal/domain"
)

func sessionWith(paths ...string) *Session {
	session := NewSession()
	session.Reload(paths)
	return session
}

func TestNextPreviousAreInverse(t *testing.T) {
	for size := 1; size <= 5; size++ {
		paths := make([]string, size)
		for i := range paths {
			paths[i] = fmt.Sprintf("/in/%d.png", i)
		}
		for start := 0; start < size; start++ {
			session := sessionWith(paths...)
			session.Index = start

			require.True(t, session.Next())
			require.True(t, session.Previous())
			assert.Equal(t, start, session.Index, "next then previous, size %d", size)

			require.True(t, session.Previous())
			require.True(t, session.Next())
			assert.Equal(t, start, session.Index, "previous then next, size %d", size)
		}
	}
}

func TestNavigationWrapsAround(t *testing.T) {
	session := sessionWith("/in/a.png", "/in/b.png", "/in/c.png")

	session.Previous()
	assert.Equal(t, 2, session.Index)
	session.Next()
	assert.Equal(t, 0, session.Index)
}

func TestNavigationOnEmptyIsNoop(t *testing.T) {
	session := NewSession()
	assert.False(t, session.Next())
	assert.False(t, session.Previous())
	assert.Equal(t, 0, session.Index)
}

func TestReloadReplacesAndResetsIndex(t *testing.T) {
	session := sessionWith("/in/a.png", "/in/b.png", "/in/c.png")
	session.Index = 2

	session.Reload([]string{"/other/x.png", "/other/y.png"})
	assert.Equal(t, []string{"/other/x.png", "/other/y.png"}, session.Images)
	assert.Equal(t, 0, session.Index)

	session.Index = 1
	session.Reload(nil)
	assert.True(t, session.Empty())
	assert.Equal(t, 0, session.Index)
}

func TestRemoveLastClampsIndex(t *testing.T) {
	session := sessionWith("/in/p0.png", "/in/p1.png", "/in/p2.png")
	session.Index = 2

	require.True(t, session.Remove("/in/p2.png"))
	assert.Equal(t, []string{"/in/p0.png", "/in/p1.png"}, session.Images)
	assert.Equal(t, 1, session.Index)
}

func TestRemoveMiddleKeepsIndexAndOrder(t *testing.T) {
	session := sessionWith("/in/p0.png", "/in/p1.png", "/in/p2.png")
	session.Index = 1

	require.True(t, session.Remove("/in/p1.png"))
	assert.Equal(t, []string{"/in/p0.png", "/in/p2.png"}, session.Images)
	assert.Equal(t, 1, session.Index)
	current, _ := session.Current()
	assert.Equal(t, "/in/p2.png", current)
}

func TestRemoveEarlierEntryKeepsCurrentImage(t *testing.T) {
	session := sessionWith("/in/p0.png", "/in/p1.png", "/in/p2.png")
	session.Index = 2

	require.True(t, session.Remove("/in/p0.png"))
	current, _ := session.Current()
	assert.Equal(t, "/in/p2.png", current)
	assert.Equal(t, 1, session.Index)
}

func TestRemoveUntilEmpty(t *testing.T) {
	session := sessionWith("/in/a.png", "/in/b.png")
	for !session.Empty() {
		before := len(session.Images)
		current, _ := session.Current()
		require.True(t, session.Remove(current))
		assert.Equal(t, before-1, len(session.Images))
		if !session.Empty() {
			assert.GreaterOrEqual(t, session.Index, 0)
			assert.Less(t, session.Index, len(session.Images))
		}
	}
	assert.Equal(t, 0, session.Index)
	assert.True(t, session.Display().NoImage)
}

func TestRemoveUnknownPath(t *testing.T) {
	session := sessionWith("/in/a.png")
	assert.False(t, session.Remove("/in/zzz.png"))
	assert.Len(t, session.Images, 1)
}

func TestDisplayProjection(t *testing.T) {
	session := sessionWith("/in/a.png", "/in/b.png", "/in/c.png")
	session.Index = 1

	display := session.Display()
	assert.False(t, display.NoImage)
	assert.Equal(t, "/in/b.png", display.Path)
	assert.Equal(t, "b.png", display.Name)
	assert.Equal(t, "2 / 3", display.Counter())
}

func TestDisplayEmpty(t *testing.T) {
	display := NewSession().Display()
	assert.True(t, display.NoImage)
	assert.Equal(t, "0 / 0", display.Counter())
}

func TestSetConfigBuildsBindings(t *testing.T) {
	session := NewSession()
	conflicts := session.SetConfig(config.Config{
		SourceFolder: "/in",
		DestinationFolders: map[string]domain.Destination{
			"1": {Name: "Keep", Path: "/keep", Key: "k"},
			"2": {Name: "Maybe", Path: "/maybe", Key: "m"},
		},
	})
	assert.Empty(t, conflicts)
	assert.True(t, session.Configured)

	slot, ok := session.SlotForKey("m")
	require.True(t, ok)
	assert.Equal(t, "2", slot)
	_, ok = session.SlotForKey("z")
	assert.False(t, ok)
}

func TestSetConfigCopiesDestinations(t *testing.T) {
	destinations := map[string]domain.Destination{"1": {Name: "Keep", Path: "/keep", Key: "k"}}
	session := NewSession()
	session.SetConfig(config.Config{DestinationFolders: destinations})

	destinations["1"] = domain.Destination{Name: "Changed"}
	destination, ok := session.Destination("1")
	require.True(t, ok)
	assert.Equal(t, "Keep", destination.Name)
}

func TestSetDestinationSlotDerivesName(t *testing.T) {
	session := NewSession()
	session.SetConfig(config.Config{DestinationFolders: map[string]domain.Destination{
		"1": {Name: "Old", Path: "/old", Key: "k"},
	}})

	destination := session.SetDestinationSlot("1", `D:\Photos\Keepers\`)
	assert.Equal(t, "Keepers", destination.Name)
	assert.Equal(t, `D:\Photos\Keepers\`, destination.Path)
	assert.Equal(t, "k", destination.Key)

	created := session.SetDestinationSlot("7", "/srv/pics/rejects")
	assert.Equal(t, "rejects", created.Name)
	assert.Empty(t, created.Key)
	_, bound := session.SlotForKey("")
	assert.False(t, bound)
}
