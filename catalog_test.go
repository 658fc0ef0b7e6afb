package vgacoe

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := NewCatalog(filepath.Join(t.TempDir(), "vgacoe.db"))
	require.Nil(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCatalog(t *testing.T) {
	c := newCatalog(t)

	conv, err := c.Find("ABCD", "4x3/16/true/4", "out.coe")
	require.Nil(t, err)
	assert.Nil(t, conv)

	created := time.Unix(1700000000, 0)
	require.Nil(t, c.Record(Conversion{SHA1: "ABCD", Settings: "4x3/16/true/4", Output: "out.coe", Depth: 16, Created: created}))

	conv, err = c.Find("ABCD", "4x3/16/true/4", "out.coe")
	require.Nil(t, err)
	assert.Equal(t, &Conversion{SHA1: "ABCD", Settings: "4x3/16/true/4", Output: "out.coe", Depth: 16, Created: created}, conv)

	// Different settings are a different conversion
	conv, err = c.Find("ABCD", "4x3/0/true/4", "out.coe")
	require.Nil(t, err)
	assert.Nil(t, conv)

	// Recording again replaces the earlier entry
	later := created.Add(time.Hour)
	require.Nil(t, c.Record(Conversion{SHA1: "ABCD", Settings: "4x3/16/true/4", Output: "out.coe", Depth: 16, Created: later}))
	require.Nil(t, c.Record(Conversion{SHA1: "EF01", Settings: "4x3/16/true/4", Output: "another.coe", Depth: 16}))

	convs, err := c.Conversions()
	require.Nil(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, "another.coe", convs[0].Output)
	assert.Equal(t, "out.coe", convs[1].Output)
	assert.Equal(t, later, convs[1].Created)
}
