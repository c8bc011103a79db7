package evalctx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserScalesAreSnapshotted(t *testing.T) {
	scales := map[string]float64{"ft": 0.3}
	ctx := New(WithUserScales(scales))

	scales["ft"] = 99
	scales["yd"] = 1

	factor, ok := ctx.UserScale("ft")
	assert.True(t, ok)
	assert.Equal(t, 0.3, factor)

	_, ok = ctx.UserScale("yd")
	assert.False(t, ok)
}

func TestEachContextHasItsOwnID(t *testing.T) {
	assert.NotEqual(t, New().ID(), New().ID())

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, id, New(WithID(id)).ID())
}

func TestNilContextHasNoScales(t *testing.T) {
	var ctx *Context
	_, ok := ctx.UserScale("m")
	assert.False(t, ok)
}
