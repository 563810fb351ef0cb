package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringerInt int

func (s stringerInt) String() string {
	if s < 10 {
		return "0" + string(rune('0'+s))
	}
	return string(rune('0' + s))
}

func TestMap(t *testing.T) {
	out := Map(func(i int) int { return i * 2 }, []int{1, 2, 3})
	assert.Equal(t, []int{2, 4, 6}, out)
}

func TestFind(t *testing.T) {
	v, ok := Find(func(i int) bool { return i > 2 }, []int{1, 2, 3, 4})
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = Find(func(i int) bool { return i > 10 }, []int{1, 2, 3})
	assert.False(t, ok)
}

func TestJoin(t *testing.T) {
	xs := []stringerInt{stringerInt(1), stringerInt(2), stringerInt(3)}
	assert.Equal(t, "01, 02, 03", Join(xs, ", "))
	assert.Equal(t, "", Join([]stringerInt{}, ", "))
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Range(0, 3))
	assert.Nil(t, Range(3, 3))
	assert.Nil(t, Range(5, 3))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Uniq([]int{1, 2, 1, 3, 2}))
}

func TestErrorFormatting(t *testing.T) {
	e := Error{Message: "bad"}
	assert.Equal(t, "bad", e.Error())

	loc := Error{Location: stringerInt(1), Message: "bad"}
	assert.Equal(t, "01: bad", loc.Error())

	sys := SystemError{Message: "unreachable"}
	assert.Equal(t, "unreachable", sys.Error())
}
