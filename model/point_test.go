package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Clone(t *testing.T) {
	p := Point{1, 2, 3}
	c := p.Clone()

	assert.True(t, p.Equal(c))
	c[0] = 42
	assert.Equal(t, 1.0, p[0], "clone must not share memory")
}

func TestFilled(t *testing.T) {
	p := Filled(3, 7.5)
	assert.Equal(t, Point{7.5, 7.5, 7.5}, p)
	assert.Equal(t, 3, p.Dim())
	assert.Empty(t, Filled(0, 1))
}

func TestClonePoints(t *testing.T) {
	src := []Point{{1, 1}, {2, 2}}
	dst := ClonePoints(src)

	assert.Equal(t, src, dst)
	dst[1][0] = 9
	assert.Equal(t, 2.0, src[1][0])
}
