package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Arithmetic(t *testing.T) {
	a := Pt(3, -4)
	b := Pt(1, 2)

	assert.Equal(t, Pt(4, -2), a.Add(b))
	assert.Equal(t, Pt(2, -6), a.Sub(b))
	assert.Equal(t, Pt(6, -8), a.Mul(2))
	assert.Equal(t, Pt(2, -1), a.Mid(b))
	assert.InDelta(t, 5, a.Distance(Pt(0, 0)), 1e-12)
	assert.Zero(t, a.Distance(a))
}
