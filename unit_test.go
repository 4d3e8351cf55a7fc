package gwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitMulDiv(t *testing.T) {
	metre := NewUnit(Meter, 1)
	second := NewUnit(Second, 1)
	speed := metre.Div(second)
	assert.Equal(t, "m s^-1", speed.String())
	assert.True(t, speed.Mul(second).Equal(metre))
}

func TestUnitEqualityIgnoresPower(t *testing.T) {
	a := NewUnit(Meter, 1).WithPower(0)
	b := NewUnit(Meter, 1).WithPower(-6)
	assert.True(t, a.Equal(b))
}

func TestUnitPow(t *testing.T) {
	area := NewUnit(Meter, 1).Pow(2)
	assert.Equal(t, "m^2", area.String())
}

func TestUnitRequireEqualMismatch(t *testing.T) {
	err := NewUnit(Meter, 1).RequireEqual(NewUnit(Second, 1))
	assert.Error(t, err)
	var uerr *UnitIncompatibilityError
	assert.ErrorAs(t, err, &uerr)
}

func TestDimensionlessIsNeutral(t *testing.T) {
	assert.True(t, Dimensionless.IsDimensionless())
	assert.Equal(t, "1", Dimensionless.String())
}

func TestNewUnitOddArgsPanics(t *testing.T) {
	assert.Panics(t, func() { NewUnit(Meter) })
}
