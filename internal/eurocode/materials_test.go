package eurocode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteelGrade_ThicknessBands(t *testing.T) {
	assert.InDelta(t, 235, S235.Fy(10), 1e-12)
	assert.InDelta(t, 235, S235.Fy(40), 1e-12)
	assert.InDelta(t, 215, S235.Fy(50), 1e-12)

	assert.InDelta(t, 355, S355.Fy(12), 1e-12)
	assert.InDelta(t, 335, S355.Fy(60), 1e-12)
	assert.InDelta(t, 510, S355.Fu(12), 1e-12)
	assert.InDelta(t, 470, S355.Fu(60), 1e-12)
}

func TestSteelGrade_Material(t *testing.T) {
	m := S275.Material(15)
	assert.Equal(t, "S275", m.Name)
	assert.InDelta(t, Es, m.E, 1e-12)
	assert.InDelta(t, 275, m.Fy, 1e-12)
}

func TestEpsilon(t *testing.T) {
	assert.InDelta(t, 1.0, Epsilon(235), 1e-12)
	assert.InDelta(t, math.Sqrt(235.0/355.0), Epsilon(355), 1e-12)
	assert.Less(t, Epsilon(460), Epsilon(235))
}

func TestConcrete_Ecm(t *testing.T) {
	// Table 3.1 lists Ecm for C30/37 as 33 GPa (rounded).
	assert.InDelta(t, 38, C30_37.Fcm(), 1e-12)
	assert.InDelta(t, 33000, C30_37.Ecm(), 250)
	assert.InDelta(t, 31000, C25_30.Ecm(), 250)

	m := C30_37.Material()
	assert.Equal(t, "C30/37", m.Name)
	assert.InDelta(t, C30_37.Ecm(), m.E, 1e-12)
	assert.InDelta(t, 30, m.Fy, 1e-12)
}

func TestRebarB500(t *testing.T) {
	m := RebarB500()
	assert.InDelta(t, 200000, m.E, 1e-12)
	assert.InDelta(t, 500, m.Fy, 1e-12)
}

func TestPartialFactors(t *testing.T) {
	assert.Equal(t, 1.00, GammaM0)
	assert.Equal(t, 1.25, GammaM2)
	assert.Equal(t, 1.50, GammaC)
	assert.Equal(t, 1.15, GammaS)
}
