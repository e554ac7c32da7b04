package corrosion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcode/gosect/internal/profile"
	"github.com/structcode/gosect/internal/shape"
)

func TestReduceStrip(t *testing.T) {
	d := shape.StripDims{W: 200, T: 10}

	both, err := ReduceStrip(d, 2, true)
	require.NoError(t, err)
	assert.InDelta(t, 6, both.T, 1e-12)
	assert.InDelta(t, 196, both.W, 1e-12)

	one, err := ReduceStrip(d, 2, false)
	require.NoError(t, err)
	assert.InDelta(t, 8, one.T, 1e-12)

	var lossErr *LossError
	_, err = ReduceStrip(d, 5, true)
	require.ErrorAs(t, err, &lossErr)
	assert.Equal(t, "T", lossErr.Parameter)

	// One-sided exposure survives the same loss.
	_, err = ReduceStrip(d, 5, false)
	require.NoError(t, err)

	_, err = ReduceStrip(d, -1, true)
	require.ErrorAs(t, err, &lossErr)
}

func TestReduceISection(t *testing.T) {
	d := shape.ISectionDims{H: 190, B: 200, Tw: 6.5, Tf: 10, R: 18}

	out, err := ReduceISection(d, 1)
	require.NoError(t, err)
	assert.InDelta(t, 188, out.H, 1e-12)
	assert.InDelta(t, 198, out.B, 1e-12)
	assert.InDelta(t, 4.5, out.Tw, 1e-12)
	assert.InDelta(t, 8, out.Tf, 1e-12)
	assert.InDelta(t, d.R, out.R, 1e-12, "root fillet is not exposed")

	rs, err := shape.New(out)
	require.NoError(t, err)
	expected := 2*out.B*out.Tf + (out.H-2*out.Tf)*out.Tw + (4-math.Pi)*out.R*out.R
	assert.InEpsilon(t, expected, rs.Area(), 1e-3)

	var lossErr *LossError
	_, err = ReduceISection(d, 3.5)
	require.ErrorAs(t, err, &lossErr)
	assert.Equal(t, "Tw", lossErr.Parameter)
}

func TestReduceCHS_OuterFaceOnly(t *testing.T) {
	d := shape.CHSDims{D: 219.1, T: 8}

	out, err := ReduceCHS(d, 2)
	require.NoError(t, err)
	assert.InDelta(t, 6, out.T, 1e-12)
	assert.InDelta(t, 215.1, out.D, 1e-12)
	// Bore is sealed and unchanged.
	assert.InDelta(t, d.D-2*d.T, out.D-2*out.T, 1e-12)

	var lossErr *LossError
	_, err = ReduceCHS(d, 8)
	require.ErrorAs(t, err, &lossErr)
}

func TestReduceRHS_OuterFaceOnly(t *testing.T) {
	d := shape.HotFinishedRHS(100, 100, 5)

	out, err := ReduceRHS(d, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4, out.T, 1e-12)
	assert.InDelta(t, 98, out.B, 1e-12)
	assert.InDelta(t, 98, out.H, 1e-12)
	assert.InDelta(t, d.Ro-1, out.Ro, 1e-12)
	assert.InDelta(t, d.Ri, out.Ri, 1e-12)
}

func TestReduceChannelAndAngle(t *testing.T) {
	cd, err := ReduceChannel(shape.ChannelDims{H: 200, B: 75, Tw: 8.5, Tf: 11.5, R: 11.5}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 6.5, cd.Tw, 1e-12)
	assert.InDelta(t, 9.5, cd.Tf, 1e-12)

	ad, err := ReduceAngle(shape.AngleDims{H: 100, B: 100, T: 10, R: 12}, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 7, ad.T, 1e-12)
	assert.InDelta(t, 97, ad.B, 1e-12)

	var lossErr *LossError
	_, err = ReduceAngle(shape.AngleDims{H: 100, B: 100, T: 10, R: 12}, 5)
	require.ErrorAs(t, err, &lossErr)
	assert.Equal(t, "T", lossErr.Parameter)
}

func TestReduceProfile(t *testing.T) {
	d, err := profile.Lookup("HEA200")
	require.NoError(t, err)
	require.Positive(t, d.CatalogArea)

	out, err := ReduceProfile(d, 1)
	require.NoError(t, err)
	assert.Zero(t, out.CatalogArea, "published area no longer applies")
	assert.InDelta(t, d.H-2, out.H, 1e-12)
	assert.InDelta(t, d.Tf-2, out.Tf, 1e-12)

	s, err := profile.Build(out)
	require.NoError(t, err)
	full, err := profile.Build(d)
	require.NoError(t, err)
	assert.Less(t, s.Area(), full.Area())

	chs, err := profile.Lookup("CHS 219.1x8")
	require.NoError(t, err)
	rchs, err := ReduceProfile(chs, 2)
	require.NoError(t, err)
	assert.InDelta(t, chs.T-2, rchs.T, 1e-12)
	assert.InDelta(t, chs.D-4, rchs.D, 1e-12)

	var lossErr *LossError
	_, err = ReduceProfile(d, 50)
	require.ErrorAs(t, err, &lossErr)
}
