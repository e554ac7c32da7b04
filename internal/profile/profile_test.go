package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Normalization(t *testing.T) {
	for _, name := range []string{"HEA200", "hea 200", "HEA-200", "hea_200"} {
		d, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "HEA200", d.Name)
		assert.Equal(t, FamilyHEA, d.Family)
	}
}

func TestLookup_NotFound(t *testing.T) {
	_, err := Lookup("HEA9999")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "HEA9999", nfErr.Name)
}

func TestList_SortedAndComplete(t *testing.T) {
	ipe := List(FamilyIPE)
	require.NotEmpty(t, ipe)
	for i := 1; i < len(ipe); i++ {
		assert.LessOrEqual(t, ipe[i-1].H, ipe[i].H)
		assert.Equal(t, FamilyIPE, ipe[i].Family)
	}

	for _, f := range Families {
		assert.NotEmpty(t, List(f), string(f))
	}
}

// Generated areas must reproduce the published catalog areas. The UPN series
// is idealized with parallel flanges and tolerates a wider band; angle toe
// radii are neglected.
func TestBuild_AreaMatchesCatalog(t *testing.T) {
	tolerance := map[Family]float64{
		FamilyHEA: 0.01,
		FamilyHEB: 0.01,
		FamilyIPE: 0.01,
		FamilyUPN: 0.03,
		FamilyCHS: 0.01,
		FamilySHS: 0.01,
		FamilyL:   0.02,
	}
	for _, f := range Families {
		for _, d := range List(f) {
			s, err := Build(d)
			require.NoError(t, err, d.Name)
			require.Positive(t, d.CatalogArea, d.Name)
			assert.InEpsilon(t, d.CatalogArea, s.Area(), tolerance[f], d.Name)
		}
	}
}

func TestBuild_HEA200Properties(t *testing.T) {
	d, err := Lookup("HEA200")
	require.NoError(t, err)
	s, err := Build(d)
	require.NoError(t, err)

	c, err := s.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 0, c.X, 1e-9)
	assert.InDelta(t, 0, c.Y, 1e-9)

	// Published HEA200: Iy = 3692 cm⁴, Iz = 1336 cm⁴.
	m, err := s.SecondMoments()
	require.NoError(t, err)
	assert.InEpsilon(t, 3692e4, m.Iyy, 0.01)
	assert.InEpsilon(t, 1336e4, m.Izz, 0.01)
}

func TestBuild_UnknownFamily(t *testing.T) {
	_, err := Build(Dimensions{Name: "X1", Family: Family("X")})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}
