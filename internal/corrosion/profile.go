package corrosion

import (
	"fmt"

	"github.com/structcode/gosect/internal/profile"
	"github.com/structcode/gosect/internal/shape"
)

// ReduceProfile applies a per-face corrosion loss to a catalog profile
// record. The returned record regenerates the reduced shape through
// profile.Build; its CatalogArea is cleared since the published value no
// longer applies.
func ReduceProfile(d profile.Dimensions, loss float64) (profile.Dimensions, error) {
	out := d
	out.CatalogArea = 0

	switch d.Family {
	case profile.FamilyHEA, profile.FamilyHEB, profile.FamilyIPE:
		rid, err := ReduceISection(shape.ISectionDims{H: d.H, B: d.B, Tw: d.Tw, Tf: d.Tf, R: d.R}, loss)
		if err != nil {
			return profile.Dimensions{}, err
		}
		out.H, out.B, out.Tw, out.Tf = rid.H, rid.B, rid.Tw, rid.Tf

	case profile.FamilyUPN:
		rcd, err := ReduceChannel(shape.ChannelDims{H: d.H, B: d.B, Tw: d.Tw, Tf: d.Tf, R: d.R}, loss)
		if err != nil {
			return profile.Dimensions{}, err
		}
		out.H, out.B, out.Tw, out.Tf = rcd.H, rcd.B, rcd.Tw, rcd.Tf

	case profile.FamilyCHS:
		rhd, err := ReduceCHS(shape.CHSDims{D: d.D, T: d.T}, loss)
		if err != nil {
			return profile.Dimensions{}, err
		}
		out.D, out.T = rhd.D, rhd.T

	case profile.FamilySHS:
		rhd, err := ReduceRHS(shape.HotFinishedRHS(d.H, d.B, d.T), loss)
		if err != nil {
			return profile.Dimensions{}, err
		}
		out.H, out.B, out.T = rhd.H, rhd.B, rhd.T

	case profile.FamilyL:
		rad, err := ReduceAngle(shape.AngleDims{H: d.H, B: d.B, T: d.T, R: d.R}, loss)
		if err != nil {
			return profile.Dimensions{}, err
		}
		out.H, out.B, out.T = rad.H, rad.B, rad.T

	default:
		return profile.Dimensions{}, fmt.Errorf("corrosion: unsupported profile family %q", d.Family)
	}

	return out, nil
}
