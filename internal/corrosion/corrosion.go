// Package corrosion derives reduced-thickness variants of steel profile
// dimensions. The material loss is applied to the dimension parameters, not
// to polygon edges, so the reduced shape regenerates exactly through the
// normal shape generators.
//
// Open profiles (I-sections, channels, angles and, by default, strips) are
// exposed on both faces of every plate element, so each element loses twice
// the per-face depth. Closed hollow sections are sealed inside and lose only
// on the outer face.
package corrosion

import (
	"fmt"

	"github.com/structcode/gosect/internal/shape"
)

// LossError reports a corrosion loss that consumes a profile element
// entirely.
type LossError struct {
	Parameter string  // the exhausted dimension
	Loss      float64 // requested per-face loss (mm)
	Remaining float64 // thickness that would remain (mm)
}

func (e *LossError) Error() string {
	return fmt.Sprintf("corrosion: loss of %g mm per face leaves %s at %g mm", e.Loss, e.Parameter, e.Remaining)
}

func checkLoss(loss float64) error {
	if loss < 0 {
		return &LossError{Parameter: "loss", Loss: loss, Remaining: 0}
	}
	return nil
}

func reduced(name string, v, total float64, loss float64) (float64, error) {
	rest := v - total
	if rest <= 0 {
		return 0, &LossError{Parameter: name, Loss: loss, Remaining: rest}
	}
	return rest, nil
}

// ReduceISection applies a per-face loss to an I-section exposed on all
// faces. Flange and web thickness reduce by twice the loss, as do the
// overall height and flange width.
func ReduceISection(d shape.ISectionDims, loss float64) (shape.ISectionDims, error) {
	if err := checkLoss(loss); err != nil {
		return shape.ISectionDims{}, err
	}
	var err error
	out := d
	if out.Tf, err = reduced("Tf", d.Tf, 2*loss, loss); err != nil {
		return shape.ISectionDims{}, err
	}
	if out.Tw, err = reduced("Tw", d.Tw, 2*loss, loss); err != nil {
		return shape.ISectionDims{}, err
	}
	if out.B, err = reduced("B", d.B, 2*loss, loss); err != nil {
		return shape.ISectionDims{}, err
	}
	if out.H, err = reduced("H", d.H, 2*loss, loss); err != nil {
		return shape.ISectionDims{}, err
	}
	// The fillet sits in the web/flange root and is not reduced.
	return out, nil
}

// ReduceChannel applies a per-face loss to a channel exposed on all faces.
func ReduceChannel(d shape.ChannelDims, loss float64) (shape.ChannelDims, error) {
	if err := checkLoss(loss); err != nil {
		return shape.ChannelDims{}, err
	}
	var err error
	out := d
	if out.Tf, err = reduced("Tf", d.Tf, 2*loss, loss); err != nil {
		return shape.ChannelDims{}, err
	}
	if out.Tw, err = reduced("Tw", d.Tw, 2*loss, loss); err != nil {
		return shape.ChannelDims{}, err
	}
	if out.B, err = reduced("B", d.B, 2*loss, loss); err != nil {
		return shape.ChannelDims{}, err
	}
	if out.H, err = reduced("H", d.H, 2*loss, loss); err != nil {
		return shape.ChannelDims{}, err
	}
	return out, nil
}

// ReduceAngle applies a per-face loss to an angle exposed on all faces.
func ReduceAngle(d shape.AngleDims, loss float64) (shape.AngleDims, error) {
	if err := checkLoss(loss); err != nil {
		return shape.AngleDims{}, err
	}
	var err error
	out := d
	if out.T, err = reduced("T", d.T, 2*loss, loss); err != nil {
		return shape.AngleDims{}, err
	}
	if out.B, err = reduced("B", d.B, 2*loss, loss); err != nil {
		return shape.AngleDims{}, err
	}
	if out.H, err = reduced("H", d.H, 2*loss, loss); err != nil {
		return shape.AngleDims{}, err
	}
	return out, nil
}

// ReduceStrip applies a per-face loss to a rectangular strip. bothFaces
// selects two-sided exposure (the default for free-standing plates); a strip
// backed by concrete or another member corrodes on one face only.
func ReduceStrip(d shape.StripDims, loss float64, bothFaces bool) (shape.StripDims, error) {
	if err := checkLoss(loss); err != nil {
		return shape.StripDims{}, err
	}
	total := loss
	if bothFaces {
		total = 2 * loss
	}
	var err error
	out := d
	if out.T, err = reduced("T", d.T, total, loss); err != nil {
		return shape.StripDims{}, err
	}
	if out.W, err = reduced("W", d.W, 2*loss, loss); err != nil {
		return shape.StripDims{}, err
	}
	return out, nil
}

// ReduceCHS applies a per-face loss to a circular hollow section. The
// interior is sealed, so only the outer face corrodes: the wall thins by the
// loss and the outer diameter shrinks with it while the bore is unchanged.
func ReduceCHS(d shape.CHSDims, loss float64) (shape.CHSDims, error) {
	if err := checkLoss(loss); err != nil {
		return shape.CHSDims{}, err
	}
	var err error
	out := d
	if out.T, err = reduced("T", d.T, loss, loss); err != nil {
		return shape.CHSDims{}, err
	}
	out.D = d.D - 2*loss
	return out, nil
}

// ReduceRHS applies a per-face loss to a rectangular hollow section, outer
// face only.
func ReduceRHS(d shape.RHSDims, loss float64) (shape.RHSDims, error) {
	if err := checkLoss(loss); err != nil {
		return shape.RHSDims{}, err
	}
	var err error
	out := d
	if out.T, err = reduced("T", d.T, loss, loss); err != nil {
		return shape.RHSDims{}, err
	}
	out.B = d.B - 2*loss
	out.H = d.H - 2*loss
	if out.Ro > loss {
		out.Ro -= loss
	}
	return out, nil
}
