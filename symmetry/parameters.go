// Package symmetry holds the tunable thresholds, iteration caps, and time
// budgets consumed by quaternary symmetry detection. The values are carried
// through a detection run unchanged; nothing in this module reads them.
package symmetry

import (
	"fmt"
	"time"

	"github.com/structmol/quatsym/utils"
)

// Parameters configures a quaternary symmetry detection run. Fields are
// independently mutable and there is no cross-field validation; sharing one
// instance across concurrent runs is the caller's responsibility.
type Parameters struct {
	// RMSDThreshold is the largest subunit superposition RMSD still accepted
	// as symmetric.
	RMSDThreshold float64 `json:"rmsd_threshold"`
	// AngleThreshold is the maximum angular deviation in degrees allowed by
	// the two-fold axis solver.
	AngleThreshold float64 `json:"angle_threshold"`
	// HelixRMSDThreshold gives preference to a helical assignment when the
	// helical and cyclic RMSDs are within this margin of each other.
	HelixRMSDThreshold float64 `json:"helix_rmsd_threshold"`
	// HelixRMSDToRiseRatio bounds the helical RMSD to this fraction of the
	// absolute rise.
	HelixRMSDToRiseRatio float64 `json:"helix_rmsd_to_rise_ratio"`
	// MinimumHelixRise is the smallest rise per subunit treated as helical.
	MinimumHelixRise float64 `json:"minimum_helix_rise"`
	// MinimumHelixAngle is the smallest twist in degrees distinguishing a
	// helix from a translational repeat.
	MinimumHelixAngle float64 `json:"minimum_helix_angle"`
	// MaximumLocalCombinations caps the subunit groupings tried during local
	// symmetry search.
	MaximumLocalCombinations int `json:"maximum_local_combinations"`
	// MaximumLocalResults caps how many local symmetry results are kept.
	MaximumLocalResults int `json:"maximum_local_results"`
	// MaximumLocalSubunits caps the subunit count considered for local
	// symmetry.
	MaximumLocalSubunits int `json:"maximum_local_subunits"`
	// LocalTimeLimit bounds the wall time spent on local symmetry search.
	LocalTimeLimit time.Duration `json:"local_time_limit"`
	// OnTheFly enables generating assembly views on the fly downstream.
	OnTheFly bool `json:"on_the_fly"`
}

// DefaultParameters returns the thresholds and limits detection runs start
// from.
func DefaultParameters() *Parameters {
	return &Parameters{
		RMSDThreshold:            7.0,
		AngleThreshold:           10.0,
		HelixRMSDThreshold:       0.05,
		HelixRMSDToRiseRatio:     0.5,
		MinimumHelixRise:         1.0,
		MinimumHelixAngle:        5.0,
		MaximumLocalCombinations: 50000,
		MaximumLocalResults:      1000,
		MaximumLocalSubunits:     20,
		LocalTimeLimit:           2 * time.Minute,
		OnTheFly:                 true,
	}
}

// AngleThresholdRadians returns the two-fold solver angle threshold in the
// radians the orientation metric works in.
func (p *Parameters) AngleThresholdRadians() float64 {
	return utils.DegToRad(p.AngleThreshold)
}

// MinimumHelixAngleRadians returns the minimum helix twist in radians.
func (p *Parameters) MinimumHelixAngleRadians() float64 {
	return utils.DegToRad(p.MinimumHelixAngle)
}

// String returns every field for diagnostics, pipe separated.
func (p *Parameters) String() string {
	return fmt.Sprintf(
		"RMSDThreshold: %v | AngleThreshold: %v | HelixRMSDThreshold: %v | "+
			"HelixRMSDToRiseRatio: %v | MinimumHelixRise: %v | MinimumHelixAngle: %v | "+
			"MaximumLocalCombinations: %v | MaximumLocalResults: %v | MaximumLocalSubunits: %v | "+
			"LocalTimeLimit: %v | OnTheFly: %v",
		p.RMSDThreshold, p.AngleThreshold, p.HelixRMSDThreshold,
		p.HelixRMSDToRiseRatio, p.MinimumHelixRise, p.MinimumHelixAngle,
		p.MaximumLocalCombinations, p.MaximumLocalResults, p.MaximumLocalSubunits,
		p.LocalTimeLimit, p.OnTheFly,
	)
}
