package symmetry

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"go.viam.com/test"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	test.That(t, p.RMSDThreshold, test.ShouldEqual, 7.0)
	test.That(t, p.AngleThreshold, test.ShouldEqual, 10.0)
	test.That(t, p.HelixRMSDThreshold, test.ShouldEqual, 0.05)
	test.That(t, p.HelixRMSDToRiseRatio, test.ShouldEqual, 0.5)
	test.That(t, p.MinimumHelixRise, test.ShouldEqual, 1.0)
	test.That(t, p.MinimumHelixAngle, test.ShouldEqual, 5.0)
	test.That(t, p.MaximumLocalCombinations, test.ShouldEqual, 50000)
	test.That(t, p.MaximumLocalResults, test.ShouldEqual, 1000)
	test.That(t, p.MaximumLocalSubunits, test.ShouldEqual, 20)
	test.That(t, p.LocalTimeLimit, test.ShouldEqual, 2*time.Minute)
	test.That(t, p.OnTheFly, test.ShouldBeTrue)
}

func TestAngleAccessors(t *testing.T) {
	p := DefaultParameters()
	test.That(t, p.AngleThresholdRadians(), test.ShouldAlmostEqual, math.Pi/18)
	test.That(t, p.MinimumHelixAngleRadians(), test.ShouldAlmostEqual, math.Pi/36)

	p.AngleThreshold = 90
	test.That(t, p.AngleThresholdRadians(), test.ShouldAlmostEqual, math.Pi/2)
}

func TestParametersIndependentMutation(t *testing.T) {
	p1 := DefaultParameters()
	p2 := DefaultParameters()

	p1.RMSDThreshold = 3.5
	p1.OnTheFly = false
	test.That(t, p2.RMSDThreshold, test.ShouldEqual, 7.0)
	test.That(t, p2.OnTheFly, test.ShouldBeTrue)
}

func TestParametersString(t *testing.T) {
	s := DefaultParameters().String()
	for _, field := range []string{
		"RMSDThreshold", "AngleThreshold", "HelixRMSDThreshold",
		"HelixRMSDToRiseRatio", "MinimumHelixRise", "MinimumHelixAngle",
		"MaximumLocalCombinations", "MaximumLocalResults", "MaximumLocalSubunits",
		"LocalTimeLimit", "OnTheFly",
	} {
		test.That(t, s, test.ShouldContainSubstring, field)
	}
	test.That(t, s, test.ShouldContainSubstring, "7")
	test.That(t, s, test.ShouldContainSubstring, "2m0s")
}

func TestParametersJSONRoundTrip(t *testing.T) {
	p := DefaultParameters()
	p.MaximumLocalSubunits = 12

	data, err := json.Marshal(p)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldContainSubstring, `"rmsd_threshold":7`)
	test.That(t, string(data), test.ShouldContainSubstring, `"maximum_local_subunits":12`)

	var back Parameters
	err = json.Unmarshal(data, &back)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, &back, test.ShouldResemble, p)
}
