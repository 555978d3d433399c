// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"

	"github.com/soniakeys/unit"
)

// rad converts degrees to radians.
func rad(deg float64) float64 {
	return unit.AngleFromDeg(deg).Rad()
}

// deg converts radians to degrees.
func deg(rad float64) float64 {
	return unit.Angle(rad).Deg()
}

// normalizeDegrees maps a positive angle into [0, 360) and a negative
// or zero one into (0, 360].
func normalizeDegrees(a float64) float64 {
	if a > 0 {
		return math.Mod(a, 360)
	}
	return math.Mod(a, 360) + 360
}

// moonAscendingNode returns the longitude of the ascending node of the
// moon's orbit, in degrees, used for the nutation and obliquity terms.
func moonAscendingNode(t float64) float64 {
	return 125.04 - 1934.136*t
}

// SunGeometricMeanLongitude returns the geometric mean longitude of the
// sun in degrees, in the range [0, 360).
func SunGeometricMeanLongitude(t float64) float64 {
	return normalizeDegrees(280.46646 + t*(36000.76983+0.0003032*t))
}

// SunGeometricMeanAnomaly returns the geometric mean anomaly of the sun
// in degrees, in the range [0, 360).
func SunGeometricMeanAnomaly(t float64) float64 {
	return normalizeDegrees(357.52911 + t*(35999.05029-0.0001537*t))
}

// EarthOrbitEccentricity returns the (unitless) eccentricity of the
// earth's orbit.
func EarthOrbitEccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// SunEquationOfCenter returns the equation of center of the sun in
// degrees.
func SunEquationOfCenter(t float64) float64 {
	m := rad(SunGeometricMeanAnomaly(t))
	sinm := math.Sin(m)
	sin2m := math.Sin(m + m)
	sin3m := math.Sin(m + m + m)
	return sinm*(1.914602-t*(0.004817+0.000014*t)) +
		sin2m*(0.019993-0.000101*t) +
		sin3m*0.000289
}

// SunTrueLongitude returns the true longitude of the sun in degrees.
func SunTrueLongitude(t float64) float64 {
	return SunGeometricMeanLongitude(t) + SunEquationOfCenter(t)
}

// SunApparentLongitude returns the apparent longitude of the sun in
// degrees, that is, the true longitude corrected for nutation and
// aberration.
func SunApparentLongitude(t float64) float64 {
	omega := moonAscendingNode(t)
	return SunTrueLongitude(t) - 0.00569 - 0.00478*math.Sin(rad(omega))
}

// MeanObliquityOfEcliptic returns the mean obliquity of the ecliptic in
// degrees.
func MeanObliquityOfEcliptic(t float64) float64 {
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return 23.0 + (26.0+(seconds/60.0))/60.0
}

// ObliquityCorrection returns the mean obliquity of the ecliptic
// corrected for the longitude of the moon's ascending node, in degrees.
func ObliquityCorrection(t float64) float64 {
	omega := moonAscendingNode(t)
	return MeanObliquityOfEcliptic(t) + 0.00256*math.Cos(rad(omega))
}

// SunDeclination returns the declination of the sun in degrees.
func SunDeclination(t float64) float64 {
	epsilon := ObliquityCorrection(t)
	lambda := SunApparentLongitude(t)
	sint := math.Sin(rad(epsilon)) * math.Sin(rad(lambda))
	return deg(math.Asin(sint))
}

// EquationOfTime returns the difference between apparent (sundial) and
// mean (clock) solar time in minutes.
func EquationOfTime(t float64) float64 {
	epsilon := ObliquityCorrection(t)
	l0 := SunGeometricMeanLongitude(t)
	e := EarthOrbitEccentricity(t)
	m := SunGeometricMeanAnomaly(t)

	y := math.Tan(rad(epsilon) / 2.0)
	y *= y

	sin2l0 := math.Sin(2.0 * rad(l0))
	sinm := math.Sin(rad(m))
	cos2l0 := math.Cos(2.0 * rad(l0))
	sin4l0 := math.Sin(4.0 * rad(l0))
	sin2m := math.Sin(2.0 * rad(m))

	eot := y*sin2l0 - 2.0*e*sinm + 4.0*e*y*sinm*cos2l0 - 0.5*y*y*sin4l0 - 1.25*e*e*sin2m
	return deg(eot) * 4.0
}
