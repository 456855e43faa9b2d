// Package colorspace converts tristimulus values between CIE XYZ, CIELab,
// sRGB and HSV.
//
// XYZ values are scaled so the reference white has Y = 100. sRGB values are
// gamma encoded and lie in [0, 1]. Conversion into sRGB clips each channel to
// [0, 1] without flagging out-of-gamut input; this is a known, lossy
// approximation and no gamut mapping is attempted.
package colorspace
