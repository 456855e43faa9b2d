package colorspace

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

const labDelta = 6.0 / 29.0

func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labFInv(ft float64) float64 {
	if ft > labDelta {
		return ft * ft * ft
	}
	return 3 * labDelta * labDelta * (ft - 4.0/29.0)
}

// XYZToLab converts XYZ to CIE 1976 L*a*b* relative to white. Y = 0 gives L = 0.
func XYZToLab(xyz, white chromath.XYZ) chromath.Lab {
	fx := labF(xyz[0] / white[0])
	fy := labF(xyz[1] / white[1])
	fz := labF(xyz[2] / white[2])
	return chromath.Lab{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(lab chromath.Lab, white chromath.XYZ) chromath.XYZ {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return chromath.XYZ{
		white[0] * labFInv(fx),
		white[1] * labFInv(fy),
		white[2] * labFInv(fz),
	}
}
