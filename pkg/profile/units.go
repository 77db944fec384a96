package profile

// semicirclesPerDegree is 2^31 / 180: positions are stored as a signed 32-bit
// fraction of a half turn.
const semicirclesPerDegree = float64(1<<31) / 180.0

// SemicirclesToDegrees converts a raw position field to decimal degrees.
func SemicirclesToDegrees(semicircles int32) float64 {
	return float64(semicircles) / semicirclesPerDegree
}
