package domain

// List pagination limits shared by the match and commentary endpoints.
// Requesting more than MaxListLimit never errors; it silently clamps.
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// EffectiveLimit clamps a requested page size to the system maximum.
// requested == 0 means "not supplied" and yields the default; negative
// or zero explicit values are rejected at the HTTP edge before this
// policy runs.
func EffectiveLimit(requested int) int {
	if requested == 0 {
		requested = DefaultListLimit
	}
	if requested > MaxListLimit {
		return MaxListLimit
	}
	return requested
}
