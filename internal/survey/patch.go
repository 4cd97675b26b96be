package survey

// PointPatch is a partial update to a survey point. Nil fields are left
// unchanged by the store.
type PointPatch struct {
	X        *float64
	Y        *float64
	Disabled *bool
}
