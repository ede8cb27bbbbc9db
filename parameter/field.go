package parameter

// Play Field
// Physics runs in a fixed logical resolution; renderers scale to the output surface
const (
	// FieldWidth is the logical width of the visible field
	FieldWidth = 800.0

	// FieldHeight is the logical height of the visible field
	FieldHeight = 450.0

	// SurfaceY is the water surface line, a hard ceiling for the player
	SurfaceY = 40.0

	// SeabedInset is the distance of the seabed line from the bottom of the field
	SeabedInset = 60.0

	// SeabedY is the seabed line, contact is fatal
	SeabedY = FieldHeight - SeabedInset
)
