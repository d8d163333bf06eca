package motion

// Transform is the motion-affecting state of one answer button, in
// abstract grid units relative to the button's rest position.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64 // degrees
	Scale    float64
}

// Rest is the reset transform: origin position, no rotation, full size.
var Rest = Transform{Scale: 1}

// Vec is a 2D offset used for waypoint paths.
type Vec struct {
	X float64
	Y float64
}

// lerp interpolates between two transforms at progress p in [0,1].
func lerp(from, to Transform, p float64) Transform {
	return Transform{
		X:        from.X + (to.X-from.X)*p,
		Y:        from.Y + (to.Y-from.Y)*p,
		Rotation: from.Rotation + (to.Rotation-from.Rotation)*p,
		Scale:    from.Scale + (to.Scale-from.Scale)*p,
	}
}
