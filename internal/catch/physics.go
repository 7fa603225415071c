package catch

// Bounds is an axis-aligned box in world units.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Intersects reports whether two closed boxes overlap. Touching edges count.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// BasketBounds returns the catch box of a basket at its current x.
func BasketBounds(b Basket, t Tuning) Bounds {
	hw, hh := t.BasketWidth/2, t.BasketHeight/2
	return Bounds{
		MinX: b.X - hw, MaxX: b.X + hw,
		MinY: t.BasketY - hh, MaxY: t.BasketY + hh,
	}
}

// ObjectBounds returns the bounding box of a round object of the given radius.
func ObjectBounds(o FallingObject, radius float64) Bounds {
	return Bounds{
		MinX: o.X - radius, MaxX: o.X + radius,
		MinY: o.Y - radius, MaxY: o.Y + radius,
	}
}

// StepResult partitions the active set after one physics tick.
type StepResult struct {
	InFlight []FallingObject
	Caught   []FallingObject
	Missed   []FallingObject
}

// StepObjects drops every object by fallSpeed and sorts it into caught,
// missed or still in flight. The basket test runs before the height test, so
// an object satisfying both is caught. The input slice is not modified.
func StepObjects(objects []FallingObject, fallSpeed float64, basket Bounds, missY, radius float64) StepResult {
	var res StepResult
	if len(objects) > 0 {
		res.InFlight = make([]FallingObject, 0, len(objects))
	}
	for _, o := range objects {
		o.Y -= fallSpeed
		switch {
		case ObjectBounds(o, radius).Intersects(basket):
			res.Caught = append(res.Caught, o)
		case o.Y < missY:
			res.Missed = append(res.Missed, o)
		default:
			res.InFlight = append(res.InFlight, o)
		}
	}
	return res
}

// MoveBasket applies one frame of movement intent. Left and right are
// evaluated independently; holding both cancels out whenever both branches
// fire. The result is always within [-boundary, boundary].
func MoveBasket(b Basket, speed, boundary float64) Basket {
	if b.MovingLeft && b.X > -boundary {
		b.X -= speed
	}
	if b.MovingRight && b.X < boundary {
		b.X += speed
	}
	if b.X < -boundary {
		b.X = -boundary
	}
	if b.X > boundary {
		b.X = boundary
	}
	return b
}
