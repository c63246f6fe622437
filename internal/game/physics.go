package game

// EventKind classifies something that happened during a tick
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleHit
	EventScored
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall"
	case EventPaddleHit:
		return "paddle"
	case EventScored:
		return "scored"
	}
	return "unknown"
}

// Event is a collision or scoring occurrence. For EventPaddleHit, Side is
// the paddle that was hit; for EventScored, Side is the side that scored.
type Event struct {
	Kind EventKind
	Side Side
	X, Y float64
}

// Advance runs one physics step: integrate, reflect off walls, resolve
// paddle hits, then detect scoring. A score increments the side's counter
// and relaunches the ball from the center.
func Advance(ball *Ball, paddles []*Paddle, field Playfield, score *Score, rng Rand) []Event {
	var events []Event

	ball.Move()

	// Check wall bounces (top/bottom)
	if ball.Y-ball.Radius < 0 && ball.DY < 0 {
		ball.BounceVertical()
		events = append(events, Event{Kind: EventWallBounce, X: ball.X, Y: 0})
	} else if ball.Y+ball.Radius > field.Height && ball.DY > 0 {
		ball.BounceVertical()
		events = append(events, Event{Kind: EventWallBounce, X: ball.X, Y: field.Height})
	}

	for _, p := range paddles {
		if !Overlaps(ball, p) {
			continue
		}

		// Only collide if ball is moving toward paddle
		if p.Side == SideLeft && ball.DX > 0 {
			continue
		}
		if p.Side == SideRight && ball.DX < 0 {
			continue
		}

		ball.BounceOffPaddle(p)
		events = append(events, Event{Kind: EventPaddleHit, Side: p.Side, X: ball.X, Y: ball.Y})
		break // Only one collision per tick
	}

	if conceded, ok := checkOut(ball, field); ok {
		scorer := conceded.Opposite()
		score.Add(scorer)
		events = append(events, Event{Kind: EventScored, Side: scorer, X: ball.X, Y: ball.Y})
		ball.Reset(field, rng)
	}

	return events
}

// Overlaps tests the ball's bounding box against the paddle rectangle
func Overlaps(ball *Ball, p *Paddle) bool {
	return ball.X-ball.Radius < p.X+p.Width &&
		ball.X+ball.Radius > p.X &&
		ball.Y+ball.Radius > p.Y &&
		ball.Y-ball.Radius < p.Y+p.Height
}

// checkOut reports which side's wall the ball's leading edge crossed
func checkOut(ball *Ball, field Playfield) (Side, bool) {
	if ball.X-ball.Radius < 0 {
		return SideLeft, true
	}
	if ball.X+ball.Radius > field.Width {
		return SideRight, true
	}
	return SideLeft, false
}
