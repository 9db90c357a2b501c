package scene

// Clock is the animation parameter. Each Tick moves T by PreStep, reports it
// as the sample angle, then moves it again by PostStep.
type Clock struct {
	T        float64
	PreStep  float64
	PostStep float64
	Frame    int
}

// Default clock values: start at 2 rad, 0.03 rad per tick.
const (
	DefaultStart    = 2.0
	DefaultPreStep  = 0.01
	DefaultPostStep = 0.02
)

func DefaultClock() Clock {
	return Clock{T: DefaultStart, PreStep: DefaultPreStep, PostStep: DefaultPostStep}
}

// Tick advances one frame and returns the angle to sample at.
func (c *Clock) Tick() float64 {
	c.T += c.PreStep
	t := c.T
	c.T += c.PostStep
	c.Frame++
	return t
}
