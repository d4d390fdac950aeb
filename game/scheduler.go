package game

// MovementScheduler turns a stream of simulation ticks into discrete "may move now"
// events. An entity with delay n gets one event every n ticks.
type MovementScheduler struct {
	counter int
	delay   int
}

// NewMovementScheduler creates a scheduler that fires on every delay-th tick.
func NewMovementScheduler(delay int) (*MovementScheduler, error) {
	if delay <= 0 {
		return nil, ErrInvalidDelay
	}
	return &MovementScheduler{delay: delay}, nil
}

// Tick advances the counter and reports whether the entity may act this tick.
func (s *MovementScheduler) Tick() bool {
	s.counter++
	if s.counter >= s.delay {
		s.counter = 0
		return true
	}
	return false
}

// Delay returns the configured threshold.
func (s *MovementScheduler) Delay() int {
	return s.delay
}
