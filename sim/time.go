package sim

// VTimeInSec defines the time in the simulated space in the unit of second.
type VTimeInSec float64

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}
