package observer

import (
	"reflect"

	"go.uber.org/multierr"

	"github.com/stybik/LLD/pkg/logging"
)

type Reading struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Humidity    float64 `json:"humidity" yaml:"humidity"`
	Pressure    float64 `json:"pressure" yaml:"pressure"`
}

// WeatherStation keeps the latest reading and pushes it to its observers in
// registration order. It is not safe for concurrent use.
type WeatherStation struct {
	observers []DisplayDevice
	reading   *Reading
	logger    logging.Logger
}

type StationOption func(*WeatherStation)

func WithLogger(logger logging.Logger) StationOption {
	return func(s *WeatherStation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewWeatherStation(opts ...StationOption) *WeatherStation {
	s := &WeatherStation{logger: logging.NewNoopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddObserver appends o. The same observer may be registered more than once
// and is then notified once per registration.
func (s *WeatherStation) AddObserver(o DisplayDevice) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
	s.logger.Debug("observer %s registered (total %d)", o.Name(), len(s.observers))
}

// RemoveObserver drops the first registration of o. Observers whose values
// cannot be compared with == are never matched and report ErrObserverNotFound.
func (s *WeatherStation) RemoveObserver(o DisplayDevice) error {
	for i, obs := range s.observers {
		if sameObserver(obs, o) {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			s.logger.Debug("observer %s removed (total %d)", o.Name(), len(s.observers))
			return nil
		}
	}

	name := ""
	if o != nil {
		name = o.Name()
	}
	return &Error{Op: "RemoveObserver", Device: name, Err: ErrObserverNotFound}
}

func sameObserver(a, b DisplayDevice) bool {
	if a == nil || b == nil {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

func (s *WeatherStation) Observers() []DisplayDevice {
	out := make([]DisplayDevice, len(s.observers))
	copy(out, s.observers)
	return out
}

// Reading returns the latest reading and false when none was recorded.
func (s *WeatherStation) Reading() (Reading, bool) {
	if s.reading == nil {
		return Reading{}, false
	}
	return *s.reading, true
}

func (s *WeatherStation) UpdateConditions(temperature, humidity, pressure float64) error {
	s.reading = &Reading{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	}
	return s.NotifyObservers()
}

// NotifyObservers pushes the current reading to every observer. A failing
// observer does not stop the rest; all failures are returned combined.
func (s *WeatherStation) NotifyObservers() error {
	if s.reading == nil {
		return &Error{Op: "NotifyObservers", Err: ErrNoReading}
	}

	r := *s.reading
	observers := s.Observers()

	var errs error
	for _, o := range observers {
		if err := o.Update(r.Temperature, r.Humidity, r.Pressure); err != nil {
			s.logger.Error("observer %s failed: %v", o.Name(), err)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
