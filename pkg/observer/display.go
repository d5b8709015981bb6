package observer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// DisplayDevice is notified by a WeatherStation whenever conditions change.
// Only comparable implementations (pointer types are) can be removed from a
// station again.
type DisplayDevice interface {
	Name() string
	Update(temperature, humidity, pressure float64) error
}

type screen struct {
	name string
	out  io.Writer
}

func newScreen(name string, out io.Writer) screen {
	if out == nil {
		out = os.Stdout
	}
	return screen{name: name, out: out}
}

func (s screen) Name() string {
	return s.name
}

func (s screen) Update(temperature, humidity, pressure float64) error {
	_, err := fmt.Fprintf(s.out, "%s Display: Temperature - %s, Humidity - %s, Pressure - %s\n",
		s.name, formatValue(temperature), formatValue(humidity), formatValue(pressure))
	if err != nil {
		return &Error{Op: "Update", Device: s.name, Err: err}
	}
	return nil
}

type PhoneDisplay struct {
	screen
}

func NewPhoneDisplay(out io.Writer) *PhoneDisplay {
	return &PhoneDisplay{newScreen("Phone", out)}
}

type TVDisplay struct {
	screen
}

func NewTVDisplay(out io.Writer) *TVDisplay {
	return &TVDisplay{newScreen("TV", out)}
}

// UnimplementedDisplay can be embedded by displays that are still being
// written. Calling it directly always fails with ErrUnimplemented.
type UnimplementedDisplay struct{}

func (UnimplementedDisplay) Name() string {
	return "Unimplemented"
}

func (UnimplementedDisplay) Update(float64, float64, float64) error {
	return &Error{Op: "Update", Device: "Unimplemented", Err: ErrUnimplemented}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var displayFactories = map[string]func(io.Writer) DisplayDevice{
	"phone": func(w io.Writer) DisplayDevice { return NewPhoneDisplay(w) },
	"tv":    func(w io.Writer) DisplayDevice { return NewTVDisplay(w) },
}

// NewDisplay resolves a display by case-insensitive name.
func NewDisplay(name string, out io.Writer) (DisplayDevice, error) {
	factory, ok := displayFactories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &Error{Op: "NewDisplay", Device: name, Err: ErrUnknownDisplay}
	}
	return factory(out), nil
}

func DisplayNames() []string {
	names := make([]string, 0, len(displayFactories))
	for name := range displayFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
