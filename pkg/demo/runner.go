// Package demo replays configured Strategy and Observer scenarios.
package demo

import (
	"fmt"
	"io"

	"github.com/stybik/LLD/pkg/config"
	"github.com/stybik/LLD/pkg/logging"
	"github.com/stybik/LLD/pkg/observer"
	"github.com/stybik/LLD/pkg/strategy"
)

type Runner struct {
	cfg    *config.Config
	out    io.Writer
	logger logging.Logger
	extra  []observer.DisplayDevice
}

type Option func(*Runner)

func WithLogger(logger logging.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObservers registers additional observers after the configured displays.
func WithObservers(observers ...observer.DisplayDevice) Option {
	return func(r *Runner) {
		r.extra = append(r.extra, observers...)
	}
}

func NewRunner(cfg *config.Config, out io.Writer, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	r := &Runner{
		cfg:    cfg,
		out:    out,
		logger: logging.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunStrategy sends every configured payment through one processor, rebinding
// its gateway before each call.
func (r *Runner) RunStrategy() error {
	processor := strategy.NewPaymentProcessor(nil, strategy.WithLogger(r.logger))

	for i, p := range r.cfg.Strategy.Payments {
		gateway, err := strategy.NewGateway(p.Gateway, r.out)
		if err != nil {
			return fmt.Errorf("payment %d: %w", i+1, err)
		}
		processor.SetGateway(gateway)
		if err := processor.ProcessPayment(p.Amount); err != nil {
			return fmt.Errorf("payment %d: %w", i+1, err)
		}
	}
	r.logger.Info("strategy scenario finished: %d payments", len(r.cfg.Strategy.Payments))
	return nil
}

// RunObserver registers the configured displays and pushes every configured
// reading through the station.
func (r *Runner) RunObserver() error {
	station := observer.NewWeatherStation(observer.WithLogger(r.logger))

	for _, name := range r.cfg.Observer.Displays {
		display, err := observer.NewDisplay(name, r.out)
		if err != nil {
			return err
		}
		station.AddObserver(display)
	}
	for _, o := range r.extra {
		station.AddObserver(o)
	}

	for i, reading := range r.cfg.Observer.Readings {
		if err := station.UpdateConditions(reading.Temperature, reading.Humidity, reading.Pressure); err != nil {
			return fmt.Errorf("reading %d: %w", i+1, err)
		}
	}
	r.logger.Info("observer scenario finished: %d readings, %d observers",
		len(r.cfg.Observer.Readings), len(station.Observers()))
	return nil
}

func (r *Runner) Run() error {
	if err := r.RunStrategy(); err != nil {
		return err
	}
	return r.RunObserver()
}
