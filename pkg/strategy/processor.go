package strategy

import (
	"github.com/google/uuid"

	"github.com/stybik/LLD/pkg/logging"
)

// PaymentProcessor delegates payments to whichever gateway is currently bound.
// It is not safe for concurrent use.
type PaymentProcessor struct {
	gateway PaymentGateway
	logger  logging.Logger
}

type ProcessorOption func(*PaymentProcessor)

func WithLogger(logger logging.Logger) ProcessorOption {
	return func(p *PaymentProcessor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewPaymentProcessor(gateway PaymentGateway, opts ...ProcessorOption) *PaymentProcessor {
	p := &PaymentProcessor{
		gateway: gateway,
		logger:  logging.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetGateway rebinds the processor. The previous gateway is forgotten.
func (p *PaymentProcessor) SetGateway(gateway PaymentGateway) {
	p.gateway = gateway
}

func (p *PaymentProcessor) Gateway() PaymentGateway {
	return p.gateway
}

func (p *PaymentProcessor) ProcessPayment(amount float64) error {
	if p.gateway == nil {
		return &Error{Op: "ProcessPayment", Err: ErrNoGateway}
	}

	txID := uuid.NewString()
	name := p.gateway.Name()
	p.logger.Debug("dispatching payment tx=%s amount=%s gateway=%s", txID, FormatAmount(amount), name)

	if err := p.gateway.ProcessPayment(amount); err != nil {
		p.logger.Error("payment failed tx=%s gateway=%s: %v", txID, name, err)
		return err
	}
	return nil
}
