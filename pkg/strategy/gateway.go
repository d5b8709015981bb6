package strategy

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// PaymentGateway is the interchangeable payment strategy.
type PaymentGateway interface {
	Name() string
	ProcessPayment(amount float64) error
}

// messageGateway holds the part every concrete gateway shares: it prints one
// line per payment and differs from its siblings only by name.
type messageGateway struct {
	name string
	out  io.Writer
}

func newMessageGateway(name string, out io.Writer) messageGateway {
	if out == nil {
		out = os.Stdout
	}
	return messageGateway{name: name, out: out}
}

func (g messageGateway) Name() string {
	return g.name
}

func (g messageGateway) ProcessPayment(amount float64) error {
	_, err := fmt.Fprintf(g.out, "Processing payment of %s USD using %s\n", FormatAmount(amount), g.name)
	if err != nil {
		return &Error{Op: "ProcessPayment", Gateway: g.name, Err: err}
	}
	return nil
}

type PayPalGateway struct {
	messageGateway
}

func NewPayPalGateway(out io.Writer) *PayPalGateway {
	return &PayPalGateway{newMessageGateway("PayPal", out)}
}

type StripeGateway struct {
	messageGateway
}

func NewStripeGateway(out io.Writer) *StripeGateway {
	return &StripeGateway{newMessageGateway("Stripe", out)}
}

type SquareGateway struct {
	messageGateway
}

func NewSquareGateway(out io.Writer) *SquareGateway {
	return &SquareGateway{newMessageGateway("Square", out)}
}

// UnimplementedGateway can be embedded by gateways that are still being
// written. Calling it directly always fails with ErrUnimplemented.
type UnimplementedGateway struct{}

func (UnimplementedGateway) Name() string {
	return "Unimplemented"
}

func (UnimplementedGateway) ProcessPayment(float64) error {
	return &Error{Op: "ProcessPayment", Gateway: "Unimplemented", Err: ErrUnimplemented}
}

// FormatAmount renders a number in its shortest decimal form: 100, 50, 99.9.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

var gatewayFactories = map[string]func(io.Writer) PaymentGateway{
	"paypal": func(w io.Writer) PaymentGateway { return NewPayPalGateway(w) },
	"stripe": func(w io.Writer) PaymentGateway { return NewStripeGateway(w) },
	"square": func(w io.Writer) PaymentGateway { return NewSquareGateway(w) },
}

// NewGateway resolves a gateway by case-insensitive name.
func NewGateway(name string, out io.Writer) (PaymentGateway, error) {
	factory, ok := gatewayFactories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &Error{Op: "NewGateway", Gateway: name, Err: ErrUnknownGateway}
	}
	return factory(out), nil
}

// GatewayNames lists the names NewGateway accepts, sorted.
func GatewayNames() []string {
	names := make([]string, 0, len(gatewayFactories))
	for name := range gatewayFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
