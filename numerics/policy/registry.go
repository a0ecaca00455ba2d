package policy

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pratik-a/safe-numerics/numerics/assert"
	"github.com/pratik-a/safe-numerics/numerics/log"
)

// ErrUnknownType is returned when a declared pair names an undefined type.
var ErrUnknownType = fmt.Errorf("%w: unknown operand type", ErrConfiguration)

// Registry collects named operand types and the pairs expected to interoperate,
// and checks them all at once with Validate. Build it during startup and call
// Validate before serving; a non-nil error means the program is misconfigured.
type Registry struct {
	mu     sync.Mutex
	logger log.Logger
	types  map[string]Type
	order  []string
	pairs  [][2]string
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(logger log.Logger) *Registry {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Registry{
		logger: logger,
		types:  make(map[string]Type),
	}
}

// Define registers t under name.
func (r *Registry) Define(name string, t Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("%w: empty type name", ErrConfiguration)
	}

	if _, exists := r.types[name]; exists {
		return fmt.Errorf("%w: type %q already defined", ErrConfiguration, name)
	}

	if !t.Kind.Valid() {
		return fmt.Errorf("%w: type %q has invalid kind", ErrConfiguration, name)
	}

	r.types[name] = t
	r.order = append(r.order, name)

	return nil
}

// Combine declares that operands of types a and b are used together.
func (r *Registry) Combine(a, b string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pairs = append(r.pairs, [2]string{a, b})
}

// Types returns the registered type names in definition order.
func (r *Registry) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.order...)
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.types[name]

	return t, ok
}

// Validate checks every safe type's set and resolves every declared pair. All
// failures are reported, joined into one error.
func (r *Registry) Validate(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	asserter := assert.New(ctx, r.logger, "policy", "validate")

	var errs []error

	for _, name := range r.order {
		t := r.types[name]
		if !t.IsSafe() {
			continue
		}

		if err := asserter.NoError(ctx, t.set.Validate(), "safe type carries an invalid policy set",
			"type", name); err != nil {
			errs = append(errs, err)
		}
	}

	for _, pair := range r.pairs {
		left, lok := r.types[pair[0]]
		right, rok := r.types[pair[1]]

		if !lok || !rok {
			err := fmt.Errorf("%w: %q with %q", ErrUnknownType, pair[0], pair[1])
			errs = append(errs, asserter.NoError(ctx, err, "combined types must be defined"))

			continue
		}

		set, err := Resolve(left, right)
		if err != nil {
			errs = append(errs, asserter.NoError(ctx, err, "operand pair has no consistent policy set",
				"left", pair[0], "right", pair[1]))

			continue
		}

		r.logger.Log(ctx, log.LevelDebug, "operand pair resolved",
			log.String("left", pair[0]),
			log.String("right", pair[1]),
			log.Stringer("policy", set),
		)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	r.logger.Log(ctx, log.LevelInfo, "policy registry validated",
		log.Int("types", len(r.order)),
		log.Int("pairs", len(r.pairs)),
	)

	return nil
}
