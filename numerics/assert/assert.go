package assert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pratik-a/safe-numerics/numerics/log"
)

// SpanEventName is the span event recorded for a failed assertion.
const SpanEventName = "numerics.assertion_failed"

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError describes a failed assertion.
type AssertionError struct {
	Assertion string
	Message   string
	Component string
	Operation string
	Details   string
	Cause     error
}

// Error returns the formatted assertion failure message.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	if entry.Details == "" {
		return "assertion failed: " + entry.Message
	}

	return "assertion failed: " + entry.Message + "\n" + entry.Details
}

// Unwrap exposes both the sentinel and the underlying cause, if any.
func (entry *AssertionError) Unwrap() []error {
	if entry == nil || entry.Cause == nil {
		return []error{ErrAssertionFailed}
	}

	return []error{ErrAssertionFailed, entry.Cause}
}

// Asserter evaluates invariants for one component/operation pair.
type Asserter struct {
	ctx       context.Context
	logger    log.Logger
	component string
	operation string
}

// New creates an Asserter. A nil logger writes failures to stderr.
//
//nolint:contextcheck
func New(ctx context.Context, logger log.Logger, component, operation string) *Asserter {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Asserter{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// That returns an error if ok is false.
//
//	if err := asserter.That(ctx, set.Promotion != nil, "promotion policy required", "set", set); err != nil {
//		return err
//	}
func (asserter *Asserter) That(ctx context.Context, ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return asserter.fail(ctx, "That", msg, nil, kv...)
}

// NoError returns an error wrapping err if err is not nil.
func (asserter *Asserter) NoError(ctx context.Context, err error, msg string, kv ...any) error {
	if err == nil {
		return nil
	}

	kvWithError := make([]any, 0, len(kv)+4)
	kvWithError = append(kvWithError, "error", err.Error(), "error_type", fmt.Sprintf("%T", err))
	kvWithError = append(kvWithError, kv...)

	return asserter.fail(ctx, "NoError", msg, err, kvWithError...)
}

// Never always returns an error. Use it for dispatch paths that must be unreachable.
func (asserter *Asserter) Never(ctx context.Context, msg string, kv ...any) error {
	return asserter.fail(ctx, "Never", msg, nil, kv...)
}

// maxValueLength bounds each logged value.
const maxValueLength = 200

func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func (asserter *Asserter) fail(ctx context.Context, assertion, msg string, cause error, kv ...any) error {
	ctx, logger, component, operation := asserter.values(ctx)

	pairs := make([]any, 0, len(kv)+6)
	pairs = append(pairs, "assertion", assertion)

	if component != "" {
		pairs = append(pairs, "component", component)
	}

	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}

	pairs = append(pairs, kv...)
	details := formatKeyValueLines(pairs)

	var stack []byte
	if includeStack() {
		stack = debug.Stack()
	}

	report(ctx, logger, formatLogMessage(msg, details, stack))
	recordToSpan(ctx, assertion, msg, component, operation)

	return &AssertionError{
		Assertion: assertion,
		Message:   msg,
		Component: component,
		Operation: operation,
		Details:   details,
		Cause:     cause,
	}
}

func (asserter *Asserter) values(ctx context.Context) (context.Context, log.Logger, string, string) {
	if asserter == nil {
		if ctx == nil {
			ctx = context.Background()
		}

		return ctx, nil, "", ""
	}

	if ctx == nil {
		ctx = asserter.ctx
	}

	return ctx, asserter.logger, asserter.component, asserter.operation
}

func includeStack() bool {
	for _, key := range []string{"ENV", "GO_ENV"} {
		if strings.EqualFold(strings.TrimSpace(os.Getenv(key)), "production") {
			return false
		}
	}

	return true
}

func formatKeyValueLines(kv []any) string {
	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any = "MISSING_VALUE"
		if i+1 < len(kv) {
			value = kv[i+1]
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(value))
	}

	return sb.String()
}

func formatLogMessage(msg, details string, stack []byte) string {
	var sb strings.Builder

	sb.WriteString("ASSERTION FAILED: ")
	sb.WriteString(msg)

	if details != "" {
		sb.WriteString("\n")
		sb.WriteString(details)
	}

	if len(stack) > 0 {
		sb.WriteString("\nstack trace:\n")
		sb.Write(stack)
	}

	return sb.String()
}

func report(ctx context.Context, logger log.Logger, message string) {
	if logger != nil {
		logger.Log(ctx, log.LevelError, message)
		return
	}

	fmt.Fprintln(os.Stderr, message)
}

func recordToSpan(ctx context.Context, assertion, message, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("assertion.name", assertion),
		attribute.String("assertion.message", message),
	}

	if component != "" {
		attrs = append(attrs, attribute.String("assertion.component", component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String("assertion.operation", operation))
	}

	span.AddEvent(SpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrAssertionFailed, message))
	span.SetStatus(codes.Error, "assertion failed: "+message)
}
