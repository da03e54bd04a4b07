package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-valuetype/contract"
	"github.com/next-trace/scg-valuetype/failure"
)

func TestNewAndGetters_ContextIsCloned(t *testing.T) {
	t.Parallel()

	// Empty map input should not leak a non-nil empty map.
	f0 := failure.New(failure.KindValidation, "c", "m", map[string]any{})
	assert.Nil(t, f0.Context())

	ctx := map[string]any{"value": 1}
	f := failure.New(failure.KindValidation, "value.validation", "rejected", ctx)

	assert.Equal(t, failure.KindValidation, f.Kind())
	assert.Equal(t, "value.validation", f.Code())
	assert.Equal(t, "rejected", f.Message())

	// Modifying the provided ctx must not affect internal state.
	ctx["value"] = 2
	assert.Equal(t, map[string]any{"value": 1}, f.Context())

	// Mutating the returned map must not change internal state.
	got := f.Context()
	got["extra"] = 3
	assert.NotEqual(t, got, f.Context())
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var f *failure.Failure
		assert.Equal(t, "<nil>", f.Error())
	})

	t.Run("without cause", func(t *testing.T) {
		f := failure.New(failure.KindOverflow, "value.overflow", "add would overflow", nil)
		assert.Equal(t, "value.overflow [overflow]: add would overflow", f.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("boom")
		f := failure.Wrap(cause, failure.KindConversion, "value.conversion", "bad json", nil)
		assert.Equal(t, "value.conversion [conversion]: bad json: boom", f.Error())
	})
}

func TestEBuilder_DefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	f := failure.E(failure.KindValidation, "value.validation")
	assert.Equal(t, "failure", f.Message())
	assert.Nil(t, f.Context())
	assert.Nil(t, f.Unwrap())

	cause := errors.New("parse")
	f = failure.E(
		failure.KindConversion,
		"value.conversion",
		failure.WithMessage("payload invalid"),
		failure.WithContext(map[string]any{"value": "x"}),
		failure.WithCause(cause),
	)
	assert.Equal(t, failure.KindConversion, f.Kind())
	assert.Equal(t, "payload invalid", f.Message())
	assert.Equal(t, map[string]any{"value": "x"}, f.Context())
	assert.Same(t, cause, errors.Unwrap(f))
}

func TestFluentContextHelpers(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver is safe", func(t *testing.T) {
		var f *failure.Failure
		assert.Nil(t, f.WithContextKV("k", 1))
		assert.Nil(t, f.WithContextMap(map[string]any{"k": 1}))
	})

	t.Run("kv and map merge", func(t *testing.T) {
		f := failure.E(failure.KindOperation, "value.operation").
			WithContextKV("left", 1).
			WithContextMap(map[string]any{"right": 2, "left": 3})

		assert.Equal(t, map[string]any{"left": 3, "right": 2}, f.Context())
	})

	t.Run("empty map is ignored", func(t *testing.T) {
		f := failure.E(failure.KindOperation, "value.operation").WithContextMap(nil)
		assert.Nil(t, f.Context())
	})
}

func TestWrapAndEnsure(t *testing.T) {
	t.Parallel()

	t.Run("wrap preserves cause for errors.Is", func(t *testing.T) {
		cause := errors.New("row not found")
		f := failure.Wrap(cause, failure.KindOperation, "value.operation", "lookup failed", nil)
		assert.True(t, errors.Is(f, cause))
	})

	t.Run("wrap with nil cause still unwraps", func(t *testing.T) {
		f := failure.Wrap(nil, failure.KindOperation, "value.operation", "lookup failed", nil)
		require.Error(t, f.Unwrap())
	})

	t.Run("ensure nil", func(t *testing.T) {
		assert.Nil(t, failure.Ensure(nil))
	})

	t.Run("ensure passes through failures", func(t *testing.T) {
		f := failure.Validation("rejected", 42)
		assert.Same(t, f, failure.Ensure(f))
	})

	t.Run("ensure wraps foreign errors", func(t *testing.T) {
		err := errors.New("plain")
		f := failure.Ensure(err)
		require.NotNil(t, f)
		assert.Equal(t, failure.KindOperation, f.Kind())
		assert.True(t, errors.Is(f, err))
	})

	t.Run("ensure finds failures deep in a chain", func(t *testing.T) {
		f := failure.Immutability("value")
		wrapped := fmt.Errorf("storing: %w", f)
		assert.Same(t, f, failure.Ensure(wrapped))
	})
}

func TestKindConstructors_Fields(t *testing.T) {
	t.Parallel()

	t.Run("validation carries the rejected value", func(t *testing.T) {
		f := failure.Validation("empty string", "")
		assert.Equal(t, contract.KindValidation, f.Kind())
		assert.Equal(t, map[string]any{"value": ""}, f.Context())
	})

	t.Run("conversion carries value, target and cause", func(t *testing.T) {
		cause := errors.New("unexpected token")
		f := failure.Conversion("not json", "BoundedInteger", cause)
		assert.Equal(t, contract.KindConversion, f.Kind())
		assert.Equal(t, "not json", f.Context()["value"])
		assert.Equal(t, "BoundedInteger", f.Context()["target_kind"])
		assert.True(t, errors.Is(f, cause))
	})

	t.Run("operation carries operation and operands", func(t *testing.T) {
		f := failure.Operation("add", 1, 2)
		assert.Equal(t, map[string]any{"operation": "add", "left": 1, "right": 2}, f.Context())
	})

	t.Run("overflow carries operation and operands", func(t *testing.T) {
		f := failure.Overflow("add", 1, 2)
		assert.Equal(t, contract.KindOverflow, f.Kind())
		assert.Equal(t, map[string]any{"operation": "add", "left": 1, "right": 2}, f.Context())
	})

	t.Run("immutability carries the attribute", func(t *testing.T) {
		f := failure.Immutability("value")
		assert.Equal(t, map[string]any{"attribute": "value"}, f.Context())
	})

	t.Run("incomparable carries both type names", func(t *testing.T) {
		f := failure.Incomparable("BoundedInteger", "textValue")
		assert.Equal(t, map[string]any{
			"left_type":  "BoundedInteger",
			"right_type": "textValue",
		}, f.Context())
	})
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	validation := failure.Validation("rejected", nil)
	conversion := failure.Conversion("x", "BoundedInteger", nil)
	operation := failure.Operation("add", 1, 2)
	overflow := failure.Overflow("add", 1, 2)
	immutability := failure.Immutability("value")
	incomparable := failure.Incomparable("a", "b")

	assert.True(t, failure.IsValidation(validation))
	assert.False(t, failure.IsValidation(conversion))

	assert.True(t, failure.IsConversion(conversion))
	assert.False(t, failure.IsConversion(validation))

	// Overflow is a sub-kind of operation.
	assert.True(t, failure.IsOperation(operation))
	assert.True(t, failure.IsOperation(overflow))
	assert.True(t, failure.IsOverflow(overflow))
	assert.False(t, failure.IsOverflow(operation))

	assert.True(t, failure.IsImmutability(immutability))
	assert.True(t, failure.IsIncomparable(incomparable))
	assert.False(t, failure.IsIncomparable(immutability))

	// Predicates see through wrapping and ignore foreign errors.
	assert.True(t, failure.IsOverflow(fmt.Errorf("adding: %w", overflow)))
	assert.False(t, failure.IsValidation(errors.New("plain")))
	assert.False(t, failure.IsValidation(nil))
}
