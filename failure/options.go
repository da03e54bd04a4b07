package failure

// Option configures a Failure during construction via E().
type Option func(*Failure)

// defaultMessage is used when constructing failures via E without WithMessage.
const defaultMessage = "failure"

// WithMessage sets the human-readable message during E() construction.
func WithMessage(message string) Option { return func(f *Failure) { f.message = message } }

// WithContext sets the initial context map during E() construction.
// The provided map is defensively cloned.
func WithContext(ctx map[string]any) Option {
	return func(f *Failure) { f.context = cloneMap(ctx) }
}

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(f *Failure) { f.cause = cause } }

// E is a minimal builder when you don't want the full New(...) signature.
// Defaults: Message="failure".
func E(kind Kind, code string, opts ...Option) *Failure {
	f := &Failure{
		kind:    kind,
		code:    code,
		message: defaultMessage,
	}
	for _, o := range opts {
		o(f)
	}

	return f
}
