package errs

// Caller-visible error categories. Use-case errors are marked with one of these
// so transports can map them without knowing every concrete error.
var (
	ErrInvalidArgument = New("invalid argument")
	ErrNotFound        = New("not found")
)

// InvalidArgument returns an error for a rejected caller input, marked with ErrInvalidArgument.
func InvalidArgument(msg string) error {
	return Mark(New(msg), ErrInvalidArgument)
}

// NotFound marks err as a not-found condition.
func NotFound(err error) error {
	return Mark(err, ErrNotFound)
}

func IsInvalidArgument(err error) bool { return Is(err, ErrInvalidArgument) }

func IsNotFound(err error) bool { return Is(err, ErrNotFound) }
