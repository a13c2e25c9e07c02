package graphql

import (
	"context"
	"log/slog"

	"referral-credits/internal/pkg/errs"
)

// Values of extensions.code in the errors array.
const (
	CodeBadUserInput = "BAD_USER_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

// resolverError is what resolvers hand back to graphql-go. Its Extensions end up
// in the response, so the message must already be safe to show to callers.
type resolverError struct {
	message string
	code    string
}

func (e *resolverError) Error() string { return e.message }

func (e *resolverError) Extensions() map[string]any {
	return map[string]any{"code": e.code}
}

func badUserInput(msg string) error {
	return &resolverError{message: msg, code: CodeBadUserInput}
}

// toResolverError maps use-case errors onto caller-visible codes. Anything not
// classified is logged with a stack excerpt and replaced by internalMsg.
func toResolverError(ctx context.Context, logger *slog.Logger, err error, internalMsg string) error {
	switch {
	case errs.IsInvalidArgument(err):
		return &resolverError{message: err.Error(), code: CodeBadUserInput}
	case errs.IsNotFound(err):
		return &resolverError{message: err.Error(), code: CodeNotFound}
	default:
		logger.ErrorContext(ctx, internalMsg,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12),
		)
		return &resolverError{message: internalMsg, code: CodeInternal}
	}
}
