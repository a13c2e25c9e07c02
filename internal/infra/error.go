package infra

import (
	"context"
	"errors"
	"log/slog"

	"referral-credits/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// NewNotFound reports a missing record. Lookups miss routinely, so nothing is logged.
func NewNotFound(msg string) error {
	return RepositoryError{Kind: KindNotFound, msg: msg}
}

// WrapRepoErr logs and wraps a repository failure. Canceled requests are
// routine client disconnects and only show up at debug level.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}

	level := slog.LevelError
	if kind == KindCanceled {
		level = slog.LevelDebug
	}
	slogger.Log(context.Background(), level, "Repository error: "+msg, logArgs...)

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound    RepositoryErrorKind = "NOT_FOUND"
	KindInvalidSeed RepositoryErrorKind = "INVALID_SEED"
	KindCanceled    RepositoryErrorKind = "CANCELED"
)
