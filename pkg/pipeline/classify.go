package pipeline

import (
	"context"
	stderrors "errors"
	"io/fs"

	"github.com/matzehuels/posthop/pkg/cost"
	"github.com/matzehuels/posthop/pkg/errors"
	pio "github.com/matzehuels/posthop/pkg/io"
)

// Classify maps an error from the core packages to a coded *errors.Error.
// nil stays nil and errors that already carry a code are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		return err
	}

	var limit *errors.LimitExceededError
	switch {
	case stderrors.As(err, &limit):
		return errors.Wrap(errors.ErrCodeLimitExceeded, err, "skipped")
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeCancelled, err, "cancelled")
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "file not found")
	case stderrors.Is(err, cost.ErrOverflow):
		return errors.Wrap(errors.ErrCodeOverflow, err, "route cost overflows int64")
	case stderrors.Is(err, cost.ErrUndefinedEdge):
		return errors.Wrap(errors.ErrCodeUndefinedEdge, err, "route uses an undefined edge")
	case cost.IsMalformed(err), stderrors.Is(err, pio.ErrSyntax):
		return errors.Wrap(errors.ErrCodeInvalidMatrix, err, "invalid cost matrix")
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "unexpected error")
}

func codeOf(err error) errors.Code {
	if c := errors.GetCode(err); c != "" {
		return c
	}
	var limit *errors.LimitExceededError
	if stderrors.As(err, &limit) {
		return limit.Code()
	}
	return errors.ErrCodeInternal
}

// Load reads a matrix file with pio.Import and classifies any failure.
func Load(path string) (*cost.Matrix, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	m, err := pio.Import(path)
	if err != nil {
		return nil, Classify(err)
	}
	return m, nil
}
