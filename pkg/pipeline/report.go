package pipeline

import (
	"time"

	"github.com/matzehuels/posthop/pkg/errors"
	"github.com/matzehuels/posthop/pkg/route"
)

// Outcome is the result of one solver on one matrix.
type Outcome struct {
	Algorithm route.Algorithm `json:"algorithm"`
	Result    *route.Result   `json:"result,omitempty"`
	Duration  time.Duration   `json:"duration_ns"`
	Cached    bool            `json:"cached,omitempty"`
	Skipped   bool            `json:"skipped,omitempty"`

	// Err is the classified failure, nil on success. ErrorCode and Error
	// mirror it for JSON output.
	Err       error       `json:"-"`
	ErrorCode errors.Code `json:"error_code,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// OK reports whether the solver produced a result.
func (o Outcome) OK() bool { return o.Err == nil && o.Result != nil }

func (o *Outcome) fail(err error, skipped bool) {
	o.Err = err
	o.Skipped = skipped
	o.ErrorCode = codeOf(err)
	o.Error = errors.UserMessage(err)
}

// Report collects every outcome for one matrix.
type Report struct {
	ID         string    `json:"id"`
	Source     string    `json:"source,omitempty"`
	Size       int       `json:"size"`
	MatrixHash string    `json:"matrix_hash"`
	Version    string    `json:"version"`
	Outcomes   []Outcome `json:"outcomes"`
}

// Best returns the successful outcome with the lowest cost. Ties go to the
// earliest outcome.
func (r *Report) Best() (Outcome, bool) {
	var best Outcome
	found := false
	for _, o := range r.Outcomes {
		if !o.OK() {
			continue
		}
		if !found || o.Result.Cost < best.Result.Cost {
			best, found = o, true
		}
	}
	return best, found
}

// Agreement checks that every successful outcome reports the same cost.
// Paths are not compared since ties may be broken differently.
func (r *Report) Agreement() error {
	var first *Outcome
	for i := range r.Outcomes {
		o := &r.Outcomes[i]
		if !o.OK() {
			continue
		}
		if first == nil {
			first = o
			continue
		}
		if o.Result.Cost != first.Result.Cost {
			return errors.New(errors.ErrCodeSolverDisagreement,
				"%s found cost %d but %s found %d",
				first.Algorithm, first.Result.Cost, o.Algorithm, o.Result.Cost)
		}
	}
	return nil
}

// Failed returns the outcomes that errored, excluding skipped ones.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil && !o.Skipped {
			out = append(out, o)
		}
	}
	return out
}
