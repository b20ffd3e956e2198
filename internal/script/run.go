package script

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/inamate/roomplanner/internal/engine"
)

// StepResult pairs a statement with what the engine did with it.
type StepResult struct {
	Pos     lexer.Position `json:"-"`
	Line    int            `json:"line"`
	Command engine.Command `json:"command"`
	Result  engine.Result  `json:"result"`
}

// Summary counts outcomes over a replay.
type Summary struct {
	Steps     int `json:"steps"`
	Committed int `json:"committed"`
	Rejected  int `json:"rejected"`
	Undone    int `json:"undone"`
	Ignored   int `json:"ignored"`
}

// Run applies every statement to e in order. The callback, if set, sees each
// result as it happens.
func Run(e *engine.Engine, s *Script, fn func(StepResult)) ([]StepResult, Summary) {
	results := make([]StepResult, 0, len(s.Steps))
	var sum Summary

	for _, step := range s.Steps {
		cmd := step.Command()
		r := StepResult{
			Pos:     step.Pos,
			Line:    step.Pos.Line,
			Command: cmd,
			Result:  e.Apply(cmd),
		}

		sum.Steps++
		switch r.Result.Outcome {
		case engine.OutcomeCommitted:
			sum.Committed++
		case engine.OutcomeRejected:
			sum.Rejected++
		case engine.OutcomeUndone:
			sum.Undone++
		case engine.OutcomeIgnored:
			sum.Ignored++
		}

		results = append(results, r)
		if fn != nil {
			fn(r)
		}
	}
	return results, sum
}
