package pipeline

import (
	"context"
	"strings"
)

// TranscribeOne runs the backend on one input. A backend error becomes data
// on the Transcript, never an error return, so one bad recording cannot
// abort a batch. Persistence is a separate step.
func (p *implPipeline) TranscribeOne(ctx context.Context, in AudioInput, language string) Transcript {
	tr := Transcript{
		SourcePath: in.Path,
		Language:   language,
	}

	res, err := p.transcriber.Transcribe(ctx, in.Path, language)
	if err != nil {
		tr.Outcome = OutcomeFailed
		tr.FailureReason = err.Error()
		return tr
	}

	tr.Outcome = OutcomeSucceeded
	tr.FullText = strings.TrimSpace(res.Text)
	tr.Segments = res.Segments
	return tr
}

// Run processes inputs one at a time: transcribe, then persist. The backend
// is treated as a single shared resource, so inputs are never overlapped.
// A failed transcription is recorded and the loop continues; a failed
// persist aborts the run.
func (p *implPipeline) Run(ctx context.Context, inputs []AudioInput, language, outputDir string) (RunSummary, error) {
	var summary RunSummary

	if len(inputs) == 0 {
		p.logger.Info(ctx, "No audio inputs to transcribe")
		return summary, nil
	}

	p.logger.Info(ctx, "Transcribing %d file(s), language: %s", len(inputs), language)

	for i, in := range inputs {
		p.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(inputs), in.Path)

		tr := p.TranscribeOne(ctx, in, language)

		summary.Attempted++
		if tr.Outcome == OutcomeSucceeded {
			summary.Succeeded++
		} else {
			summary.Failures = append(summary.Failures, Failure{Path: in.Path, Reason: tr.FailureReason})
			p.logger.Warn(ctx, "Transcription failed for %s: %s", in.Path, tr.FailureReason)
		}

		artifactPath, err := p.Persist(tr, outputDir)
		if err != nil {
			return summary, err
		}
		p.logger.Info(ctx, "Transcript saved: %s", artifactPath)
	}

	p.logger.Info(ctx, "Transcription complete: %d/%d succeeded", summary.Succeeded, summary.Attempted)
	return summary, nil
}
