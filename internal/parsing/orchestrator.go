// Package parsing orchestrates the extraction of a resume record from plain
// text. Four field groups run concurrently, each moving through a primary
// structured strategy, a plain-text fallback and a deterministic backstop.
// Degradations are isolated per group: one group falling back never disturbs
// the others.
package parsing

import (
	"context"
	"time"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/types"
)

// Options configures one extraction run.
type Options struct {
	// Client is the model client. Nil selects the deterministic-only path.
	Client llm.Client
	// Tier selects the model tier for all calls. Defaults to TierStandard.
	Tier llm.ModelTier
}

// Parse extracts a resume record from cleaned text. The record is always
// normalized before returning; an error is returned only when every strategy
// of a group failed, and even then the record carries what the other groups
// produced.
func Parse(ctx context.Context, text string, opts Options) (*types.ResumeRecord, error) {
	start := time.Now()

	tier := opts.Tier
	if tier == "" {
		tier = llm.TierStandard
	}

	r := newRunner(opts.Client, tier, text)

	var firstErr error
	if opts.Client == nil {
		r.fillDeterministic()
		r.record.ParsingMetadata.MethodUsed = types.MethodDeterministic
	} else {
		group := NewTaskGroup(ctx)
		group.Go(groupWorkExperience, r.extractWorkExperience)
		group.Go(groupBasicInfo, r.extractBasicInfo)
		group.Go(groupEducation, r.extractEducation)
		group.Go(groupSkills, r.extractSkills)

		failures := group.Wait()
		for _, name := range []string{groupBasicInfo, groupSkills, groupEducation, groupWorkExperience} {
			if err, ok := failures[name]; ok {
				firstErr = &GroupError{Group: name, Cause: err}
				break
			}
		}

		if r.degraded {
			r.record.ParsingMetadata.MethodUsed = types.MethodMixed
		} else {
			r.record.ParsingMetadata.MethodUsed = types.MethodStructured
		}
	}

	r.record.ParsingMetadata.ElapsedSeconds = time.Since(start).Seconds()
	r.record.ParsingMetadata.SourceTextLength = len(text)

	Normalize(r.record)
	return r.record, firstErr
}
