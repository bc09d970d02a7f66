package capability

import (
	"github.com/dmitrymomot/devicekit/pkg/corpus"
	"github.com/dmitrymomot/devicekit/pkg/metrics"
	"github.com/dmitrymomot/devicekit/pkg/resolution"
)

// Resolve derives the eSIM verdict from a resolution result.
//
// Evidence is weighed in order of reliability: agreeing corpus records
// for every (or at least some) candidate, a single matched record, then
// the release-generation rule, and finally "unknown" when the cascade
// produced nothing to reason from. Disagreement among candidate records
// is never averaged away; it routes to the rule, and the rule itself
// AND-combines across candidates so one incapable candidate vetoes the
// set.
func Resolve(res resolution.Result) Verdict {
	v := resolve(res)
	metrics.RecordVerdict(v.Support.String(), string(v.Source))
	return v
}

func resolve(res resolution.Result) Verdict {
	ambiguous := res.Ambiguous()

	if len(res.CandidateRecords) > 1 {
		if flag, agree := sharedFlag(res.CandidateRecords); agree {
			// Full candidate coverage is the strongest evidence;
			// partial coverage with agreement yields the same verdict,
			// with ResolutionBased already flagging the reduced trust.
			return Verdict{
				Support:         supportFromFlag(flag),
				Source:          SourceReference,
				ResolutionBased: ambiguous,
			}
		}
		// Records disagree: decide by rule over the candidate models.
		return ruleBased(candidateModels(res), ambiguous)
	}

	if res.MatchedRecord != nil {
		return Verdict{
			Support:         supportFromFlag(res.MatchedRecord.EUICC),
			Source:          SourceReference,
			ResolutionBased: ambiguous,
		}
	}

	if models := candidateModels(res); len(models) > 0 {
		return ruleBased(models, ambiguous)
	}

	return Verdict{Support: SupportUnknown, Source: SourceNone}
}

func ruleBased(models []string, ambiguous bool) Verdict {
	support := ruleVerdict(models)
	if support == SupportUnknown {
		return Verdict{Support: SupportUnknown, Source: SourceNone, ResolutionBased: ambiguous}
	}
	return Verdict{Support: support, Source: SourceFallbackRule, ResolutionBased: ambiguous}
}

// candidateModels returns the model names the verdict should consider:
// the fingerprint candidate set when present, else the deduced model.
func candidateModels(res resolution.Result) []string {
	if res.Fingerprint != nil && len(res.Fingerprint.Models) > 0 {
		return res.Fingerprint.Models
	}
	if res.DeducedModel != "" {
		return []string{res.DeducedModel}
	}
	return nil
}

// sharedFlag reports the records' common eUICC flag, if they all agree.
func sharedFlag(records []corpus.Record) (bool, bool) {
	flag := records[0].EUICC
	for _, rec := range records[1:] {
		if rec.EUICC != flag {
			return false, false
		}
	}
	return flag, true
}

func supportFromFlag(capable bool) Support {
	if capable {
		return SupportCapable
	}
	return SupportIncapable
}
