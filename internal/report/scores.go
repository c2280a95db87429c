package report

import "math"

// DeriveScores computes the feasibility and return percentages from
// whichever score fields a feedback block carries.
//
// Feasibility: direct Feasibility Score wins; else 100−Risk Score; else
// the default. A Market readiness value blends in at 0.6/0.4 only when no
// direct feasibility score was used.
//
// Return: direct Return Score wins; else 100−Resource requirements, with a
// 0.7/0.3 risk-based variability adjustment clamped to [35,95] when a Risk
// Score is also present; else the default.
//
// Both outputs are rounded integers clamped to [0,100]. Absent or
// unparseable fields never propagate.
func DeriveScores(fields map[string]int) (feasibility, ret int) {
	feas, direct := fields[FieldFeasibility]
	if !direct {
		if risk, ok := fields[FieldRisk]; ok {
			feas = 100 - risk
		} else {
			feas = DefaultFeasibility
		}
		if mr, ok := fields[FieldMarketReadiness]; ok {
			feas = int(math.Round(float64(feas)*riskFeasibilityWeight + float64(mr)*marketReadinessWeight))
		}
	}

	retScore, directReturn := fields[FieldReturn]
	if !directReturn {
		if rr, ok := fields[FieldResourceReqs]; ok {
			retScore = 100 - rr
			if risk, riskOK := fields[FieldRisk]; riskOK {
				adjusted := math.Round(float64(retScore)*returnBaseWeight + float64(100-risk)*returnRiskWeight)
				retScore = clampInt(int(adjusted), minAdjustedReturn, maxAdjustedReturn)
			}
		} else {
			retScore = DefaultReturn
		}
	}

	return clampInt(feas, 0, 100), clampInt(retScore, 0, 100)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
