package engine

import "sync/atomic"

// Stats tracks engine activity. Counters are updated atomically during
// evaluation and never feed back into verdicts; they exist for debugging
// and tuning (how much work a given p costs, how often the CFL cap is
// the limiting factor).
type Stats struct {
	// Evaluations is the number of Evaluate calls completed.
	Evaluations uint64

	// CandidatesExamined is the number of decompositions verified.
	CandidatesExamined uint64

	// PumpedStrings is the number of pumped strings constructed.
	PumpedStrings uint64

	// OracleQueries is the number of membership-oracle consultations.
	OracleQueries uint64
}

// Stats returns a consistent snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Evaluations:        atomic.LoadUint64(&e.stats.Evaluations),
		CandidatesExamined: atomic.LoadUint64(&e.stats.CandidatesExamined),
		PumpedStrings:      atomic.LoadUint64(&e.stats.PumpedStrings),
		OracleQueries:      atomic.LoadUint64(&e.stats.OracleQueries),
	}
}

// ResetStats zeroes all counters.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Evaluations, 0)
	atomic.StoreUint64(&e.stats.CandidatesExamined, 0)
	atomic.StoreUint64(&e.stats.PumpedStrings, 0)
	atomic.StoreUint64(&e.stats.OracleQueries, 0)
}
