package store

import "github.com/reporadar/reporadar/ent/batchrun"

// batchTransitions is the legal batch state machine. Terminal states have no
// outgoing edges. Beyond the core running/recovering loop, three edges cover
// batches that never got (or lost) a runner: pending to stopped when an
// operator settles a row created before a crash, pending to failed when the
// recovery budget is already spent at resume time, and recovering to stopped
// when a stop request lands during the recovery pause.
var batchTransitions = map[batchrun.Status][]batchrun.Status{
	batchrun.StatusPending:    {batchrun.StatusRunning, batchrun.StatusStopped, batchrun.StatusFailed},
	batchrun.StatusRunning:    {batchrun.StatusRecovering, batchrun.StatusStopped, batchrun.StatusCompleted, batchrun.StatusFailed},
	batchrun.StatusRecovering: {batchrun.StatusRunning, batchrun.StatusStopped, batchrun.StatusFailed},
}

// CanTransition reports whether the batch status change is legal.
func CanTransition(from, to batchrun.Status) bool {
	for _, next := range batchTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether the batch status has no outgoing
// transitions.
func IsTerminalStatus(status batchrun.Status) bool {
	return len(batchTransitions[status]) == 0
}
