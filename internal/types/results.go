package types

// WorkflowResult is the verdict for one record-creation workflow. It is
// assembled inside the orchestrator and returned atomically; Success with a
// populated CarePlanError means the parent record was created but the care
// plan sub-workflow failed.
type WorkflowResult struct {
	Success       bool          `json:"success"`
	Message       string        `json:"message,omitempty"`
	Error         string        `json:"error,omitempty"`
	CarePlanError string        `json:"care_plan_error,omitempty"`
	Batch         *BatchOutcome `json:"batch_result,omitempty"`
}

// Failed reports whether the workflow produced no usable record at all.
func (r *WorkflowResult) Failed() bool {
	return r == nil || !r.Success
}

// BatchOutcome accumulates the result of applying one or more homogeneous
// batches of care-plan sub-items. Errors are ordered and keyed by the failing
// item's description; a single item's failure never aborts the batch.
type BatchOutcome struct {
	GoalsAdded int      `json:"goals_added"`
	TasksAdded int      `json:"tasks_added"`
	Errors     []string `json:"errors,omitempty"`
}

// DocumentResult is one entry in a batch processing response.
type DocumentResult struct {
	ID         string          `json:"form_id"`
	PacketType PacketType      `json:"packet_type,omitempty"`
	Result     *WorkflowResult `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
}
