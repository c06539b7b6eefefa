package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the per-invocation run identifier.
	FieldRunID = "run_id"
	// FieldEpisodeID is the standardized structured logging key for episode ids (e.g. C01).
	FieldEpisodeID = "episode_id"
	// FieldSource is the standardized structured logging key for input file locations (file or file:line).
	FieldSource = "source"
	// FieldSeries is the standardized structured logging key for series codes.
	FieldSeries = "series"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries the suggested next step for warnings and errors.
	FieldErrorHint = "error_hint"
)
