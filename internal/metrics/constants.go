package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameAccountsRegistered = "accounts_registered_total"
	MetricNameProgressUpdates    = "progress_updates_total"
	MetricNameReconciledRecords  = "reconcile_records_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextAccountsRegistered = "Total number of accounts registered"
	HelpTextProgressUpdates    = "Total number of progress reconciliation requests applied"
	HelpTextReconciledRecords  = "Total number of sub-collection records reconciled, by kind and outcome"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
)

// HTTPLatencyBuckets covers the expected latency range of reconciliation
// requests (sub-millisecond cache hits up to multi-second cold commits).
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
