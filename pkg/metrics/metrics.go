package metrics

import "time"

type Metrics interface {
	// Business
	RecordLocationCreated(status string)
	RecordRadiusQuery(status string)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)
	RecordCatalogDescriptor(status string)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)

	// Resilience
	IncAuthLookupFailure(reason string)
}
