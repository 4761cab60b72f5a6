// Package resilience provides reliability and fault tolerance patterns:
// circuit breakers for database calls and retry logic with exponential
// backoff for transient failures.
//
// Usage Example:
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(db)
//	rows, err := dcb.QueryContext(ctx, query)
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return performOperation()
//	})
package resilience
