package ai

import "fmt"

// DescribeError reports a failed description attempt for one (category, id)
// pair. When the failure is a parse failure, Raw holds the unmodified text
// returned by the generation service so a human can diagnose the response.
type DescribeError struct {
	Category string
	Id       string
	Raw      string
	Err      error
}

func (e *DescribeError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("describe %s/%s: %v (raw output: %s)", e.Category, e.Id, e.Err, e.Raw)
	}
	return fmt.Sprintf("describe %s/%s: %v", e.Category, e.Id, e.Err)
}

func (e *DescribeError) Unwrap() error {
	return e.Err
}
