package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/svgscribe/core"
)

// MockDescriber is a test double for ai.Describer.
// It allows custom behavior injection via a function field and records
// every call for assertions.
type MockDescriber struct {
	// DescribeFunc is called by Describe if set.
	// If nil, a deterministic record echoing the inputs is returned.
	DescribeFunc func(ctx context.Context, category, id string) (*core.Description, error)

	calls []string
}

// NewMockDescriber creates a mock describer with default behavior.
// Note: returns the concrete type so tests can inject behavior and
// inspect calls.
func NewMockDescriber() *MockDescriber {
	return &MockDescriber{}
}

// Describe returns a deterministic description for the pair, or delegates
// to DescribeFunc when set. Every invocation is recorded regardless.
func (m *MockDescriber) Describe(ctx context.Context, category, id string) (*core.Description, error) {
	m.calls = append(m.calls, category+"/"+id)

	if m.DescribeFunc != nil {
		return m.DescribeFunc(ctx, category, id)
	}

	return &core.Description{
		Id:          id,
		Category:    category,
		ShortLabel:  id,
		Description: fmt.Sprintf("Mock description for %s/%s.", category, id),
		Tags:        []string{category, "mock", "generated"},
	}, nil
}

// CallCount returns the number of times Describe was called.
func (m *MockDescriber) CallCount() int {
	return len(m.calls)
}

// Calls returns the described pairs, as "category/id", in call order.
func (m *MockDescriber) Calls() []string {
	return m.calls
}

// Reset clears recorded calls and any custom function.
func (m *MockDescriber) Reset() {
	m.calls = nil
	m.DescribeFunc = nil
}
