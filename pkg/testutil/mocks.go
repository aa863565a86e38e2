package testutil

import (
	"context"

	"github.com/arthur-debert/swman/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockManager is a testify mock of the manager capability
type MockManager struct {
	mock.Mock
	ManagerName string
	ManagerKind types.Kind
}

// NewMockManager creates a mock with a fixed name and kind
func NewMockManager(name string, kind types.Kind) *MockManager {
	return &MockManager{ManagerName: name, ManagerKind: kind}
}

// Name returns the fixed name
func (m *MockManager) Name() string {
	return m.ManagerName
}

// Kind returns the fixed kind
func (m *MockManager) Kind() types.Kind {
	return m.ManagerKind
}

// Available returns the scripted availability
func (m *MockManager) Available(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// Check returns the scripted check result
func (m *MockManager) Check(ctx context.Context) types.CheckResult {
	args := m.Called(ctx)
	return args.Get(0).(types.CheckResult)
}

// Update returns the scripted update result
func (m *MockManager) Update(ctx context.Context, dryRun bool) types.UpdateResult {
	args := m.Called(ctx, dryRun)
	return args.Get(0).(types.UpdateResult)
}
