package portal

import (
	"context"

	"github.com/solarbrief/solarbrief/pkg/types"
	"github.com/stretchr/testify/mock"
)

// Mock is a testify mock of Session for use by callers' tests.
type Mock struct {
	mock.Mock
}

var _ Session = (*Mock)(nil)

func (m *Mock) Login(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *Mock) ListPlants(ctx context.Context) ([]types.Plant, error) {
	args := m.Called(ctx)
	if plants, ok := args.Get(0).([]types.Plant); ok {
		return plants, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Mock) ListDevices(ctx context.Context, plant types.Plant, page int) ([]types.Device, error) {
	args := m.Called(ctx, plant, page)
	if devices, ok := args.Get(0).([]types.Device); ok {
		return devices, args.Error(1)
	}
	return nil, args.Error(1)
}
