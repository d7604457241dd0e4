package summary

import (
	"context"
	"fmt"
	"testing"

	"github.com/solarbrief/solarbrief/pkg/portal"
	"github.com/solarbrief/solarbrief/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildSinglePlant(t *testing.T) {
	// the documented one-plant one-inverter scenario
	s := &portal.Mock{}
	home := types.Plant{ID: "A", Name: "Home"}
	s.On("ListPlants", mock.Anything).Return([]types.Plant{home}, nil)
	s.On("ListDevices", mock.Anything, home, 1).Return([]types.Device{
		{Alias: "Inv1", EnergyTodayKWH: "12.5", CurrentPowerW: "300", StatusCode: "1"},
	}, nil)

	report, err := Build(context.Background(), s)
	require.NoError(t, err)

	require.Len(t, report.Entries, 1)
	entry := report.Entries[0]
	assert.Contains(t, entry, "Inversor 1 (Inv1)")
	assert.Contains(t, entry, "Planta: Home")
	assert.Contains(t, entry, "Energia gerada: 12.5kWh")
	assert.Contains(t, entry, "Potência atual: 300W")
	assert.Contains(t, entry, "Status: Normal")
	assert.Equal(t, 12.5, report.TotalKWH)

	assert.Contains(t, report.Text(), "🔋*Total:* 12.5kWh")
	s.AssertExpectations(t)
}

func TestBuildNumbersDevicesAcrossPlants(t *testing.T) {
	s := &portal.Mock{}
	p1 := types.Plant{ID: "A", Name: "Home"}
	p2 := types.Plant{ID: "B"} // unnamed plant: no Planta line
	s.On("ListPlants", mock.Anything).Return([]types.Plant{p1, p2}, nil)
	s.On("ListDevices", mock.Anything, p1, 1).Return([]types.Device{
		{Alias: "Inv1", EnergyTodayKWH: "1", CurrentPowerW: "100", StatusCode: "1"},
		{Alias: "Inv2", EnergyTodayKWH: "2", CurrentPowerW: "200", StatusCode: "4"},
	}, nil)
	s.On("ListDevices", mock.Anything, p2, 1).Return([]types.Device{
		{Alias: "Inv3", EnergyTodayKWH: "4", CurrentPowerW: "400", StatusCode: "3"},
	}, nil)

	report, err := Build(context.Background(), s)
	require.NoError(t, err)

	require.Len(t, report.Entries, 3)
	for i, alias := range []string{"Inv1", "Inv2", "Inv3"} {
		assert.Contains(t, report.Entries[i], fmt.Sprintf("Inversor %d (%s)", i+1, alias),
			"numbering must run across plants without resetting")
	}
	assert.Contains(t, report.Entries[0], "Planta: Home")
	assert.NotContains(t, report.Entries[2], "Planta:", "unnamed plant gets no Planta line")
	assert.Equal(t, 7.0, report.TotalKWH)
}

func TestBuildNonNumericEnergyCountsAsZero(t *testing.T) {
	s := &portal.Mock{}
	p := types.Plant{ID: "A", Name: "Home"}
	s.On("ListPlants", mock.Anything).Return([]types.Plant{p}, nil)
	s.On("ListDevices", mock.Anything, p, 1).Return([]types.Device{
		{Alias: "Inv1", EnergyTodayKWH: "5.5", CurrentPowerW: "100", StatusCode: "1"},
		{Alias: "Inv2", EnergyTodayKWH: "--", CurrentPowerW: "0", StatusCode: "-1"},
	}, nil)

	report, err := Build(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 5.5, report.TotalKWH)
	assert.Len(t, report.Entries, 2, "the junk device still gets an entry")
	assert.Contains(t, report.Entries[1], "Energia gerada: --kWh", "raw portal text is echoed")
}

func TestBuildZeroDevicePlant(t *testing.T) {
	s := &portal.Mock{}
	p1 := types.Plant{ID: "A", Name: "Home"}
	p2 := types.Plant{ID: "B", Name: "Sitio"}
	s.On("ListPlants", mock.Anything).Return([]types.Plant{p1, p2}, nil)
	s.On("ListDevices", mock.Anything, p1, 1).Return([]types.Device{}, nil)
	s.On("ListDevices", mock.Anything, p2, 1).Return([]types.Device{
		{Alias: "Inv1", EnergyTodayKWH: "3", CurrentPowerW: "50", StatusCode: "1"},
	}, nil)

	report, err := Build(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Contains(t, report.Entries[0], "Inversor 1 (Inv1)")
	assert.Equal(t, 3.0, report.TotalKWH)
}

func TestBuildEmptyPlantListFailsBeforeDeviceCalls(t *testing.T) {
	s := &portal.Mock{}
	s.On("ListPlants", mock.Anything).Return(nil, &portal.DataError{Reason: "plant list is empty"})

	_, err := Build(context.Background(), s)
	require.Error(t, err)
	var dataErr *portal.DataError
	assert.ErrorAs(t, err, &dataErr)
	s.AssertNotCalled(t, "ListDevices", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildAbortsOnFirstPlantFailure(t *testing.T) {
	s := &portal.Mock{}
	p1 := types.Plant{ID: "A", Name: "Home"}
	p2 := types.Plant{ID: "B", Name: "Sitio"}
	p3 := types.Plant{ID: "C", Name: "Fazenda"}
	s.On("ListPlants", mock.Anything).Return([]types.Plant{p1, p2, p3}, nil)
	s.On("ListDevices", mock.Anything, p1, 1).Return([]types.Device{
		{Alias: "Inv1", EnergyTodayKWH: "5.0", CurrentPowerW: "100", StatusCode: "1"},
	}, nil)
	s.On("ListDevices", mock.Anything, p2, 1).Return(nil,
		&portal.DataError{PlantID: "B", PlantName: "Sitio", Reason: `device listing returned result "0"`})

	_, err := Build(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sitio")

	// the third plant must never be touched: aggregation is abandoned
	// mid-stream, no partial report survives
	s.AssertNotCalled(t, "ListDevices", mock.Anything, p3, 1)
	s.AssertExpectations(t)
}
