package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulpath/tripplan/internal/application/driver/commands"
	"github.com/haulpath/tripplan/internal/domain/shared"
	"github.com/haulpath/tripplan/test/helpers"
)

func TestAddDriverHandler_RegistersDriver(t *testing.T) {
	// Arrange
	drivers := helpers.NewMockDriverRepository()
	handler := commands.NewAddDriverHandler(drivers)

	// Act
	result, err := handler.Handle(context.Background(), &commands.AddDriverCommand{
		Name:         "Maya Torres",
		HomeTimezone: "America/Chicago",
	})

	// Assert
	require.NoError(t, err)
	response, ok := result.(*commands.AddDriverResponse)
	require.True(t, ok)
	assert.Equal(t, uint(1), response.ID)
	assert.Equal(t, "Maya Torres", response.Name)
	assert.Equal(t, "America/Chicago", response.HomeTimezone)

	stored, err := drivers.FindByID(context.Background(), response.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maya Torres", stored.Name)
}

func TestAddDriverHandler_DefaultsTimezoneToUTC(t *testing.T) {
	// Arrange
	drivers := helpers.NewMockDriverRepository()
	handler := commands.NewAddDriverHandler(drivers)

	// Act
	result, err := handler.Handle(context.Background(), &commands.AddDriverCommand{Name: "Alex Kim"})

	// Assert
	require.NoError(t, err)
	response := result.(*commands.AddDriverResponse)
	assert.Equal(t, "UTC", response.HomeTimezone)
}

func TestAddDriverHandler_TrimsName(t *testing.T) {
	// Arrange
	drivers := helpers.NewMockDriverRepository()
	handler := commands.NewAddDriverHandler(drivers)

	// Act
	result, err := handler.Handle(context.Background(), &commands.AddDriverCommand{Name: "  Chris Okafor  "})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Chris Okafor", result.(*commands.AddDriverResponse).Name)
}

func TestAddDriverHandler_RejectsEmptyName(t *testing.T) {
	// Arrange
	drivers := helpers.NewMockDriverRepository()
	handler := commands.NewAddDriverHandler(drivers)

	// Act
	_, err := handler.Handle(context.Background(), &commands.AddDriverCommand{Name: "   "})

	// Assert
	var invalid *shared.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "name", invalid.Field)
}

func TestAddDriverHandler_RejectsUnknownTimezone(t *testing.T) {
	// Arrange
	drivers := helpers.NewMockDriverRepository()
	handler := commands.NewAddDriverHandler(drivers)

	// Act
	_, err := handler.Handle(context.Background(), &commands.AddDriverCommand{
		Name:         "Maya Torres",
		HomeTimezone: "Mars/Olympus_Mons",
	})

	// Assert
	var invalid *shared.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "home_tz", invalid.Field)
	assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
}

func TestAddDriverHandler_WrapsRepositoryFailure(t *testing.T) {
	// Arrange
	drivers := helpers.NewMockDriverRepository()
	drivers.SetAddError(errors.New("disk full"))
	handler := commands.NewAddDriverHandler(drivers)

	// Act
	_, err := handler.Handle(context.Background(), &commands.AddDriverCommand{Name: "Maya Torres"})

	// Assert
	var persistence *shared.PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Contains(t, err.Error(), "disk full")
}
