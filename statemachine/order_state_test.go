package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"food-ordering-web/models"
)

func TestProviderAdvancesThroughLinearProgression(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusPreparing, ActorProvider))
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusReady, ActorProvider))
	assert.NoError(t, CanTransition(models.StatusReady, models.StatusDelivered, ActorProvider))
}

func TestSkippingStatesIsRejected(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPlaced, models.StatusReady, ActorProvider))
	assert.Error(t, CanTransition(models.StatusPlaced, models.StatusDelivered, ActorProvider))
	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusDelivered, ActorProvider))
}

func TestCancellationOnlyFromPlaced(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusCancelled, ActorCustomer))
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusCancelled, ActorProvider))

	assert.Error(t, CanTransition(models.StatusPreparing, models.StatusCancelled, ActorCustomer))
	assert.Error(t, CanTransition(models.StatusReady, models.StatusCancelled, ActorCustomer))
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusCancelled, ActorCustomer))
}

func TestCustomerCannotAdvancePreparation(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPlaced, models.StatusPreparing, ActorCustomer))
	assert.Error(t, CanTransition(models.StatusReady, models.StatusDelivered, ActorCustomer))
}

func TestAdminMayForceAnyLegalEdge(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusPreparing, ActorAdmin))
	assert.NoError(t, CanTransition(models.StatusPlaced, models.StatusCancelled, ActorAdmin))
	// but never an edge the machine does not define
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusPlaced, ActorAdmin))
}

func TestNextStatusesFor(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusPreparing, models.StatusCancelled},
		NextStatusesFor(models.StatusPlaced, ActorProvider))

	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusCancelled},
		NextStatusesFor(models.StatusPlaced, ActorCustomer))

	assert.Empty(t, NextStatusesFor(models.StatusDelivered, ActorProvider))
	assert.Empty(t, NextStatusesFor(models.StatusCancelled, ActorAdmin))
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(models.StatusPlaced))
	assert.False(t, CanCancel(models.StatusPreparing))
	assert.False(t, CanCancel(models.StatusReady))
	assert.False(t, CanCancel(models.StatusDelivered))
	assert.False(t, CanCancel(models.StatusCancelled))
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusPlaced))
	assert.False(t, IsTerminal(models.StatusPreparing))
	assert.False(t, IsTerminal(models.StatusReady))
}
