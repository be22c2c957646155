package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-management-service/internal/core/domain"
	"asset-management-service/internal/testutil"
)

func newTaskFixture() (*TaskService, *testutil.MockTaskRepo, *testutil.MockAssetRepo, *testutil.MockOutcomeRepo) {
	tasks := new(testutil.MockTaskRepo)
	assets := new(testutil.MockAssetRepo)
	outcomes := new(testutil.MockOutcomeRepo)
	return NewTaskService(tasks, assets, outcomes), tasks, assets, outcomes
}

func TestTaskService_Create_OutcomeTaskActivatesOutcome(t *testing.T) {
	svc, tasks, assets, outcomes := newTaskFixture()

	hubID := uuid.New()
	task := &domain.Task{AssetHubID: hubID, TaskType: "REO"}

	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	tasks.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)
	tasks.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(task, nil)
	outcomes.On("SetActive", mock.Anything, hubID, domain.OutcomeREO).Return(nil)

	result, err := svc.Create(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusOpen, result.Status)
	outcomes.AssertCalled(t, "SetActive", mock.Anything, hubID, domain.OutcomeREO)
}

func TestTaskService_Create_PlainTaskSkipsActivation(t *testing.T) {
	svc, tasks, assets, outcomes := newTaskFixture()

	hubID := uuid.New()
	task := &domain.Task{AssetHubID: hubID, TaskType: "ORDER_BPO"}

	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	tasks.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)
	tasks.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(task, nil)

	_, err := svc.Create(context.Background(), task)
	require.NoError(t, err)
	outcomes.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_Create_ActivationFailureIsNotFatal(t *testing.T) {
	svc, tasks, assets, outcomes := newTaskFixture()

	hubID := uuid.New()
	task := &domain.Task{AssetHubID: hubID, TaskType: "FC"}

	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	tasks.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)
	tasks.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(task, nil)
	outcomes.On("SetActive", mock.Anything, hubID, domain.OutcomeFC).Return(domain.ErrOutcomeNotFound)

	_, err := svc.Create(context.Background(), task)
	assert.NoError(t, err)
}

func TestTaskService_Update_CancelReleasesActiveOutcome(t *testing.T) {
	svc, tasks, _, outcomes := newTaskFixture()

	hubID := uuid.New()
	id := uuid.New()
	task := &domain.Task{ID: id, AssetHubID: hubID, TaskType: "DIL", Status: domain.TaskStatusOpen}

	tasks.On("GetByID", mock.Anything, id).Return(task, nil)
	tasks.On("Update", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)
	outcomes.On("ClearActive", mock.Anything, hubID).Return(nil)

	result, err := svc.Update(context.Background(), id, map[string]interface{}{"status": "CANCELLED"})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCancelled, result.Status)
	outcomes.AssertCalled(t, "ClearActive", mock.Anything, hubID)
}

func TestTaskService_Create_MissingType(t *testing.T) {
	svc, _, _, _ := newTaskFixture()

	_, err := svc.Create(context.Background(), &domain.Task{AssetHubID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrInvalidTaskType)
}

func TestTaskOutcomeType(t *testing.T) {
	ot, ok := (&domain.Task{TaskType: "SHORT_SALE"}).OutcomeType()
	assert.True(t, ok)
	assert.Equal(t, domain.OutcomeShortSale, ot)

	_, ok = (&domain.Task{TaskType: "CALL_BORROWER"}).OutcomeType()
	assert.False(t, ok)
}
