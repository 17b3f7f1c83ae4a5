package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/infra/queue"
	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/usecase"
)

func validLeadInput() usecase.CreateLeadInput {
	return usecase.CreateLeadInput{
		Name:         "Ravi Kumar",
		Email:        "ravi@example.com",
		Phone:        "+91 98765 43210",
		ProjectBrief: "Need a delivery tracking app for my store",
		Budget:       "₹25,000 - ₹50,000",
		ServiceID:    "android-native",
		ServiceName:  "Android Native App",
	}
}

func TestCreateLeadGuestSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockActivityProducer)

	var stored *entity.Lead
	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.Lead)
	}).Return(nil)
	mockProducer.On("PublishActivity", ctx, mock.Anything).Return(nil)

	recorder := usecase.NewRecordActivityUseCase(mockProducer)
	uc := usecase.NewCreateLeadUseCase(mockRepo, recorder, nil)

	lead, err := uc.Execute(ctx, validLeadInput(), entity.GuestIdentity("sess-1"))

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Empty(t, lead.UserID, "guest leads must not carry a user id")
	assert.Equal(t, "android-native", lead.ServiceID)
	assert.Equal(t, "Android Native App", lead.ServiceName)
	assert.Same(t, stored, lead)

	mockProducer.AssertCalled(t, "PublishActivity", ctx, mock.MatchedBy(func(p queue.ActivityPayload) bool {
		return p.Type == entity.ActivityServiceInquiry && p.SessionID == "sess-1"
	}))
}

func TestCreateLeadUserIdentityAttachesUserID(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(mockRepo, nil, nil)

	lead, err := uc.Execute(ctx, validLeadInput(), entity.UserIdentity("user-7"))

	assert.NoError(t, err)
	assert.Equal(t, "user-7", lead.UserID)
}

func TestCreateLeadIDsAreUnique(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(mockRepo, nil, nil)

	first, err := uc.Execute(ctx, validLeadInput(), entity.GuestIdentity("sess-1"))
	assert.NoError(t, err)
	second, err := uc.Execute(ctx, validLeadInput(), entity.GuestIdentity("sess-1"))
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateLeadReportsEveryMissingField(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := usecase.NewCreateLeadUseCase(mockRepo, nil, nil)

	_, err := uc.Execute(ctx, usecase.CreateLeadInput{}, entity.GuestIdentity("sess-1"))

	verrs, ok := usecase.AsValidationErrors(err)
	assert.True(t, ok)

	fields := make([]string, len(verrs))
	for i, ve := range verrs {
		fields[i] = ve.Field
	}
	assert.ElementsMatch(t, []string{
		"name", "email", "phone", "project_brief", "budget", "service_id", "service_name",
	}, fields)

	// Validation is eager; nothing reaches the store.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadReportsEveryFormatViolation(t *testing.T) {
	ctx := context.Background()

	input := validLeadInput()
	input.Name = "R"
	input.Email = "not-an-email"
	input.Phone = "12345"
	input.Budget = "whatever works"

	uc := usecase.NewCreateLeadUseCase(new(MockLeadRepository), nil, nil)

	_, err := uc.Execute(ctx, input, entity.GuestIdentity("sess-1"))

	verrs, ok := usecase.AsValidationErrors(err)
	assert.True(t, ok)

	fields := make([]string, len(verrs))
	for i, ve := range verrs {
		fields[i] = ve.Field
	}
	assert.ElementsMatch(t, []string{"name", "email", "phone", "budget"}, fields)
}

func TestCreateLeadPersistenceFailurePropagates(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewCreateLeadUseCase(mockRepo, nil, nil)

	_, err := uc.Execute(ctx, validLeadInput(), entity.GuestIdentity("sess-1"))

	assert.Error(t, err)
	_, isValidation := usecase.AsValidationErrors(err)
	assert.False(t, isValidation, "a store failure is not a validation error")
}

func TestCreateLeadSurvivesBrokenActivityQueue(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	mockProducer := new(MockActivityProducer)
	mockProducer.On("PublishActivity", ctx, mock.Anything).Return(errors.New("broker down"))

	recorder := usecase.NewRecordActivityUseCase(mockProducer)
	uc := usecase.NewCreateLeadUseCase(mockRepo, recorder, nil)

	lead, err := uc.Execute(ctx, validLeadInput(), entity.GuestIdentity("sess-1"))

	assert.NoError(t, err, "tracking failures must never fail the submission")
	assert.NotNil(t, lead)
}

func TestCreateLeadSendsSalesAlert(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	sent := make(chan struct{})
	mockEmail := new(MockEmailService)
	mockEmail.On("SendLeadAlert", mock.Anything).Run(func(mock.Arguments) {
		close(sent)
	}).Return(nil)

	uc := usecase.NewCreateLeadUseCase(mockRepo, nil, mockEmail)

	_, err := uc.Execute(ctx, validLeadInput(), entity.GuestIdentity("sess-1"))
	assert.NoError(t, err)

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sales alert email")
	}
}
