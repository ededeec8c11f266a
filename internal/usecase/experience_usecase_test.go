package usecase_test

import (
	"context"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExperienceCreateRequiredFields(t *testing.T) {
	ctx := context.Background()

	valid := func() *domain.Experience {
		return &domain.Experience{
			Title:        "Backend Developer",
			Organization: "Acme",
			Description:  "Built the content API.",
			StartDate:    "2024-01",
		}
	}

	cases := []struct {
		name   string
		mutate func(e *domain.Experience)
	}{
		{"Missing title", func(e *domain.Experience) { e.Title = "" }},
		{"Missing organization", func(e *domain.Experience) { e.Organization = "" }},
		{"Missing description", func(e *domain.Experience) { e.Description = "" }},
		{"Missing start date", func(e *domain.Experience) { e.StartDate = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockExperienceRepo)
			uc := usecase.NewExperienceUsecase(mockRepo)

			exp := valid()
			tc.mutate(exp)

			err := uc.Create(ctx, exp)
			assert.Error(t, err)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExperienceCurrentForcesPresentEndDate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockExperienceRepo)
	uc := usecase.NewExperienceUsecase(mockRepo)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Experience")).Return(nil).Run(func(args mock.Arguments) {
		exp := args.Get(1).(*domain.Experience)
		assert.Equal(t, "Present", exp.EndDate)
		assert.Equal(t, domain.ExperienceTypeWork, exp.Type)
	})

	err := uc.Create(ctx, &domain.Experience{
		Title:        "Backend Developer",
		Organization: "Acme",
		Description:  "Built the content API.",
		StartDate:    "2024-01",
		EndDate:      "2024-06",
		Current:      true,
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
