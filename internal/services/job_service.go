package services

import (
	"context"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Company: models.Company{
			Name:         req.Company.Name,
			ContactEmail: req.Company.ContactEmail,
			ContactPhone: req.Company.ContactPhone,
		},
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) List(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) Get(ctx context.Context, id string) (*models.Job, error) {
	objectID, err := parseJobID(id)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(ctx, objectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Update merges the fields present in the request into the stored job.
func (s *JobServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	objectID, err := parseJobID(id)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(ctx, objectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = models.Company{
			Name:         req.Company.Name,
			ContactEmail: req.Company.ContactEmail,
			ContactPhone: req.Company.ContactPhone,
		}
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(ctx context.Context, id string) error {
	objectID, err := parseJobID(id)
	if err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, objectID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// parseJobID rejects ids that are not structurally valid ObjectIDs
// before any store access.
func parseJobID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrMalformedID
	}
	return objectID, nil
}
