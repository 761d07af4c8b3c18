package services

import (
	"context"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	UpdateMe(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateMeRequest) (*models.User, error)
	DeleteMe(ctx context.Context, userID primitive.ObjectID) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// UpdateMe applies the allow-listed patch to the owning user's record
// and returns the updated document.
func (s *UserServiceImpl) UpdateMe(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateMeRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = *req.DateOfBirth
	}
	if req.MembershipStatus != nil {
		user.MembershipStatus = *req.MembershipStatus
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// DeleteMe removes the owning user's record permanently. Nothing else
// references users, so there is no cascade.
func (s *UserServiceImpl) DeleteMe(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
