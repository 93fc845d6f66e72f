package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/internal/repository"
	"github.com/steppulse/steppulse/pkg/entity"
)

type RegistrationService struct {
	repo repository.UsersRepositoryI
}

func NewRegistrationService(usersRepo repository.UsersRepositoryI) *RegistrationService {
	if usersRepo == nil {
		log.Fatal("on registration service provided nil users repo")
	}
	return &RegistrationService{
		repo: usersRepo,
	}
}

// Register pre-checks both identity axes before inserting, so a duplicate
// device and a taken employee id come back as different errors. The unique
// constraints on the table stay as the backstop for concurrent registrations.
func (rs *RegistrationService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	_, err = rs.repo.FindByDeviceID(ctx, req.DeviceID)
	if err == nil {
		return nil, errorvalues.ErrDeviceRegistered
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	_, err = rs.repo.FindByEmployeeID(ctx, req.EmployeeID)
	if err == nil {
		return nil, errorvalues.ErrEmployeeIDTaken
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	err = rs.repo.Create(ctx, &entity.User{
		EmployeeID:  req.EmployeeID,
		DeviceID:    req.DeviceID,
		ProfileName: req.ProfileName,
		Company:     req.Company,
		DeviceOS:    req.DeviceOS,
		DeviceModel: req.DeviceModel,
		Status:      entity.StatusActive,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrDeviceRegistered) || errors.Is(err, errorvalues.ErrEmployeeIDTaken) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := rs.repo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// SetStatus flips a user between Active and Inactive. Any other value is
// rejected before touching the repository.
func (rs *RegistrationService) SetStatus(ctx context.Context, employeeID string, status entity.UserStatus) error {
	if status != entity.StatusActive && status != entity.StatusInactive {
		return errorvalues.ErrInvalidStatus
	}
	err := rs.repo.UpdateStatus(ctx, employeeID, status)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}

func (rs *RegistrationService) LookupByDevice(ctx context.Context, deviceID string) (*entity.User, error) {
	user, err := rs.repo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
