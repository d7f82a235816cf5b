package service

import (
	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/internal/repository"
	"github.com/snapfest/snapfest-backend/pkg/utils"
)

// AccessService resolves shared-secret codes to roles. The system is
// sessionless: every admin action re-validates the supplied code. All
// comparisons are constant-time.
type AccessService struct {
	eventRepo  *repository.EventRepository
	ownerToken string
}

func NewAccessService(eventRepo *repository.EventRepository, ownerToken string) *AccessService {
	return &AccessService{
		eventRepo:  eventRepo,
		ownerToken: ownerToken,
	}
}

// VerifyCode matches code against the event's codes. The admin code is
// checked first so an admin-holder is never downgraded to guest.
func (s *AccessService) VerifyCode(eventID, code string) (models.Role, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return "", err
	}
	if utils.SecureCompare(code, event.AdminCode) {
		return models.RoleAdmin, nil
	}
	if utils.SecureCompare(code, event.GuestCode) {
		return models.RoleGuest, nil
	}
	return "", models.ErrUnauthorized
}

// AuthorizeAdminAction gates delete operations on the admin code.
func (s *AccessService) AuthorizeAdminAction(eventID, adminCode string) error {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return err
	}
	if !utils.SecureCompare(adminCode, event.AdminCode) {
		return models.ErrUnauthorized
	}
	return nil
}

// VerifyOwnerToken checks the process-wide owner secret.
func (s *AccessService) VerifyOwnerToken(token string) bool {
	return utils.SecureCompare(token, s.ownerToken)
}
