package service

import (
	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
)

type accessService struct{}

func NewAccessService() AccessService {
	return &accessService{}
}

// VerifyPartnerOwnership passes for platform admins, and for partner admins
// whose own partner matches the target. The returned Forbidden is identical
// whether or not the target partner exists.
func (s *accessService) VerifyPartnerOwnership(caller Caller, targetPartnerID int32) error {
	switch caller.Role {
	case domain.UserRolePlatformAdmin:
		return nil
	case domain.UserRolePartnerAdmin:
		if caller.PartnerID != nil && *caller.PartnerID == targetPartnerID {
			return nil
		}
		return apperr.Forbidden()
	case domain.UserRoleCustomer:
		return apperr.Forbidden()
	default:
		return apperr.Forbidden()
	}
}

// VerifyUserOwnership passes for the user themselves and for platform admins.
func (s *accessService) VerifyUserOwnership(caller Caller, targetUserID int32) error {
	switch caller.Role {
	case domain.UserRolePlatformAdmin:
		return nil
	case domain.UserRolePartnerAdmin, domain.UserRoleCustomer:
		if caller.UserID == targetUserID {
			return nil
		}
		return apperr.Forbidden()
	default:
		return apperr.Forbidden()
	}
}
