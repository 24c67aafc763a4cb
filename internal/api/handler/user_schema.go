package handler

import "github.com/jobboard/job-board-api/internal/core/domain"

type createUserRequest struct {
	Name     string   `json:"name"     validate:"required,max=255"`
	Email    string   `json:"email"    validate:"required,email,max=255"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles"    validate:"omitempty,dive,required"`
}

// updateUserRequest uses pointers so absent fields stay untouched.
type updateUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

type assignRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,required"`
}

type givePermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required,min=1,dive,required"`
}

type usersEnvelope struct {
	Users []*domain.User `json:"users"`
}

type userMessageResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
