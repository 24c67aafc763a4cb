package domain

import "errors"

var ErrForbidden = errors.New("unauthorized")
var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenRevoked = errors.New("token revoked")

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrAdminProtected = errors.New("cannot delete an admin user")

var ErrJobNotFound = errors.New("job not found")
var ErrApplicationNotFound = errors.New("application not found")

var ErrRoleNotFound = errors.New("role not found")
var ErrPermissionNotFound = errors.New("permission not found")
