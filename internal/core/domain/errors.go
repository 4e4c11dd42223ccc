package domain

import "errors"

var ErrCardNotFound = errors.New("card not found")
var ErrPostNotFound = errors.New("post not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrValidation = errors.New("validation failed")
var ErrSelfDelete = errors.New("cannot delete own account")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrMailer = errors.New("failed to send message")
