package services

import "github.com/apriyandi/timbangan-api/internal/httperr"

// Domain error variables. The messages are part of the API contract;
// login failures never reveal which of the two fields was wrong.
var (
	ErrEmailAlreadyRegistered = httperr.BadRequest("Email is already registered!")
	ErrWrongCredentials       = httperr.BadRequest("Wrong account and password combination!")
	ErrUserNotFound           = httperr.NotFound("User not found!")
	ErrChildNotFound          = httperr.NotFound("Child not found!")
	ErrNoChild                = httperr.BadRequest("Child not found!")
	ErrInvalidRecordID        = httperr.BadRequest("Invalid record id!")
)
