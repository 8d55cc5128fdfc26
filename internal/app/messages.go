// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the Notes API answers with.
//
// The stub service writes them into response envelopes and the e2e tests
// assert on them, so both sides of the contract share one wording.
package app

import "fmt"

const (
	MsgHealthy = "Notes API is Running"

	MsgUserCreated        = "User account created successfully"
	MsgLoginSuccessful    = "Login successful"
	MsgProfileSuccessful  = "Profile successful"
	MsgProfileUpdated     = "Profile updated successful"
	MsgResetTokenValid    = "The provided password reset token is valid"
	MsgPasswordUpdated    = "The password was successfully updated"
	MsgLoggedOut          = "User has been successfully logged out"
	MsgAccountDeleted     = "Account successfully deleted"
	MsgNoteCreated        = "Note successfully created"
	MsgNotesRetrieved     = "Notes successfully retrieved"
	MsgNoteRetrieved      = "Note successfully retrieved"
	MsgNoteUpdated        = "Note successfully Updated"
	MsgNoteDeleted        = "Note successfully deleted"
	msgResetLinkSentTempl = "Password reset link successfully sent to %s. Please verify by clicking on the given link"
)

const (
	MsgInvalidName            = "User name must be between 4 and 30 characters"
	MsgInvalidEmail           = "A valid email address is required"
	MsgInvalidPassword        = "Password must be between 6 and 30 characters"
	MsgInvalidPhone           = "Phone number must be between 8 and 20 digits"
	MsgInvalidCompany         = "Company name must be between 4 and 30 characters"
	MsgInvalidToken           = "Token must be between 64 characters"
	MsgInvalidCurrentPassword = "Current password must be between 6 and 30 characters"
	MsgInvalidNewPassword     = "New password must be between 6 and 30 characters"
	MsgSamePassword           = "The new password should be different from the current password"
	MsgIncorrectPassword      = "The current password is incorrect"
	MsgInvalidTitle           = "Title must be between 4 and 100 characters"
	MsgInvalidDescription     = "Description must be between 4 and 1000 characters"
	MsgInvalidCategory        = "Category must be one of the categories: Home, Work, Personal"
	MsgInvalidCompleted       = "Note completed status must be boolean"
	MsgInvalidNoteID          = "Note ID must be a valid ID"

	MsgEmailAlreadyExists = "An account already exists with the same email address"
	MsgIncorrectLogin     = "Incorrect email address or password"
	MsgNoAccountForEmail  = "No account found with the given email address"
	MsgInvalidResetToken  = "The provided password reset token is invalid or has expired"
	MsgNoToken            = "No authentication token specified in x-auth-token header"
	MsgTokenInvalid       = "Access token is not valid or has expired, you will need to login"
	MsgNoteNotFound       = "No note was found with the provided ID, Maybe it was deleted"

	MsgInvalidRequestBody = "Invalid request body"
	MsgRouteNotFound      = "Route not found"
	MsgMethodNotAllowed   = "Method not allowed"
	MsgInternalError      = "Internal Error Server"
)

// MsgResetLinkSent is the forgot-password success message for email.
func MsgResetLinkSent(email string) string {
	return fmt.Sprintf(msgResetLinkSentTempl, email)
}
