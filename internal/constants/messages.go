// Package constants provides shared constant values used throughout the application.
//
// The messages.go file defines error codes and the user-facing messages the
// API returns. Messages are deliberately uninformative where that protects
// accounts: login failures never reveal whether the email exists, and
// internal errors never echo low-level detail.
package constants

// Error Codes classify failures for internal handling and logging.
const (
	CodeValidationFailed   = "validation_failed"
	CodeConflict           = "conflict"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthenticated    = "unauthenticated"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeBadRequest         = "bad_request"
	CodeInternalError      = "internal_error"
)

// Auth Messages are the responses of the authentication endpoints and the
// access gate.
const (
	// MsgValidationFailed accompanies the list of field violations.
	MsgValidationFailed = "Validation failed."

	// MsgRegistered confirms a successful registration.
	MsgRegistered = "User registered successfully."

	// MsgLoginSuccessful confirms a successful login.
	MsgLoginSuccessful = "Login successful."

	// MsgEmailRegistered is returned when the email is already taken.
	MsgEmailRegistered = "Email already registered."

	// MsgInvalidCredentials is the unified login failure message. Wrong
	// password and unknown email produce the identical response so the
	// endpoint cannot be used to enumerate accounts.
	MsgInvalidCredentials = "Invalid email or password."

	// MsgNoToken is returned when a protected call carries no bearer token.
	MsgNoToken = "Access denied. No token provided."

	// MsgInvalidToken is returned for malformed or expired tokens.
	MsgInvalidToken = "Invalid token."

	// MsgRegistrationFailed is the generic registration failure message.
	MsgRegistrationFailed = "Registration failed."
)

// Validation Messages are the individual field violations collected by the
// input validators.
const (
	MsgNameEmpty            = "Name cannot be empty."
	MsgEmailInvalid         = "Please enter a valid email address and cannot be empty."
	MsgPasswordTooShort     = "Password needs to be at least 8 characters."
	MsgStudentNumberInvalid = "Student number must contain numbers only and cannot be empty."
	MsgPhoneInvalid         = "Phone number must contain numbers only and cannot be empty."
)

// Resource Messages are the responses of the student and contact endpoints.
const (
	MsgStudentListRetrieved = "Student list retrieved successfully"
	MsgStudentRetrieved     = "Student details retrieved successfully."
	MsgStudentAdded         = "Student added successfully"
	MsgStudentUpdated       = "Student updated successfully"
	MsgStudentDeleted       = "Student deleted successfully"
	MsgStudentNotFound      = "Student not found"

	MsgContactListRetrieved = "Contact list retrieved successfully"
	MsgContactRetrieved     = "Contact details retrieved successfully."
	MsgContactAdded         = "Contact added successfully"
	MsgContactUpdated       = "Contact updated successfully"
	MsgContactDeleted       = "Contact deleted successfully"
	MsgContactNotFound      = "Contact not found"
)

// General Messages cover cross-cutting failures.
const (
	// MsgInternalServerError is the generic server error message. The
	// underlying error is logged, never sent to the client.
	MsgInternalServerError = "An internal server error occurred"

	// MsgResourceNotFound is the generic not-found message.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgEmptyRequestBody indicates a request body was expected but missing.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgRequestBodyTooLarge indicates the payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"
)
