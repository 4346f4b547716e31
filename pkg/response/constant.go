package response

const (
	MessageSuccess = "Success"

	// DateTimeFormat is how DateTime values are rendered.
	DateTimeFormat = "2006-01-02 15:04:05"

	ValidationErrorCode     = 1
	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"

	StatusAccepted = "accepted"
)
