package response

const (
	// MessageSuccess is the message of every successful envelope.
	MessageSuccess = "Success"
	// DefaultErrorMessage hides internal failure details from clients.
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
	UnavailableErrorCode    = 503
	TooManyRequestsCode     = 429

	DateTimeFormat = "2006-01-02 15:04:05"
)
