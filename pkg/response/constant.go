package response

// Response message and code constants.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal Server Error"

	InternalServerErrorCode = 500
)

// Formats used by the Date / DateTime marshalers.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
