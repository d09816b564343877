package response

const (
	MessageSuccess      = "Success"
	MessageInternal     = "Something went wrong"
	MessageUnauthorized = "Unauthorized"
	MessageBadRequest   = "Bad request"
)
