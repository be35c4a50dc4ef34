package response

// Response is the body of every JSON reply that is not a listing.
type Response struct {
	Message string `json:"message"`
}

func OK(msg string) Response {
	return Response{Message: msg}
}

func Error(msg string) Response {
	return Response{Message: msg}
}
