package signup

import "net/http"

// OkBody is the body of a successful signup.
const OkBody = "Ok"

// Request is the transport independent view of a signup request. Body maps
// field names to the decoded values sent by the client.
type Request struct {
	Body map[string]any
}

// Response is the transport independent view of a signup response. Body is
// either OkBody or one of the errors of this package.
type Response struct {
	StatusCode int
	Body       any
}

func badRequest(err error) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: err}
}

func serverError() Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: NewServerError()}
}

func ok() Response {
	return Response{StatusCode: http.StatusOK, Body: OkBody}
}
