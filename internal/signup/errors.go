package signup

// MissingParamError reports a required field that was absent or empty.
type MissingParamError struct {
	Param string
}

func NewMissingParamError(param string) *MissingParamError {
	return &MissingParamError{Param: param}
}

func (e *MissingParamError) Error() string { return "Missing param: " + e.Param }

// Name is the error name exposed to clients.
func (e *MissingParamError) Name() string { return "MissingParamError" }

// InvalidParamError reports a present field that failed a business rule.
type InvalidParamError struct {
	Param string
}

func NewInvalidParamError(param string) *InvalidParamError {
	return &InvalidParamError{Param: param}
}

func (e *InvalidParamError) Error() string { return "Invalid param: " + e.Param }

func (e *InvalidParamError) Name() string { return "InvalidParamError" }

// ServerError is the single, cause-less error returned for any collaborator
// failure.
type ServerError struct{}

func NewServerError() *ServerError { return &ServerError{} }

func (e *ServerError) Error() string { return "Internal server error" }

func (e *ServerError) Name() string { return "ServerError" }
