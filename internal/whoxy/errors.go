package whoxy

// ConfigError reports an invalid request or missing configuration. It is
// always raised before any network call is made.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// APIError reports a failure signalled by the status envelope embedded in the
// response body, distinct from the HTTP-level status.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
