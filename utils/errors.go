package utils

type InvalidPortError struct {
	Value string
}

func (e *InvalidPortError) Error() string {
	return "invalid port " + e.Value + ": must be an integer between 1 and 65535"
}

// IsInvalidPortError checks if an error is an InvalidPortError
func IsInvalidPortError(err error) bool {
	_, ok := err.(*InvalidPortError)
	return ok
}
