package portal

import "fmt"

// AuthError reports a login that was rejected or never reached the portal.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("portal login failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// DataError reports a portal response that arrived fine at the transport
// level but was unusable: a malformed or empty plant list, or a device
// listing whose in-body result flag signals failure. When the failure was
// scoped to one plant, PlantID/PlantName say which.
type DataError struct {
	PlantID   string
	PlantName string
	Reason    string
}

func (e *DataError) Error() string {
	if e.PlantID == "" {
		return e.Reason
	}
	name := e.PlantName
	if name == "" {
		name = e.PlantID
	}
	return fmt.Sprintf("plant %s: %s", name, e.Reason)
}
