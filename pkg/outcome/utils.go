package outcome

import "reflect"

// isNilError reports whether err is nil or a typed nil pointer.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
