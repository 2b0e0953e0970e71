package form

import "net/url"

// Values adapts url.Values to Form. Reset clears the values and then calls
// OnReset, if set, so the surface can clear what the user sees.
type Values struct {
	url.Values
	OnReset func()
}

func (v *Values) Value(name string) string {
	return v.Get(name)
}

func (v *Values) Reset() {
	for key := range v.Values {
		delete(v.Values, key)
	}
	if v.OnReset != nil {
		v.OnReset()
	}
}
