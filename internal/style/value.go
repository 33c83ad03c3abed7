package style

// Value is an optional style parameter. The zero Value is unset.
//
// Values are never validated or normalized: whatever string is set is what a
// rule receives. Only presence is inspected, to decide whether a rule's
// fallback applies.
type Value struct {
	value string
	set   bool
}

// Set returns a Value carrying v. An empty string is still a set value.
func Set(v string) Value {
	return Value{value: v, set: true}
}

// Maybe returns Set(v) for a non-empty v and the unset Value otherwise. It is
// meant for sources such as config files where an empty field means "not
// provided".
func Maybe(v string) Value {
	if v == "" {
		return Value{}
	}
	return Set(v)
}

// Get returns the carried string and whether the value is set.
func (v Value) Get() (string, bool) {
	return v.value, v.set
}

// IsSet reports whether the value was provided.
func (v Value) IsSet() bool {
	return v.set
}

// Or returns the carried string, or fallback when the value is unset.
func (v Value) Or(fallback string) string {
	if v.set {
		return v.value
	}
	return fallback
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if !v.set {
		return "<unset>"
	}
	return v.value
}
