package httpjson

import "encoding/json"

// Optional is a tri-state JSON field: absent, explicit null, or a value.
// Patch payloads use it where "set to null" and "leave unchanged" must be
// distinguished, such as clearing a group task's assignee.
type Optional[T any] struct {
	Set   bool // the key was present in the payload
	Value *T   // nil when the payload carried an explicit null
}

// UnmarshalJSON records that the field was present and captures the value.
// It is only invoked for keys that appear in the payload, so Set is true
// whenever it runs.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
