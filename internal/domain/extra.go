package domain

import "encoding/json"

// Extra holds object members of a document node that the engine does not interpret.
// Values are raw JSON exactly as the data loader wrote them; they are written back on save.
type Extra map[string]json.RawMessage

// Clone returns a copy that shares no bytes with e
func (e Extra) Clone() Extra {
	if e == nil {
		return nil
	}
	out := make(Extra, len(e))
	for k, v := range e {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}
