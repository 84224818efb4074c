package netcli

import "encoding/json"

// Envelope is the JSON wire shape spec.md §6 mandates: a success
// envelope carries platform/commandKey/records; a failure envelope
// carries a single {code, message} error object. Exactly one of Records
// or Error is populated, enforced by the constructors below rather than
// by json tags alone.
type Envelope struct {
	OK         bool               `json:"ok"`
	Platform   string             `json:"platform,omitempty"`
	CommandKey string             `json:"commandKey,omitempty"`
	Records    []map[string]any   `json:"records,omitempty"`
	Error      *EnvelopeError     `json:"error,omitempty"`
}

// EnvelopeError is the failure shape's nested error object.
type EnvelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MarshalJSON enforces spec.md §8's exact key set per branch: a success
// envelope always carries "records" (even when it's an empty array —
// struct-tag omitempty would otherwise drop it whenever a parse
// matches zero complete blocks), and a failure envelope never carries
// "platform"/"commandKey"/"records" at all.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.OK {
		records := e.Records
		if records == nil {
			records = []map[string]any{}
		}
		return json.Marshal(struct {
			OK         bool             `json:"ok"`
			Platform   string           `json:"platform"`
			CommandKey string           `json:"commandKey"`
			Records    []map[string]any `json:"records"`
		}{OK: e.OK, Platform: e.Platform, CommandKey: e.CommandKey, Records: records})
	}
	return json.Marshal(struct {
		OK    bool           `json:"ok"`
		Error *EnvelopeError `json:"error"`
	}{OK: e.OK, Error: e.Error})
}

func successEnvelope(platform, commandKey string, records []map[string]any) Envelope {
	return Envelope{OK: true, Platform: platform, CommandKey: commandKey, Records: records}
}

func failureEnvelope(err error) Envelope {
	pe, ok := err.(*ParseError)
	if !ok {
		pe = newParseError(ErrCodeInternal, err.Error(), err)
	}
	return Envelope{OK: false, Error: &EnvelopeError{Code: pe.Code, Message: pe.Message}}
}

// marshalEnvelope serializes env, falling back to a hand-built
// INTERNAL_ERROR envelope string if json.Marshal itself fails (it can't
// for this shape, but the façade's JSON entry points promise to never
// return anything but a parseable JSON string, so this has no panic
// path left).
func marshalEnvelope(env Envelope) string {
	data, err := json.Marshal(env)
	if err != nil {
		return `{"ok":false,"error":{"code":"INTERNAL_ERROR","message":"failed to encode response"}}`
	}
	return string(data)
}
