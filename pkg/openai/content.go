package openai

import "encoding/json"

// ContentKind tags the decoded shape of a message's content field.
// The upstream payload shape is not contractually fixed: older responses carry
// a plain string, current ones an ordered list of typed parts, and each part's
// text field may itself be a plain string or an object exposing a value.
// Anything else decodes to ContentUnparseable rather than failing the message.
type ContentKind int

const (
	ContentUnparseable ContentKind = iota
	ContentText
	ContentParts
)

// Content is the tagged-variant form of a message content payload.
type Content struct {
	Kind  ContentKind
	Text  string        // set when Kind == ContentText
	Parts []ContentPart // set when Kind == ContentParts
}

// ContentPart is one normalized part of a structured content list.
// Text is empty when the part carried no usable text.
type ContentPart struct {
	Type string
	Text string
}

type partEnvelope struct {
	Type string          `json:"type"`
	Text json.RawMessage `json:"text"`
}

type textValue struct {
	Value string `json:"value"`
}

// UnmarshalJSON converts the loose upstream content shape into a tagged
// variant at the wire boundary. It never returns an error: unrecognized
// shapes map to ContentUnparseable.
func (c *Content) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Kind = ContentText
		c.Text = s
		return nil
	}

	var envelopes []partEnvelope
	if err := json.Unmarshal(data, &envelopes); err == nil {
		c.Kind = ContentParts
		c.Parts = make([]ContentPart, len(envelopes))
		for i, env := range envelopes {
			c.Parts[i] = ContentPart{Type: env.Type, Text: decodePartText(env.Text)}
		}
		return nil
	}

	c.Kind = ContentUnparseable
	return nil
}

// decodePartText normalizes a part's text field: either a plain string or a
// nested object with a value key. Anything else yields empty text.
func decodePartText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var tv textValue
	if err := json.Unmarshal(raw, &tv); err == nil {
		return tv.Value
	}

	return ""
}
