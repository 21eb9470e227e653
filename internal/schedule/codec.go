package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Encode writes v as JSON with sorted object keys. Record types format
// their own dates as RFC 3339 in UTC; string values are never reinterpreted.
func Encode(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	// encoding/json writes map keys in sorted order.
	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return out, nil
}

// EncodeIndent is Encode with two-space indentation, for exports.
func EncodeIndent(v any) ([]byte, error) {
	compact, err := Encode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

func Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// isoTime is the date format of every record: UTC, RFC 3339, with the
// fraction only when there is one.
func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (e ScheduledEvent) MarshalJSON() ([]byte, error) {
	type plain ScheduledEvent
	return json.Marshal(struct {
		plain
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}{plain(e), isoTime(e.StartTime), isoTime(e.EndTime)})
}

func (t ActiveTimer) MarshalJSON() ([]byte, error) {
	type plain ActiveTimer
	return json.Marshal(struct {
		plain
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}{plain(t), isoTime(t.StartTime), isoTime(t.EndTime)})
}

func (p UserProfile) MarshalJSON() ([]byte, error) {
	type plain UserProfile
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
	}{plain(p), isoTime(p.CreatedAt)})
}
