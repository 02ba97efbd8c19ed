package scan

import (
	"encoding/json"
	"fmt"

	"github.com/mwaldt/clinespend/internal/models"
)

// message is the envelope of one entry in ui_messages.json. The log is
// heterogeneous; only say/api_req_started entries carry usage.
type message struct {
	Type string `json:"type"`
	Say  string `json:"say"`
	Ts   int64  `json:"ts"`
	Text string `json:"text"`
}

func (m message) isAPIRequest() bool {
	return m.Type == "say" && m.Say == "api_req_started"
}

// apiRequestInfo is the JSON payload nested inside a qualifying message's
// text field. Absent fields decode to zero.
type apiRequestInfo struct {
	TokensIn    int64   `json:"tokensIn"`
	TokensOut   int64   `json:"tokensOut"`
	CacheWrites int64   `json:"cacheWrites"`
	CacheReads  int64   `json:"cacheReads"`
	Cost        float64 `json:"cost"`
}

// Event is one API-request event extracted from a task's message log.
// Valid is false when the envelope qualified but its payload would not
// decode; such events still carry their timestamp for span tracking.
type Event struct {
	TimestampMs  int64
	Usage        models.TokenUsage
	ReportedCost float64
	Valid        bool
}

// Timestamped reports whether the source message carried a timestamp.
func (e Event) Timestamped() bool {
	return e.TimestampMs > 0
}

// ParseEvents decodes a raw ui_messages.json document into the qualifying
// events it contains. The decode is two-stage: the outer array into raw
// messages, then the nested payload only for messages already confirmed to
// be API requests. Individual malformed entries are dropped; only an
// unreadable outer document is an error.
func ParseEvents(data []byte) ([]Event, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding message log: %w", err)
	}

	var events []Event
	for _, entry := range raw {
		var msg message
		if err := json.Unmarshal(entry, &msg); err != nil {
			continue
		}
		if !msg.isAPIRequest() {
			continue
		}

		ev := Event{TimestampMs: msg.Ts}
		var info apiRequestInfo
		if err := json.Unmarshal([]byte(msg.Text), &info); err != nil {
			// The timestamp was already observed, so keep the event for
			// span tracking even though its usage is unreadable.
			if ev.Timestamped() {
				events = append(events, ev)
			}
			continue
		}

		ev.Valid = true
		ev.Usage = models.TokenUsage{
			Input:       info.TokensIn,
			Output:      info.TokensOut,
			CacheWrites: info.CacheWrites,
			CacheReads:  info.CacheReads,
		}
		ev.ReportedCost = info.Cost
		events = append(events, ev)
	}
	return events, nil
}
