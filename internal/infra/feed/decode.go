package feed

import (
	"encoding/json"

	"bookswap-engine/internal/pkg/errs"
	"bookswap-engine/internal/usecase/events"

	"github.com/google/uuid"
)

var (
	ErrUnknownEventType = errs.New("unknown push event type")
	ErrMalformedFrame   = errs.New("malformed push frame")
)

// frame is the wire envelope of a push message.
type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Decode parses a raw push frame into a typed event. Unknown event types
// are reported with ErrUnknownEventType so the consumer can skip them
// without tearing down the connection.
func Decode(raw []byte) (events.Event, error) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "unmarshal frame"), ErrMalformedFrame)
	}

	t := events.Type(f.Type)
	if !t.IsValid() {
		return nil, errs.Mark(errs.New(f.Type), ErrUnknownEventType)
	}

	if t.IsSwapEvent() {
		var sn events.SwapSnapshot
		if err := json.Unmarshal(f.Payload, &sn); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "unmarshal swap payload"), ErrMalformedFrame)
		}
		if sn.ID == uuid.Nil {
			return nil, errs.Mark(errs.New("swap payload without id"), ErrMalformedFrame)
		}
		return events.SwapEvent{Type: t, Swap: sn}, nil
	}

	var sn events.ExtensionSnapshot
	if err := json.Unmarshal(f.Payload, &sn); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "unmarshal extension payload"), ErrMalformedFrame)
	}
	if sn.ID == uuid.Nil || sn.SwapID == uuid.Nil {
		return nil, errs.Mark(errs.New("extension payload without ids"), ErrMalformedFrame)
	}
	return events.ExtensionEvent{Type: t, Extension: sn}, nil
}
