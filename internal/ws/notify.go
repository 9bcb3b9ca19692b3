package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

// ExtractionEvent is broadcast to connected clients as the extraction
// pipeline progresses, so the UI can show live status.
type ExtractionEvent struct {
	Type       string `json:"type"`
	RequestID  string `json:"request_id"`
	SourceKind string `json:"source_kind"`
	Method     string `json:"method,omitempty"`
	Error      string `json:"error,omitempty"`
	Timestamp  string `json:"timestamp"`
}

const (
	EventExtractionStarted   = "extraction_started"
	EventExtractionCompleted = "extraction_completed"
	EventExtractionFailed    = "extraction_failed"
)

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyExtraction(eventType, requestID, sourceKind, method, errMsg string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return
	}

	evt := ExtractionEvent{
		Type:       eventType,
		RequestID:  requestID,
		SourceKind: sourceKind,
		Method:     method,
		Error:      errMsg,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
