package ws

import (
	"encoding/json"
	"time"
)

type JobsIngestedEvent struct {
	Type       string `json:"type"`
	JobTitle   string `json:"job_title"`
	Location   string `json:"location"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
	Timestamp  string `json:"timestamp"`
}

// Notifier publishes ingestion outcomes over the hub. It satisfies the
// ingest usecase's notifier dependency.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) JobsIngested(jobTitle, location string, inserted, duplicates int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobsIngestedEvent{
		Type:       "jobs_ingested",
		JobTitle:   jobTitle,
		Location:   location,
		Inserted:   inserted,
		Duplicates: duplicates,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
