package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"job-board/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationSubmittedEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	EmployerID    string `json:"employer_id"`
	Timestamp     string `json:"timestamp"`
}

type ApplicationStatusChangedEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobSeekerID   string `json:"job_seeker_id"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

// SetDefaultHub installs the process-wide hub. Notifications are no-ops
// until it is set, which keeps usecase tests free of websocket plumbing.
func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyApplicationSubmitted(applicationID, jobID, employerID uuid.UUID) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := ApplicationSubmittedEvent{
		Type:          "application_submitted",
		ApplicationID: applicationID.String(),
		JobID:         jobID.String(),
		EmployerID:    employerID.String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyApplicationStatusChanged(applicationID, jobSeekerID uuid.UUID, status application.Status) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := ApplicationStatusChangedEvent{
		Type:          "application_status_changed",
		ApplicationID: applicationID.String(),
		JobSeekerID:   jobSeekerID.String(),
		Status:        string(status),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
