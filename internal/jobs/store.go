package jobs

import (
	"sync"

	"github.com/MedDash99/meeting-summarizer/internal/domain"
)

// Store is the ephemeral, in-memory progress tracker for async submissions.
// The mutex is held only for map access, never across an external call.
// Entries are never deleted; they live for the process lifetime and are lost
// on restart. The record store is the durable source of truth.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*domain.JobState
}

// NewStore creates an empty job store.
func NewStore() *Store {
	return &Store{
		jobs: make(map[string]*domain.JobState),
	}
}

// Create installs a new job in processing state.
func (s *Store) Create(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[jobID] = &domain.JobState{Status: domain.JobStatusProcessing}
}

// SetResult moves a job to success with its summary payload. A job already
// in a terminal state is left untouched.
func (s *Store) SetResult(jobID string, result *domain.MeetingSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok || job.Status != domain.JobStatusProcessing {
		return
	}
	job.Status = domain.JobStatusSuccess
	job.Result = result
	job.Error = ""
}

// SetError moves a job to error with a message. A job already in a terminal
// state is left untouched.
func (s *Store) SetError(jobID string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok || job.Status != domain.JobStatusProcessing {
		return
	}
	job.Status = domain.JobStatusError
	job.Error = message
	job.Result = nil
}

// Get returns a snapshot of the job state, and whether the job exists.
func (s *Store) Get(jobID string) (domain.JobState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return domain.JobState{}, false
	}
	return *job, true
}
