package service

import (
	"errors"
	"log"
	"time"

	"pointtrail/internal/domain"
	"pointtrail/internal/models"
	"pointtrail/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStorageNotReady marks the ledger table as not yet provisioned (first
// install, migration race). It is an expected condition, not an operator fault.
var ErrStorageNotReady = errors.New("point history storage not ready")

type RecordStatus int

const (
	StatusWritten RecordStatus = iota
	StatusSkippedDisabled
	StatusSkippedAnonymous
	StatusSkippedUnknownEvent
	StatusFailedStorage
)

func (s RecordStatus) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkippedDisabled:
		return "skipped_disabled"
	case StatusSkippedAnonymous:
		return "skipped_anonymous"
	case StatusSkippedUnknownEvent:
		return "skipped_unknown_event"
	case StatusFailedStorage:
		return "failed_storage"
	}
	return "unknown"
}

// RecordOutcome reports what a single event produced. Transport adapters map
// every status to a no-op toward the platform; the type exists so behavior is
// testable without inspecting storage.
type RecordOutcome struct {
	Status  RecordStatus
	Written int
	Err     error
}

// EventParams carries the optional contextual parameters of a platform event.
type EventParams struct {
	PostID uint `json:"postid"`
}

// EventEnvelope is the wire form of a platform event notification, shared by
// the HTTP webhook and the Kafka consumer.
type EventEnvelope struct {
	EventID   string      `json:"event_id"`
	Event     string      `json:"event"`
	UserID    uint        `json:"userid"`
	Handle    string      `json:"handle"`
	SessionID string      `json:"sessionid"`
	Params    EventParams `json:"params"`
}

// ToEvent normalizes the envelope, assigning an ID for log correlation when
// the platform did not send one.
func (e *EventEnvelope) ToEvent() Event {
	id := e.EventID
	if id == "" {
		id = uuid.NewString()
	}
	return Event{
		ID:     id,
		Kind:   e.Event,
		UserID: e.UserID,
		Handle: e.Handle,
		PostID: e.Params.PostID,
	}
}

// Event is one platform notification after ingest normalization.
type Event struct {
	ID     string
	Kind   string
	UserID uint
	Handle string
	PostID uint
}

// TimelinePublisher pushes freshly written entries to connected widgets.
type TimelinePublisher interface {
	BroadcastToUser(userID uint, payload interface{})
}

// Recorder is the activity recorder: it turns platform events into ledger
// entries. It never propagates failures to its caller beyond the outcome
// value; the platform flow that triggered the event must not break.
type Recorder struct {
	history *repository.HistoryRepository
	users   *repository.UserRepository
	posts   *repository.PostRepository
	opts    *Options
	hub     TimelinePublisher
}

func NewRecorder(
	history *repository.HistoryRepository,
	users *repository.UserRepository,
	posts *repository.PostRepository,
	opts *Options,
	hub TimelinePublisher,
) *Recorder {
	return &Recorder{history: history, users: users, posts: posts, opts: opts, hub: hub}
}

// Record processes one platform event. A single vote event may write two
// entries: the voter's own and the content owner's "received a vote" credit.
// Duplicate deliveries write duplicate entries; the platform's notifications
// are at-least-once and the ledger accepts that.
func (s *Recorder) Record(ev Event) RecordOutcome {
	if !s.opts.Enabled() {
		return RecordOutcome{Status: StatusSkippedDisabled}
	}
	if ev.UserID == 0 {
		return RecordOutcome{Status: StatusSkippedAnonymous}
	}
	rule, known := SelfRuleFor(ev.Kind)
	if !known {
		return RecordOutcome{Status: StatusSkippedUnknownEvent}
	}
	if !s.history.Ready() {
		return RecordOutcome{Status: StatusFailedStorage, Err: ErrStorageNotReady}
	}

	written := 0
	var lastErr error

	if s.opts.TrackingEnabled(rule.ToggleKey) {
		target, ok := s.resolveTarget(ev, rule)
		if ok {
			points := 0
			if rule.PointKey != "" {
				points = s.opts.PointValue(rule.PointKey)
				if rule.Negate {
					points = -points
				}
			}
			if err := s.writeEntry(target, rule.Activity, points, ev.PostID, rule.Description); err != nil {
				log.Printf("[recorder] event %s (%s): %v", ev.Kind, ev.ID, err)
				lastErr = err
			} else {
				written++
			}
		}
	}

	if n, err := s.recordVoteReceived(ev); err != nil {
		log.Printf("[recorder] event %s (%s) vote credit: %v", ev.Kind, ev.ID, err)
		lastErr = err
	} else {
		written += n
	}

	switch {
	case written > 0:
		return RecordOutcome{Status: StatusWritten, Written: written}
	case lastErr != nil:
		return RecordOutcome{Status: StatusFailedStorage, Err: lastErr}
	default:
		return RecordOutcome{Status: StatusSkippedDisabled}
	}
}

// resolveTarget picks the credited user. Best-answer selection credits the
// answer author, everything else the acting user. A missing post means the
// entry is skipped, not failed.
func (s *Recorder) resolveTarget(ev Event, rule SelfRule) (uint, bool) {
	if rule.Attribution != AttrPostAuthor {
		return ev.UserID, true
	}
	if ev.PostID == 0 {
		return 0, false
	}
	post, err := s.posts.GetByID(ev.PostID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[recorder] post lookup %d: %v", ev.PostID, err)
		}
		return 0, false
	}
	return post.UserID, true
}

// recordVoteReceived credits the content owner for a vote on their post.
// A user voting on their own content earns nothing.
func (s *Recorder) recordVoteReceived(ev Event) (int, error) {
	if !s.opts.TrackingEnabled(domain.SettingTrackVotes) || ev.PostID == 0 {
		return 0, nil
	}
	post, err := s.posts.GetByID(ev.PostID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[recorder] post lookup %d: %v", ev.PostID, err)
		}
		return 0, nil
	}
	if post.UserID == ev.UserID {
		return 0, nil
	}
	rule, ok := ReceivedRuleFor(ev.Kind, post.Type)
	if !ok {
		return 0, nil
	}
	points := s.opts.PointValue(rule.PointKey)
	if rule.Negate {
		points = -points
	}
	if points == 0 {
		return 0, nil
	}
	if err := s.writeEntry(post.UserID, rule.Activity, points, ev.PostID, rule.Description); err != nil {
		return 0, err
	}
	return 1, nil
}

// writeEntry enforces the retention cap and appends one ledger row. The
// count-then-evict window is racy under concurrent events for the same user;
// the cap may briefly over- or undershoot, which is accepted.
func (s *Recorder) writeEntry(userID uint, activity string, points int, postID uint, description string) error {
	max := s.opts.MaxLogsPerUser()
	if max > 0 {
		count, err := s.history.CountForUser(userID)
		if err != nil {
			return err
		}
		if count >= int64(max) {
			if err := s.history.EvictOldest(userID, int(count)-max+1); err != nil {
				return err
			}
		}
	}

	entry := &models.PointHistory{
		UserID:       userID,
		ActivityType: activity,
		Points:       points,
		Description:  description,
		CreatedAt:    time.Now(),
	}
	if postID != 0 {
		pid := postID
		entry.PostID = &pid
	}
	if err := s.history.Insert(entry); err != nil {
		return err
	}

	// Mirror the delta onto the running total; the ledger row is already
	// durable, so this is best effort.
	if points != 0 {
		if err := s.users.AddPoints(userID, points); err != nil {
			log.Printf("[recorder] point total for user %d: %v", userID, err)
		}
	}
	if s.hub != nil {
		s.hub.BroadcastToUser(userID, timelinePayload{Type: "timeline_entry", Entry: entry})
	}
	return nil
}

// timelinePayload is what widget sockets receive for each new entry.
type timelinePayload struct {
	Type  string               `json:"type"`
	Entry *models.PointHistory `json:"entry"`
}
