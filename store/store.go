package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bmkabile/fixmyward/models"
)

// Store is the single source of truth for users, issues, sessions, and ward
// demographics. All mutation goes through named operations; readers get
// copies, never store-owned values. Safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	users        []*models.User
	issues       []*models.Issue
	sessions     map[string]*Session
	demographics map[string]models.Demographics
	thresholds   MapThresholds
}

// Session is one authenticated client's server-side state: who they are and
// where in the app they currently stand. At most one per user; login and
// signup replace any existing record.
type Session struct {
	UserID          string    `json:"userId"`
	Screen          Screen    `json:"screen"`
	SelectedIssueID string    `json:"selectedIssueId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SignUpInput carries a new account's profile.
type SignUpInput struct {
	FullName string
	Email    string
	Password string
	Ward     string
	Role     models.UserRole
}

// IssueInput carries a new report. Reporter, timestamps, status, likes and
// comments are stamped by the store.
type IssueInput struct {
	Title       string
	Description string
	Category    models.IssueCategory
	Province    string
	Ward        string
	ImageURL    string
	Location    models.GeoPoint
}

// NewStore creates an empty store. Thresholds drive the map severity
// buckets; use DefaultMapThresholds unless configured otherwise.
func NewStore(thresholds MapThresholds) *Store {
	return &Store{
		sessions:     make(map[string]*Session),
		demographics: make(map[string]models.Demographics),
		thresholds:   thresholds,
	}
}

// Login checks credentials against the registry. On success the user's
// session record is created (replacing any previous one) and the user is
// returned. Emails match case-sensitively, passwords via bcrypt.
func (s *Store) Login(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.ComparePassword(password) {
			s.sessions[u.ID] = &Session{
				UserID:    u.ID,
				Screen:    ScreenHome,
				CreatedAt: time.Now(),
			}
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// SignUp registers a new user and starts their session. Fails with
// ErrDuplicateEmail if the email is already registered (case-sensitive
// exact match) and leaves the registry untouched.
func (s *Store) SignUp(input SignUpInput) (*models.User, error) {
	if strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.Password == "" {
		return nil, fmt.Errorf("%w: full name, email, and password are required", ErrInvalidInput)
	}
	if !input.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}
	if !models.IsValidWard(input.Ward) {
		return nil, fmt.Errorf("%w: unknown ward %q", ErrInvalidInput, input.Ward)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == input.Email {
			return nil, ErrDuplicateEmail
		}
	}

	user := &models.User{
		ID:       uuid.NewString(),
		FullName: input.FullName,
		Email:    input.Email,
		Ward:     input.Ward,
		Role:     input.Role,
		Password: input.Password,
	}
	if err := user.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.users = append(s.users, user)
	s.sessions[user.ID] = &Session{
		UserID:    user.ID,
		Screen:    ScreenHome,
		CreatedAt: time.Now(),
	}

	cp := *user
	return &cp, nil
}

// Logout removes the user's session. Always succeeds, even if no session
// exists.
func (s *Store) Logout(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// SessionFor returns a copy of the user's session record, if any.
func (s *Store) SessionFor(userID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// AddIssue creates a report on behalf of the actor. The actor must hold an
// active session. The new issue is prepended so the collection stays
// most-recent-first at insertion.
func (s *Store) AddIssue(actorID string, input IssueInput) (*models.Issue, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrInvalidInput)
	}
	if !input.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, input.Category)
	}
	if !models.IsValidProvince(input.Province) {
		return nil, fmt.Errorf("%w: unknown province %q", ErrInvalidInput, input.Province)
	}
	if !models.IsValidWard(input.Ward) {
		return nil, fmt.Errorf("%w: unknown ward %q", ErrInvalidInput, input.Ward)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.requireSession(actorID)
	if err != nil {
		return nil, err
	}

	issue := &models.Issue{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Province:    input.Province,
		Ward:        input.Ward,
		ReporterID:  actor.ID,
		ImageURL:    input.ImageURL,
		Location:    input.Location,
		Status:      models.Reported,
		Likes:       []string{},
		Comments:    []models.Comment{},
		CreatedAt:   time.Now(),
	}

	s.issues = append([]*models.Issue{issue}, s.issues...)
	return issue.Clone(), nil
}

// UpdateIssueStatus replaces the status of the matching issue. Only a
// councillor whose ward matches the issue's ward may do this; the check
// lives here so no caller can bypass it. Transitions are unordered.
func (s *Store) UpdateIssueStatus(actorID, issueID string, status models.IssueStatus) (*models.Issue, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.requireSession(actorID)
	if err != nil {
		return nil, err
	}

	for idx, issue := range s.issues {
		if issue.ID != issueID {
			continue
		}
		if actor.Role != models.Councillor || actor.Ward != issue.Ward {
			return nil, fmt.Errorf("%w: status updates require the ward's councillor", ErrForbidden)
		}
		updated := issue.Clone()
		updated.Status = status
		s.replaceIssue(idx, updated)
		return updated.Clone(), nil
	}
	return nil, ErrIssueNotFound
}

// ToggleLike flips the actor's membership in the issue's like set and
// reports the resulting state. Each user id appears at most once.
func (s *Store) ToggleLike(actorID, issueID string) (liked bool, likes int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.requireSession(actorID)
	if err != nil {
		return false, 0, err
	}

	for idx, issue := range s.issues {
		if issue.ID != issueID {
			continue
		}
		updated := issue.Clone()
		if updated.LikedBy(actor.ID) {
			kept := updated.Likes[:0]
			for _, id := range updated.Likes {
				if id != actor.ID {
					kept = append(kept, id)
				}
			}
			updated.Likes = kept
			liked = false
		} else {
			updated.Likes = append(updated.Likes, actor.ID)
			liked = true
		}
		s.replaceIssue(idx, updated)
		return liked, len(updated.Likes), nil
	}
	return false, 0, ErrIssueNotFound
}

// AddComment appends a comment to the issue. Comments are append-only and
// keep insertion order.
func (s *Store) AddComment(actorID, issueID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.requireSession(actorID)
	if err != nil {
		return nil, err
	}

	for idx, issue := range s.issues {
		if issue.ID != issueID {
			continue
		}
		comment := models.Comment{
			ID:        uuid.NewString(),
			AuthorID:  actor.ID,
			Text:      text,
			Timestamp: time.Now(),
		}
		updated := issue.Clone()
		updated.Comments = append(updated.Comments, comment)
		s.replaceIssue(idx, updated)
		return &comment, nil
	}
	return nil, ErrIssueNotFound
}

// GetUserByID is a pure lookup.
func (s *Store) GetUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(id)
}

// GetIssueByID is a pure lookup.
func (s *Store) GetIssueByID(id string) (*models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, issue := range s.issues {
		if issue.ID == id {
			return issue.Clone(), nil
		}
	}
	return nil, ErrIssueNotFound
}

// Issues returns a copy of the full collection in its current order
// (most recent first by insertion).
func (s *Store) Issues() []*models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		out = append(out, issue.Clone())
	}
	return out
}

// IssuesByReporter returns the actor's own reports, most recent first.
func (s *Store) IssuesByReporter(userID string) []*models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Issue
	for _, issue := range s.issues {
		if issue.ReporterID == userID {
			out = append(out, issue.Clone())
		}
	}
	return out
}

// DemographicsFor returns the static demographic figures for a ward.
func (s *Store) DemographicsFor(ward string) (models.Demographics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.demographics[ward]
	return d, ok
}

// Seed loads fixture users, issues, and demographics. Plaintext seed
// passwords are hashed on the way in. Intended for startup and tests only.
func (s *Store) Seed(users []*models.User, issues []*models.Issue, demographics map[string]models.Demographics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range users {
		if err := u.HashPassword(); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		s.users = append(s.users, u)
	}
	s.issues = append(s.issues, issues...)
	for ward, d := range demographics {
		s.demographics[ward] = d
	}
	return nil
}

// requireSession resolves the actor behind a mutation. Callers must hold
// the write lock.
func (s *Store) requireSession(actorID string) (*models.User, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}
	if _, ok := s.sessions[actorID]; !ok {
		return nil, ErrUnauthenticated
	}
	return s.findUser(actorID)
}

func (s *Store) findUser(id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

// replaceIssue swaps in an updated issue by rebuilding the slice, keeping
// the immutable-update discipline: observers holding the old slice never
// see the change. Callers must hold the write lock.
func (s *Store) replaceIssue(idx int, updated *models.Issue) {
	next := make([]*models.Issue, len(s.issues))
	copy(next, s.issues)
	next[idx] = updated
	s.issues = next
}
