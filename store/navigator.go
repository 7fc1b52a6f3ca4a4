package store

import (
	"fmt"

	"github.com/bmkabile/fixmyward/models"
)

// Screen tags the screens of the client application.
type Screen string

const (
	ScreenSplash      Screen = "splash"
	ScreenAuth        Screen = "auth"
	ScreenHome        Screen = "home"
	ScreenReportIssue Screen = "reportIssue"
	ScreenIssueDetail Screen = "issueDetail"
	ScreenDashboard   Screen = "dashboard"
	ScreenProfile     Screen = "profile"
)

var knownScreens = map[Screen]bool{
	ScreenSplash:      true,
	ScreenAuth:        true,
	ScreenHome:        true,
	ScreenReportIssue: true,
	ScreenIssueDetail: true,
	ScreenDashboard:   true,
	ScreenProfile:     true,
}

// ParseScreen validates a screen tag from the wire.
func ParseScreen(tag string) (Screen, error) {
	s := Screen(tag)
	if !knownScreens[s] {
		return "", fmt.Errorf("%w: %q", ErrUnknownScreen, tag)
	}
	return s, nil
}

// Navigator tracks which screen each session displays and, for the detail
// screen, which issue is selected. Transitions that violate a guard are
// rejected here rather than trusting each screen to self-check.
type Navigator struct {
	store *Store
}

func NewNavigator(s *Store) *Navigator {
	return &Navigator{store: s}
}

// State returns the session's current navigation state.
func (n *Navigator) State(actorID string) (Session, error) {
	sess, ok := n.store.SessionFor(actorID)
	if !ok {
		return Session{}, ErrUnauthenticated
	}
	return sess, nil
}

// Navigate moves the session to a screen. Rules:
//   - every screen requires an active session (anonymous clients only ever
//     see Splash and Auth, which live before login);
//   - Dashboard requires the Councillor role;
//   - IssueDetail requires an issue id, supplied now or already selected,
//     and it must exist;
//   - leaving IssueDetail clears the selection so a later detail visit
//     cannot show a stale issue.
func (n *Navigator) Navigate(actorID string, screen Screen, issueID string) (Session, error) {
	if !knownScreens[screen] {
		return Session{}, fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}

	n.store.mu.Lock()
	defer n.store.mu.Unlock()

	actor, err := n.store.requireSession(actorID)
	if err != nil {
		return Session{}, err
	}
	sess := n.store.sessions[actorID]

	if screen == ScreenDashboard && actor.Role != models.Councillor {
		return Session{}, fmt.Errorf("%w: dashboard is councillor-only", ErrForbidden)
	}

	if screen == ScreenIssueDetail {
		target := issueID
		if target == "" {
			target = sess.SelectedIssueID
		}
		if target == "" {
			return Session{}, fmt.Errorf("%w: no issue selected", ErrIssueNotFound)
		}
		if !n.issueExistsLocked(target) {
			return Session{}, ErrIssueNotFound
		}
		sess.SelectedIssueID = target
	} else if sess.Screen == ScreenIssueDetail {
		sess.SelectedIssueID = ""
	}

	sess.Screen = screen
	return *sess, nil
}

func (n *Navigator) issueExistsLocked(id string) bool {
	for _, issue := range n.store.issues {
		if issue.ID == id {
			return true
		}
	}
	return false
}
