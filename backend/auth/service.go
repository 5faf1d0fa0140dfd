package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"learnhub/backend/models"
	"learnhub/backend/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrRoleNotAllowed     = errors.New("role not available for this user")
)

type directoryEntry struct {
	user         models.User
	passwordHash []byte
}

// Service owns the login/logout/role-switch lifecycle around the session
// store. The user directory is an in-memory mock: known demo accounts are
// bcrypt-verified, any other non-empty credential pair synthesizes the demo
// super-user, mirroring the catalog's seeded data.
type Service struct {
	sessions  *store.SessionStore
	prefs     *store.PrefsStore
	directory map[string]directoryEntry
}

func NewService(sessions *store.SessionStore, prefs *store.PrefsStore) *Service {
	s := &Service{
		sessions:  sessions,
		prefs:     prefs,
		directory: make(map[string]directoryEntry),
	}
	s.seedDirectory()
	return s
}

func (s *Service) seedDirectory() {
	seed := []struct {
		user     models.User
		password string
	}{
		{
			user: models.User{
				ID:             "2",
				FirstName:      "Maria",
				LastName:       "Gomez",
				Email:          "maria.gomez@learnhub.io",
				Role:           models.RoleLearner,
				Avatar:         avatarFor("maria.gomez@learnhub.io"),
				AvailableRoles: []string{models.RoleLearner},
			},
			password: "learner123",
		},
		{
			user: models.User{
				ID:             "inst-1",
				FirstName:      "Sarah",
				LastName:       "Johnson",
				Email:          "sarah.johnson@learnhub.io",
				Role:           models.RoleInstructor,
				Avatar:         avatarFor("sarah.johnson@learnhub.io"),
				AvailableRoles: []string{models.RoleInstructor, models.RoleLearner},
			},
			password: "teach123",
		},
		{
			user: models.User{
				ID:             "admin-1",
				FirstName:      "Dana",
				LastName:       "Whitfield",
				Email:          "admin@learnhub.io",
				Role:           models.RoleAdmin,
				Avatar:         avatarFor("admin@learnhub.io"),
				AvailableRoles: []string{models.RoleAdmin, models.RoleInstructor, models.RoleLearner},
			},
			password: "admin123",
		},
	}

	for _, entry := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		s.directory[strings.ToLower(entry.user.Email)] = directoryEntry{
			user:         entry.user,
			passwordHash: hash,
		}
	}
}

// Login authenticates and publishes the identity to the session store. Known
// directory accounts must present the right password; any other non-empty
// credential pair gets the demo super-user with every role available.
func (s *Service) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user *models.User
	if entry, ok := s.directory[strings.ToLower(email)]; ok {
		if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		user = entry.user.Clone()
	} else {
		user = &models.User{
			ID:             "1",
			FirstName:      "Jayden",
			LastName:       "Farmer",
			Email:          email,
			Role:           models.RoleAdmin,
			Avatar:         avatarFor(email),
			AvailableRoles: []string{models.RoleAdmin, models.RoleInstructor, models.RoleLearner},
		}
	}

	user.Permissions = PermissionsFor(user.Role)
	s.sessions.Set(user)
	s.prefs.SaveSession(user)
	return user, nil
}

// SwitchRole changes the active role in place, without logging out. The
// target role must be in the identity's available-roles list.
func (s *Service) SwitchRole(role string) (*models.User, error) {
	user := s.sessions.Current()
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	allowed := false
	for _, r := range user.AvailableRoles {
		if strings.EqualFold(r, role) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrRoleNotAllowed
	}

	user.Role = strings.ToLower(role)
	user.Permissions = PermissionsFor(user.Role)
	s.sessions.Set(user)
	s.prefs.SaveSession(user)
	return user, nil
}

// Logout clears the session store and the persisted session key.
func (s *Service) Logout() {
	s.sessions.Clear()
	s.prefs.ClearSession()
}

func avatarFor(email string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email
}
