// Package session holds the single signed-in admin identity. Sign-in checks
// one configured credential pair; the current user survives restarts through
// one durable entry that is read back exactly once at startup.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type User struct {
	UID         string `json:"uid"`
	PhoneNumber string `json:"phone_number"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role"`
}

// Credentials is the one accepted phone/password pair. The password arrives
// in clear from config and is hashed once at construction; sign-in compares
// through bcrypt only.
type Credentials struct {
	Phone    string
	Password string
}

type Manager struct {
	store    Store
	log      *zap.Logger
	phone    string
	passHash []byte
	identity User

	mu      sync.RWMutex
	user    *User
	loading bool
}

func NewManager(store Store, creds Credentials, identity User, log *zap.Logger) (*Manager, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Manager{
		store:    store,
		log:      log,
		phone:    creds.Phone,
		passHash: hash,
		identity: identity,
		loading:  true,
	}, nil
}

// Load reads the persisted entry once. An absent entry is not an error;
// anything else clears the entry rather than failing startup.
func (m *Manager) Load(ctx context.Context) {
	u, err := m.store.Read(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	switch {
	case err == nil:
		m.user = u
		m.log.Info("restored session", zap.String("uid", u.UID))
	case errors.Is(err, ErrNoSession):
		// first run, or signed out
	default:
		m.log.Warn("discarding unreadable session entry", zap.Error(err))
		_ = m.store.Delete(ctx)
	}
}

// SignIn succeeds only for the configured credential pair. On success the
// fixed admin identity becomes current and is persisted; on failure the
// current user is left as it was.
func (m *Manager) SignIn(ctx context.Context, phone, password string) (*User, error) {
	if phone != m.phone {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(m.passHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u := m.identity
	if err := m.store.Write(ctx, &u); err != nil {
		m.log.Warn("session entry not persisted", zap.Error(err))
	}

	m.mu.Lock()
	m.user = &u
	m.mu.Unlock()

	out := u
	return &out, nil
}

func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	return m.store.Delete(ctx)
}

// Current returns a copy of the signed-in user, if any.
func (m *Manager) Current() (*User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, false
	}
	u := *m.user
	return &u, true
}

// Loading is true until Load has run.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}
