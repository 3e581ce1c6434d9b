package notifier

import (
	"crypto/rand"
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/iota-uz/commerce-admin/pkg/types"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

type Notification struct {
	Status Status
	Text   string
}

func init() {
	gob.Register(Notification{})
}

// Notifier is a fire-and-forget side channel for toasts.
type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// FlashStore keeps notifications in a signed session cookie so they survive
// the redirect that usually follows a mutation.
type FlashStore struct {
	name  string
	store sessions.Store
}

// NewFlashStore signs the cookie with key. Without a key a random one is
// used and pending flashes are lost on restart.
func NewFlashStore(name string, key []byte) *FlashStore {
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(err)
		}
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{name: name, store: store}
}

func (s *FlashStore) Name() string {
	return s.name
}

// Flash queues notifications for the next page the client renders.
type Flash struct {
	w     http.ResponseWriter
	r     *http.Request
	store *FlashStore
}

func (s *FlashStore) Notifier(w http.ResponseWriter, r *http.Request) *Flash {
	return &Flash{w: w, r: r, store: s}
}

func (f *Flash) Notify(n Notification) {
	// A cookie that fails verification yields a fresh session.
	sess, _ := f.store.store.Get(f.r, f.store.name)
	if sess == nil {
		return
	}
	sess.AddFlash(n)
	_ = sess.Save(f.r, f.w)
}

// Pop returns and clears the pending notifications. A tampered or stale
// cookie is replaced by an empty session.
func (s *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []types.Toast {
	if _, err := r.Cookie(s.name); err != nil {
		return nil
	}
	sess, err := s.store.Get(r, s.name)
	if sess == nil {
		return nil
	}
	if err != nil {
		_ = sess.Save(r, w)
		return nil
	}
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	_ = sess.Save(r, w)
	toasts := make([]types.Toast, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(Notification); ok {
			toasts = append(toasts, types.Toast{Status: string(n.Status), Text: n.Text})
		}
	}
	return toasts
}
