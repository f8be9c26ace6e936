package registration

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// Store abstracts the client-scoped key-value storage the form persists
// educator preferences through. The HTTP layer adapts cookies to this
// interface; tests inject MemStore.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
	Remove(key string)
}

// CookieStore adapts a gin request/response pair to the Store interface.
// Values are query-escaped into cookie values on write and unescaped on read.
type CookieStore struct {
	c *gin.Context
}

// NewCookieStore wraps the request's cookies as a Store.
func NewCookieStore(c *gin.Context) *CookieStore {
	return &CookieStore{c: c}
}

func (s *CookieStore) Get(key string) (string, bool) {
	raw, err := s.c.Cookie(key)
	if err != nil || raw == "" {
		return "", false
	}
	v, err := url.QueryUnescape(raw)
	if err != nil {
		// Report the raw value; the caller treats unparseable data as absent.
		return raw, true
	}
	return v, true
}

func (s *CookieStore) Set(key, value string, ttl time.Duration) {
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *CookieStore) Remove(key string) {
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     key,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// MemStore is an in-memory Store for tests. It records the TTL of the last
// Set per key so tests can assert expiry behaviour.
type MemStore struct {
	Values map[string]string
	TTLs   map[string]time.Duration
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Values: make(map[string]string), TTLs: make(map[string]time.Duration)}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.Values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string, ttl time.Duration) {
	s.Values[key] = value
	s.TTLs[key] = ttl
}

func (s *MemStore) Remove(key string) {
	delete(s.Values, key)
	delete(s.TTLs, key)
}
