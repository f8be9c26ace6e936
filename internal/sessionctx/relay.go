package sessionctx

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/career-launch/backend/internal/models"
)

// TTL is how long a saved context survives. It bounds a browsing session;
// the freshness check below is what actually decides usability.
const TTL = 12 * time.Hour

// Relay carries "which booth did this session view originate from" across a
// page navigation. One relay instance serves one visitor; construction reads
// the stored record once, and a corrupt record is logged, proactively erased
// and treated as absent.
type Relay struct {
	store  Store
	key    string
	logger *zap.Logger
	ctx    *models.SessionContext
}

// NewRelay creates a relay bound to one visitor's storage key and loads any
// existing context.
func NewRelay(ctx context.Context, store Store, key string, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Relay{store: store, key: key, logger: logger}

	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNoEntry) {
			logger.Warn("read session context failed", zap.Error(err))
		}
		return r
	}
	var sc models.SessionContext
	if err := json.Unmarshal([]byte(raw), &sc); err != nil {
		// Erase the bad entry so it does not fail on every page view.
		logger.Warn("corrupt session context discarded", zap.Error(err))
		_ = store.Remove(ctx, key)
		return r
	}
	r.ctx = &sc
	return r
}

// Context returns the loaded context, or nil when none exists.
func (r *Relay) Context() *models.SessionContext {
	return r.ctx
}

// UsableContext applies the freshness check: the stored context is honored
// only when it was saved for the session currently being viewed. A context
// for any other session is stale and reported as absent, even though it
// remains in storage until explicitly cleared.
func (r *Relay) UsableContext(currentSessionSlug string) *models.SessionContext {
	if r.ctx == nil || r.ctx.SessionSlug != currentSessionSlug {
		return nil
	}
	return r.ctx
}

// SaveContext overwrites any existing context. Last write wins, no merge.
func (r *Relay) SaveContext(ctx context.Context, sessionSlug, sessionTitle, boothSlug string) error {
	sc := models.SessionContext{
		SessionSlug:  sessionSlug,
		SessionTitle: sessionTitle,
		BoothSlug:    boothSlug,
		Timestamp:    time.Now().UTC(),
	}
	raw, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key, string(raw), TTL); err != nil {
		return err
	}
	r.ctx = &sc
	return nil
}

// ClearContext removes the stored context. Callers invoke it exactly when
// the contextual back-link is followed, so a later unrelated visit to the
// same booth does not inherit a dangling "back to session" affordance.
func (r *Relay) ClearContext(ctx context.Context) error {
	r.ctx = nil
	return r.store.Remove(ctx, r.key)
}
