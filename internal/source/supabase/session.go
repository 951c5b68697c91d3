package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/muralhq/mural/internal/domain"
)

// SessionProvider resolves the access token carried in the request context
// against the identity endpoint. Guests (no token, or a token the endpoint
// rejects) get (Viewer{}, false).
type SessionProvider struct {
	client *Client
}

// NewSessionProvider creates a session provider backed by the same project
func NewSessionProvider(client *Client) *SessionProvider {
	return &SessionProvider{client: client}
}

// Current returns the authenticated viewer, if any. The admin flag comes
// from the viewer's profile row; a failed profile lookup leaves it false
// rather than failing the whole session resolution.
func (p *SessionProvider) Current(ctx context.Context) (domain.Viewer, bool) {
	if _, ok := domain.AccessToken(ctx); !ok {
		return domain.Viewer{}, false
	}

	body, err := p.client.doRequest(ctx, http.MethodGet, "/auth/v1/user", nil, nil)
	if err != nil {
		p.client.logger.Debug("session lookup failed", "error", err)
		return domain.Viewer{}, false
	}

	var user userRecord
	if err := json.Unmarshal(body, &user); err != nil || user.ID == "" {
		return domain.Viewer{}, false
	}

	viewer := domain.Viewer{ID: user.ID, Email: user.Email}

	query := url.Values{}
	query.Set("select", "id,is_admin")
	query.Set("id", "eq."+user.ID)
	query.Set("limit", "1")

	var profiles []profileRecord
	if err := p.client.selectRows(ctx, "profiles", query, &profiles); err != nil {
		p.client.logger.Debug("profile lookup failed", "user", user.ID, "error", err)
		return viewer, true
	}
	if len(profiles) > 0 {
		viewer.IsAdmin = profiles[0].IsAdmin
	}

	return viewer, true
}

var _ domain.SessionProvider = (*SessionProvider)(nil)
