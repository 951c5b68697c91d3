package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muralhq/mural/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Mural/1.0"
)

// Client speaks the PostgREST-style table API and RPC endpoints of a hosted
// Supabase project. It implements domain.CatalogSource and
// domain.FavoriteRelation.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Supabase REST client
func NewClient(baseURL, anonKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated request against the REST API. The
// bearer token is the viewer's access token when the context carries one,
// otherwise the anon key.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	bearer := c.anonKey
	if token, ok := domain.AccessToken(ctx); ok {
		bearer = token
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}

	c.logger.Debug("supabase request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("supabase request failed", "error", err)
		return nil, domain.ErrSourceUnavailable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrUnauthenticated
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode >= 300:
		c.logger.Error("supabase request error", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return respBody, nil
}

func (c *Client) selectRows(ctx context.Context, table string, query url.Values, dest any) error {
	body, err := c.doRequest(ctx, http.MethodGet, "/rest/v1/"+table, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "table", table, "error", err, "bodyLen", len(body))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// rpc invokes a named remote procedure and decodes its result into dest
// (pass nil to discard)
func (c *Client) rpc(ctx context.Context, name string, args, dest any) error {
	body, err := c.doRequest(ctx, http.MethodPost, "/rest/v1/rpc/"+name, nil, args)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "rpc", name, "error", err, "bodyLen", len(body))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// === Catalog ===

// GetWallpapers returns every wallpaper, most recently added first
func (c *Client) GetWallpapers(ctx context.Context) ([]domain.Wallpaper, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "date_added.desc")

	var records []wallpaperRecord
	if err := c.selectRows(ctx, "wallpapers", query, &records); err != nil {
		return nil, err
	}
	return mapWallpapers(records), nil
}

// GetWallpaperByID returns a single wallpaper, domain.ErrNotFound when absent
func (c *Client) GetWallpaperByID(ctx context.Context, id string) (domain.Wallpaper, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+id)
	query.Set("limit", "1")

	var records []wallpaperRecord
	if err := c.selectRows(ctx, "wallpapers", query, &records); err != nil {
		return domain.Wallpaper{}, err
	}
	if len(records) == 0 {
		return domain.Wallpaper{}, domain.ErrNotFound
	}
	return mapWallpaper(records[0]), nil
}

// GetWallpapersByCategory filters by exact category id server-side
func (c *Client) GetWallpapersByCategory(ctx context.Context, categoryID string) ([]domain.Wallpaper, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("category_id", "eq."+categoryID)
	query.Set("order", "date_added.desc")

	var records []wallpaperRecord
	if err := c.selectRows(ctx, "wallpapers", query, &records); err != nil {
		return nil, err
	}
	return mapWallpapers(records), nil
}

// filterTermSanitizer strips the characters the PostgREST filter grammar
// reserves (list separators, grouping, wildcards, quoting). Left in place
// they would be parsed as operators and corrupt or broaden the filter.
var filterTermSanitizer = strings.NewReplacer(
	",", " ", "(", " ", ")", " ", "*", " ", `"`, " ", `\`, " ",
)

// sanitizeFilterTerm returns the term with reserved characters removed and
// whitespace collapsed
func sanitizeFilterTerm(term string) string {
	return strings.Join(strings.Fields(filterTermSanitizer.Replace(term)), " ")
}

// SearchByTitle performs a case-insensitive substring match on titles
func (c *Client) SearchByTitle(ctx context.Context, term string) ([]domain.Wallpaper, error) {
	term = sanitizeFilterTerm(term)
	if term == "" {
		// A term of only reserved characters would match everything
		return []domain.Wallpaper{}, nil
	}

	query := url.Values{}
	query.Set("select", "*")
	query.Set("title", "ilike.*"+term+"*")

	var records []wallpaperRecord
	if err := c.selectRows(ctx, "wallpapers", query, &records); err != nil {
		return nil, err
	}
	return mapWallpapers(records), nil
}

// SearchByTag delegates to the search_wallpapers_by_tag procedure, which
// runs an array-containment test over the tags column server-side. Tag
// containment is not expressible as an indexed substring filter, so it is
// pushed down to avoid shipping the whole table.
func (c *Client) SearchByTag(ctx context.Context, tag string) ([]domain.Wallpaper, error) {
	var records []wallpaperRecord
	err := c.rpc(ctx, "search_wallpapers_by_tag", map[string]string{"search_tag": tag}, &records)
	if err != nil {
		return nil, err
	}
	return mapWallpapers(records), nil
}

// GetCategories returns all categories ordered by name
func (c *Client) GetCategories(ctx context.Context) ([]domain.Category, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "name.asc")

	var records []categoryRecord
	if err := c.selectRows(ctx, "categories", query, &records); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, mapCategory(r))
	}
	return categories, nil
}

// InsertWallpaper creates a wallpaper row
func (c *Client) InsertWallpaper(ctx context.Context, w domain.Wallpaper) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/rest/v1/wallpapers", nil, unmapWallpaper(w))
	return err
}

// IncrementCategoryCount bumps the advisory member tally via RPC
func (c *Client) IncrementCategoryCount(ctx context.Context, categoryID string) error {
	return c.rpc(ctx, "increment_category_count", map[string]string{"category_id": categoryID}, nil)
}

// === Favorite relation ===

// Contains reports whether (userID, wallpaperID) exists
func (c *Client) Contains(ctx context.Context, userID, wallpaperID string) (bool, error) {
	query := url.Values{}
	query.Set("select", "wallpaper_id")
	query.Set("user_id", "eq."+userID)
	query.Set("wallpaper_id", "eq."+wallpaperID)
	query.Set("limit", "1")

	var records []favoriteRecord
	if err := c.selectRows(ctx, "favorites", query, &records); err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// Add inserts the (userID, wallpaperID) row
func (c *Client) Add(ctx context.Context, userID, wallpaperID string) error {
	payload := favoriteRecord{UserID: userID, WallpaperID: wallpaperID}
	_, err := c.doRequest(ctx, http.MethodPost, "/rest/v1/favorites", nil, payload)
	return err
}

// Remove deletes the (userID, wallpaperID) row if present
func (c *Client) Remove(ctx context.Context, userID, wallpaperID string) error {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("wallpaper_id", "eq."+wallpaperID)

	_, err := c.doRequest(ctx, http.MethodDelete, "/rest/v1/favorites", query, nil)
	return err
}

// List returns the viewer's favorited wallpapers with the joined records
// embedded, so no second round trip per item is needed
func (c *Client) List(ctx context.Context, userID string) ([]domain.Wallpaper, error) {
	query := url.Values{}
	query.Set("select", "wallpaper_id,wallpapers(*)")
	query.Set("user_id", "eq."+userID)

	var records []favoriteRecord
	if err := c.selectRows(ctx, "favorites", query, &records); err != nil {
		return nil, err
	}

	wallpapers := make([]domain.Wallpaper, 0, len(records))
	for _, r := range records {
		if r.Wallpaper == nil {
			continue
		}
		w := mapWallpaper(*r.Wallpaper)
		w.IsFavorite = true
		wallpapers = append(wallpapers, w)
	}
	return wallpapers, nil
}

var (
	_ domain.CatalogSource    = (*Client)(nil)
	_ domain.FavoriteRelation = (*Client)(nil)
)
