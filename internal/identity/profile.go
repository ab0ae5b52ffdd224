package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tcgurt/config"
	"tcgurt/internal/model"
	apperrors "tcgurt/pkg/app_errors"

	"github.com/go-playground/validator/v10"
)

type ProfileProvider interface {
	// GetProfile 每次都向身分提供者重新讀取，不做快取
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
}

type HTTPProfileProvider struct {
	baseURL   string
	secretKey string
	http      *http.Client
	validate  *validator.Validate
}

func NewHTTPProfileProvider(cfg *config.IdentityConfig) ProfileProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProfileProvider{
		baseURL:   strings.TrimRight(cfg.APIURL, "/"),
		secretKey: cfg.SecretKey,
		http:      &http.Client{Timeout: timeout},
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

type userResponse struct {
	ID             string          `json:"id"`
	PublicMetadata json.RawMessage `json:"public_metadata"`
	UnsafeMetadata json.RawMessage `json:"unsafe_metadata"`
}

type publicMetadata struct {
	IsOrganizer bool `json:"isOrganizer"`
}

type unsafeMetadata struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	FbLink   string `json:"fbLink"`
}

func (p *HTTPProfileProvider) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	endpoint := p.baseURL + "/users/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIdentityUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIdentityUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrIdentityUpstream, apperrors.ErrUserNotFound)
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrIdentityUpstream, resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: decode user: %v", apperrors.ErrIdentityUpstream, err)
	}

	return p.toProfile(userID, user)
}

// toProfile 把未定型的 metadata 轉成 UserProfile，型別或格式不符直接拒絕
func (p *HTTPProfileProvider) toProfile(userID string, user userResponse) (*model.UserProfile, error) {
	var public publicMetadata
	if err := decodeMetadata(user.PublicMetadata, &public); err != nil {
		return nil, fmt.Errorf("%w: public metadata: %v", apperrors.ErrInvalidProfile, err)
	}
	var private unsafeMetadata
	if err := decodeMetadata(user.UnsafeMetadata, &private); err != nil {
		return nil, fmt.Errorf("%w: unsafe metadata: %v", apperrors.ErrInvalidProfile, err)
	}

	if user.ID != "" {
		userID = user.ID
	}
	profile := &model.UserProfile{
		UserID:      userID,
		IsOrganizer: public.IsOrganizer,
		Name:        strings.TrimSpace(private.Name),
		Location:    strings.TrimSpace(private.Location),
		FbLink:      strings.TrimSpace(private.FbLink),
	}
	if err := p.validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidProfile, err)
	}
	return profile, nil
}

func decodeMetadata(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}
