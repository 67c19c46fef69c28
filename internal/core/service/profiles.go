package service

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
)

type ProfilesAPI struct {
	capability
}

func (p *ProfilesAPI) CreateProfile(ctx context.Context, req domain.ProfileRequest) (*domain.ProfileResponse, error) {
	return send[domain.ProfileResponse](ctx, &p.capability, http.MethodPost, p.url(ProfilesURL, ""), req, "profile")
}

func (p *ProfilesAPI) GetProfile(ctx context.Context, profileID string) (*domain.PaymentProfile, error) {
	return send[domain.PaymentProfile](ctx, &p.capability, http.MethodGet, p.url(ProfileURL, profileID), nil, "profile")
}

func (p *ProfilesAPI) UpdateProfile(ctx context.Context, profileID string, req domain.ProfileRequest) (*domain.ProfileResponse, error) {
	return send[domain.ProfileResponse](ctx, &p.capability, http.MethodPut, p.url(ProfileURL, profileID), req, "profile")
}

func (p *ProfilesAPI) DeleteProfile(ctx context.Context, profileID string) (*domain.ProfileResponse, error) {
	return send[domain.ProfileResponse](ctx, &p.capability, http.MethodDelete, p.url(ProfileURL, profileID), nil, "profile")
}
