package service

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/alumni-mentorship-api/internal/dto"
	"github.com/noah-isme/alumni-mentorship-api/internal/models"
	appErrors "github.com/noah-isme/alumni-mentorship-api/pkg/errors"
	"github.com/noah-isme/alumni-mentorship-api/pkg/linktoken"
)

type linkSigner interface {
	Generate(subject, purpose string) (string, time.Time, error)
	Parse(token string) (*linktoken.Claims, error)
}

// LinkService issues signed links so frontend pages never carry raw emails.
type LinkService struct {
	signer    linkSigner
	users     authUserRepository
	baseURL   string
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLinkService constructs the service. baseURL prefixes generated links.
func NewLinkService(signer linkSigner, users authUserRepository, baseURL string, validate *validator.Validate, logger *zap.Logger) *LinkService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinkService{signer: signer, users: users, baseURL: strings.TrimRight(baseURL, "/"), validator: validate, logger: logger}
}

// Create signs a link for the caller.
func (s *LinkService) Create(ctx context.Context, actor *models.JWTClaims, req dto.CreateLinkRequest) (*dto.LinkResponse, error) {
	if err := requireClaims(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid link payload")
	}
	token, expiresAt, err := s.signer.Generate(actor.UserID, req.Purpose)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign link")
	}

	path := req.Path
	if path == "" {
		path = "/" + req.Purpose
	}
	link := s.baseURL + path + "?token=" + url.QueryEscape(token)
	return &dto.LinkResponse{Token: token, URL: link, ExpiresAt: expiresAt.UTC()}, nil
}

// Resolve validates a token and returns the identity it carries.
func (s *LinkService) Resolve(ctx context.Context, token string) (*dto.ResolvedLink, error) {
	if strings.TrimSpace(token) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "token is required")
	}
	claims, err := s.signer.Parse(token)
	if err != nil {
		message := "invalid link"
		if errors.Is(err, linktoken.ErrExpired) {
			message = "link expired"
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, message)
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "link owner no longer exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve link owner")
	}
	if !user.Active {
		return nil, appErrors.Clone(appErrors.ErrInactiveAccount, "account is inactive")
	}
	return &dto.ResolvedLink{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		Purpose:   claims.Purpose,
		ExpiresAt: claims.ExpiresAt.UTC(),
	}, nil
}
