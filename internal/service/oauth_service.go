package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"college-compass-be/internal/config"
	"college-compass-be/internal/dto"
	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/repository/specification"
	"college-compass-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error)
}

type oauthService struct {
	uowFactory unitofwork.RepositoryFactory
	googleConf *oauth2.Config
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, cfg config.OAuthConfig) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory: uowFactory,
		googleConf: conf,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", apperror.Validation("Unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

type googleUserInfo struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.LoginResponse, error) {
	if provider != "google" {
		return nil, apperror.Validation("Unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeAuthRequired, "OAuth exchange failed", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: info.Email})
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Email:     info.Email,
			FullName:  info.Name,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	existingProvider, err := uow.UserRepository().FindUserProvider(ctx,
		specification.ByProvider{Name: provider, UserID: info.Id},
	)
	if err != nil {
		return nil, err
	}
	if existingProvider == nil {
		link := &entity.UserProvider{
			Id:             uuid.New(),
			UserId:         user.Id,
			ProviderName:   provider,
			ProviderUserId: info.Id,
			CreatedAt:      time.Now(),
		}
		if err := uow.UserRepository().SaveUserProvider(ctx, link); err != nil {
			return nil, err
		}
	}

	sessionToken, err := IssueToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:    sessionToken,
		Id:       user.Id,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

func (s *oauthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.googleConf.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeAuthRequired, "Failed to fetch user info", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		return nil, apperror.New(apperror.CodeAuthRequired, "Failed to read user info")
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, apperror.New(apperror.CodeAuthRequired, "Malformed user info")
	}
	return &info, nil
}
