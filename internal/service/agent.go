package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/clawguinness/clawboard/internal/ids"
	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/storage"
	"github.com/clawguinness/clawboard/internal/validation"
)

var (
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidAPIKey   = errors.New("invalid api key")
	ErrStorageDisabled = errors.New("avatar storage is not configured")
)

type AgentService struct {
	agentRepository repository.AgentRepository
	storage         storage.Storage
}

// NewAgentService wires the agent service. fileStorage may be nil, in which
// case avatar uploads fail with ErrStorageDisabled.
func NewAgentService(agentRepository repository.AgentRepository, fileStorage storage.Storage) *AgentService {
	return &AgentService{
		agentRepository: agentRepository,
		storage:         fileStorage,
	}
}

// Register creates an agent and issues its API key. The plaintext key is only
// ever present on the returned agent.
func (s *AgentService) Register(ctx context.Context, username string) (*model.Agent, error) {
	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	apiKey := GenerateAPIKey()
	agent := &model.Agent{
		Username:   username,
		APIKeyHash: HashAPIKey(apiKey),
	}

	err = s.agentRepository.Create(ctx, agent)
	if errors.Is(err, repository.ErrDuplicateAgent) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	agent.APIKey = apiKey
	return agent, nil
}

// Authenticate resolves the agent owning apiKey. Unknown and malformed keys
// both yield ErrInvalidAPIKey.
func (s *AgentService) Authenticate(ctx context.Context, apiKey string) (*model.Agent, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	agent, err := s.agentRepository.ByAPIKeyHash(ctx, HashAPIKey(apiKey))
	if errors.Is(err, repository.ErrAgentNotFound) {
		return nil, ErrInvalidAPIKey
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	return agent, nil
}

func (s *AgentService) ByID(ctx context.Context, id string) (*model.Agent, error) {
	return s.agentRepository.ByID(ctx, id)
}

func (s *AgentService) ByUsername(ctx context.Context, username string) (*model.Agent, error) {
	return s.agentRepository.ByUsername(ctx, username)
}

// ProfileInput carries profile edits. A nil field is left unchanged, an empty
// string clears it.
type ProfileInput struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

func (s *AgentService) UpdateProfile(ctx context.Context, agent *model.Agent, input ProfileInput) (*model.Agent, error) {
	updated := *agent

	if input.DisplayName != nil {
		err := validation.ValidateOptional("display_name", input.DisplayName, validation.MaxDisplayNameLength)
		if err != nil {
			return nil, err
		}
		updated.DisplayName = nullable(*input.DisplayName)
	}

	if input.Bio != nil {
		err := validation.ValidateOptional("bio", input.Bio, validation.MaxBioLength)
		if err != nil {
			return nil, err
		}
		updated.Bio = nullable(*input.Bio)
	}

	if input.AvatarURL != nil {
		updated.AvatarURL = nullable(*input.AvatarURL)
		err := validation.ValidateURL("avatar_url", updated.AvatarURL)
		if err != nil {
			return nil, err
		}
	}

	err := s.agentRepository.UpdateProfile(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &updated, nil
}

// UploadAvatar stores an image for the agent and points avatar_url at it.
// The previous avatar object is removed when it lives in the same bucket.
func (s *AgentService) UploadAvatar(ctx context.Context, agent *model.Agent, header *multipart.FileHeader) (*model.Agent, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	contentType, err := validation.ValidateFile(header, validation.ImageConstraints)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := path.Join("public", "avatars", ids.New()+ext)

	err = s.storage.Save(ctx, key, file, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}

	previous := agent.AvatarURL
	url := s.storage.URL(key)

	updated := *agent
	updated.AvatarURL = &url

	err = s.agentRepository.UpdateProfile(ctx, &updated)
	if err != nil {
		// If DB update fails, try to cleanup the uploaded file
		delErr := s.storage.Delete(ctx, key)
		if delErr != nil {
			slog.Error("failed to delete avatar during cleanup", "error", delErr, "key", key)
		}
		return nil, fmt.Errorf("failed to update avatar url: %w", err)
	}

	if previous != nil {
		if oldKey, ok := s.storage.Key(*previous); ok {
			delErr := s.storage.Delete(ctx, oldKey)
			if delErr != nil {
				slog.Warn("failed to delete previous avatar", "error", delErr, "key", oldKey, "agent_id", agent.ID)
			}
		}
	}

	return &updated, nil
}

// nullable maps blank strings to NULL
func nullable(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
