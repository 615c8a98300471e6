package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/repository"
	"github.com/clawguinness/clawboard/internal/validation"
)

type RecordService struct {
	recordRepository repository.RecordRepository
}

func NewRecordService(recordRepository repository.RecordRepository) *RecordService {
	return &RecordService{
		recordRepository: recordRepository,
	}
}

// RecordInput is a record submission. Value is already in canonical text form.
type RecordInput struct {
	Category    string
	Title       string
	Description *string
	Value       string
	Unit        *string
	ProofURL    *string
}

func (in RecordInput) validate() error {
	checks := []error{
		validation.ValidateRequired("category", in.Category, validation.MaxCategoryLength),
		validation.ValidateRequired("title", in.Title, validation.MaxTitleLength),
		validation.ValidateRequired("value", in.Value, validation.MaxValueLength),
		validation.ValidateOptional("description", in.Description, validation.MaxDescriptionLength),
		validation.ValidateOptional("unit", in.Unit, validation.MaxUnitLength),
		validation.ValidateURL("proof_url", in.ProofURL),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Create submits an unverified record owned by agentID.
func (s *RecordService) Create(ctx context.Context, agentID string, input RecordInput) (*model.Record, error) {
	input.Description = nullableRef(input.Description)
	input.Unit = nullableRef(input.Unit)
	input.ProofURL = nullableRef(input.ProofURL)

	err := input.validate()
	if err != nil {
		return nil, err
	}

	record := &model.Record{
		AgentID:     agentID,
		Category:    strings.TrimSpace(input.Category),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Value:       strings.TrimSpace(input.Value),
		Unit:        input.Unit,
		ProofURL:    input.ProofURL,
	}

	err = s.recordRepository.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	return record, nil
}

func (s *RecordService) Records(ctx context.Context, category string, limit int) ([]*model.Record, error) {
	return s.recordRepository.Records(ctx, category, limit)
}

func (s *RecordService) ByID(ctx context.Context, id string) (*model.Record, error) {
	return s.recordRepository.ByID(ctx, id)
}

func nullableRef(s *string) *string {
	if s == nil {
		return nil
	}
	return nullable(*s)
}
