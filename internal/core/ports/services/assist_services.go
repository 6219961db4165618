package services

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/dto"
)

// AssistSvcFacade is the AI-assisted helper for letters, chat, and KTP reading.
// Implementations must degrade gracefully: when the generative service fails,
// text results carry an apology message rather than an error.
type AssistSvcFacade interface {
	// DraftLetter drafts an administrative letter for a resident.
	DraftLetter(ctx context.Context, req dto.DraftLetterRequest) (string, error)

	// Chat answers one message in a community-assistant conversation.
	Chat(ctx context.Context, req dto.ChatRequest) (string, error)

	// ExtractIDCard reads NIK/name/address fields from a KTP photo.
	ExtractIDCard(ctx context.Context, req dto.ExtractIDCardRequest) (*dto.IDCardData, error)
}
