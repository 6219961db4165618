package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
	"github.com/wargakita/wargakita_backend/internal/middleware"
	"github.com/wargakita/wargakita_backend/internal/platform/genai"
)

// apologyText is returned verbatim whenever the generative backend fails.
// Callers get a usable response either way.
const apologyText = "Maaf, asisten sedang tidak dapat membantu saat ini. Silakan coba beberapa saat lagi."

const assistantInstruction = "Anda adalah asisten pengurus RT/RW. Jawab pertanyaan warga tentang " +
	"administrasi lingkungan (iuran, surat pengantar, pengumuman, bansos) dengan singkat, ramah, " +
	"dan dalam Bahasa Indonesia."

// assistService is the AI helper for letter drafting, resident Q&A chat, and
// KTP field extraction.
type assistService struct {
	gen          *genai.Client
	residentRepo portsrepo.ResidentReader
}

// NewAssistService creates a new AssistService.
func NewAssistService(gen *genai.Client, residentRepo portsrepo.ResidentReader) portssvc.AssistSvcFacade {
	return &assistService{
		gen:          gen,
		residentRepo: residentRepo,
	}
}

var _ portssvc.AssistSvcFacade = (*assistService)(nil)

// DraftLetter drafts an administrative letter for a resident. Generation
// failures degrade to an apology string, never an error.
func (s *assistService) DraftLetter(ctx context.Context, req dto.DraftLetterRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resident, err := s.residentRepo.FindResidentByID(ctx, req.ResidentID)
	if err != nil {
		return "", fmt.Errorf("failed to find resident %s: %w", req.ResidentID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Buatkan draf %s resmi dari pengurus RT/RW untuk warga berikut.\n", req.LetterType)
	fmt.Fprintf(&b, "Nama: %s\nNIK: %s\nAlamat: %s", resident.Name, resident.NIK, resident.Address)
	if resident.HouseNumber != "" {
		fmt.Fprintf(&b, " No. %s", resident.HouseNumber)
	}
	if req.Extra != "" {
		fmt.Fprintf(&b, "\nKeterangan tambahan: %s", req.Extra)
	}
	b.WriteString("\nGunakan format surat resmi Bahasa Indonesia. Kosongkan nomor surat dan tanda tangan.")

	text, err := s.gen.GenerateText(ctx, "", b.String())
	if err != nil {
		logger.Warn("Letter draft generation failed", slog.String("error", err.Error()))
		return apologyText, nil
	}
	return text, nil
}

// Chat answers one message in a community-assistant conversation.
func (s *assistService) Chat(ctx context.Context, req dto.ChatRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	contents := make([]genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		contents = append(contents, genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{{Text: turn.Text}},
		})
	}
	contents = append(contents, genai.Content{
		Role:  "user",
		Parts: []genai.Part{{Text: req.Message}},
	})

	text, err := s.gen.GenerateChat(ctx, assistantInstruction, contents)
	if err != nil {
		logger.Warn("Assistant chat generation failed", slog.String("error", err.Error()))
		return apologyText, nil
	}
	return text, nil
}

// ExtractIDCard reads NIK/name/address fields from a KTP photo. Unlike the
// text helpers this returns an error on failure: a silent apology is useless
// to a form-filling client.
func (s *assistService) ExtractIDCard(ctx context.Context, req dto.ExtractIDCardRequest) (*dto.IDCardData, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	prompt := "Baca foto KTP Indonesia ini dan kembalikan JSON dengan kunci " +
		`"nik", "name", "address", "kkHint". Isi string kosong untuk kolom yang tidak terbaca. ` +
		"Jawab hanya dengan JSON, tanpa teks lain."

	text, err := s.gen.GenerateVision(ctx, prompt, req.MimeType, req.ImageBase64)
	if err != nil {
		logger.Warn("KTP extraction failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to read ID card: %w", err)
	}

	var data dto.IDCardData
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &data); err != nil {
		logger.Warn("KTP extraction returned unparseable JSON", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to parse ID card fields: %w", err)
	}
	return &data, nil
}

// stripCodeFence drops a markdown ```json fence the model sometimes wraps
// around its answer.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
