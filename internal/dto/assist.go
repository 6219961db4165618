package dto

// DraftLetterRequest asks the assistant to draft an administrative letter.
type DraftLetterRequest struct {
	ResidentID string `json:"residentID" binding:"required,uuid"`
	// LetterType e.g. "surat pengantar", "surat keterangan domisili".
	LetterType string `json:"letterType" binding:"required"`
	Extra      string `json:"extra"`
}

// ChatTurn is one prior exchange in an assistant conversation.
type ChatTurn struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

// ChatRequest is one message to the community assistant.
type ChatRequest struct {
	Message string     `json:"message" binding:"required"`
	History []ChatTurn `json:"history" binding:"omitempty,dive"`
}

// AssistResponse carries assistant-generated text. When the generative service
// fails the text is an apology, never an error.
type AssistResponse struct {
	Text string `json:"text"`
}

// ExtractIDCardRequest carries a KTP photo for field extraction.
type ExtractIDCardRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	MimeType    string `json:"mimeType" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// IDCardData is the structured result of KTP extraction. Fields the model
// could not read are empty strings.
type IDCardData struct {
	NIK     string `json:"nik"`
	Name    string `json:"name"`
	Address string `json:"address"`
	KKHint  string `json:"kkHint,omitempty"`
}
