package models

// PromptRequest carries a free-form prompt for the text-generation client.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateQuizRequest asks for a new quiz on Topic.
type GenerateQuizRequest struct {
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
}

// EvaluateQuizRequest carries a quiz and the user's answers.
// When Save is set the attempt is stored in the library.
type EvaluateQuizRequest struct {
	Quiz       *Quiz      `json:"quiz"`
	Answers    []int      `json:"answers"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Save       bool       `json:"save,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
}

// StudyPlanRequest asks for a study plan on Topic due by Deadline.
type StudyPlanRequest struct {
	Topic    string   `json:"topic"`
	Deadline string   `json:"deadline"`
	Save     bool     `json:"save,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// SummaryRequest carries the text to be summarized.
type SummaryRequest struct {
	Text string `json:"text"`
}

// OCRRequest carries an image reference (URL or data URL). FileName names
// the saved document.
type OCRRequest struct {
	ImageData string   `json:"imageData"`
	FileName  string   `json:"fileName,omitempty"`
	Save      bool     `json:"save,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// TextResponse is the common response of text-producing operations.
// Document is set when the result was also saved.
type TextResponse struct {
	Text     string    `json:"text"`
	Document *Document `json:"document,omitempty"`
}

// SaveDocumentRequest is the body of a document creation request.
type SaveDocumentRequest struct {
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Type    DocumentType `json:"type"`
	Tags    []string     `json:"tags,omitempty"`
}

// Credentials is the body of the sign-up and sign-in requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
