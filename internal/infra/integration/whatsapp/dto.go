package whatsapp


type SendMessageInput struct {
	PhoneNumber  string   // Ex: "919876543210"
	TemplateName string   // Ex: "followup_reminder"
	Parameters   []string // Ex: []string{"Jane", "2024-01-05", "14:30"}
}


type SendMessageResponse struct {
	MessageID string `json:"messages"`
	Contacts  []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Error *ErrorResponse `json:"error"`
}


type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}
