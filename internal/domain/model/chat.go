package model

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ProductOverrides struct {
	PrinterName string `json:"printerName,omitempty"`
	PaperName   string `json:"paperName,omitempty"`
	PrinterURL  string `json:"printerUrl,omitempty"`
	PaperURL    string `json:"paperUrl,omitempty"`
}

type ChatOrder struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Status   string     `json:"status"`
	Tracking []Tracking `json:"tracking"`
}

type ChatReply struct {
	Reply string     `json:"reply"`
	Order *ChatOrder `json:"order,omitempty"`
}
