package model

// Yoco webhook wire shapes. The webhook endpoint receives the raw body so a
// signature could be verified later; none is verified today.

type YocoMetadata struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

type YocoPayload struct {
	ID       string       `json:"id"`
	Status   string       `json:"status"`
	Metadata YocoMetadata `json:"metadata"`
}

type YocoWebhookEvent struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Payload YocoPayload `json:"payload"`
}

const YocoEventCheckoutSucceeded = "checkout.succeeded"
