package models

type SendMessageRequestBody struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}
