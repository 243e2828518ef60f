package models

// Response is the envelope every REST route answers with. Endpoint specific
// payloads embed it so their fields sit next to success and message.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

type AuthResponse struct {
	Response
	Token    string `json:"token"`
	UserData *User  `json:"userData"`
}

type UserResponse struct {
	Response
	User *User `json:"user"`
}

type ProfileResponse struct {
	Response
	User        *User `json:"user"`
	UpdatedUser *User `json:"updatedUser"`
}

type PeersResponse struct {
	Response
	Users          []*User          `json:"users"`
	UnseenMessages map[string]int64 `json:"unseenMessages"`
}

type MessagesResponse struct {
	Response
	Messages []*Message `json:"messages"`
}

type NewMessageResponse struct {
	Response
	NewMessage *Message `json:"newMessage"`
}
