package enums

const (
	SOCKET_EVENT_GET_ONLINE_USERS = "getOnlineUsers"
	SOCKET_EVENT_NEW_MESSAGE      = "newMessage"
)
