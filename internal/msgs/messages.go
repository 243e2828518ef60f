package msgs

const (
	MsgOperationSuccessful = "Operation successful"
	MsgOperationFailed     = "Operation failed"
	MsgAccountCreated      = "ACCOUNT CREATED SUCCESSFULLY"
	MsgLoginSuccessful     = "LOGIN SUCCESSFUL"
	MsgProfileUpdated      = "Profile Updated Successfully"
	MsgAccountDeleted      = "Account deleted successfully"
	MsgLoggedOut           = "Logged out successfully"
	MsgMessageMarkedAsSeen = "Message marked as seen"
	MsgServerIsLive        = "Server is live"
)
