package enums

const (
	FILE_BUCKET_USER_PROFILE  = "profile-pictures"
	FILE_BUCKET_MESSAGE_IMAGE = "message-images"
)

var FILE_BUCKETS = []string{FILE_BUCKET_USER_PROFILE, FILE_BUCKET_MESSAGE_IMAGE}
