package enums

const (
	DATABASE_DRIVER_POSTGRES = "postgres"
	DATABASE_DRIVER_MONGO    = "mongo"

	MEDIA_DRIVER_MINIO = "minio"
	MEDIA_DRIVER_S3    = "s3"
)
