package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// Attachment MIME prefixes accepted for doubts and replies.
const (
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeMSWord      = "application/msword"
	MimeZip         = "application/zip"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedAttachmentExtensions = []string{"png", "jpg", "jpeg", "pdf", "doc", "docx"}
	// docx is a zip container and legacy doc is an OLE file, which sniffing
	// reports as octet-stream.
	AllowedAttachmentMimeTypes = []string{MimeImage, MimePDF, MimeMSWord, MimeZip, MimeOctetStream}
)
