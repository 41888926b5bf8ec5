package models

import "io"

// ImageUpload is a binary image received from the admin client.
type ImageUpload struct {
	// Filename is the client-provided file name, informational only.
	Filename string
	// ContentType is the sniffed MIME type of Data.
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadResult is the hosted location of an uploaded image.
type UploadResult struct {
	URL string `json:"url"`
}
