package models

// PhotoUploadRequest asks for a URL to upload one listing photo to.
type PhotoUploadRequest struct {
	FileName    string `json:"fileName" binding:"required" example:"front.jpg"`
	ContentType string `json:"contentType" binding:"required" example:"image/jpeg"`
}

// PhotoUploadResponse holds a presigned PUT URL and the public URL the photo
// will have once uploaded.
type PhotoUploadResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://bucket.s3.amazonaws.com/listings/...?X-Amz-Signature=..."`
	Key       string `json:"key" example:"listings/507f1f77bcf86cd799439011/3f1c9b0e-6f55-4d0b-9a62-7f3b2c1d0e9a.jpg"`
	PhotoURL  string `json:"photoUrl" example:"https://cdn.example.com/listings/507f1f77bcf86cd799439011/3f1c9b0e-6f55-4d0b-9a62-7f3b2c1d0e9a.jpg"`
}
