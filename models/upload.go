package models

// UploadResult is returned after a successful image upload. PublicID is the
// host-issued identifier, stored alongside the URL so deletion never has to
// parse it back out of the URL.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type DeleteImageRequest struct {
	PublicID string `json:"publicId" validate:"required"`
}
