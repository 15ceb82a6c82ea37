package domain

// Source identifies which external photo provider an image came from.
type Source string

const (
	SourceUnsplash Source = "unsplash"
	SourcePexels   Source = "pexels"
)

// Attribution carries the credit information required by the provider
// licenses. It is preserved verbatim into the image catalog.
type Attribution struct {
	PhotographerName string `json:"photographerName" validate:"required"`
	PhotographerURL  string `json:"photographerUrl"`
	License          string `json:"license" validate:"required"`
}

// ImageRecord is one fetched photo's metadata.
//
// ID is unique only within a Source; two providers may hand out the same
// raw id for different photos. Anything that needs a globally unique key
// must use Key(), never ID alone.
type ImageRecord struct {
	ID            string      `json:"id" validate:"required"`
	URL           string      `json:"url" validate:"required,url"`
	ThumbnailURL  string      `json:"thumbnailUrl" validate:"omitempty,url"`
	Category      Category    `json:"category" validate:"required"`
	Tags          []string    `json:"tags"`
	Width         int         `json:"width" validate:"gt=0"`
	Height        int         `json:"height" validate:"gt=0"`
	DominantColor string      `json:"dominantColor"`
	Source        Source      `json:"source" validate:"required,oneof=unsplash pexels"`
	Attribution   Attribution `json:"attribution"`
}

// Key returns the source-qualified identity used for deduplication.
func (r ImageRecord) Key() string {
	return string(r.Source) + ":" + r.ID
}
