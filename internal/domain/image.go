package domain

// ImageAsset is an uploaded image supplied by the caller.
// Name must be unique within one matching or ranking call; it is the
// key results are reported under.
type ImageAsset struct {
	Name  string
	Bytes []byte
}

// DescribedImage pairs an image name with its derived textual
// description. Descriptions live only for the duration of one
// matching or ranking invocation.
type DescribedImage struct {
	Name        string
	Description string
}

// RelevanceEntry is one image's score against a goals text.
type RelevanceEntry struct {
	ImageName    string   `json:"image_name"`
	Score        float64  `json:"similarity_score"`
	Description  string   `json:"image_description,omitempty"`
	Keywords     []string `json:"keywords"`
	CommonThemes []string `json:"common_themes"`
}
