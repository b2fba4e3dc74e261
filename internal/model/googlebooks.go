package model

// Transient Google Books API response shapes. Relayed to callers and
// optionally embedded on a Book; never stored on their own.

type BookSearchResult struct {
	TotalItems int    `json:"totalItems" bson:"totalItems"`
	Items      []Item `json:"items" bson:"items"`
}

type Item struct {
	ID         string     `json:"id" bson:"id"`
	SelfLink   string     `json:"selfLink,omitempty" bson:"selfLink,omitempty"`
	VolumeInfo VolumeInfo `json:"volumeInfo" bson:"volumeInfo"`
}

type VolumeInfo struct {
	Title         string     `json:"title" bson:"title"`
	Subtitle      string     `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Authors       []string   `json:"authors,omitempty" bson:"authors,omitempty"`
	Publisher     string     `json:"publisher,omitempty" bson:"publisher,omitempty"`
	PublishedDate string     `json:"publishedDate,omitempty" bson:"publishedDate,omitempty"`
	Description   string     `json:"description,omitempty" bson:"description,omitempty"`
	ImageLinks    ImageLinks `json:"imageLinks,omitempty" bson:"imageLinks,omitempty"`
	PreviewLink   string     `json:"previewLink,omitempty" bson:"previewLink,omitempty"`
	PageCount     int        `json:"pageCount,omitempty" bson:"pageCount,omitempty"`
}

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty" bson:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
}
