package api

type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	CoverImage  string   `json:"coverImage,omitempty"`
	Date        string   `json:"date"`
	DisplayDate string   `json:"displayDate"`
	Description string   `json:"description,omitempty"`
	UpdatedDate string   `json:"updatedDate,omitempty"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	URL         string   `json:"url"`
	Content     string   `json:"content,omitempty"`
}

type PostPage struct {
	Posts      []Post `json:"posts"`
	TotalCount int    `json:"totalCount"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	TotalPages int    `json:"totalPages"`
	HasNext    bool   `json:"hasNext"`
	HasPrev    bool   `json:"hasPrev"`
}

type Slugs struct {
	Slugs []string `json:"slugs"`
}

type Error struct {
	Error string `json:"error"`
}
