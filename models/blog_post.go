package models

// BlogPost is a teaser card in the blog section
type BlogPost struct {
	ID      string `json:"id"`
	Tag     string `json:"tag"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

// BlogResponse is the body returned by GET /api/blog
type BlogResponse struct {
	Posts []BlogPost `json:"posts"`
}
