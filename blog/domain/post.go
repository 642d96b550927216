package domain

import (
	"context"
)

// PostFileExt is the extension every post file carries on disk.
const PostFileExt = ".md"

// Post categories. Posts without a category are engineering posts.
const (
	CategoryEngineering = "engineering"
	CategoryStory       = "story"
)

// Post represents a blog post
// A post is read from a single Markdown file; the filename without extension is its Slug.
// Content holds raw markdown when read from disk, and HTML once rendered.
type Post struct {
	Slug       string
	Title      string
	Excerpt    string
	CoverImage string
	Date       string
	Content    string

	Description string
	UpdatedDate string
	Tags        []string
	Category    string
}

// PaginatedPosts is one page of the date-sorted post collection.
// TotalCount is the size of the whole collection, not of Posts.
type PaginatedPosts struct {
	Posts      []*Post
	TotalCount int
}

type PostRepository interface {
	ListFileNames(ctx context.Context) ([]string, error)
	SlugFromFileName(fileName string) (string, error)
	ReadPost(ctx context.Context, fileName string) (*Post, error)
	GetPost(ctx context.Context, slug string) (*Post, error)
	GetAllSlugs(ctx context.Context) ([]string, error)
	ListPosts(ctx context.Context, limit int, offset int) (*PaginatedPosts, error)
}
