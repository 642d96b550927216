package application

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dfryer1193/folio/blog/domain"
	"github.com/rs/zerolog/log"
)

const defaultPageSize = 10

// Page is one page of the post listing, numbered from 1
type Page struct {
	domain.PaginatedPosts
	Number     int
	Size       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

type PostService struct {
	repo            domain.PostRepository
	markdown        MarkdownRenderer
	defaultPageSize int
}

// NewPostService creates a PostService. A pageSize <= 0 falls back to 10.
func NewPostService(repo domain.PostRepository, markdown MarkdownRenderer, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &PostService{
		repo:            repo,
		markdown:        markdown,
		defaultPageSize: pageSize,
	}
}

// GetPost returns a post with its raw markdown body
func (s *PostService) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.repo.GetPost(ctx, slug)
	if errors.Is(err, domain.ErrPostNotFound) {
		log.Debug().Err(err).Str("slug", slug).Msg("Post not found")
		return nil, err
	}
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to get post")
		return nil, err
	}
	return post, nil
}

// GetRenderedPost returns a post whose Content has been rendered to HTML
func (s *PostService) GetRenderedPost(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.GetPost(ctx, slug)
	if err != nil {
		return nil, err
	}

	html, err := s.markdown.Render([]byte(post.Content))
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to render markdown")
		return nil, fmt.Errorf("failed to render post %s: %w", slug, err)
	}

	post.Content = string(html)
	return post, nil
}

// GetAllSlugs returns the slug of every post
func (s *PostService) GetAllSlugs(ctx context.Context) ([]string, error) {
	slugs, err := s.repo.GetAllSlugs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list post slugs")
		return nil, err
	}
	return slugs, nil
}

// ListPosts returns posts [offset, offset+limit) of the date-sorted collection
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) (*domain.PaginatedPosts, error) {
	posts, err := s.repo.ListPosts(ctx, limit, offset)
	if errors.Is(err, domain.ErrInvalidPagination) {
		log.Debug().Err(err).Int("limit", limit).Int("offset", offset).Msg("Rejected pagination")
		return nil, err
	}
	if err != nil {
		log.Error().Err(err).Int("limit", limit).Int("offset", offset).Msg("Failed to list posts")
		return nil, err
	}
	return posts, nil
}

// ListPage returns page number (1-based) of the listing. A size <= 0 uses the default page size.
func (s *PostService) ListPage(ctx context.Context, number, size int) (*Page, error) {
	if number < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1, got %d", domain.ErrInvalidPagination, number)
	}
	if size <= 0 {
		size = s.defaultPageSize
	}
	if number > math.MaxInt/size {
		return nil, fmt.Errorf("%w: page %d is out of range for size %d", domain.ErrInvalidPagination, number, size)
	}

	posts, err := s.ListPosts(ctx, size, (number-1)*size)
	if err != nil {
		return nil, err
	}

	totalPages := posts.TotalCount / size
	if posts.TotalCount%size != 0 {
		totalPages++
	}
	return &Page{
		PaginatedPosts: *posts,
		Number:         number,
		Size:           size,
		TotalPages:     totalPages,
		HasNext:        number < totalPages,
		HasPrev:        number > 1,
	}, nil
}
