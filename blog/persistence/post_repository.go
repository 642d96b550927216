package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dfryer1193/folio/blog/domain"
)

var _ domain.PostRepository = (*FilePostRepository)(nil)

// FilePostRepository implements domain.PostRepository over a flat directory of Markdown files.
// Nothing is cached: every call re-reads the directory.
type FilePostRepository struct {
	fsys fs.FS
}

// NewPostRepository creates a FilePostRepository reading posts from the root of fsys
func NewPostRepository(fsys fs.FS) *FilePostRepository {
	return &FilePostRepository{
		fsys: fsys,
	}
}

// NewDirPostRepository creates a FilePostRepository reading posts from dir on the local disk
func NewDirPostRepository(dir string) *FilePostRepository {
	return NewPostRepository(os.DirFS(dir))
}

// ListFileNames returns the names of all Markdown files in the content directory.
// Callers must not rely on the order.
func (r *FilePostRepository) ListFileNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list post directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), domain.PostFileExt) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// SlugFromFileName strips the Markdown extension from fileName
// Example: "hello-world.md" -> "hello-world"
func (r *FilePostRepository) SlugFromFileName(fileName string) (string, error) {
	slug, found := strings.CutSuffix(fileName, domain.PostFileExt)
	if !found || slug == "" {
		return "", &domain.ParseError{
			File:     fileName,
			Problems: []string{fmt.Sprintf("file name must be <slug>%s", domain.PostFileExt)},
		}
	}
	return slug, nil
}

// ReadPost reads and parses a single post file from the content directory
func (r *FilePostRepository) ReadPost(ctx context.Context, fileName string) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slug, err := r.SlugFromFileName(fileName)
	if err != nil {
		return nil, err
	}

	source, err := fs.ReadFile(r.fsys, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read post file %s: %w", fileName, err)
	}

	return parsePost(fileName, slug, source)
}

// GetPost retrieves a single post by slug
func (r *FilePostRepository) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	if !isSlug(slug) {
		return nil, fmt.Errorf("%w: %q: %w", domain.ErrPostNotFound, slug, fs.ErrNotExist)
	}

	post, err := r.ReadPost(ctx, slug+domain.PostFileExt)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrPostNotFound, slug, err)
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// GetAllSlugs returns the slug of every post file, in listing order
func (r *FilePostRepository) GetAllSlugs(ctx context.Context) ([]string, error) {
	names, err := r.ListFileNames(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(names))
	for _, name := range names {
		slug, err := r.SlugFromFileName(name)
		if err != nil {
			return nil, err
		}
		slugs = append(slugs, slug)
	}

	return slugs, nil
}

// ListPosts reads every post, orders them by date descending and returns the
// posts in [offset, offset+limit). A single unreadable post fails the whole call.
func (r *FilePostRepository) ListPosts(ctx context.Context, limit, offset int) (*domain.PaginatedPosts, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", domain.ErrInvalidPagination, limit)
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative, got %d", domain.ErrInvalidPagination, offset)
	}

	names, err := r.ListFileNames(ctx)
	if err != nil {
		return nil, err
	}

	dated := make([]datedPost, 0, len(names))
	for _, name := range names {
		post, err := r.ReadPost(ctx, name)
		if err != nil {
			return nil, err
		}

		publishedAt, err := domain.ParseDate(post.Date)
		if err != nil {
			return nil, &domain.ParseError{File: name, Problems: []string{"date: " + err.Error()}, Err: err}
		}
		dated = append(dated, datedPost{post: post, publishedAt: publishedAt})
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].publishedAt.After(dated[j].publishedAt)
	})

	total := len(dated)
	start := min(offset, total)
	end := total
	if limit < total-start {
		end = start + limit
	}

	posts := make([]*domain.Post, 0, end-start)
	for _, d := range dated[start:end] {
		posts = append(posts, d.post)
	}

	log.Debug().Int("total", total).Int("limit", limit).Int("offset", offset).Msg("Listed posts")

	return &domain.PaginatedPosts{
		Posts:      posts,
		TotalCount: total,
	}, nil
}

// datedPost pairs a post with its parsed publish date for sorting
type datedPost struct {
	post        *domain.Post
	publishedAt time.Time
}

// isSlug reports whether slug names a single file in the content directory
func isSlug(slug string) bool {
	return slug != "" && fs.ValidPath(slug) && !strings.Contains(slug, "/") && slug != "."
}
