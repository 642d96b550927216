package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/dfryer1193/folio/blog/domain"
)

var utf8BOM = []byte("\ufeff")

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// postFrontMatter is the schema every post's front matter must satisfy.
// The json tags name the fields in validation errors.
type postFrontMatter struct {
	Title       string   `yaml:"title" json:"title"`
	Excerpt     string   `yaml:"excerpt" json:"excerpt"`
	CoverImage  string   `yaml:"coverImage" json:"coverImage"`
	Date        string   `yaml:"date" json:"date"`
	PubDate     string   `yaml:"pubDate" json:"pubDate"`
	Description string   `yaml:"description" json:"description"`
	UpdatedDate string   `yaml:"updatedDate" json:"updatedDate"`
	Tags        []string `yaml:"tags" json:"tags"`
	Category    string   `yaml:"category" json:"category"`
}

func (fm postFrontMatter) Validate() error {
	return validation.ValidateStruct(&fm,
		validation.Field(&fm.Title, validation.Required),
		validation.Field(&fm.Excerpt, validation.Required),
		validation.Field(&fm.Date, validation.When(fm.PubDate == "", validation.Required), validation.By(parsableDate)),
		validation.Field(&fm.PubDate, validation.By(parsableDate)),
		validation.Field(&fm.UpdatedDate, validation.By(parsableDate)),
		validation.Field(&fm.Category, validation.In(domain.CategoryEngineering, domain.CategoryStory)),
	)
}

func parsableDate(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return validation.NewError("validation_date_format", err.Error())
	}
	return nil
}

// parsePost splits the front matter from the markdown body of a post file and
// validates it. Every violation is reported at once in a *domain.ParseError.
// A leading UTF-8 byte order mark is ignored.
func parsePost(fileName string, slug string, source []byte) (*domain.Post, error) {
	source = bytes.TrimPrefix(source, utf8BOM)

	var fm postFrontMatter
	body, err := frontmatter.MustParse(bytes.NewReader(source), &fm, yamlFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, &domain.ParseError{File: fileName, Problems: []string{"missing front matter block"}, Err: err}
		}
		return nil, &domain.ParseError{File: fileName, Err: fmt.Errorf("malformed front matter: %w", err)}
	}

	if err := fm.Validate(); err != nil {
		return nil, &domain.ParseError{File: fileName, Problems: validationProblems(err), Err: err}
	}

	date := fm.Date
	if date == "" {
		date = fm.PubDate
	}
	category := fm.Category
	if category == "" {
		category = domain.CategoryEngineering
	}
	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Post{
		Slug:        slug,
		Title:       fm.Title,
		Excerpt:     fm.Excerpt,
		CoverImage:  fm.CoverImage,
		Date:        date,
		Content:     string(body),
		Description: fm.Description,
		UpdatedDate: fm.UpdatedDate,
		Tags:        tags,
		Category:    category,
	}, nil
}

func validationProblems(err error) []string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	problems := make([]string, 0, len(fields))
	for _, field := range fields {
		problems = append(problems, fmt.Sprintf("%s: %s", field, errs[field].Error()))
	}
	return problems
}
