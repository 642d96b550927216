package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dfryer1193/folio/blog/application"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print a page of posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.postService.ListPage(cmd.Context(), page, size)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range result.Posts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", application.FormatDate(p.Date), p.Slug, p.Title)
			}
			fmt.Fprintf(w, "\npage %d of %d (%d posts)\n", result.Number, result.TotalPages, result.TotalCount)
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 0, "posts per page (default from content.page_size)")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			get := a.postService.GetPost
			if html {
				get = a.postService.GetRenderedPost
			}

			post, err := get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n%s\n", post.Title, application.FormatDate(post.Date), post.Content)
			return nil
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "render the body to HTML")

	return cmd
}

func newSlugsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slugs",
		Short: "Print every post slug",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slugs, err := a.postService.GetAllSlugs(cmd.Context())
			if err != nil {
				return err
			}
			for _, slug := range slugs {
				fmt.Fprintln(cmd.OutOrStdout(), slug)
			}
			return nil
		},
	}
}
