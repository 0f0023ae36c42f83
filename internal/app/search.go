package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gutenmail/gutenctl/internal/filter"
	"github.com/gutenmail/gutenctl/internal/render"
)

func newSearchCmd() *cobra.Command {
	var (
		author   string
		title    string
		language string
		id       int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog by author, title, or language",
		Long: `One-shot catalog search over a freshly fetched catalog.

The positional query matches author or title. Flag conditions narrow the
result further, each applied in turn like the menu's added conditions.

Examples:
  gutenctl search "tom sawyer"
  gutenctl search --author twain --language en
  gutenctl search --id 62187`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			if query == "" && author == "" && title == "" && language == "" && id == 0 {
				return fmt.Errorf("provide a query or one of --author/--title/--language/--id")
			}

			cat, _, _, err := collaborators()
			if err != nil {
				return err
			}
			records, err := cat.FetchAll()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			session := NewSession(records)
			conds := []struct {
				tmpl  filter.Template
				input string
			}{
				{filter.AnyField, query},
				{filter.ByID, idInput(id)},
				{filter.ByAuthor, author},
				{filter.ByTitle, title},
				{filter.ByLanguage, language},
			}
			for _, c := range conds {
				if c.input == "" {
					continue
				}
				action, err := c.tmpl.Build(c.input)
				if err != nil {
					return err
				}
				session.ApplyAction(action, false)
			}

			header("%s", session.Registry.String())
			if len(session.Filtered) == 0 {
				fmt.Println("No books found.")
				return nil
			}
			render.Table(os.Stdout, session.Filtered)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Add an author condition")
	cmd.Flags().StringVar(&title, "title", "", "Add a title condition")
	cmd.Flags().StringVar(&language, "language", "", "Add a language condition")
	cmd.Flags().IntVar(&id, "id", 0, "Match a book id exactly")

	return cmd
}

func idInput(id int) string {
	if id == 0 {
		return ""
	}
	return strconv.Itoa(id)
}
