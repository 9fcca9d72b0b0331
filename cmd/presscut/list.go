package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/presscut"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := presscut.ArticleFilter{Limit: c.Limit}
	if c.Publisher != "" {
		p, err := presscut.ParsePublisher(c.Publisher)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", presscut.ErrorMessage(err))
			return err
		}
		filter.Publisher = &p
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", presscut.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'presscut parse --save' to archive some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-15s %s\n", a.ID, a.PubDate.Format(time.DateOnly), a.Publisher, a.Title)
	}

	return nil
}
