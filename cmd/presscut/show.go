package main

import (
	"fmt"

	"github.com/fwojciec/presscut"
	"github.com/fwojciec/presscut/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if presscut.ErrorCode(err) == presscut.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'presscut list' to see archived articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", presscut.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprint(deps.Stdout, fs.FormatReport(article, c.Full))
	return nil
}
