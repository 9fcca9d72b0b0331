package main

import (
	"fmt"

	"github.com/fwojciec/presscut"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return presscut.Errorf(presscut.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		if presscut.ErrorCode(err) == presscut.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'presscut list' to see archived articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", presscut.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %s\n", c.ID)
	return nil
}
