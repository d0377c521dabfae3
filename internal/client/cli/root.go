package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.identity != nil {
		s = a.identity.Username + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to Snapfeed CLI (type 'help' for commands)")

	if err := a.restoreSession(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	a.lifecycle.Teardown()
}
