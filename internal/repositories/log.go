package repositories

import (
	"strings"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
)

// logQuery logs a statement on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("executed query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
