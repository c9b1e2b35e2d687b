package store

import "strings"

// whereOpts renders the filter part of opts as a WHERE clause over the
// sequence and timestamp columns.
func whereOpts(opts QueryOpts) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opts.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, toMillis(opts.From))
	}
	if !opts.To.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, toMillis(opts.To))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// limitOpts renders the LIMIT clause of opts.
func limitOpts(opts QueryOpts, args []any) (string, []any) {
	if opts.Limit <= 0 {
		return "", args
	}
	return " LIMIT ?", append(args, opts.Limit)
}
