package git

import (
	"context"
	"strings"
)

// ConfigEntries returns git config entries whose names match pattern, keyed
// by the lowercased name git reports. The last value wins for multi-valued
// keys.
func (c *Client) ConfigEntries(ctx context.Context, pattern string) (map[string]string, error) {
	out, err := c.cmd.Run(ctx, "config", "--get-regexp", pattern)
	if err != nil {
		// Exit code 1 means no matching key.
		if ExitCode(err) == 1 {
			return map[string]string{}, nil
		}
		return nil, err
	}

	entries := make(map[string]string)
	for _, line := range lines(out) {
		key, value, _ := strings.Cut(line, " ")
		entries[strings.ToLower(key)] = value
	}
	return entries, nil
}
