package lockout

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// builtinAccounts are never offered for lockout management.
var builtinAccounts = []string{
	"Administrator",
	"Guest",
	"DefaultAccount",
	"WDAGUtilityAccount",
	"SYSTEM",
	"LOCAL SERVICE",
	"NETWORK SERVICE",
	"HomeGroupUser$",
}

// Users enumerates manageable local accounts. extraExcluded extends the
// built-in denylist.
func (s *Service) Users(ctx context.Context, extraExcluded []string) ([]string, error) {
	out, err := s.Runner.Run(ctx, []string{"net", "user"}, s.runOpts())
	if err != nil {
		return nil, fmt.Errorf("list local users: %w", err)
	}
	users := parseUserList(out, append(append([]string(nil), builtinAccounts...), extraExcluded...))
	s.Log.Debug().Int("count", len(users)).Msg("local users enumerated")
	return users, nil
}

// parseUserList extracts account names from the columned `net user` output:
// names start after the dashed separator, end at the completion banner, and
// columns are separated by runs of two or more spaces.
func parseUserList(output string, excluded []string) []string {
	denied := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		denied[name] = true
	}

	seen := make(map[string]bool)
	var users []string
	started := false
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "---") {
			started = true
			continue
		}
		if strings.Contains(line, "The command completed successfully") {
			break
		}
		if !started || strings.TrimSpace(line) == "" {
			continue
		}
		for _, col := range strings.Split(line, "  ") {
			name := strings.TrimSpace(col)
			if name == "" || denied[name] || strings.HasPrefix(name, "ASPNET") || seen[name] {
				continue
			}
			seen[name] = true
			users = append(users, name)
		}
	}
	sort.Strings(users)
	return users
}
