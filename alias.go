package icons

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/SH20RAJ/icons/utils"
)

// AliasPolicy decides what happens to aliases pointing at unknown icons.
type AliasPolicy int

const (
	// AliasDrop silently drops them.
	AliasDrop AliasPolicy = iota
	// AliasWarn drops them and traces a warning for each.
	AliasWarn
	// AliasStrict fails with a configuration error listing them.
	AliasStrict
)

var aliasPolicyNames = []string{"drop", "warn", "strict"}

func (p AliasPolicy) String() string {
	if p < 0 || int(p) >= len(aliasPolicyNames) {
		return fmt.Sprintf("AliasPolicy(%d)", int(p))
	}
	return aliasPolicyNames[p]
}

// ParseAliasPolicy returns the policy named "drop", "warn" or "strict".
func ParseAliasPolicy(s string) (AliasPolicy, error) {
	i := slices.Index(aliasPolicyNames, strings.ToLower(s))
	if i < 0 {
		return AliasDrop, fmt.Errorf("unknown alias policy %q", s)
	}
	return AliasPolicy(i), nil
}

// ReadAliases reads the alias name to icon name map stored at path and keeps
// the entries whose target is one of icons.
func ReadAliases(path string, icons []Icon, policy AliasPolicy) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fsError("read aliases", path, err)
	}
	var aliases map[string]string
	if err := json.Unmarshal(raw, &aliases); err != nil {
		return nil, parseError("read aliases", path, err)
	}
	return ResolveAliases(aliases, Names(icons), policy)
}

// ResolveAliases keeps the aliases whose target is one of names. Unmatched
// aliases are handled according to policy.
func ResolveAliases(aliases map[string]string, names []string, policy AliasPolicy) (map[string]string, error) {
	resolved := make(map[string]string, len(aliases))
	var unmatched []string
	for alias, target := range aliases {
		if utils.Contains(names, target) {
			resolved[alias] = target
			continue
		}
		unmatched = append(unmatched, alias)
	}
	if len(unmatched) == 0 {
		return resolved, nil
	}

	slices.Sort(unmatched)
	switch policy {
	case AliasWarn:
		for _, alias := range unmatched {
			tracer().Errorf("dropping alias %q: no icon named %q", alias, aliases[alias])
		}
	case AliasStrict:
		pairs := make([]string, len(unmatched))
		for i, alias := range unmatched {
			pairs[i] = alias + " -> " + aliases[alias]
		}
		return nil, configError("resolve aliases",
			errors.New("aliases without icon: "+strings.Join(pairs, ", ")))
	}
	return resolved, nil
}
