package matchhook

import (
	"log/slog"
	"os"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type File struct {
	Hooks []Rule `yaml:"hooks"`
}

// Rule holds exactly one of Logic or CEL.
type Rule struct {
	Name  string         `yaml:"name"`
	Logic map[string]any `yaml:"logic"`
	CEL   string         `yaml:"cel"`
}

// Load reads a hook file. An empty path means no hooks.
func Load(path string) (sale.MatchHooks, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read match hooks %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrapf(err, "parse match hooks %s", path)
	}

	hooks, err := Build(f.Hooks)
	if err != nil {
		return nil, err
	}
	slog.Info("match hooks loaded", "path", path, "count", len(hooks))
	return hooks, nil
}

func Build(rules []Rule) (sale.MatchHooks, error) {
	hooks := make(sale.MatchHooks, 0, len(rules))
	for i, r := range rules {
		if r.Name == "" {
			return nil, errs.Newf("match hook #%d has no name", i+1)
		}
		var (
			hook sale.MatchHook
			err  error
		)
		switch {
		case r.Logic != nil && r.CEL != "":
			return nil, errs.Newf("match hook %q sets both logic and cel", r.Name)
		case r.Logic != nil:
			hook, err = NewJSONLogicHook(r.Name, r.Logic)
		case r.CEL != "":
			hook, err = NewCELHook(r.Name, r.CEL)
		default:
			return nil, errs.Newf("match hook %q has neither logic nor cel", r.Name)
		}
		if err != nil {
			return nil, err
		}
		hooks = append(hooks, hook)
	}
	return hooks, nil
}
