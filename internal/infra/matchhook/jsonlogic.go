package matchhook

import (
	"bytes"
	"context"
	"encoding/json"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra/monitoring"
	"sales-engine/internal/pkg/errs"

	"github.com/diegoholiveira/jsonlogic/v3"
)

// NewJSONLogicHook compiles a JSON-logic rule into a veto hook. The rule must
// evaluate to a boolean; false vetoes the match.
func NewJSONLogicHook(name string, rule map[string]any) (sale.MatchHook, error) {
	ruleJSON, err := json.Marshal(rule)
	if err != nil {
		return nil, errs.Wrapf(err, "hook %q: encode rule", name)
	}
	if !jsonlogic.IsValid(bytes.NewReader(ruleJSON)) {
		return nil, errs.New("hook " + name + ": invalid json-logic rule")
	}

	return func(_ context.Context, ev sale.MatchEvent) (bool, error) {
		dataJSON, err := json.Marshal(facts(ev))
		if err != nil {
			return false, errs.Wrapf(err, "hook %q: encode facts", name)
		}

		var out bytes.Buffer
		if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &out); err != nil {
			return false, errs.Wrapf(err, "hook %q: apply", name)
		}

		var result any
		if err := json.Unmarshal(out.Bytes(), &result); err != nil {
			return false, errs.Wrapf(err, "hook %q: decode result", name)
		}
		ok, isBool := result.(bool)
		if !isBool {
			return false, errs.New("hook " + name + ": rule did not produce a boolean")
		}
		if !ok {
			monitoring.RecordHookVeto(name)
		}
		return ok, nil
	}, nil
}
