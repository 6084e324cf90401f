package matchhook

import (
	"context"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra/monitoring"
	"sales-engine/internal/pkg/errs"

	"github.com/google/cel-go/cel"
)

func newCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("sale", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("purchasable", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("order", cel.MapType(cel.StringType, cel.DynType)),
	)
}

// NewCELHook compiles a boolean CEL expression into a veto hook.
func NewCELHook(name, expr string) (sale.MatchHook, error) {
	env, err := newCELEnv()
	if err != nil {
		return nil, errs.Wrap(err, "create cel environment")
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, errs.Wrapf(iss.Err(), "hook %q: compile", name)
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errs.New("hook " + name + ": expression must be boolean, got " + ast.OutputType().String())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, errs.Wrapf(err, "hook %q: program", name)
	}

	return func(ctx context.Context, ev sale.MatchEvent) (bool, error) {
		out, _, err := prg.ContextEval(ctx, facts(ev))
		if err != nil {
			return false, errs.Wrapf(err, "hook %q: eval", name)
		}
		ok, isBool := out.Value().(bool)
		if !isBool {
			return false, errs.New("hook " + name + ": expression did not produce a boolean")
		}
		if !ok {
			monitoring.RecordHookVeto(name)
		}
		return ok, nil
	}, nil
}
