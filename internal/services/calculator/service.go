package calculator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/KirkDiggler/arena/internal/domain/rpn"
	arenaerr "github.com/KirkDiggler/arena/internal/errors"
)

// Service evaluates postfix expressions
type Service interface {
	// Evaluate tokenizes and evaluates a whitespace separated postfix expression
	Evaluate(ctx context.Context, expression string) (*Result, error)

	// EvaluateTokens evaluates an already tokenized expression
	EvaluateTokens(ctx context.Context, tokens []rpn.Token) (*Result, error)
}

// Result is a successfully evaluated expression
type Result struct {
	Tokens []rpn.Token
	Value  int32
}

type service struct{}

// NewService creates a new calculator service
func NewService() Service {
	return &service{}
}

func (s *service) Evaluate(ctx context.Context, expression string) (*Result, error) {
	tokens, err := rpn.Tokenize(expression)
	if err != nil {
		return nil, arenaerr.Wrap(err, "failed to tokenize expression").
			WithMeta("expression", expression)
	}

	return s.EvaluateTokens(ctx, tokens)
}

func (s *service) EvaluateTokens(ctx context.Context, tokens []rpn.Token) (result *Result, err error) {
	if err := ctx.Err(); err != nil {
		return nil, arenaerr.Wrap(err, "evaluation cancelled")
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok || rerr.Error() != "runtime error: integer divide by zero" {
				panic(r)
			}
			result = nil
			err = arenaerr.Validation("division by zero").
				WithMeta("expression", rpn.Format(tokens))
		}
	}()

	value, ok := rpn.Evaluate(tokens)
	if !ok {
		return nil, arenaerr.Validation("expression does not reduce to a single value").
			WithMeta("expression", rpn.Format(tokens)).
			WithMeta("tokens", len(tokens))
	}

	return &Result{Tokens: tokens, Value: value}, nil
}

func (r *Result) String() string {
	return fmt.Sprintf("%s = %d", rpn.Format(r.Tokens), r.Value)
}
