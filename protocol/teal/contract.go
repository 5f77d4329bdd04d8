package teal

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tealc/errors"
	"tealc/protocol/types"
)

// Contract is an application: an approval program, a clear-state
// program, and the layout of the state they share.
type Contract struct {
	Approval   *Program
	ClearState *Program
	Schemas
}

// CompiledContract holds the assembly of both programs of a contract.
type CompiledContract struct {
	Approval   string
	ClearState string
}

// env returns the type environment of the contract's programs,
// with the state fields in scope.
func (c *Contract) env() TypeEnv {
	return TypeEnv{
		Global: c.Global.scope(),
		Local:  c.Local.scope(),
	}
}

// TypeCheck infers the types of both programs.
func (c *Contract) TypeCheck() (approval, clearState types.Type, err error) {
	if c.Approval == nil || c.ClearState == nil {
		return nil, nil, errors.WithDetail(ErrEmptyProgram, "contract needs approval and clear-state programs")
	}
	approval, err = c.Approval.typeCheck(NewSession(), c.env())
	if err != nil {
		return nil, nil, errors.Wrap(err, "approval program")
	}
	clearState, err = c.ClearState.typeCheck(NewSession(), c.env())
	if err != nil {
		return nil, nil, errors.Wrap(err, "clear-state program")
	}
	return approval, clearState, nil
}

// Compile compiles both programs concurrently,
// each in its own session.
func (c *Contract) Compile(ctx context.Context) (*CompiledContract, error) {
	return c.compileWith(ctx, func(_ context.Context, p *Program) (string, error) {
		return p.compile(NewSession(), c.env())
	})
}

func (c *Contract) compileWith(ctx context.Context, compile func(context.Context, *Program) (string, error)) (*CompiledContract, error) {
	if c.Approval == nil || c.ClearState == nil {
		return nil, errors.WithDetail(ErrEmptyProgram, "contract needs approval and clear-state programs")
	}

	var out CompiledContract
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		asm, err := compile(ctx, c.Approval)
		if err != nil {
			return errors.Wrap(err, "approval program")
		}
		out.Approval = asm
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		asm, err := compile(ctx, c.ClearState)
		if err != nil {
			return errors.Wrap(err, "clear-state program")
		}
		out.ClearState = asm
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
