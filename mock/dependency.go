package mock

import (
	"context"

	"github.com/shadng/sngmcp"
)

var _ sngmcp.DependencyInferrer = (*DependencyInferrer)(nil)

// DependencyInferrer is a mock implementation of sngmcp.DependencyInferrer.
type DependencyInferrer struct {
	InferDependenciesFn func(ctx context.Context, slug string) (*sngmcp.Dependencies, error)
}

func (d *DependencyInferrer) InferDependencies(ctx context.Context, slug string) (*sngmcp.Dependencies, error) {
	return d.InferDependenciesFn(ctx, slug)
}
