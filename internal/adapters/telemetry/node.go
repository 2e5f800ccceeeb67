package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pdctl/internal/core/ports"
)

const (
	// OTelNodeID is the unique identifier for the concrete tracer Graft node.
	OTelNodeID graft.ID = "adapter.telemetry.otel"
	// TracerNodeID is the unique identifier for the ports.Tracer Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
)

// InstrumentationName names the tracer.
const InstrumentationName = "pdctl"

func init() {
	graft.Register(graft.Node[*OTelTracer]{
		ID:        OTelNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*OTelTracer, error) {
			return NewOTelTracer(InstrumentationName), nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{OTelNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			tracer, err := graft.Dep[*OTelTracer](ctx)
			if err != nil {
				return nil, err
			}
			return tracer, nil
		},
	})
}
