package egeria

import (
	"context"
)

const lineageLinkerService = "lineage-linker"

func init() {
	register(lineageLinkerService, "Lineage Linker",
		"Record data flows, control flows, process calls and lineage mappings.",
		TierTech, NewLineageLinker)
}

// LineageLinker wraps the Lineage Linker view service. Every link runs from
// an upstream element to a downstream one.
type LineageLinker struct {
	viewService
}

// NewLineageLinker creates the facade on a shared client
func NewLineageLinker(client *ServerClient) *LineageLinker {
	return &LineageLinker{viewService: newViewService(client, lineageLinkerService)}
}

func (m *LineageLinker) linkLineage(ctx context.Context, kind, class, upstreamGUID, downstreamGUID string, props *LineageProperties) error {
	if err := requireGUIDs("upstream guid", upstreamGUID, "downstream guid", downstreamGUID); err != nil {
		return err
	}
	p := LineageProperties{}
	if props != nil {
		p = *props
	}
	body := NewRelationshipRequestBody{Properties: p.withClass(class)}
	return m.link(ctx, body, "from-elements", upstreamGUID, kind, "to-elements", downstreamGUID)
}

func (m *LineageLinker) detachLineage(ctx context.Context, kind, upstreamGUID, downstreamGUID string) error {
	if err := requireGUIDs("upstream guid", upstreamGUID, "downstream guid", downstreamGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "from-elements", upstreamGUID, kind, "to-elements", downstreamGUID)
}

// LinkDataFlow records that data moves from upstream to downstream
func (m *LineageLinker) LinkDataFlow(ctx context.Context, upstreamGUID, downstreamGUID string, props *LineageProperties) error {
	return m.linkLineage(ctx, "data-flow", "DataFlowProperties", upstreamGUID, downstreamGUID, props)
}

// DetachDataFlow removes the link added by LinkDataFlow
func (m *LineageLinker) DetachDataFlow(ctx context.Context, upstreamGUID, downstreamGUID string) error {
	return m.detachLineage(ctx, "data-flow", upstreamGUID, downstreamGUID)
}

// LinkControlFlow records that upstream passes control to downstream
func (m *LineageLinker) LinkControlFlow(ctx context.Context, upstreamGUID, downstreamGUID string, props *LineageProperties) error {
	return m.linkLineage(ctx, "control-flow", "ControlFlowProperties", upstreamGUID, downstreamGUID, props)
}

// DetachControlFlow removes the link added by LinkControlFlow
func (m *LineageLinker) DetachControlFlow(ctx context.Context, upstreamGUID, downstreamGUID string) error {
	return m.detachLineage(ctx, "control-flow", upstreamGUID, downstreamGUID)
}

// LinkProcessCall records that upstream calls downstream
func (m *LineageLinker) LinkProcessCall(ctx context.Context, upstreamGUID, downstreamGUID string, props *LineageProperties) error {
	return m.linkLineage(ctx, "process-call", "ProcessCallProperties", upstreamGUID, downstreamGUID, props)
}

// DetachProcessCall removes the link added by LinkProcessCall
func (m *LineageLinker) DetachProcessCall(ctx context.Context, upstreamGUID, downstreamGUID string) error {
	return m.detachLineage(ctx, "process-call", upstreamGUID, downstreamGUID)
}

// LinkLineageMapping maps a source element onto the target it was derived into
func (m *LineageLinker) LinkLineageMapping(ctx context.Context, sourceGUID, targetGUID string, props *LineageProperties) error {
	return m.linkLineage(ctx, "lineage-mapping", "LineageMappingProperties", sourceGUID, targetGUID, props)
}

// DetachLineageMapping removes the link added by LinkLineageMapping
func (m *LineageLinker) DetachLineageMapping(ctx context.Context, sourceGUID, targetGUID string) error {
	return m.detachLineage(ctx, "lineage-mapping", sourceGUID, targetGUID)
}

// GetLineageGraph returns the mermaid lineage graph around an element
func (m *LineageLinker) GetLineageGraph(ctx context.Context, elementGUID string) (string, error) {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return "", err
	}
	return m.client.postForMermaid(ctx, m.url("elements", elementGUID, "lineage-graph"), GetRequestBody{})
}
