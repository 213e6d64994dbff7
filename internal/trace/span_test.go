package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_WithoutCollectorIsNoop(t *testing.T) {
	ctx, span := Start(context.Background(), "nothing")

	assert.Nil(t, span)
	assert.Nil(t, SpanFromContext(ctx))

	span.SetAttr("k", "v")
	span.End(errors.New("ignored"))
	assert.Equal(t, NoParent, span.ID())
}

func TestStart_NestsThroughContext(t *testing.T) {
	c := New()
	ctx := WithCollector(context.Background(), c)

	ctx, root := Start(ctx, "root", WithTarget("goreg::workflow"))
	_, child := Start(ctx, "child", AtLevel(LevelDebug), WithAttr("path", "a.png"))

	child.SetAttr("diffCount", 3)
	child.End(nil)
	root.End(errors.New("failed"))

	spans := c.Spans()
	require.Len(t, spans, 2)

	childData, rootData := spans[0], spans[1]
	assert.Equal(t, "child", childData.Name)
	assert.Equal(t, LevelDebug, childData.Level)
	assert.Equal(t, "a.png", childData.Attributes["path"])
	assert.Equal(t, "3", childData.Attributes["diffCount"])
	require.NotNil(t, childData.ParentSpanID)
	assert.Equal(t, rootData.SpanID, *childData.ParentSpanID)

	assert.Equal(t, "goreg::workflow", rootData.Target)
	assert.Equal(t, StatusError, rootData.Status)
}

func TestStart_ParentFromOtherCollectorIsIgnored(t *testing.T) {
	first := New()
	second := New()

	ctx, outer := Start(WithCollector(context.Background(), first), "outer")
	_, inner := Start(WithCollector(ctx, second), "inner")

	inner.End(nil)
	outer.End(nil)

	spans := second.Spans()
	require.Len(t, spans, 1)
	assert.Nil(t, spans[0].ParentSpanID)
}
