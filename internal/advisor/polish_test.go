package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/config"
	"github.com/BeamX-Solutions/beamx-scorecard/pkg/anthropic"
)

type stubClient struct {
	resp    *anthropic.MessageResponse
	err     error
	lastReq anthropic.MessageRequest
	waitCtx bool
}

func (s *stubClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	s.lastReq = req
	if s.waitCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func testPolisher(client anthropic.Client) *Polisher {
	return NewPolisher(client, config.AnthropicConfig{
		Model:       "claude-sonnet-4-5-20250929",
		MaxTokens:   2048,
		TimeoutSecs: 1,
	})
}

func TestPolish_RewritesAdvisory(t *testing.T) {
	stub := &stubClient{resp: &anthropic.MessageResponse{Text: "Dear Amaka, your business scored 73.4..."}}
	p := testPolisher(stub)

	report := makeReport(70, 73.5, 80, 73.5, 70)
	got := p.Polish(context.Background(), "structured advisory", report, "Amaka", "Amaka Foods")
	assert.Equal(t, "Dear Amaka, your business scored 73.4...", got)

	require.Len(t, stub.lastReq.Messages, 1)
	assert.Contains(t, stub.lastReq.Messages[0].Content, "structured advisory")
	assert.Contains(t, stub.lastReq.Messages[0].Content, "Owner: Amaka")
	assert.Contains(t, stub.lastReq.Messages[0].Content, "Business: Amaka Foods")
	assert.Contains(t, stub.lastReq.System, "Preserve every number")
}

func TestPolish_FallsBackOnError(t *testing.T) {
	stub := &stubClient{err: errors.New("service unavailable")}
	p := testPolisher(stub)

	advisory := "the structured advisory, untouched"
	got := p.Polish(context.Background(), advisory, makeReport(70, 73.5, 80, 73.5, 70), "Amaka", "Amaka Foods")
	assert.Equal(t, advisory, got)
}

func TestPolish_FallsBackOnEmptyResponse(t *testing.T) {
	stub := &stubClient{resp: &anthropic.MessageResponse{Text: "   \n"}}
	p := testPolisher(stub)

	advisory := "the structured advisory"
	got := p.Polish(context.Background(), advisory, makeReport(70, 73.5, 80, 73.5, 70), "Amaka", "Amaka Foods")
	assert.Equal(t, advisory, got)
}

func TestPolish_FallsBackOnTimeout(t *testing.T) {
	stub := &stubClient{waitCtx: true}
	p := testPolisher(stub)

	advisory := "the structured advisory"
	start := time.Now()
	got := p.Polish(context.Background(), advisory, makeReport(70, 73.5, 80, 73.5, 70), "Amaka", "Amaka Foods")
	assert.Equal(t, advisory, got)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestPolish_FallsBackOnCanceledContext(t *testing.T) {
	stub := &stubClient{waitCtx: true}
	p := testPolisher(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	advisory := "the structured advisory"
	got := p.Polish(ctx, advisory, makeReport(70, 73.5, 80, 73.5, 70), "Amaka", "Amaka Foods")
	assert.Equal(t, advisory, got)
}
