package advisor_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"

	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/integrity-lab/talos/pkg/service/advisor"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{"mock advisory"}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func TestAdviseSuccess(t *testing.T) {
	ctx := context.Background()

	client := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{"  inspect the bearing housing  \n"}}, nil
				},
			}, nil
		},
	}

	adv := gt.R1(advisor.New(client)).NoError(t)

	result := adv.Advise(ctx, types.ScenarioLifespan, "why is RUL low?")
	gt.Bool(t, result.OK()).True()
	gt.Value(t, result.Text).Equal("inspect the bearing housing")
	gt.Value(t, result.Scenario).Equal(types.ScenarioLifespan)
	gt.Value(t, result.Prompt).Equal("why is RUL low?")
	gt.Value(t, result.ID).NotEqual("")
}

func TestAdviseGenerationFailure(t *testing.T) {
	ctx := context.Background()

	client := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return nil, goerr.New("quota exceeded")
				},
			}, nil
		},
	}

	adv := gt.R1(advisor.New(client)).NoError(t)

	// Failure is contained in the result, never raised
	result := adv.Advise(ctx, types.ScenarioWorkOrder, "build a work order")
	gt.Bool(t, result.OK()).False()
	gt.Value(t, result.Err).NotNil()

	display := result.DisplayText()
	gt.String(t, display).Contains(model.ErrorMarker)
	gt.String(t, display).Contains("quota exceeded")
	gt.Value(t, result.PanelClass()).Equal(types.PanelError)
}

func TestAdviseSessionFailure(t *testing.T) {
	ctx := context.Background()

	client := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return nil, goerr.New("invalid API key")
		},
	}

	adv := gt.R1(advisor.New(client)).NoError(t)

	result := adv.Advise(ctx, types.ScenarioCompliance, "compliance risks?")
	gt.Bool(t, result.OK()).False()
	gt.String(t, result.DisplayText()).Contains("invalid API key")
}

func TestAdviseEmptyResponse(t *testing.T) {
	ctx := context.Background()

	client := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{}, nil
				},
			}, nil
		},
	}

	adv := gt.R1(advisor.New(client)).NoError(t)

	result := adv.Advise(ctx, types.ScenarioFieldReport, "summarize this")
	gt.Bool(t, result.OK()).False()
	gt.String(t, result.DisplayText()).Contains(model.ErrorMarker)
}

func TestNewRequiresClient(t *testing.T) {
	_, err := advisor.New(nil)
	gt.Error(t, err)
}
