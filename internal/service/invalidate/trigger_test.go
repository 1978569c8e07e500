package invalidate

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"slscfinv/internal/serverless"
	"slscfinv/internal/service/cfn"
	cfsvc "slscfinv/internal/service/cloudfront"
	"slscfinv/internal/service/common"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	outputs map[string]string
	err     error

	calls     int
	stackName string
}

func (f *fakeResolver) ResolveOutput(ctx context.Context, stackName, key string) (string, bool, error) {
	f.calls++
	f.stackName = stackName
	if f.err != nil {
		return "", false, f.err
	}
	value, ok := f.outputs[key]
	return value, ok, nil
}

type fakeSubmitter struct {
	err      error
	requests []cfsvc.Request
}

func (f *fakeSubmitter) Submit(ctx context.Context, req cfsvc.Request) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return "I1", nil
}

type harness struct {
	resolver  *fakeResolver
	submitter *fakeSubmitter
	out       *bytes.Buffer
}

func newHarness() *harness {
	return &harness{
		resolver:  &fakeResolver{},
		submitter: &fakeSubmitter{},
		out:       &bytes.Buffer{},
	}
}

func (h *harness) trigger(t *testing.T, cfg serverless.InvalidateConfig) *Trigger {
	t.Helper()
	tr, err := NewTrigger(Options{
		Config:    cfg,
		StackName: "my-site-dev",
		Resolver:  h.resolver,
		Submitter: h.submitter,
		Console:   common.NewConsole(h.out, false),
		Log:       logr.Discard(),
	})
	require.NoError(t, err)
	return tr
}

func TestTriggerInvalidate(t *testing.T) {
	items := []string{"/index.html", "/assets/*"}

	t.Run("LiteralIdSubmitsOnce", func(t *testing.T) {
		h := newHarness()
		res, err := h.trigger(t, serverless.InvalidateConfig{DistributionId: "E999", Items: items}).Invalidate(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OutcomeSubmitted, res.Outcome)
		assert.Equal(t, "E999", res.DistributionId)
		assert.Equal(t, "I1", res.InvalidationId)
		require.Len(t, h.submitter.requests, 1)
		assert.Equal(t, "E999", h.submitter.requests[0].DistributionId)
		assert.Equal(t, items, h.submitter.requests[0].Paths)
		assert.Equal(t, res.CallerReference, h.submitter.requests[0].CallerReference)
		assert.Zero(t, h.resolver.calls)
		assert.Contains(t, h.out.String(), "DistributionId: E999")
		assert.Contains(t, h.out.String(), common.RocketIcon+" CloudFrontディストリビューション (E999) のキャッシュを無効化します...")
		assert.Contains(t, h.out.String(), "対象パス: [/index.html /assets/*]")
	})
	t.Run("LiteralIdTakesPrecedenceOverKey", func(t *testing.T) {
		h := newHarness()
		h.resolver.outputs = map[string]string{"CDNId": "E123"}
		cfg := serverless.InvalidateConfig{DistributionId: "E999", DistributionIdKey: "CDNId", Items: items}

		_, err := h.trigger(t, cfg).Invalidate(context.Background())
		require.NoError(t, err)
		require.Len(t, h.submitter.requests, 1)
		assert.Equal(t, "E999", h.submitter.requests[0].DistributionId)
		assert.Zero(t, h.resolver.calls)
	})
	t.Run("NeitherIdNorKeyIsNoop", func(t *testing.T) {
		h := newHarness()
		res, err := h.trigger(t, serverless.InvalidateConfig{}).Invalidate(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OutcomeSkipped, res.Outcome)
		assert.Zero(t, h.resolver.calls)
		assert.Empty(t, h.submitter.requests)
		assert.Contains(t, h.out.String(), "distributionId or distributionIdKey is required")
	})
	t.Run("KeyResolvesFromStackOutputs", func(t *testing.T) {
		h := newHarness()
		h.resolver.outputs = map[string]string{"CDNId": "E123", "Other": "x"}

		res, err := h.trigger(t, serverless.InvalidateConfig{DistributionIdKey: "CDNId", Items: items}).Invalidate(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OutcomeSubmitted, res.Outcome)
		assert.Equal(t, "my-site-dev", h.resolver.stackName)
		require.Len(t, h.submitter.requests, 1)
		assert.Equal(t, "E123", h.submitter.requests[0].DistributionId)
		assert.Contains(t, h.out.String(), "DistributionIdKey: CDNId")
	})
	t.Run("LookupFailureIsSwallowed", func(t *testing.T) {
		h := newHarness()
		h.resolver.err = &cfn.ResolutionError{StackName: "my-site-dev", OutputKey: "CDNId", Err: errors.New("network unreachable")}

		res, err := h.trigger(t, serverless.InvalidateConfig{DistributionIdKey: "CDNId", Items: items}).Invalidate(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OutcomeResolutionFailed, res.Outcome)
		assert.Empty(t, h.submitter.requests)
		assert.Contains(t, h.out.String(), "Failed to get DistributionId from stack output. Please check your serverless template.")
	})
	t.Run("StackWithoutOutputsIsSwallowed", func(t *testing.T) {
		h := newHarness()
		h.resolver.err = &cfn.ResolutionError{StackName: "my-site-dev", OutputKey: "CDNId", Err: cfn.ErrNoOutputs}

		res, err := h.trigger(t, serverless.InvalidateConfig{DistributionIdKey: "CDNId", Items: items}).Invalidate(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OutcomeResolutionFailed, res.Outcome)
		assert.Empty(t, h.submitter.requests)
		assert.Contains(t, h.out.String(), "Failed to get DistributionId from stack output. Please check your serverless template.")
	})
	t.Run("UnusualItemsAreSubmittedWithWarning", func(t *testing.T) {
		for name, paths := range map[string][]string{
			"Empty":               nil,
			"MissingLeadingSlash": {"index.html"},
		} {
			t.Run(name, func(t *testing.T) {
				h := newHarness()
				res, err := h.trigger(t, serverless.InvalidateConfig{DistributionId: "E999", Items: paths}).Invalidate(context.Background())
				require.NoError(t, err)

				assert.Equal(t, OutcomeSubmitted, res.Outcome)
				require.Len(t, h.submitter.requests, 1)
				assert.Equal(t, len(paths), len(h.submitter.requests[0].Paths))
				assert.Contains(t, h.out.String(), common.WarningIcon)
			})
		}
	})
	t.Run("MissingKeySubmitsUnsetId", func(t *testing.T) {
		h := newHarness()
		h.resolver.outputs = map[string]string{"Other": "x"}

		res, err := h.trigger(t, serverless.InvalidateConfig{DistributionIdKey: "CDNId", Items: items}).Invalidate(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OutcomeSubmitted, res.Outcome)
		require.Len(t, h.submitter.requests, 1)
		assert.Empty(t, h.submitter.requests[0].DistributionId)
	})
	t.Run("SubmissionFailurePropagates", func(t *testing.T) {
		for name, cfg := range map[string]serverless.InvalidateConfig{
			"DirectId":  {DistributionId: "E999", Items: items},
			"ResolveId": {DistributionIdKey: "CDNId", Items: items},
		} {
			t.Run(name, func(t *testing.T) {
				h := newHarness()
				h.resolver.outputs = map[string]string{"CDNId": "E123"}
				subErr := &cfsvc.SubmissionError{DistributionId: "E", Err: errors.New("AccessDenied")}
				h.submitter.err = subErr

				res, err := h.trigger(t, cfg).Invalidate(context.Background())
				require.Error(t, err)
				assert.Same(t, subErr, err)
				assert.Equal(t, OutcomeSubmissionFailed, res.Outcome)
				assert.Len(t, h.submitter.requests, 1)
			})
		}
	})
	t.Run("FreshReferencePerInvocation", func(t *testing.T) {
		h := newHarness()
		tr := h.trigger(t, serverless.InvalidateConfig{DistributionId: "E999", Items: items})

		first, err := tr.Invalidate(context.Background())
		require.NoError(t, err)
		second, err := tr.Invalidate(context.Background())
		require.NoError(t, err)

		assert.Len(t, first.CallerReference, cfsvc.CallerReferenceLength)
		assert.Len(t, second.CallerReference, cfsvc.CallerReferenceLength)
		assert.NotEqual(t, first.CallerReference, second.CallerReference)
		assert.Len(t, h.submitter.requests, 2)
	})
}

func TestTriggerWait(t *testing.T) {
	cfg := serverless.InvalidateConfig{DistributionId: "E999", Items: []string{"/*"}, Wait: true}

	newWaitTrigger := func(t *testing.T, h *harness, waiter CompletionWaiter) *Trigger {
		tr, err := NewTrigger(Options{
			Config:    cfg,
			Submitter: h.submitter,
			Waiter:    waiter,
			WaitLimit: time.Minute,
			Console:   common.NewConsole(h.out, false),
			Log:       logr.Discard(),
		})
		require.NoError(t, err)
		return tr
	}

	t.Run("WaitsForSubmittedInvalidation", func(t *testing.T) {
		h := newHarness()
		var gotDist, gotId string
		var gotLimit time.Duration
		tr := newWaitTrigger(t, h, func(ctx context.Context, distributionId, invalidationId string, maxWait time.Duration) error {
			gotDist, gotId, gotLimit = distributionId, invalidationId, maxWait
			return nil
		})

		_, err := tr.Invalidate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "E999", gotDist)
		assert.Equal(t, "I1", gotId)
		assert.Equal(t, time.Minute, gotLimit)
	})
	t.Run("WaitFailureIsReturned", func(t *testing.T) {
		h := newHarness()
		waitErr := errors.New("exceeded max wait time")
		tr := newWaitTrigger(t, h, func(context.Context, string, string, time.Duration) error { return waitErr })

		res, err := tr.Invalidate(context.Background())
		assert.ErrorIs(t, err, waitErr)
		assert.Equal(t, OutcomeSubmitted, res.Outcome)
	})
	t.Run("NoWaitAfterFailedSubmission", func(t *testing.T) {
		h := newHarness()
		h.submitter.err = errors.New("boom")
		called := false
		tr := newWaitTrigger(t, h, func(context.Context, string, string, time.Duration) error {
			called = true
			return nil
		})

		_, err := tr.Invalidate(context.Background())
		assert.Error(t, err)
		assert.False(t, called)
	})
}

func TestNewTrigger(t *testing.T) {
	console := common.NewConsole(&bytes.Buffer{}, false)

	t.Run("AcceptsEmptyItems", func(t *testing.T) {
		_, err := NewTrigger(Options{
			Config:    serverless.InvalidateConfig{DistributionId: "E1"},
			Submitter: &fakeSubmitter{},
			Console:   console,
		})
		assert.NoError(t, err)
	})
	t.Run("RequiresResolverForKey", func(t *testing.T) {
		_, err := NewTrigger(Options{
			Config:    serverless.InvalidateConfig{DistributionIdKey: "CDNId", Items: []string{"/*"}},
			Submitter: &fakeSubmitter{},
			Console:   console,
		})
		assert.Error(t, err)
	})
	t.Run("RequiresSubmitter", func(t *testing.T) {
		_, err := NewTrigger(Options{Console: console})
		assert.Error(t, err)
	})
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Submitted", OutcomeSubmitted.String())
	assert.Equal(t, "Skipped", OutcomeSkipped.String())
	assert.Equal(t, "ResolutionFailed", OutcomeResolutionFailed.String())
	assert.Equal(t, "SubmissionFailed", OutcomeSubmissionFailed.String())
}
