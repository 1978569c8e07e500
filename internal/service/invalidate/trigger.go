package invalidate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slscfinv/internal/serverless"
	"slscfinv/internal/service/cfn"
	cfsvc "slscfinv/internal/service/cloudfront"
	"slscfinv/internal/service/common"

	"github.com/go-logr/logr"
)

// Options はTriggerの構成要素
type Options struct {
	Config    serverless.InvalidateConfig
	StackName string

	Resolver  OutputResolver
	Submitter InvalidationSubmitter
	Waiter    CompletionWaiter // Config.Wait が true の場合のみ使用
	WaitLimit time.Duration

	Console *common.Console
	Log     logr.Logger

	// NewReference はCallerReferenceの生成関数（nilなら cloudfront.NewCallerReference）
	NewReference func() string
}

// Trigger はディストリビューションIDを決定し、無効化リクエストを1回送信する
type Trigger struct {
	opts Options
}

// NewTrigger はTriggerを作成する
func NewTrigger(opts Options) (*Trigger, error) {
	if opts.Submitter == nil {
		return nil, errors.New("submitter is required")
	}
	if opts.Config.Mode() == serverless.ModeResolveId && opts.Resolver == nil {
		return nil, errors.New("resolver is required when distributionIdKey is set")
	}
	if opts.Console == nil {
		return nil, errors.New("console is required")
	}
	if opts.NewReference == nil {
		opts.NewReference = cfsvc.NewCallerReference
	}
	return &Trigger{opts: opts}, nil
}

// Invalidate はキャッシュ無効化を実行する
// スタック出力の取得失敗はログのみでnilを返し、送信失敗のみエラーを返す
func (t *Trigger) Invalidate(ctx context.Context) (Result, error) {
	cfg := t.opts.Config
	console := t.opts.Console
	result := Result{CallerReference: t.opts.NewReference()}

	switch cfg.Mode() {
	case serverless.ModeDirectId:
		result.DistributionId = cfg.DistributionId
		console.Logf("DistributionId: %s", console.Yellow(cfg.DistributionId))

	case serverless.ModeResolveId:
		console.Logf("DistributionIdKey: %s", console.Yellow(cfg.DistributionIdKey))
		id, ok := t.resolve(ctx, cfg.DistributionIdKey)
		if !ok {
			result.Outcome = OutcomeResolutionFailed
			return result, nil
		}
		result.DistributionId = id

	default:
		console.Log("distributionId or distributionIdKey is required")
		result.Outcome = OutcomeSkipped
		return result, nil
	}

	return t.submit(ctx, result)
}

// resolve はスタック出力からIDを取得する
// 取得に失敗した場合は false を返す。キーが見つからない場合は空のIDで true を返す
func (t *Trigger) resolve(ctx context.Context, key string) (string, bool) {
	t.opts.Log.V(1).Info("describing stack", "stack", t.opts.StackName, "outputKey", key)

	id, found, err := t.opts.Resolver.ResolveOutput(ctx, t.opts.StackName, key)
	if err != nil {
		var resErr *cfn.ResolutionError
		if !errors.As(err, &resErr) {
			resErr = &cfn.ResolutionError{StackName: t.opts.StackName, OutputKey: key, Err: err}
		}
		t.opts.Log.Error(resErr, "stack output lookup failed")
		t.opts.Console.Log("Failed to get DistributionId from stack output. Please check your serverless template.")
		return "", false
	}

	if !found {
		// IDは空のまま送信し、CloudFront側のエラーとして返す
		t.opts.Log.Info("output key not found in stack outputs", "stack", t.opts.StackName, "outputKey", key)
		t.opts.Console.Logf("%s スタック '%s' に出力 '%s' が見つかりませんでした", common.WarningIcon, t.opts.StackName, key)
		return "", true
	}

	t.opts.Log.V(1).Info("resolved distribution id", "distributionId", id)
	return id, true
}

func (t *Trigger) submit(ctx context.Context, result Result) (Result, error) {
	req := cfsvc.NewRequest(result.DistributionId, result.CallerReference, t.opts.Config.Items)

	t.opts.Console.Logf("%s CloudFrontディストリビューション (%s) のキャッシュを無効化します...", common.RocketIcon, req.DistributionId)
	t.opts.Console.Logf("   対象パス: %v", req.Paths)
	for _, w := range t.opts.Config.Warnings() {
		t.opts.Console.Logf("%s %s", common.WarningIcon, w)
	}

	invalidationId, err := t.opts.Submitter.Submit(ctx, req)
	if err != nil {
		result.Outcome = OutcomeSubmissionFailed
		return result, err
	}
	result.Outcome = OutcomeSubmitted
	result.InvalidationId = invalidationId

	if t.opts.Config.Wait && t.opts.Waiter != nil && invalidationId != "" {
		t.opts.Console.Logf("%s 無効化の完了を待機しています...", common.WaitIcon)
		if err := t.opts.Waiter(ctx, result.DistributionId, invalidationId, t.opts.WaitLimit); err != nil {
			return result, fmt.Errorf("無効化待機エラー: %w", err)
		}
		t.opts.Console.Logf("%s キャッシュ無効化が完了しました", common.SuccessIcon)
	}

	return result, nil
}
