package invalidate

import (
	"context"
	"time"

	cfsvc "slscfinv/internal/service/cloudfront"
)

// Outcome はトリガー1回分の結果区分
type Outcome int

const (
	// OutcomeSubmitted は無効化リクエストを送信した
	OutcomeSubmitted Outcome = iota
	// OutcomeSkipped はIDもキーも未指定のため何もしなかった
	OutcomeSkipped
	// OutcomeResolutionFailed はスタック出力の取得に失敗したため送信しなかった（エラーにはしない）
	OutcomeResolutionFailed
	// OutcomeSubmissionFailed は送信に失敗した（エラーを返す）
	OutcomeSubmissionFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSubmitted:
		return "Submitted"
	case OutcomeSkipped:
		return "Skipped"
	case OutcomeResolutionFailed:
		return "ResolutionFailed"
	case OutcomeSubmissionFailed:
		return "SubmissionFailed"
	default:
		return "Unknown"
	}
}

// Result はトリガー1回分の結果
type Result struct {
	Outcome         Outcome
	DistributionId  string
	CallerReference string
	InvalidationId  string
}

// OutputResolver はスタック出力からディストリビューションIDを解決する
type OutputResolver interface {
	ResolveOutput(ctx context.Context, stackName, key string) (string, bool, error)
}

// InvalidationSubmitter は無効化リクエストを送信する
type InvalidationSubmitter interface {
	Submit(ctx context.Context, req cfsvc.Request) (string, error)
}

// CompletionWaiter は無効化の完了を待機する
type CompletionWaiter func(ctx context.Context, distributionId, invalidationId string, maxWait time.Duration) error
