package cloudfront

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
)

// CreateInvalidationAPI はキャッシュ無効化に使うCloudFront APIのサブセット
type CreateInvalidationAPI interface {
	CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error)
}

var (
	_ CreateInvalidationAPI               = (*cloudfront.Client)(nil)
	_ cloudfront.GetInvalidationAPIClient = (*cloudfront.Client)(nil)
)

// Request は1回の無効化リクエスト
type Request struct {
	DistributionId  string
	CallerReference string
	Paths           []string
}

// SubmissionError は無効化リクエストの送信に失敗したことを表す
// 呼び出し元にそのまま返される
type SubmissionError struct {
	DistributionId string
	Err            error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("ディストリビューション '%s' のキャッシュ無効化に失敗: %v", e.DistributionId, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// API は無効化の送信と完了待機に使うCloudFront APIのサブセット
type API interface {
	CreateInvalidationAPI
	cloudfront.GetInvalidationAPIClient
}

var _ API = (*cloudfront.Client)(nil)
