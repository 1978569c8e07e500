package cloudfront

import (
	"context"
	"encoding/json"
	"errors"

	"slscfinv/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
)

// Submitter はCloudFrontへ無効化リクエストを送信する
type Submitter struct {
	client  CreateInvalidationAPI
	console *common.Console
	log     logr.Logger
}

// NewSubmitter はSubmitterを作成する
func NewSubmitter(client CreateInvalidationAPI, console *common.Console, log logr.Logger) *Submitter {
	return &Submitter{client: client, console: console, log: log}
}

// NewRequest は設定されたパスから無効化リクエストを組み立てる
func NewRequest(distributionId, callerReference string, paths []string) Request {
	items := make([]string, 0, len(paths))
	items = append(items, paths...)
	return Request{
		DistributionId:  distributionId,
		CallerReference: callerReference,
		Paths:           items,
	}
}

// Input はSDKの入力形式に変換する
func (r Request) Input() *cloudfront.CreateInvalidationInput {
	return &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(r.DistributionId),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(r.CallerReference),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(r.Paths))),
				Items:    r.Paths,
			},
		},
	}
}

// Submit は無効化リクエストを1回だけ送信し、無効化IDを返す
// 失敗時はエラー内容を出力したうえで *SubmissionError を返す
func (s *Submitter) Submit(ctx context.Context, req Request) (string, error) {
	s.log.V(1).Info("creating invalidation",
		"distributionId", req.DistributionId,
		"callerReference", req.CallerReference,
		"paths", req.Paths)

	result, err := s.client.CreateInvalidation(ctx, req.Input())
	if err != nil {
		s.console.Log(ErrorPayload(err))
		s.console.Plugin("Invalidation failed")
		s.log.Error(err, "invalidation failed", "distributionId", req.DistributionId)
		return "", &SubmissionError{DistributionId: req.DistributionId, Err: err}
	}

	var invalidationId string
	if result != nil && result.Invalidation != nil {
		invalidationId = aws.ToString(result.Invalidation.Id)
	}

	s.console.Plugin("Invalidation started")
	s.log.Info("invalidation started", "distributionId", req.DistributionId, "invalidationId", invalidationId)
	return invalidationId, nil
}

// errorPayload はエラー内容をJSONで出力するための構造体
type errorPayload struct {
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Fault      string `json:"fault,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	RequestId  string `json:"requestId,omitempty"`
}

// ErrorPayload はSDKのエラーをJSON文字列に変換する
func ErrorPayload(err error) string {
	payload := errorPayload{Message: err.Error()}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		payload.Code = apiErr.ErrorCode()
		payload.Message = apiErr.ErrorMessage()
		payload.Fault = apiErr.ErrorFault().String()
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		payload.StatusCode = respErr.HTTPStatusCode()
		payload.RequestId = respErr.ServiceRequestID()
	}

	b, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return err.Error()
	}
	return string(b)
}
