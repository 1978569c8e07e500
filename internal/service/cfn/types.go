package cfn

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// DescribeStacksAPI はスタック出力の取得に使うCloudFormation APIのサブセット
type DescribeStacksAPI interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}

var _ DescribeStacksAPI = (*cloudformation.Client)(nil)

// StackOutput はスタック出力のキーと値
type StackOutput struct {
	Key         string
	Value       string
	Description string
	ExportName  string
}

// ResolutionError はスタック出力からのID解決に失敗したことを表す
// 呼び出し側はログ出力のみ行い、エラーとしては扱わない
type ResolutionError struct {
	StackName string
	OutputKey string
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("スタック '%s' の出力 '%s' の取得に失敗: %v", e.StackName, e.OutputKey, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
