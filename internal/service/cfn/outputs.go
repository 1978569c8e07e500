package cfn

import (
	"context"
	"errors"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// ErrStackNotFound はDescribeStacksがスタックを1件も返さなかった場合のエラー
var ErrStackNotFound = errors.New("スタックが見つかりませんでした")

// ErrNoOutputs はスタックに Outputs セクションが無い場合のエラー
var ErrNoOutputs = errors.New("スタックに出力がありません")

// Resolver はスタック出力を参照する
type Resolver struct {
	client DescribeStacksAPI
}

// NewResolver はResolverを作成する
func NewResolver(client DescribeStacksAPI) *Resolver {
	return &Resolver{client: client}
}

// GetStackOutputs はスタックの出力一覧を取得する
func (r *Resolver) GetStackOutputs(ctx context.Context, stackName string) ([]StackOutput, error) {
	resp, err := r.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: awssdk.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("CloudFormationスタックの取得に失敗: %w", err)
	}

	if resp == nil || len(resp.Stacks) == 0 {
		return nil, fmt.Errorf("'%s': %w", stackName, ErrStackNotFound)
	}

	stack := resp.Stacks[0]
	if stack.Outputs == nil {
		return nil, fmt.Errorf("'%s': %w", stackName, ErrNoOutputs)
	}

	outputs := make([]StackOutput, 0, len(stack.Outputs))
	for _, o := range stack.Outputs {
		outputs = append(outputs, StackOutput{
			Key:         awssdk.ToString(o.OutputKey),
			Value:       awssdk.ToString(o.OutputValue),
			Description: awssdk.ToString(o.Description),
			ExportName:  awssdk.ToString(o.ExportName),
		})
	}
	return outputs, nil
}

// ResolveOutput はスタック出力からキーに一致する値を返す
// 取得自体に失敗した場合やスタックに出力が無い場合は *ResolutionError を返す
// キーが出力に存在しない場合はエラーにせず found=false を返す
func (r *Resolver) ResolveOutput(ctx context.Context, stackName, key string) (string, bool, error) {
	outputs, err := r.GetStackOutputs(ctx, stackName)
	if err != nil {
		return "", false, &ResolutionError{StackName: stackName, OutputKey: key, Err: err}
	}

	value, found := FindOutputValue(outputs, key)
	return value, found, nil
}

// FindOutputValue は出力一覧からキーに一致する値を探す
func FindOutputValue(outputs []StackOutput, key string) (string, bool) {
	for _, o := range outputs {
		if o.Key == key {
			return o.Value, true
		}
	}
	return "", false
}
