package cloudfront

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
)

// DefaultWaitTimeout は無効化完了待機の上限
const DefaultWaitTimeout = 10 * time.Minute

// WaitForInvalidation は無効化が完了するまで待機します
func WaitForInvalidation(ctx context.Context, client cloudfront.GetInvalidationAPIClient, distributionId, invalidationId string, maxWait time.Duration) error {
	if maxWait <= 0 {
		maxWait = DefaultWaitTimeout
	}

	waiter := cloudfront.NewInvalidationCompletedWaiter(client, func(o *cloudfront.InvalidationCompletedWaiterOptions) {
		o.MinDelay = 5 * time.Second
		o.MaxDelay = 30 * time.Second
	})

	err := waiter.Wait(ctx, &cloudfront.GetInvalidationInput{
		DistributionId: aws.String(distributionId),
		Id:             aws.String(invalidationId),
	}, maxWait)
	if err != nil {
		return fmt.Errorf("無効化 '%s' の完了待機に失敗: %w", invalidationId, err)
	}
	return nil
}
