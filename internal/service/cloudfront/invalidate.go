package cloudfront

import (
	"cdnkit/internal/service/cfn"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
)

// InvalidateOptions はキャッシュ無効化の共通オプション
type InvalidateOptions struct {
	DistributionId string   // オプション: ディストリビューションID（未指定時はStackNameから解決）
	Paths          []string // 必須: 無効化するパス
	Wait           bool     // オプション: 無効化完了まで待機
	StackName      string   // オプション: CloudFormationスタック名（DistributionId未指定時に使用）
}

// CreateInvalidation はCloudFrontディストリビューションのキャッシュを無効化します
func CreateInvalidation(client *cloudfront.Client, distributionId string, paths []string) (string, error) {
	items := make([]string, 0, len(paths))
	items = append(items, paths...)

	// CallerReferenceとして現在時刻を使用
	callerReference := fmt.Sprintf("cdnkit-%d", time.Now().Unix())

	result, err := client.CreateInvalidation(context.Background(), &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionId),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(callerReference),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(items))),
				Items:    items,
			},
		},
	})
	if err != nil {
		return "", err
	}

	return *result.Invalidation.Id, nil
}

// WaitForInvalidation は無効化が完了するまでポーリングで待機します
func WaitForInvalidation(client *cloudfront.Client, distributionId, invalidationId string) error {
	for {
		result, err := client.GetInvalidation(context.Background(), &cloudfront.GetInvalidationInput{
			DistributionId: aws.String(distributionId),
			Id:             aws.String(invalidationId),
		})
		if err != nil {
			return err
		}

		status := *result.Invalidation.Status
		if status == "Completed" {
			return nil
		}
		fmt.Printf("   現在のステータス: %s\n", status)

		// 10秒待機してから再確認
		time.Sleep(10 * time.Second)
	}
}

// InvalidateByIdOrStack はディストリビューションIDまたはスタック名を
// 使用してキャッシュを無効化します
func InvalidateByIdOrStack(cfClient *cloudfront.Client, cfnClient *cloudformation.Client, opts InvalidateOptions) error {
	resolvedId, err := ResolveDistributionId(cfClient, cfnClient, opts.DistributionId, opts.StackName)
	if err != nil {
		return err
	}

	fmt.Printf("🚀 CloudFrontディストリビューション (%s) のキャッシュを無効化します...\n", resolvedId)
	fmt.Printf("   対象パス: %v\n", opts.Paths)

	invalidationId, err := CreateInvalidation(cfClient, resolvedId, opts.Paths)
	if err != nil {
		return fmt.Errorf("キャッシュ無効化エラー: %w", err)
	}

	fmt.Printf("✅ キャッシュ無効化を開始しました (ID: %s)\n", invalidationId)

	if opts.Wait {
		fmt.Println("⏳ 無効化の完了を待機しています...")
		if err := WaitForInvalidation(cfClient, resolvedId, invalidationId); err != nil {
			return fmt.Errorf("無効化待機エラー: %w", err)
		}
		fmt.Println("✅ キャッシュ無効化が完了しました")
	}

	return nil
}

// ResolveDistributionId はディストリビューションIDを解決します。
// 直接指定があればそれを、なければスタックから検出し、複数見つかった
// 場合は対話的に選択します
func ResolveDistributionId(cfClient *cloudfront.Client, cfnClient *cloudformation.Client, distributionId, stackName string) (string, error) {
	if distributionId != "" {
		return distributionId, nil
	}

	if stackName == "" {
		return "", fmt.Errorf("ディストリビューションID またはスタック名 (-S) を指定してください")
	}

	distributions, err := cfn.GetAllCloudFrontFromStack(cfnClient, stackName)
	if err != nil {
		return "", fmt.Errorf("CloudFormationスタックからディストリビューションの取得に失敗: %w", err)
	}

	if len(distributions) == 0 {
		return "", fmt.Errorf("スタック '%s' にCloudFrontディストリビューションが見つかりませんでした", stackName)
	}

	if len(distributions) == 1 {
		fmt.Printf("✅ CloudFormationスタック '%s' からCloudFrontディストリビューション '%s' を検出しました\n", stackName, distributions[0])
		return distributions[0], nil
	}

	// 複数のディストリビューションがある場合は選択
	return SelectDistribution(cfClient, distributions)
}
