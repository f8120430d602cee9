package cfn

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// GetStackResources はスタックからリソース一覧を取得します
func GetStackResources(cfnClient *cloudformation.Client, stackName string) ([]types.StackResource, error) {
	fmt.Printf("🔍 スタック '%s' からリソースを検索中...\n", stackName)
	resp, err := cfnClient.DescribeStackResources(context.Background(), &cloudformation.DescribeStackResourcesInput{
		StackName: awssdk.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("CloudFormationスタックのリソース取得に失敗: %w", err)
	}

	if len(resp.StackResources) == 0 {
		return nil, fmt.Errorf("スタック '%s' にリソースが見つかりませんでした", stackName)
	}

	return resp.StackResources, nil
}

// GetAllCloudFrontFromStack はCloudFormationスタックからすべての
// CloudFrontディストリビューションIDを取得します
func GetAllCloudFrontFromStack(cfnClient *cloudformation.Client, stackName string) ([]string, error) {
	stackResources, err := GetStackResources(cfnClient, stackName)
	if err != nil {
		return nil, err
	}

	distributionIds := FilterResourceIds(stackResources, "AWS::CloudFront::Distribution")
	for _, id := range distributionIds {
		fmt.Printf("🔍 検出されたディストリビューション: %s\n", id)
	}

	return distributionIds, nil
}

// GetLogBucketsFromStack はCloudFormationスタックからアクセスログ用の
// S3バケット名を取得します（論理IDに LoggingBucket を含むものが対象）
func GetLogBucketsFromStack(cfnClient *cloudformation.Client, stackName string) ([]string, error) {
	stackResources, err := GetStackResources(cfnClient, stackName)
	if err != nil {
		return nil, err
	}

	var bucketNames []string
	for _, resource := range stackResources {
		if *resource.ResourceType != "AWS::S3::Bucket" || resource.PhysicalResourceId == nil {
			continue
		}
		if resource.LogicalResourceId == nil || !strings.Contains(*resource.LogicalResourceId, "LoggingBucket") {
			continue
		}
		bucketNames = append(bucketNames, *resource.PhysicalResourceId)
		fmt.Printf("🔍 検出されたロギングバケット: %s\n", *resource.PhysicalResourceId)
	}

	return bucketNames, nil
}

// FilterResourceIds は指定したリソースタイプの物理IDのみを抽出します
func FilterResourceIds(resources []types.StackResource, resourceType string) []string {
	var ids []string
	for _, resource := range resources {
		if resource.ResourceType == nil || *resource.ResourceType != resourceType {
			continue
		}
		if resource.PhysicalResourceId == nil || *resource.PhysicalResourceId == "" {
			continue
		}
		ids = append(ids, *resource.PhysicalResourceId)
	}
	return ids
}
