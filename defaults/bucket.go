package defaults

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/jsii-runtime-go"
)

// DefaultBucketProps はセキュリティ強化済みのS3バケット標準設定を返します
// （SSE-S3暗号化、パブリックアクセス全ブロック、バージョニング有効）
func DefaultBucketProps() *awss3.BucketProps {
	return &awss3.BucketProps{
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		Versioned:         jsii.Bool(true),
	}
}
