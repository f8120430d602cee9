package cloudfronts3

import (
	"cdnkit/defaults"
	"cdnkit/distribution"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// CloudFrontToS3Props はコンストラクトのプロパティ
type CloudFrontToS3Props struct {
	// ExistingBucket はオリジンとなる既存バケット。省略時は標準設定で新規作成します
	ExistingBucket awss3.Bucket
	// BucketProps は新規作成時のバケットへの上書き設定（ExistingBucket指定時は無視）
	BucketProps *awss3.BucketProps
	// CloudFrontDistributionProps はディストリビューションへの上書き設定。
	// トップレベルのプロパティ単位で標準設定を置き換えます
	CloudFrontDistributionProps *awscloudfront.DistributionProps
	// HttpSecurityHeaders はセキュリティヘッダー注入の有無
	// （明示的に false を渡した場合のみ無効化）
	HttpSecurityHeaders *bool
}

type cloudFrontToS3 struct {
	constructs.Construct
	dist         awscloudfront.Distribution
	sourceBucket awss3.Bucket
}

type CloudFrontToS3 interface {
	constructs.Construct
	Distribution() awscloudfront.Distribution
	SourceBucket() awss3.Bucket
}

// NewCloudFrontToS3 はS3バケットの手前にCloudFrontディストリビューションを
// 構成するコンストラクトを作成します。バケットは非公開のまま、OAI経由で
// 読み取りを許可します
func NewCloudFrontToS3(scope constructs.Construct, id string, props *CloudFrontToS3Props) CloudFrontToS3 {
	this := constructs.NewConstruct(scope, &id)

	var p CloudFrontToS3Props
	if props != nil {
		p = *props
	}

	sourceBucket := p.ExistingBucket
	if sourceBucket == nil {
		bucketProps := defaults.OverrideProps(defaults.DefaultBucketProps(), p.BucketProps)
		if bucketProps.ServerAccessLogsBucket == nil {
			bucketProps.ServerAccessLogsBucket = createS3LoggingBucket(this)
		}
		sourceBucket = awss3.NewBucket(this, jsii.String("S3Bucket"), bucketProps)
	}

	dist := distribution.ForS3(this, sourceBucket, p.CloudFrontDistributionProps, p.HttpSecurityHeaders)

	return &cloudFrontToS3{this, dist, sourceBucket}
}

// createS3LoggingBucket はコンテンツバケットのサーバーアクセスログ専用の
// バケットを作成します（呼び出し側がログ出力先を指定した場合は作られない）
func createS3LoggingBucket(scope constructs.Construct) awss3.Bucket {
	bucket := awss3.NewBucket(scope, jsii.String("S3LoggingBucket"), defaults.DefaultBucketProps())

	defaults.AddCfnSuppressRules(defaults.CfnResourceOf(bucket), []defaults.CfnNagSuppressRule{
		{Id: "W35", Reason: "This S3 bucket is used as the access logging bucket for the content bucket"},
	})

	return bucket
}

func (c *cloudFrontToS3) Distribution() awscloudfront.Distribution {
	return c.dist
}

func (c *cloudFrontToS3) SourceBucket() awss3.Bucket {
	return c.sourceBucket
}
