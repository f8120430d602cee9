package distribution

import (
	"cdnkit/defaults"

	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// createLoggingBucket はアクセスログ専用のS3バケットを作成します。
// CloudFrontがログオブジェクトを書き込めるよう、合成済みバケットの
// ACLを LogDeliveryWrite に上書きします（呼び出し側からの変更は不可）。
func createLoggingBucket(scope constructs.Construct, id string) awss3.Bucket {
	bucket := awss3.NewBucket(scope, jsii.String(id), defaults.DefaultBucketProps())

	cfnBucket := bucket.Node().DefaultChild().(awss3.CfnBucket)
	cfnBucket.AddPropertyOverride(jsii.String("AccessControl"), jsii.String("LogDeliveryWrite"))

	defaults.AddCfnSuppressRules(cfnBucket, []defaults.CfnNagSuppressRule{
		{Id: "W35", Reason: "This S3 bucket is used as the access logging bucket for CloudFront Distribution"},
		{Id: "W51", Reason: "This S3 bucket is used as the access logging bucket for CloudFront Distribution"},
	})

	return bucket
}
