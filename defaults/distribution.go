package defaults

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/jsii-runtime-go"
)

// DistributionForApiGatewayProps はAPI Gatewayをオリジンとする
// CloudFrontディストリビューションの標準設定を返します。
// アクセスログは常に有効で、渡されたログバケットへ出力されます。
func DistributionForApiGatewayProps(
	apiEndpoint awsapigateway.RestApiBase,
	logBucket awss3.IBucket,
	edgeLambdas *[]*awscloudfront.EdgeLambda,
) *awscloudfront.DistributionProps {
	return &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               awscloudfrontorigins.NewRestApiOrigin(apiEndpoint, nil),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			EdgeLambdas:          edgeLambdas,
		},
		EnableLogging: jsii.Bool(true),
		LogBucket:     logBucket,
		HttpVersion:   awscloudfront.HttpVersion_HTTP2,
		PriceClass:    awscloudfront.PriceClass_PRICE_CLASS_100,
	}
}

// DistributionForS3Props はS3バケットをオリジンとする
// CloudFrontディストリビューションの標準設定を返します。
// オリジンはOAI付きで構築済みのものを受け取ります。
func DistributionForS3Props(
	origin awscloudfront.IOrigin,
	logBucket awss3.IBucket,
	edgeLambdas *[]*awscloudfront.EdgeLambda,
) *awscloudfront.DistributionProps {
	return &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               origin,
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			EdgeLambdas:          edgeLambdas,
		},
		DefaultRootObject: jsii.String("index.html"),
		EnableLogging:     jsii.Bool(true),
		LogBucket:         logBucket,
		HttpVersion:       awscloudfront.HttpVersion_HTTP2,
		PriceClass:        awscloudfront.PriceClass_PRICE_CLASS_100,
	}
}
