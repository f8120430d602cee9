package main

import (
	"cdnkit/cloudfrontapigateway"
	"cdnkit/cloudfronts3"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type EdgeSiteStackProps struct {
	awscdk.StackProps
}

// apiHandlerCode はデモ用のAPIハンドラー（デプロイ確認用の固定レスポンス）
const apiHandlerCode = `exports.handler = async () => {
  return {
    statusCode: 200,
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ message: 'hello from edge-site api' }),
  };
};`

func NewEdgeSiteStack(scope constructs.Construct, id string, props *EdgeSiteStackProps) awscdk.Stack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)

	// API配信: Lambda + API Gateway の手前にCloudFrontを構成
	handler := awslambda.NewFunction(stack, jsii.String("ApiHandler"), &awslambda.FunctionProps{
		Runtime: awslambda.Runtime_NODEJS_20_X(),
		Handler: jsii.String("index.handler"),
		Code:    awslambda.Code_FromInline(jsii.String(apiHandlerCode)),
	})

	api := awsapigateway.NewLambdaRestApi(stack, jsii.String("Api"), &awsapigateway.LambdaRestApiProps{
		Handler: handler,
	})

	apiFront := cloudfrontapigateway.NewCloudFrontToApiGateway(stack, "ApiFront", &cloudfrontapigateway.CloudFrontToApiGatewayProps{
		ExistingApi: api,
	})

	// 静的サイト配信: 非公開S3バケットの手前にCloudFrontを構成
	site := cloudfronts3.NewCloudFrontToS3(stack, "StaticSite", &cloudfronts3.CloudFrontToS3Props{})

	awscdk.NewCfnOutput(stack, jsii.String("ApiDistributionDomainName"), &awscdk.CfnOutputProps{
		Value: apiFront.Distribution().DomainName(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("SiteDistributionDomainName"), &awscdk.CfnOutputProps{
		Value: site.Distribution().DomainName(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("SiteBucketName"), &awscdk.CfnOutputProps{
		Value: site.SourceBucket().BucketName(),
	})

	return stack
}

func main() {
	defer jsii.Close()

	app := awscdk.NewApp(nil)

	NewEdgeSiteStack(app, "EdgeSiteStack", &EdgeSiteStackProps{})

	app.Synth(nil)
}
