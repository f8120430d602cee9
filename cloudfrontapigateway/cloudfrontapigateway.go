package cloudfrontapigateway

import (
	"cdnkit/distribution"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/constructs-go/constructs/v10"
)

// CloudFrontToApiGatewayProps はコンストラクトのプロパティ
type CloudFrontToApiGatewayProps struct {
	// ExistingApi はオリジンとなる既存のREST API（必須）
	ExistingApi awsapigateway.RestApiBase
	// CloudFrontDistributionProps はディストリビューションへの上書き設定。
	// トップレベルのプロパティ単位で標準設定を置き換えます
	CloudFrontDistributionProps *awscloudfront.DistributionProps
	// HttpSecurityHeaders はセキュリティヘッダー注入の有無（省略時は有効）
	HttpSecurityHeaders *bool
}

type cloudFrontToApiGateway struct {
	constructs.Construct
	dist awscloudfront.Distribution
	api  awsapigateway.RestApiBase
}

type CloudFrontToApiGateway interface {
	constructs.Construct
	Distribution() awscloudfront.Distribution
	ApiGateway() awsapigateway.RestApiBase
}

// NewCloudFrontToApiGateway は既存のREST APIの手前にCloudFront
// ディストリビューションを構成するコンストラクトを作成します
func NewCloudFrontToApiGateway(scope constructs.Construct, id string, props *CloudFrontToApiGatewayProps) CloudFrontToApiGateway {
	if props == nil || props.ExistingApi == nil {
		panic("ExistingApi is required")
	}
	this := constructs.NewConstruct(scope, &id)

	dist := distribution.ForApiGateway(this, props.ExistingApi, props.CloudFrontDistributionProps, props.HttpSecurityHeaders)

	return &cloudFrontToApiGateway{this, dist, props.ExistingApi}
}

func (c *cloudFrontToApiGateway) Distribution() awscloudfront.Distribution {
	return c.dist
}

func (c *cloudFrontToApiGateway) ApiGateway() awsapigateway.RestApiBase {
	return c.api
}
