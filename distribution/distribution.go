// Package distribution はAPI GatewayまたはS3バケットの手前に
// セキュリティ既定値込みのCloudFrontディストリビューションを構成します。
//
// どちらのエントリポイントも同じ流れで構成します:
// エッジ関数の作成（有効時）→ ログ出力先の解決 → デフォルト設定の算出 →
// 呼び出し側設定の浅いマージ → Distribution生成 → コンプライアンスパッチ。
// 入力の検証は行わず、不正な設定はCDK側の例外としてそのまま伝播します。
package distribution

import (
	"cdnkit/defaults"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// ForApiGateway は既存のREST APIをオリジンとするディストリビューションを
// 作成します。httpSecurityHeaders が nil（未指定）の場合はヘッダー注入を
// 有効として扱います。
func ForApiGateway(
	scope constructs.Construct,
	apiEndpoint awsapigateway.RestApiBase,
	props *awscloudfront.DistributionProps,
	httpSecurityHeaders *bool,
) awscloudfront.Distribution {
	enabled := httpSecurityHeaders == nil || *httpSecurityHeaders

	edgeLambdas := resolveEdgeLambdas(scope, enabled)
	logBucket := resolveLogBucket(scope, props)

	defaultProps := defaults.DistributionForApiGatewayProps(apiEndpoint, logBucket, edgeLambdas)
	merged := defaults.OverrideProps(defaultProps, props)

	dist := awscloudfront.NewDistribution(scope, jsii.String("CloudFrontDistribution"), merged)
	updateSecurityPolicy(dist)

	return dist
}

// ForS3 は既存のS3バケットをオリジンとするディストリビューションを作成し、
// オリジンアクセスアイデンティティ経由の読み取り権限をバケットポリシーに
// 付与します。httpSecurityHeaders は明示的に false を渡した場合のみ
// ヘッダー注入を無効化します。
func ForS3(
	scope constructs.Construct,
	sourceBucket awss3.Bucket,
	props *awscloudfront.DistributionProps,
	httpSecurityHeaders *bool,
) awscloudfront.Distribution {
	enabled := !(httpSecurityHeaders != nil && !*httpSecurityHeaders)

	oai := awscloudfront.NewOriginAccessIdentity(scope, jsii.String("CloudFrontOriginAccessIdentity"), &awscloudfront.OriginAccessIdentityProps{
		Comment: jsii.String("Access CloudFront to S3 bucket"),
	})
	origin := awscloudfrontorigins.S3BucketOrigin_WithOriginAccessIdentity(sourceBucket, &awscloudfrontorigins.S3BucketOriginWithOAIProps{
		OriginAccessIdentity: oai,
	})

	edgeLambdas := resolveEdgeLambdas(scope, enabled)
	logBucket := resolveLogBucket(scope, props)

	defaultProps := defaults.DistributionForS3Props(origin, logBucket, edgeLambdas)
	merged := defaults.OverrideProps(defaultProps, props)

	dist := awscloudfront.NewDistribution(scope, jsii.String("CloudFrontDistribution"), merged)
	updateSecurityPolicy(dist)

	// OAIの正規ユーザーIDはリソース参照が確定してから使えるため、
	// ポリシー追加はDistribution生成後に行う
	sourceBucket.AddToResourcePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:   jsii.Strings("s3:GetObject"),
		Resources: &[]*string{sourceBucket.ArnForObjects(jsii.String("*"))},
		Principals: &[]awsiam.IPrincipal{
			awsiam.NewCanonicalUserPrincipal(oai.CloudFrontOriginAccessIdentityS3CanonicalUserId()),
		},
	}))

	if policy := sourceBucket.Policy(); policy != nil {
		defaults.AddCfnSuppressRules(defaults.CfnResourceOf(policy), []defaults.CfnNagSuppressRule{
			{Id: "F16", Reason: "Public website bucket policy requires a wildcard principal"},
		})
	}

	return dist
}

// resolveEdgeLambdas はヘッダー注入が有効な場合にエッジ関数を作成し、
// 不変バージョンへの参照としてデフォルトビヘイビアに添付する形で返します
func resolveEdgeLambdas(scope constructs.Construct, enabled bool) *[]*awscloudfront.EdgeLambda {
	if !enabled {
		return nil
	}
	fn := createSecurityHeadersFunction(scope)
	return &[]*awscloudfront.EdgeLambda{{
		EventType:       awscloudfront.LambdaEdgeEventType_VIEWER_RESPONSE,
		FunctionVersion: fn.CurrentVersion(),
	}}
}

// resolveLogBucket はログ出力先をここで一度だけ決定します。
// 呼び出し側設定にログバケットが指定されていればそれを再利用し、
// なければ専用のロギングバケットを新規作成します。
func resolveLogBucket(scope constructs.Construct, props *awscloudfront.DistributionProps) awss3.IBucket {
	if props != nil && props.LogBucket != nil {
		return props.LogBucket
	}
	return createLoggingBucket(scope, "CloudfrontLoggingBucket")
}

// updateSecurityPolicy は合成済みディストリビューションにW70の抑制
// メタデータを付与します。デフォルトドメイン使用時はCloudFrontが
// セキュリティポリシーをTLSv1に固定するためです。
func updateSecurityPolicy(dist awscloudfront.Distribution) awscloudfront.Distribution {
	defaults.AddCfnSuppressRules(defaults.CfnResourceOf(dist), []defaults.CfnNagSuppressRule{
		{Id: "W70", Reason: "Since the distribution uses the CloudFront domain name, CloudFront automatically sets the security policy to TLSv1 regardless of the value of MinimumProtocolVersion"},
	})
	return dist
}
