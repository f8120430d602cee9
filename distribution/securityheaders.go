package distribution

import (
	"cdnkit/defaults"

	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// securityHeadersCode はビューアレスポンスに固定のセキュリティヘッダーを
// 注入するLambda@Edge関数の本体。パラメータ化せず全呼び出しで同一。
const securityHeadersCode = `exports.handler = (event, context, callback) => {
  const response = event.Records[0].cf.response;
  const headers = response.headers;
  headers['x-xss-protection'] = [{ key: 'X-XSS-Protection', value: '1; mode=block' }];
  headers['x-frame-options'] = [{ key: 'X-Frame-Options', value: 'DENY' }];
  headers['x-content-type-options'] = [{ key: 'X-Content-Type-Options', value: 'nosniff' }];
  headers['strict-transport-security'] = [{ key: 'Strict-Transport-Security', value: 'max-age=63072000; includeSubdomains; preload' }];
  headers['referrer-policy'] = [{ key: 'Referrer-Policy', value: 'same-origin' }];
  headers['content-security-policy'] = [{ key: 'Content-Security-Policy', value: "default-src 'none'; img-src 'self'; script-src 'self'; style-src 'self'; object-src 'none'" }];
  callback(null, response);
};`

// createSecurityHeadersFunction はセキュリティヘッダー注入用のLambda関数を
// 作成します。Lambda@Edgeは環境変数を持つ関数を拒否するため、合成済み
// リソースから Environment ブロックを無条件に除去します。
func createSecurityHeadersFunction(scope constructs.Construct) awslambda.Function {
	fn := defaults.DeployLambdaFunction(scope, "SetHttpSecurityHeaders", &awslambda.FunctionProps{
		Code: awslambda.Code_FromInline(jsii.String(securityHeadersCode)),
	})

	cfnFunction := fn.Node().DefaultChild().(awslambda.CfnFunction)
	cfnFunction.AddDeletionOverride(jsii.String("Properties.Environment"))

	return fn
}
