package defaults

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// DefaultLambdaFunctionProps はLambda関数の標準設定を返します
func DefaultLambdaFunctionProps() *awslambda.FunctionProps {
	return &awslambda.FunctionProps{
		Runtime: awslambda.Runtime_NODEJS_20_X(),
		Handler: jsii.String("index.handler"),
	}
}

// DeployLambdaFunction は標準設定に呼び出し側の設定（コード・ランタイム・
// ハンドラなど）を重ねてLambda関数を作成します
func DeployLambdaFunction(scope constructs.Construct, id string, props *awslambda.FunctionProps) awslambda.Function {
	merged := OverrideProps(DefaultLambdaFunctionProps(), props)
	return awslambda.NewFunction(scope, jsii.String(id), merged)
}
