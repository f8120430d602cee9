package distribution_test

import (
	"testing"

	"cdnkit/distribution"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/jsii-runtime-go"
)

func newTestStack() awscdk.Stack {
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String("TestStack"), nil)
}

func newTestApi(stack awscdk.Stack) awsapigateway.RestApi {
	api := awsapigateway.NewRestApi(stack, jsii.String("TestApi"), nil)
	// メソッドが1つもないとsynthが失敗するためモック統合を追加
	api.Root().AddMethod(jsii.String("GET"), nil, nil)
	return api
}

func TestForS3CreatesLoggingBucket(t *testing.T) {
	stack := newTestStack()
	bucket := awss3.NewBucket(stack, jsii.String("Source"), nil)

	distribution.ForS3(stack, bucket, nil, nil)

	template := assertions.Template_FromStack(stack, nil)

	// オリジンバケット + ロギングバケット
	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(2))
	template.HasResourceProperties(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
		"AccessControl": "LogDeliveryWrite",
	})
	template.HasResource(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
		"Metadata": map[string]interface{}{
			"cfn_nag": map[string]interface{}{
				"rules_to_suppress": []interface{}{
					map[string]interface{}{"id": "W35", "reason": "This S3 bucket is used as the access logging bucket for CloudFront Distribution"},
					map[string]interface{}{"id": "W51", "reason": "This S3 bucket is used as the access logging bucket for CloudFront Distribution"},
				},
			},
		},
	})
}

func TestForS3CreatesSecurityHeadersFunction(t *testing.T) {
	stack := newTestStack()
	bucket := awss3.NewBucket(stack, jsii.String("Source"), nil)

	distribution.ForS3(stack, bucket, nil, nil)

	template := assertions.Template_FromStack(stack, nil)

	// エッジ関数は1つだけ、環境変数ブロックなし、不変バージョン付き
	template.ResourceCountIs(jsii.String("AWS::Lambda::Function"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::Lambda::Function"), map[string]interface{}{
		"Handler":     "index.handler",
		"Environment": assertions.Match_Absent(),
	})
	template.ResourceCountIs(jsii.String("AWS::Lambda::Version"), jsii.Number(1))

	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"DefaultCacheBehavior": assertions.Match_ObjectLike(&map[string]interface{}{
				"LambdaFunctionAssociations": []interface{}{
					assertions.Match_ObjectLike(&map[string]interface{}{
						"EventType": "viewer-response",
					}),
				},
			}),
		}),
	})
}

func TestForS3DisabledSecurityHeaders(t *testing.T) {
	stack := newTestStack()
	bucket := awss3.NewBucket(stack, jsii.String("Source"), nil)

	distribution.ForS3(stack, bucket, nil, jsii.Bool(false))

	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::Lambda::Function"), jsii.Number(0))
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"DefaultCacheBehavior": assertions.Match_ObjectLike(&map[string]interface{}{
				"LambdaFunctionAssociations": assertions.Match_Absent(),
			}),
		}),
	})
}

func TestForS3GrantsBucketReadToOriginAccessIdentity(t *testing.T) {
	stack := newTestStack()
	bucket := awss3.NewBucket(stack, jsii.String("Source"), nil)

	distribution.ForS3(stack, bucket, nil, nil)

	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::CloudFront::CloudFrontOriginAccessIdentity"), jsii.Number(1))

	// 正規ユーザー形式のプリンシパルでGetObjectを許可するステートメント
	template.HasResourceProperties(jsii.String("AWS::S3::BucketPolicy"), map[string]interface{}{
		"PolicyDocument": assertions.Match_ObjectLike(&map[string]interface{}{
			"Statement": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"Action": "s3:GetObject",
					"Principal": assertions.Match_ObjectLike(&map[string]interface{}{
						"CanonicalUser": assertions.Match_AnyValue(),
					}),
				}),
			}),
		}),
	})

	// バケットポリシーにはF16の抑制アノテーションが1件だけ付く
	template.HasResource(jsii.String("AWS::S3::BucketPolicy"), map[string]interface{}{
		"Metadata": map[string]interface{}{
			"cfn_nag": map[string]interface{}{
				"rules_to_suppress": []interface{}{
					map[string]interface{}{"id": "F16", "reason": "Public website bucket policy requires a wildcard principal"},
				},
			},
		},
	})
}

func TestForS3AlwaysPatchesSecurityPolicy(t *testing.T) {
	stack := newTestStack()
	bucket := awss3.NewBucket(stack, jsii.String("Source"), nil)

	distribution.ForS3(stack, bucket, nil, jsii.Bool(false))

	template := assertions.Template_FromStack(stack, nil)

	// どの分岐を通ってもW70の抑制アノテーションは必ず1件付く
	template.HasResource(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"Metadata": map[string]interface{}{
			"cfn_nag": map[string]interface{}{
				"rules_to_suppress": []interface{}{
					map[string]interface{}{"id": "W70", "reason": "Since the distribution uses the CloudFront domain name, CloudFront automatically sets the security policy to TLSv1 regardless of the value of MinimumProtocolVersion"},
				},
			},
		},
	})
}

func TestForApiGatewayCreatesLoggingBucket(t *testing.T) {
	stack := newTestStack()
	api := newTestApi(stack)

	distribution.ForApiGateway(stack, api, nil, nil)

	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
		"AccessControl": "LogDeliveryWrite",
	})
	template.ResourceCountIs(jsii.String("AWS::Lambda::Version"), jsii.Number(1))
	template.HasResource(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"Metadata": map[string]interface{}{
			"cfn_nag": map[string]interface{}{
				"rules_to_suppress": []interface{}{
					map[string]interface{}{"id": "W70", "reason": assertions.Match_AnyValue()},
				},
			},
		},
	})
}

func TestForApiGatewayReusesCallerLogBucket(t *testing.T) {
	stack := newTestStack()
	api := newTestApi(stack)
	logBucket := awss3.NewBucket(stack, jsii.String("MyLogs"), nil)

	distribution.ForApiGateway(stack, api, &awscloudfront.DistributionProps{
		LogBucket: logBucket,
	}, nil)

	template := assertions.Template_FromStack(stack, nil)

	// 呼び出し側のバケットを再利用するため追加のロギングバケットは作られない
	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(1))
	template.ResourcePropertiesCountIs(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
		"AccessControl": "LogDeliveryWrite",
	}, jsii.Number(0))
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Logging": assertions.Match_ObjectLike(&map[string]interface{}{
				"Bucket": assertions.Match_AnyValue(),
			}),
		}),
	})
}

func TestForApiGatewayDisabledSecurityHeaders(t *testing.T) {
	stack := newTestStack()
	api := newTestApi(stack)

	distribution.ForApiGateway(stack, api, nil, jsii.Bool(false))

	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::Lambda::Function"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::Lambda::Version"), jsii.Number(0))
}

func TestForApiGatewayAppliesCallerOverrides(t *testing.T) {
	stack := newTestStack()
	api := newTestApi(stack)

	distribution.ForApiGateway(stack, api, &awscloudfront.DistributionProps{
		Comment:    jsii.String("edge-site api distribution"),
		PriceClass: awscloudfront.PriceClass_PRICE_CLASS_ALL,
	}, nil)

	template := assertions.Template_FromStack(stack, nil)

	// トップレベルの上書きはデフォルトをプロパティごと置き換える
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Comment":    "edge-site api distribution",
			"PriceClass": "PriceClass_All",
		}),
	})
}
