package awsctx

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Clients はAWS設定と各サービスクライアントを管理します
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	cloudFront *cloudfront.Client
	cfn        *cloudformation.Client
	s3         *s3.Client
}

// NewClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成します
func NewClients(ctx *Context) (*Clients, error) {
	cfg, err := ctx.Config()
	if err != nil {
		return nil, err
	}
	return &Clients{cfg: cfg}, nil
}

// CloudFront は遅延初期化でCloudFrontクライアントを取得します
func (c *Clients) CloudFront() *cloudfront.Client {
	if c.cloudFront == nil {
		c.cloudFront = cloudfront.NewFromConfig(c.cfg)
	}
	return c.cloudFront
}

// Cfn は遅延初期化でCloudFormationクライアントを取得します
func (c *Clients) Cfn() *cloudformation.Client {
	if c.cfn == nil {
		c.cfn = cloudformation.NewFromConfig(c.cfg)
	}
	return c.cfn
}

// S3 は遅延初期化でS3クライアントを取得します
func (c *Clients) S3() *s3.Client {
	if c.s3 == nil {
		c.s3 = s3.NewFromConfig(c.cfg)
	}
	return c.s3
}
