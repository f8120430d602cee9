package awsctx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// Context は認証情報（プロファイル・リージョン）を保持します
type Context struct {
	Profile string
	Region  string
	config  *aws.Config // 読み込んだAWS設定のキャッシュ（非公開）
}

// LoadConfig は認証情報からAWS設定を読み込みます
func LoadConfig(ctx Context) (aws.Config, error) {
	opts := make([]func(*config.LoadOptions) error, 0)

	if ctx.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(ctx.Profile))
	}
	if ctx.Region != "" {
		opts = append(opts, config.WithRegion(ctx.Region))
	}
	return config.LoadDefaultConfig(context.Background(), opts...)
}

// Config は遅延初期化でAWS設定を取得します（認証処理は初回のみ）
func (ctx *Context) Config() (aws.Config, error) {
	if ctx.config == nil {
		cfg, err := LoadConfig(*ctx)
		if err != nil {
			return aws.Config{}, err
		}
		ctx.config = &cfg
	}
	return *ctx.config, nil
}
