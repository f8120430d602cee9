package cmd

import (
	"cdnkit/internal/awsctx"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// AppName はCLIのコマンド名
const AppName = "cdnkit"

var region string
var profile string
var stackName string

var awsCtx awsctx.Context

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "CloudFront配信スタックの運用ツール",
	Long: AppName + ` で構築したCloudFront配信スタック（API Gateway / S3オリジン）を
運用するためのコマンドラインツールです。
キャッシュ無効化、スタック内ディストリビューションの一覧表示、
アクセスログバケットの掃除を行います。`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "ap-northeast-1", "AWSリージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVarP(&stackName, "stack", "S", "", "CloudFormationスタック名")

	// コマンド実行前に共通でプロファイルチェックを行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプとバージョンはAWS認証不要のためスキップ
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if err := checkAndSetProfile(cmd); err != nil {
			return err
		}
		awsCtx = awsctx.Context{Profile: profile, Region: region}
		return nil
	}
}

// checkAndSetProfile はプロファイルの確認と設定を行います
func checkAndSetProfile(cmd *cobra.Command) error {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return nil
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		cmd.SilenceUsage = true // エラー時のUsage表示を抑制
		return errors.New("❌ エラー: プロファイルが指定されていません。-Pオプションまたは AWS_PROFILE 環境変数を指定してください")
	}
	profile = envProfile
	cmd.Println("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
	return nil
}

// resolveStackName はコマンドライン引数または環境変数からスタック名を決定し、
// グローバル変数 stackName にセットします
func resolveStackName() {
	if stackName != "" {
		fmt.Println("🔍 -Sオプションで指定されたスタック名 '" + stackName + "' を使用します")
		return
	}
	envStack := os.Getenv("AWS_STACK_NAME")
	if envStack != "" {
		fmt.Println("🔍 環境変数 AWS_STACK_NAME の値 '" + envStack + "' を使用します")
		stackName = envStack
	}
	// どちらもなければstackNameは空のまま
}
