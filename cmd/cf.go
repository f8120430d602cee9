package cmd

import (
	"cdnkit/internal/awsctx"
	"cdnkit/internal/service/cfn"
	cfsvc "cdnkit/internal/service/cloudfront"
	"cdnkit/internal/service/common"
	"fmt"

	"github.com/spf13/cobra"
)

var clients *awsctx.Clients

// CfCmd represents the cf command
var CfCmd = &cobra.Command{
	Use:          "cf",
	Short:        "CloudFrontディストリビューション操作コマンド",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 親のPersistentPreRunEを実行（プロファイル確認とawsCtx設定）
		if err := RootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}

		var err error
		clients, err = awsctx.NewClients(&awsCtx)
		return err
	},
}

// cfInvalidateCmd represents the invalidate command
var cfInvalidateCmd = &cobra.Command{
	Use:   "invalidate [distribution-id]",
	Short: "CloudFrontのキャッシュを無効化するコマンド",
	Long: `CloudFrontディストリビューションのキャッシュを無効化します。
ディストリビューションIDを直接指定するか、CloudFormationスタック名から自動検出できます。

【使い方】
  ` + AppName + ` cf invalidate ABCD1234EFGH                    # 全体を無効化（/*）
  ` + AppName + ` cf invalidate ABCD1234EFGH -p "/images/*"     # 特定パスを無効化
  ` + AppName + ` cf invalidate -S my-stack                     # スタックから自動検出
  ` + AppName + ` cf invalidate -S my-stack -p "/api/*" -w      # 完了まで待機`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		resolveStackName()
		paths, _ := cmdCobra.Flags().GetStringSlice("path")
		wait, _ := cmdCobra.Flags().GetBool("wait")

		var distributionId string
		if len(args) > 0 {
			distributionId = args[0]
		}

		return cfsvc.InvalidateByIdOrStack(clients.CloudFront(), clients.Cfn(), cfsvc.InvalidateOptions{
			DistributionId: distributionId,
			Paths:          paths,
			Wait:           wait,
			StackName:      stackName,
		})
	},
}

// cfLsCmd represents the ls command
var cfLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "スタック内のCloudFrontディストリビューションを一覧表示",
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		resolveStackName()
		if stackName == "" {
			return fmt.Errorf("❌ エラー: スタック名 (-S) を指定してください")
		}

		distributions, err := cfn.GetAllCloudFrontFromStack(clients.Cfn(), stackName)
		if err != nil {
			return common.FormatListError("ディストリビューション", err)
		}

		title := fmt.Sprintf("ディストリビューション一覧 (スタック: %s)", stackName)
		common.PrintNumberedList(common.ListOutput{
			Title:        title,
			Items:        cfsvc.DescribeDistributions(clients.CloudFront(), distributions),
			ResourceName: "ディストリビューション",
		})

		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(CfCmd)
	CfCmd.AddCommand(cfInvalidateCmd)
	CfCmd.AddCommand(cfLsCmd)

	cfInvalidateCmd.Flags().StringSliceP("path", "p", []string{"/*"}, "無効化するパス（デフォルト: /*）")
	cfInvalidateCmd.Flags().BoolP("wait", "w", false, "無効化完了まで待機")
}
