package cloudfront

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
)

// DescribeDistributions はディストリビューションIDごとに
// 「ID - ドメイン名 (コメント)」形式の表示用文字列を作成します
func DescribeDistributions(client *cloudfront.Client, distributionIds []string) []string {
	lines := make([]string, 0, len(distributionIds))
	for _, id := range distributionIds {
		result, err := client.GetDistribution(context.Background(), &cloudfront.GetDistributionInput{
			Id: &id,
		})
		if err != nil {
			// 詳細が取れなくてもIDだけは表示する
			lines = append(lines, fmt.Sprintf("%s (詳細情報の取得に失敗)", id))
			continue
		}

		dist := result.Distribution
		domainName := ""
		if dist.DomainName != nil {
			domainName = *dist.DomainName
		}
		comment := ""
		if dist.DistributionConfig != nil && dist.DistributionConfig.Comment != nil {
			comment = *dist.DistributionConfig.Comment
		}

		lines = append(lines, fmt.Sprintf("%s - %s (%s)", id, domainName, comment))
	}
	return lines
}

// SelectDistribution は複数のディストリビューションから一つを選択します
func SelectDistribution(client *cloudfront.Client, distributionIds []string) (string, error) {
	fmt.Println("\n複数のCloudFrontディストリビューションが見つかりました。選択してください:")

	for i, line := range DescribeDistributions(client, distributionIds) {
		fmt.Printf("  %d. %s\n", i+1, line)
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("\n番号を入力してください (1-%d): ", len(distributionIds))

	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("入力エラー: %w", err)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > len(distributionIds) {
		return "", fmt.Errorf("無効な選択です")
	}

	selectedId := distributionIds[choice-1]
	fmt.Printf("\n✅ ディストリビューション '%s' を選択しました\n", selectedId)

	return selectedId, nil
}
