package defaults

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

// CfnNagSuppressRule はcfn_nagの特定ルールを抑制するメタデータの1件分です。
// 必ず抑制理由（Reason）とセットで付与します。
type CfnNagSuppressRule struct {
	Id     string
	Reason string
}

// AddCfnSuppressRules は合成済みリソースのメタデータに
// cfn_nag.rules_to_suppress を追記します。既存の抑制ルールがある場合は
// 上書きせず末尾に追加します。
func AddCfnSuppressRules(resource awscdk.CfnResource, rules []CfnNagSuppressRule) {
	toAdd := make([]interface{}, 0, len(rules))
	for _, rule := range rules {
		toAdd = append(toAdd, map[string]interface{}{
			"id":     rule.Id,
			"reason": rule.Reason,
		})
	}

	merged := map[string]interface{}{}
	if meta := resource.CfnOptions().Metadata(); meta != nil {
		for k, v := range *meta {
			merged[k] = v
		}
	}

	var existing []interface{}
	if nag, ok := merged["cfn_nag"].(map[string]interface{}); ok {
		if current, ok := nag["rules_to_suppress"].([]interface{}); ok {
			existing = current
		}
	}

	merged["cfn_nag"] = map[string]interface{}{
		"rules_to_suppress": append(existing, toAdd...),
	}
	resource.CfnOptions().SetMetadata(&merged)
}

// CfnResourceOf は高レベルコンストラクトの配下にある合成済みリソース
// （デフォルトチャイルド）をCfnResourceとして取り出します
func CfnResourceOf(construct constructs.IConstruct) awscdk.CfnResource {
	return construct.Node().DefaultChild().(awscdk.CfnResource)
}
