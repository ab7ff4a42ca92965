package service

import (
	"TimeTraveler-App/internal/domain/model"
)

// PreferenceFilter 回答IDをタグ条件に変換してカタログを絞り込む
type PreferenceFilter struct{}

// NewPreferenceFilter 新しいPreferenceFilterインスタンスを作成する
func NewPreferenceFilter() *PreferenceFilter {
	return &PreferenceFilter{}
}

// ResolveTags 回答IDの一覧をタグ名の一覧に解決する
// マッピングのない回答は黙って捨てる。重複は最初の出現だけ残す
func (f *PreferenceFilter) ResolveTags(answers []string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, ans := range answers {
		tag, ok := model.AnswerToTagMap[ans]
		if !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// ApplyFilters 全タグ条件をANDで満たすスポットだけを残す
func (f *PreferenceFilter) ApplyFilters(spots []model.Spot, tags []string) []model.Spot {
	var filtered []model.Spot
	for _, s := range spots {
		matched := true
		for _, tag := range tags {
			if !s.HasTag(tag) {
				matched = false
				break
			}
		}
		if matched {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// ApplyMissionFilter ミッションモード用の緩和フィルタ
// 歴史体験タグを持つスポット、または歴史以外の全タグ条件を満たすスポットを残す
// 歴史以外のタグがひとつもなければ歴史体験スポットのみが対象になる
func (f *PreferenceFilter) ApplyMissionFilter(spots []model.Spot, tags []string) []model.Spot {
	var otherTags []string
	for _, tag := range tags {
		if tag != model.TagExperienceInfo {
			otherTags = append(otherTags, tag)
		}
	}

	var filtered []model.Spot
	for _, s := range spots {
		if s.HasTag(model.TagExperienceInfo) {
			filtered = append(filtered, s)
			continue
		}
		if len(otherTags) == 0 {
			continue
		}
		matched := true
		for _, tag := range otherTags {
			if !s.HasTag(tag) {
				matched = false
				break
			}
		}
		if matched {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SplitMissionPools 過去写真の有無でミッションプールと一般プールに分割する
func (f *PreferenceFilter) SplitMissionPools(spots []model.Spot) (missionPool, regularPool []model.Spot) {
	for _, s := range spots {
		if s.IsMissionEligible() {
			missionPool = append(missionPool, s)
		} else {
			regularPool = append(regularPool, s)
		}
	}
	return missionPool, regularPool
}
