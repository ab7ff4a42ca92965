package service

import (
	"fmt"
	"math"

	"TimeTraveler-App/internal/domain/helper"
	"TimeTraveler-App/internal/domain/model"
)

// missionRatio 要求スポット数に対するミッションスポットの最低比率（厳格モード）
const missionRatio = 0.4

// CourseBuilder 貪欲な最近傍連結でコースを組み立てる
// 一般モードとミッションモード（厳格/準柔軟/完全柔軟の3段フォールバック）を持つ
type CourseBuilder struct {
	filter *PreferenceFilter
}

// NewCourseBuilder 新しいCourseBuilderインスタンスを作成する
func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		filter: NewPreferenceFilter(),
	}
}

// BuildCourse 回答と現在地から訪問順のスポット列と構築モードを返す
// プールはここでコピーされるため、呼び出し側のカタログは変更されない
func (b *CourseBuilder) BuildCourse(spots []model.Spot, answers []string, numPlaces int, userLocation model.LatLng, missionAccepted bool) ([]model.Spot, string, error) {
	if len(spots) == 0 {
		return nil, "", model.NewCourseError(
			model.ErrKindInsufficientCandidates,
			"利用できるスポットがありません",
		)
	}

	if !missionAccepted {
		course, err := b.buildPlainCourse(spots, answers, numPlaces, userLocation)
		if err != nil {
			return nil, "", err
		}
		return course, model.ModePlain, nil
	}
	return b.buildMissionCourse(spots, answers, numPlaces, userLocation)
}

// buildPlainCourse 一般モード：全タグ条件をANDで満たすプールから最近傍連結
func (b *CourseBuilder) buildPlainCourse(spots []model.Spot, answers []string, numPlaces int, userLocation model.LatLng) ([]model.Spot, error) {
	tags := b.filter.ResolveTags(answers)
	if len(tags) == 0 {
		return nil, model.NewCourseError(
			model.ErrKindNoPreferences,
			"旅行の条件を選択してください",
		)
	}

	pool := b.filter.ApplyFilters(spots, tags)
	if len(pool) < numPlaces {
		return nil, model.NewCourseError(
			model.ErrKindInsufficientCandidates,
			fmt.Sprintf("選択した条件をすべて満たすスポットが%d件しかありません（必要数: %d件）", len(pool), numPlaces),
		)
	}

	startIdx := helper.FindNearestIndex(userLocation, pool)
	course := []model.Spot{pool[startIdx]}
	pool = helper.RemoveAt(pool, startIdx)

	appended, _, err := b.greedyChain(course[0].ToLatLng(), pool, numPlaces-1)
	if err != nil {
		return nil, err
	}
	return append(course, appended...), nil
}

// buildMissionCourse ミッションモード：緩和フィルタで2つのプールに分け、
// プール規模に応じて厳格→準柔軟→完全柔軟の順に構築戦略を選ぶ
// 一度選ばれた戦略は途中で実行不能になっても他の戦略へは移らない
func (b *CourseBuilder) buildMissionCourse(spots []model.Spot, answers []string, numPlaces int, userLocation model.LatLng) ([]model.Spot, string, error) {
	tags := b.filter.ResolveTags(answers)
	relaxed := b.filter.ApplyMissionFilter(spots, tags)
	missionPool, regularPool := b.filter.SplitMissionPools(relaxed)

	if len(missionPool) == 0 {
		return nil, "", model.NewCourseError(
			model.ErrKindNoMissionCandidates,
			"選択した条件に合うミッションスポットがひとつもありません",
		)
	}

	requiredMissions := int(math.Ceil(float64(numPlaces) * missionRatio))

	switch {
	case len(missionPool) >= requiredMissions && len(regularPool) >= numPlaces-requiredMissions:
		course, err := b.buildStrictCourse(missionPool, regularPool, numPlaces, requiredMissions, userLocation)
		if err != nil {
			return nil, "", err
		}
		return course, model.ModeStrict, nil

	case len(missionPool) >= 2 && numPlaces >= 3:
		course, err := b.buildSemiFlexibleCourse(missionPool, regularPool, numPlaces, userLocation)
		if err != nil {
			return nil, "", err
		}
		return course, model.ModeSemiFlexible, nil

	default:
		course, err := b.buildFullyFlexibleCourse(missionPool, regularPool, numPlaces, userLocation)
		if err != nil {
			return nil, "", err
		}
		return course, model.ModeFullFlexible, nil
	}
}

// buildStrictCourse 厳格モード：スロットテンプレートに従いミッションを分散配置する
// 始点は現在地に最も近いミッションスポット。4箇所以上のコースでは始点から
// 最も遠いミッションスポットを終点に確保し、コース全体にミッションを広げる
func (b *CourseBuilder) buildStrictCourse(missionPool, regularPool []model.Spot, numPlaces, requiredMissions int, userLocation model.LatLng) ([]model.Spot, error) {
	startIdx := helper.FindNearestIndex(userLocation, missionPool)
	start := missionPool[startIdx]
	missionPool = helper.RemoveAt(missionPool, startIdx)

	interiorMissions := requiredMissions - 1
	var endSpot *model.Spot
	if numPlaces > 3 && len(missionPool) > 0 {
		endIdx := helper.FindFarthestIndex(start.ToLatLng(), missionPool)
		end := missionPool[endIdx]
		endSpot = &end
		missionPool = helper.RemoveAt(missionPool, endIdx)
		interiorMissions--
	}

	template := buildSlotTemplate(numPlaces, interiorMissions, endSpot != nil)

	interiorLen := numPlaces - 1
	if endSpot != nil {
		interiorLen = numPlaces - 2
	}

	course := []model.Spot{start}
	current := start.ToLatLng()
	for i := 1; i <= interiorLen; i++ {
		pool := regularPool
		if template[i] {
			pool = missionPool
		}
		idx := helper.FindNearestIndex(current, pool)
		if idx < 0 {
			// 事前の充足チェックを通過していれば起こらない
			return nil, model.NewCourseError(
				model.ErrKindInternal,
				"コース構築中に候補プールが尽きました",
			)
		}
		next := pool[idx]
		course = append(course, next)
		if template[i] {
			missionPool = helper.RemoveAt(missionPool, idx)
		} else {
			regularPool = helper.RemoveAt(regularPool, idx)
		}
		current = next.ToLatLng()
	}

	if endSpot != nil {
		course = append(course, *endSpot)
	}
	return course, nil
}

// buildSemiFlexibleCourse 準柔軟モード：始点と終点だけミッションスポットにして
// 中間はすべて一般プールから最近傍連結で埋める
func (b *CourseBuilder) buildSemiFlexibleCourse(missionPool, regularPool []model.Spot, numPlaces int, userLocation model.LatLng) ([]model.Spot, error) {
	startIdx := helper.FindNearestIndex(userLocation, missionPool)
	start := missionPool[startIdx]
	missionPool = helper.RemoveAt(missionPool, startIdx)

	if len(regularPool) < numPlaces-2 {
		return nil, model.NewCourseError(
			model.ErrKindInsufficientCandidates,
			fmt.Sprintf("コースを構成する一般スポットが不足しています（必要数: %d件、候補: %d件）", numPlaces-2, len(regularPool)),
		)
	}

	endIdx := helper.FindFarthestIndex(start.ToLatLng(), missionPool)
	end := missionPool[endIdx]

	course := []model.Spot{start}
	appended, _, err := b.greedyChain(start.ToLatLng(), regularPool, numPlaces-2)
	if err != nil {
		return nil, err
	}
	course = append(course, appended...)
	return append(course, end), nil
}

// buildFullyFlexibleCourse 完全柔軟モード：使えるミッションスポットが1箇所のとき
// そこを始点にして残りすべてを一般プールから埋める
func (b *CourseBuilder) buildFullyFlexibleCourse(missionPool, regularPool []model.Spot, numPlaces int, userLocation model.LatLng) ([]model.Spot, error) {
	startIdx := helper.FindNearestIndex(userLocation, missionPool)
	start := missionPool[startIdx]

	if len(regularPool) < numPlaces-1 {
		return nil, model.NewCourseError(
			model.ErrKindInsufficientCandidates,
			fmt.Sprintf("コースを構成する一般スポットが不足しています（必要数: %d件、候補: %d件）", numPlaces-1, len(regularPool)),
		)
	}

	course := []model.Spot{start}
	appended, _, err := b.greedyChain(start.ToLatLng(), regularPool, numPlaces-1)
	if err != nil {
		return nil, err
	}
	return append(course, appended...), nil
}

// greedyChain 直前に選んだスポットに最も近い未使用候補をcount回選んで返す
// 戻り値は（選んだスポット列、残りプール、エラー）
func (b *CourseBuilder) greedyChain(current model.LatLng, pool []model.Spot, count int) ([]model.Spot, []model.Spot, error) {
	var chained []model.Spot
	for i := 0; i < count; i++ {
		idx := helper.FindNearestIndex(current, pool)
		if idx < 0 {
			// 事前の充足チェックを通過していれば起こらない
			return nil, nil, model.NewCourseError(
				model.ErrKindInternal,
				"コース構築中に候補プールが尽きました",
			)
		}
		next := pool[idx]
		chained = append(chained, next)
		pool = helper.RemoveAt(pool, idx)
		current = next.ToLatLng()
	}
	return chained, pool, nil
}

// buildSlotTemplate どの訪問位置をミッションスロットにするかのテンプレートを作る
// 位置0は常にミッション、終点確保時は末尾もミッション
// 中間のミッションは比例配分で等間隔に置く。丸めでスロットが衝突した場合は
// 前方の空きへ、末尾まで埋まっていれば後方の空きへずらす（重複・範囲外なし）
func buildSlotTemplate(numPlaces, interiorMissions int, hasEnd bool) []bool {
	template := make([]bool, numPlaces)
	template[0] = true
	if hasEnd {
		template[numPlaces-1] = true
	}

	interiorLen := numPlaces - 1
	if hasEnd {
		interiorLen = numPlaces - 2
	}
	if interiorMissions <= 0 || interiorLen <= 0 {
		return template
	}

	for i := 1; i <= interiorMissions; i++ {
		pos := int(math.Round(float64(i) * float64(interiorLen+1) / float64(interiorMissions+1)))
		if pos < 1 {
			pos = 1
		}
		if pos > interiorLen {
			pos = interiorLen
		}
		placed := false
		for p := pos; p <= interiorLen; p++ {
			if !template[p] {
				template[p] = true
				placed = true
				break
			}
		}
		if !placed {
			for p := pos - 1; p >= 1; p-- {
				if !template[p] {
					template[p] = true
					break
				}
			}
		}
	}
	return template
}
