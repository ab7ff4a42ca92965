package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"TimeTraveler-App/internal/domain/model"
)

// taggedSpot 散策タグ付きのテスト用スポットを作る（latだけで距離差をつける）
func taggedSpot(id int, lat float64, mission bool) model.Spot {
	s := model.Spot{
		ID:              id,
		Lat:             lat,
		Lng:             126.70,
		WalkingActivity: true,
	}
	if mission {
		s.SetPastImageURL("https://example.com/past.jpg")
	}
	return s
}

func courseIDs(course []model.Spot) []int {
	ids := make([]int, 0, len(course))
	for _, s := range course {
		ids = append(ids, s.ID)
	}
	return ids
}

func missionCount(course []model.Spot) int {
	count := 0
	for _, s := range course {
		if s.IsMissionEligible() {
			count++
		}
	}
	return count
}

func assertNoDuplicates(t *testing.T, course []model.Spot) {
	t.Helper()
	seen := make(map[int]bool)
	for _, s := range course {
		assert.False(t, seen[s.ID], "スポットID %d が重複しています", s.ID)
		seen[s.ID] = true
	}
}

func TestCourseBuilder_PlainCourse(t *testing.T) {
	builder := NewCourseBuilder()
	userLocation := model.LatLng{Lat: 37.40, Lng: 126.70}

	t.Run("最近傍連結で現在地から近い順に繋がる", func(t *testing.T) {
		// IDの並びとは逆に、緯度は現在地から離れていく
		spots := []model.Spot{
			taggedSpot(1, 37.44, false),
			taggedSpot(2, 37.42, false),
			taggedSpot(3, 37.41, false),
			taggedSpot(4, 37.43, false),
		}

		course, mode, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 4, userLocation, false)

		assert.NoError(t, err)
		assert.Equal(t, model.ModePlain, mode)
		assert.Equal(t, []int{3, 2, 4, 1}, courseIDs(course))
		assertNoDuplicates(t, course)
	})

	t.Run("タグに解決できる回答がなければno_preferences", func(t *testing.T) {
		spots := []model.Spot{taggedSpot(1, 37.41, false)}

		_, _, err := builder.BuildCourse(spots, []string{model.AnswerCouple}, 1, userLocation, false)

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindNoPreferences, courseErr.Kind)
	})

	t.Run("条件を満たすスポットが足りなければinsufficient_candidates", func(t *testing.T) {
		spots := []model.Spot{
			taggedSpot(1, 37.41, false),
			taggedSpot(2, 37.42, false),
		}

		_, _, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 3, userLocation, false)

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInsufficientCandidates, courseErr.Kind)
	})

	t.Run("カタログが空ならinsufficient_candidates", func(t *testing.T) {
		_, _, err := builder.BuildCourse(nil, []string{model.AnswerWalk}, 2, userLocation, false)

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInsufficientCandidates, courseErr.Kind)
	})

	t.Run("5件中3件が条件を満たすカタログから3箇所のコースが組める", func(t *testing.T) {
		noTag1 := model.Spot{ID: 4, Lat: 37.42, Lng: 126.70}
		noTag2 := model.Spot{ID: 5, Lat: 37.43, Lng: 126.70}
		spots := []model.Spot{
			taggedSpot(1, 37.41, false),
			taggedSpot(2, 37.44, false),
			taggedSpot(3, 37.45, false),
			noTag1,
			noTag2,
		}

		course, mode, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 3, userLocation, false)

		assert.NoError(t, err)
		assert.Equal(t, model.ModePlain, mode)
		assert.Len(t, course, 3)
		for _, s := range course {
			assert.True(t, s.HasTag(model.TagWalkingActivity))
		}
	})

	t.Run("AND条件で絞り込んだプールから選ばれる", func(t *testing.T) {
		both := taggedSpot(1, 37.41, false)
		both.NightView = true
		walkOnly := taggedSpot(2, 37.42, false)

		course, _, err := builder.BuildCourse(
			[]model.Spot{both, walkOnly},
			[]string{model.AnswerWalk, model.AnswerBeach},
			1, userLocation, false,
		)

		assert.NoError(t, err)
		assert.Equal(t, []int{1}, courseIDs(course))
	})
}

func TestCourseBuilder_MissionCourse(t *testing.T) {
	builder := NewCourseBuilder()
	userLocation := model.LatLng{Lat: 37.40, Lng: 126.70}

	t.Run("ミッションスポットがひとつもなければno_mission_candidates", func(t *testing.T) {
		spots := []model.Spot{
			taggedSpot(1, 37.41, false),
			taggedSpot(2, 37.42, false),
		}

		_, _, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 2, userLocation, true)

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindNoMissionCandidates, courseErr.Kind)
	})

	t.Run("厳格モード：始点と終点がミッションで必要数を満たす", func(t *testing.T) {
		spots := []model.Spot{
			taggedSpot(1, 37.41, true),
			taggedSpot(2, 37.42, false),
			taggedSpot(3, 37.43, false),
			taggedSpot(4, 37.44, false),
			taggedSpot(5, 37.45, true),
		}

		course, mode, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 5, userLocation, true)

		assert.NoError(t, err)
		assert.Equal(t, model.ModeStrict, mode)
		assert.Len(t, course, 5)
		assert.True(t, course[0].IsMissionEligible(), "始点はミッションスポット")
		assert.True(t, course[4].IsMissionEligible(), "終点はミッションスポット")

		required := int(math.Ceil(5 * 0.4))
		assert.GreaterOrEqual(t, missionCount(course), required)
		assertNoDuplicates(t, course)
	})

	t.Run("厳格モード：3箇所のコースでは中間にミッションを置く", func(t *testing.T) {
		spots := []model.Spot{
			taggedSpot(1, 37.41, true),
			taggedSpot(2, 37.42, false),
			taggedSpot(3, 37.43, true),
		}

		course, mode, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 3, userLocation, true)

		assert.NoError(t, err)
		assert.Equal(t, model.ModeStrict, mode)
		assert.Len(t, course, 3)
		// required = ceil(1.2) = 2。始点＋中間スロット1つ
		assert.Equal(t, 2, missionCount(course))
		assert.True(t, course[0].IsMissionEligible())
		assertNoDuplicates(t, course)
	})

	t.Run("準柔軟モード：ミッション不足時は始点と終点だけミッションにする", func(t *testing.T) {
		// numPlaces=6 では required=3 なのでミッション2件では厳格モードに届かない
		spots := []model.Spot{
			taggedSpot(1, 37.41, true),
			taggedSpot(2, 37.42, false),
			taggedSpot(3, 37.43, false),
			taggedSpot(4, 37.44, false),
			taggedSpot(5, 37.45, false),
			taggedSpot(6, 37.46, true),
		}

		course, mode, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 6, userLocation, true)

		assert.NoError(t, err)
		assert.Equal(t, model.ModeSemiFlexible, mode)
		assert.Len(t, course, 6)
		assert.True(t, course[0].IsMissionEligible())
		assert.True(t, course[5].IsMissionEligible())
		assert.Equal(t, 2, missionCount(course))
		assertNoDuplicates(t, course)
	})

	t.Run("準柔軟モード：一般スポットが足りなければinsufficient_candidates", func(t *testing.T) {
		spots := []model.Spot{
			taggedSpot(1, 37.41, true),
			taggedSpot(2, 37.42, false),
			taggedSpot(3, 37.46, true),
		}

		_, _, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 6, userLocation, true)

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInsufficientCandidates, courseErr.Kind)
	})

	t.Run("完全柔軟モード：ミッション1件なら始点だけミッションにする", func(t *testing.T) {
		spots := []model.Spot{
			taggedSpot(1, 37.45, true),
			taggedSpot(2, 37.42, false),
			taggedSpot(3, 37.43, false),
			taggedSpot(4, 37.44, false),
		}

		course, mode, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 4, userLocation, true)

		assert.NoError(t, err)
		assert.Equal(t, model.ModeFullFlexible, mode)
		assert.Len(t, course, 4)
		assert.True(t, course[0].IsMissionEligible())
		assert.Equal(t, 1, missionCount(course))
		assertNoDuplicates(t, course)
	})

	t.Run("完全柔軟モード：一般スポットが足りなければinsufficient_candidates", func(t *testing.T) {
		spots := []model.Spot{
			taggedSpot(1, 37.41, true),
			taggedSpot(2, 37.42, false),
		}

		_, _, err := builder.BuildCourse(spots, []string{model.AnswerWalk}, 4, userLocation, true)

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInsufficientCandidates, courseErr.Kind)
	})

	t.Run("緩和フィルタ：歴史スポットはタグ条件を満たさなくても候補になる", func(t *testing.T) {
		history := model.Spot{ID: 1, Lat: 37.41, Lng: 126.70, ExperienceInfo: true}
		history.SetPastImageURL("https://example.com/past.jpg")
		regular := taggedSpot(2, 37.42, false)

		course, mode, err := builder.BuildCourse(
			[]model.Spot{history, regular},
			[]string{model.AnswerWalk},
			2, userLocation, true,
		)

		assert.NoError(t, err)
		assert.Equal(t, model.ModeStrict, mode)
		assert.Equal(t, []int{1, 2}, courseIDs(course))
	})
}

func TestBuildSlotTemplate(t *testing.T) {
	t.Run("位置0は常にミッションスロット", func(t *testing.T) {
		template := buildSlotTemplate(5, 0, false)
		assert.True(t, template[0])
	})

	t.Run("終点確保時は末尾もミッションスロット", func(t *testing.T) {
		template := buildSlotTemplate(5, 0, true)
		assert.True(t, template[0])
		assert.True(t, template[4])
	})

	t.Run("中間ミッションは比例配分で置かれる", func(t *testing.T) {
		template := buildSlotTemplate(5, 1, true)
		assert.Equal(t, []bool{true, false, true, false, true}, template)
	})

	t.Run("スロット数と同数のミッションでも衝突せず全部置ける", func(t *testing.T) {
		template := buildSlotTemplate(5, 3, true)
		for i, m := range template {
			assert.True(t, m, "位置 %d が空いています", i)
		}
	})
}
