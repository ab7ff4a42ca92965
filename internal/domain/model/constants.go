package model

// TagConstants スポットが持つ体験属性タグの定数
const (
	TagWalkingActivity = "walking_activity"
	TagNightView       = "night_view"
	TagQuietRest       = "quiet_rest"
	TagExperienceInfo  = "experience_info"
	TagFunSightseeing  = "fun_sightseeing"
	TagWithChildren    = "with_children"
	TagWithPets        = "with_pets"
	TagPublicTransport = "public_transport"
	TagCarTransport    = "car_transport"
	TagFamous          = "famous"
	TagCleanFacility   = "clean_facility"
)

// AnswerConstants 質問フォームの回答ID定数
const (
	AnswerWalk     = "walk"
	AnswerBeach    = "beach"
	AnswerRest     = "rest"
	AnswerHistory  = "history"
	AnswerFun      = "fun"
	AnswerChild    = "child"
	AnswerCouple   = "couple"
	AnswerFriend   = "friend"
	AnswerFamily   = "family"
	AnswerPet      = "pet"
	AnswerPublic   = "public"
	AnswerCar      = "car"
	AnswerPopular  = "popular"
	AnswerFacility = "facility"
)

// AnswerToTagMap 回答IDからスポットのタグ名へのマッピング
// couple / friend / family のような絞り込みを持たない回答は登録しない
// （未知の回答IDと同様に黙って無視される。古いクライアントを壊さずに
// 回答を追加できるようにするための仕様）
var AnswerToTagMap = map[string]string{
	AnswerWalk:     TagWalkingActivity,
	AnswerBeach:    TagNightView,
	AnswerRest:     TagQuietRest,
	AnswerHistory:  TagExperienceInfo,
	AnswerFun:      TagFunSightseeing,
	AnswerChild:    TagWithChildren,
	AnswerPet:      TagWithPets,
	AnswerPublic:   TagPublicTransport,
	AnswerCar:      TagCarTransport,
	AnswerPopular:  TagFamous,
	AnswerFacility: TagCleanFacility,
}

// RegionConstants 行政区域コードの定数
const (
	SigunguCodeGanghwa   = "1"  // 江華郡
	SigunguCodeYeongjong = "10" // 永宗島（中区）
	SigunguCodeUnknown   = "0"  // カタログが空の場合のセンチネル
)

// RegionNameMap 行政区域コードから表示名へのマッピング
// 登録のないコード（センチネル含む）はすべて内陸扱い
var RegionNameMap = map[string]string{
	SigunguCodeGanghwa:   "江華郡",
	SigunguCodeYeongjong: "永宗島（中区）",
}

// RegionNameInland 名前付き区域以外の共通表示名
const RegionNameInland = "内陸"

// GetRegionName 行政区域コードから表示名を取得する
func GetRegionName(sigunguCode string) string {
	if name, ok := RegionNameMap[sigunguCode]; ok {
		return name
	}
	return RegionNameInland
}

// ModeConstants コース生成の構築戦略を表す定数
const (
	ModePlain        = "plain"
	ModeStrict       = "strict"
	ModeSemiFlexible = "semi-flexible"
	ModeFullFlexible = "fully-flexible"
)

// ModeNameMap モードIDから日本語名へのマッピング
var ModeNameMap = map[string]string{
	ModePlain:        "一般モード",
	ModeStrict:       "厳格モード",
	ModeSemiFlexible: "準柔軟モード",
	ModeFullFlexible: "完全柔軟モード",
}

// GetModeJapaneseName モードIDから日本語名を取得する
func GetModeJapaneseName(mode string) string {
	if name, ok := ModeNameMap[mode]; ok {
		return name
	}
	return mode
}

// Question 質問フォームの1問を表す
type Question struct {
	ID      int            `json:"id"`
	Content string         `json:"content"`
	Options []AnswerOption `json:"options"`
}

// AnswerOption 質問への選択肢（IDがコース生成リクエストの回答識別子になる）
type AnswerOption struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// GetQuestions 質問フォームの固定カタログを取得する
func GetQuestions() []Question {
	return []Question{
		{
			ID:      1,
			Content: "どんな旅がしたいですか？",
			Options: []AnswerOption{
				{ID: AnswerWalk, Content: "歩きやすい道をたどる散策"},
				{ID: AnswerBeach, Content: "海と街の素敵な風景・夜景"},
				{ID: AnswerRest, Content: "混雑を避けてゆったり休息"},
				{ID: AnswerHistory, Content: "歴史と文化が味わえる特別な体験"},
				{ID: AnswerFun, Content: "退屈しないダイナミックな楽しさ"},
			},
		},
		{
			ID:      2,
			Content: "誰と一緒に行きますか？",
			Options: []AnswerOption{
				{ID: AnswerChild, Content: "子供と一緒に"},
				{ID: AnswerCouple, Content: "恋人と一緒に"},
				{ID: AnswerFriend, Content: "友達と一緒に"},
				{ID: AnswerFamily, Content: "家族と一緒に"},
				{ID: AnswerPet, Content: "ペットと一緒に"},
			},
		},
		{
			ID:      3,
			Content: "どうやって移動しますか？",
			Options: []AnswerOption{
				{ID: AnswerPublic, Content: "公共交通機関で"},
				{ID: AnswerCar, Content: "自家用車・タクシーで"},
			},
		},
		{
			ID:      4,
			Content: "その他に考慮することはありますか？",
			Options: []AnswerOption{
				{ID: AnswerPopular, Content: "みんながよく訪れる有名な場所を中心に"},
				{ID: AnswerFacility, Content: "施設が清潔で便利だと嬉しい"},
			},
		},
	}
}
