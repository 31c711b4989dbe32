package model

// CategoryConstants はアプリケーションで使用する観光スポットカテゴリの定数
const (
	CategoryCultural    = "Cultural"
	CategoryNatural     = "Natural"
	CategoryHistorical  = "Historical"
	CategoryAdventure   = "Adventure"
	CategoryReligious   = "Religious"
	CategoryFood        = "Food"
	CategoryPhotography = "Photography"
)

// スケジューリングで使用するデフォルト値の定数
const (
	// DefaultPopularityScore 人気スコアが未設定の場合のデフォルト値
	DefaultPopularityScore = 1.0

	// DefaultVisitMinutes 平均滞在時間が未設定の場合のデフォルト値（分）
	DefaultVisitMinutes = 90

	// DefaultDailyStartHour 1日の観光開始時刻のデフォルト（時）
	DefaultDailyStartHour = 9

	// DefaultDailyEndHour 1日の観光終了時刻のデフォルト（時）
	DefaultDailyEndHour = 18

	// AssumedSpeedKmh 移動速度の想定値（市街地・近郊の混合平均, km/h）
	AssumedSpeedKmh = 25.0

	// MaxVisitsPerDay 1日にスケジュールできる訪問数の上限
	MaxVisitsPerDay = 5

	// DefaultCandidateFetchLimit 候補スポット取得時の上限件数
	DefaultCandidateFetchLimit = 50
)

// CategoryNameMap はカテゴリIDから日本語名へのマッピング
var CategoryNameMap = map[string]string{
	CategoryCultural:    "文化",
	CategoryNatural:     "自然",
	CategoryHistorical:  "歴史",
	CategoryAdventure:   "アドベンチャー",
	CategoryReligious:   "宗教",
	CategoryFood:        "グルメ",
	CategoryPhotography: "フォトスポット",
}

// GetCategoryJapaneseName はカテゴリIDから日本語名を取得する
func GetCategoryJapaneseName(category string) string {
	if name, ok := CategoryNameMap[category]; ok {
		return name
	}
	return category // デフォルトはそのまま返す
}

// GetAllCategories は全カテゴリの一覧を取得する
func GetAllCategories() []string {
	return []string{
		CategoryCultural,
		CategoryNatural,
		CategoryHistorical,
		CategoryAdventure,
		CategoryReligious,
		CategoryFood,
		CategoryPhotography,
	}
}

// IsValidCategory はカテゴリIDが定義済みかチェックする
func IsValidCategory(category string) bool {
	_, ok := CategoryNameMap[category]
	return ok
}
