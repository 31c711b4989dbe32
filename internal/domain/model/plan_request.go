package model

// PlannerPreferences は旅行者のプランニング設定を保持する
type PlannerPreferences struct {
	Interests      []string `json:"interests"`                  // 興味のあるカテゴリ（空 = フィルタなし）
	DailyStartHour *int     `json:"daily_start_hour,omitempty"` // 1日の開始時刻（デフォルト9時）
	DailyEndHour   *int     `json:"daily_end_hour,omitempty"`   // 1日の終了時刻（デフォルト18時）
	LockedPlaceIDs []string `json:"locked_place_ids,omitempty"` // 旅行者が事前選択したスポットID（順序維持）
}

// StartHour 1日の開始時刻を取得する（未指定の場合はデフォルト値）
func (p *PlannerPreferences) StartHour() int {
	if p != nil && p.DailyStartHour != nil {
		return *p.DailyStartHour
	}
	return DefaultDailyStartHour
}

// EndHour 1日の終了時刻を取得する（未指定の場合はデフォルト値）
func (p *PlannerPreferences) EndHour() int {
	if p != nil && p.DailyEndHour != nil {
		return *p.DailyEndHour
	}
	return DefaultDailyEndHour
}

// HasLockedPlaces 事前選択されたスポットが指定されているかどうかを判定する
func (p *PlannerPreferences) HasLockedPlaces() bool {
	return p != nil && len(p.LockedPlaceIDs) > 0
}

// GetInterests 興味カテゴリのリストを取得する（nilの場合は空スライスを返す)
func (p *PlannerPreferences) GetInterests() []string {
	if p == nil || p.Interests == nil {
		return []string{}
	}
	return p.Interests
}

// IsInterestedIn 指定カテゴリが興味リストに含まれるかチェックする
func (p *PlannerPreferences) IsInterestedIn(category string) bool {
	if p == nil {
		return false
	}
	for _, interest := range p.Interests {
		if interest == category {
			return true
		}
	}
	return false
}

// Budget 旅行者の予算情報（スケジューリングには使用せず、そのままエコーバックする）
type Budget struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// TripPlanRequest は旅程プラン生成に必要な全ての条件を保持する
type TripPlanRequest struct {
	StartLocation *Location           `json:"start_location" validate:"required"` // 必須：スタート地点
	StartDate     string              `json:"start_date,omitempty"`               // オプション：開始日（YYYY-MM-DD）
	EndDate       string              `json:"end_date,omitempty"`                 // オプション：終了日（YYYY-MM-DD）
	Preferences   *PlannerPreferences `json:"preferences"`                        // オプション：プランニング設定
	Budget        *Budget             `json:"budget,omitempty"`                   // オプション：予算（そのまま返却）
}

// StartLatLng StartLocationをLatLng形式で取得
func (r *TripPlanRequest) StartLatLng() LatLng {
	if r.StartLocation == nil {
		return LatLng{}
	}
	return r.StartLocation.ToLatLng()
}

// GetPreferences 設定を取得する（nilの場合はデフォルト設定を返す）
func (r *TripPlanRequest) GetPreferences() *PlannerPreferences {
	if r.Preferences == nil {
		return &PlannerPreferences{}
	}
	return r.Preferences
}

// HasDates 開始日と終了日の両方が指定されているかどうかを判定する
func (r *TripPlanRequest) HasDates() bool {
	return r.StartDate != "" && r.EndDate != ""
}
