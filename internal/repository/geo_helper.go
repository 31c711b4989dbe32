package repository

import (
	"github.com/paulmach/orb"

	"YatraPlan-App/internal/domain/model"
)

// GeoPoint PostGIS POINT 型の JSON 表現
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// LocationToGeoPoint model.Location を PostGIS POINT 形式に変換
func LocationToGeoPoint(location *model.Location) *GeoPoint {
	if location == nil {
		return nil
	}

	point := orb.Point{location.Longitude, location.Latitude}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// GeoPointToLocation PostGIS POINT を model.Location に変換
func GeoPointToLocation(geoPoint *GeoPoint) *model.Location {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return nil
	}

	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}

	return &model.Location{
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	}
}

// CreateTripBoundsPolygon 開始地点と訪問スポット座標列から旅程の境界ボックスを作成
func CreateTripBoundsPolygon(startLoc *model.Location, placeLocations []model.LatLng) *model.GeoPolygon {
	if startLoc == nil {
		return nil
	}

	start := orb.Point{startLoc.Longitude, startLoc.Latitude}

	bound := orb.Bound{Min: start, Max: start}
	for _, loc := range placeLocations {
		bound = bound.Extend(orb.Point{loc.Lng, loc.Lat})
	}

	// 少し余裕を持たせる（約100m程度）
	padding := 0.001 // 約111m
	bound = bound.Pad(padding)

	minLng := bound.Min.Lon()
	minLat := bound.Min.Lat()
	maxLng := bound.Max.Lon()
	maxLat := bound.Max.Lat()

	coordinates := [][][]float64{
		{
			{minLng, minLat}, // 左下
			{maxLng, minLat}, // 右下
			{maxLng, maxLat}, // 右上
			{minLng, maxLat}, // 左上
			{minLng, minLat}, // 閉じる
		},
	}

	return &model.GeoPolygon{
		Type:        "Polygon",
		Coordinates: coordinates,
	}
}

// TripDB Trip を DB 保存用に変換した構造体
type TripDB struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	PlaceIDs           []string          `json:"place_ids"`
	Days               int               `json:"days"`
	TotalTravelMinutes int               `json:"total_travel_minutes"`
	TotalEntranceFees  float64           `json:"total_entrance_fees"`
	TotalCost          float64           `json:"total_cost"`
	StartDate          string            `json:"start_date"`
	EndDate            string            `json:"end_date"`
	StartLocation      *GeoPoint         `json:"start_location"`
	TripBounds         *model.GeoPolygon `json:"trip_bounds"`
}

// TripToTripDB model.Trip を DB 保存用に変換
func TripToTripDB(trip *model.Trip, startLocation *model.Location, placeLocations []model.LatLng) *TripDB {
	startGeo := LocationToGeoPoint(startLocation)
	tripBounds := CreateTripBoundsPolygon(startLocation, placeLocations)

	return &TripDB{
		ID:                 trip.ID,
		Title:              trip.Title,
		PlaceIDs:           trip.PlaceIDs,
		Days:               trip.Days,
		TotalTravelMinutes: trip.TotalTravelMinutes,
		TotalEntranceFees:  trip.TotalEntranceFees,
		TotalCost:          trip.TotalCost,
		StartDate:          trip.StartDate,
		EndDate:            trip.EndDate,
		StartLocation:      startGeo,
		TripBounds:         tripBounds,
	}
}
